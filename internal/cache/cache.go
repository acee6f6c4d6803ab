// Package cache provides localized filesystem-based caching for raw catalog API payloads.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/coursex-bot/coursex/filesystem"
	"github.com/coursex-bot/coursex/key"
	"github.com/coursex-bot/coursex/where"
	"github.com/spf13/viper"
)

// TTL returns the configured payload lifetime. Zero disables caching.
func TTL() time.Duration {
	return time.Duration(viper.GetInt(key.APICacheTTLHours)) * time.Hour
}

// GenerateKey generates a deterministic SHA-256 hash from a request URL for use as a cache identifier.
func GenerateKey(url string) string {
	sanitized := strings.ToLower(strings.TrimSpace(url))
	hash := sha256.Sum256([]byte(sanitized))
	return hex.EncodeToString(hash[:])
}

// Read attempts to retrieve and deserialize a cached payload if it exists and has not exceeded the TTL.
func Read(cacheKey string, target interface{}) bool {
	ttl := TTL()
	if ttl <= 0 {
		return false
	}

	fs := filesystem.API()
	path := filepath.Join(where.Payloads(), cacheKey)

	info, err := fs.Stat(path)
	if err != nil || time.Since(info.ModTime()) > ttl {
		return false
	}

	f, err := fs.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	// Decode directly into the target interface.
	decoder := json.NewDecoder(f)
	return decoder.Decode(target) == nil
}

// Write persists a serializable payload to the cache using an atomic file swap to ensure data integrity.
func Write(cacheKey string, data interface{}) error {
	fs := filesystem.API()
	path := filepath.Join(where.Payloads(), cacheKey)
	tmpPath := path + ".tmp"

	f, err := fs.Create(tmpPath)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(data); err != nil {
		f.Close()
		return err
	}
	f.Close()

	return fs.Rename(tmpPath, path)
}

// CollectGarbage initializes an asynchronous background task to prune expired cache entries from the filesystem.
func CollectGarbage() {
	go func() {
		ttl := TTL()
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}

		fs := filesystem.API()
		dir := where.Payloads()
		entries, err := fs.ReadDir(dir)
		if err != nil {
			return
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if time.Since(entry.ModTime()) > ttl {
				_ = fs.Remove(filepath.Join(dir, entry.Name()))
			}
		}
	}()
}
