// Package preference tracks and persists each user's video quality preference.
//
// The store is fully independent of selection sessions: resetting a session
// never touches a stored preference, and preferences survive bot restarts.
package preference

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/coursex-bot/coursex/filesystem"
	"github.com/coursex-bot/coursex/key"
	"github.com/coursex-bot/coursex/log"
	"github.com/coursex-bot/coursex/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// All is the sentinel preference meaning no filtering or prioritization.
const All = "all"

// Fallback is the quality assumed when neither the user nor the configuration provides one.
const Fallback = "720p"

// ErrInvalidQuality indicates an attempt to store a non-canonical quality label.
var ErrInvalidQuality = errors.New("invalid quality label")

// Canonical returns the accepted quality labels, ending with the "all" sentinel.
func Canonical() []string {
	return []string{"240p", "360p", "480p", "720p", "1080p", All}
}

// IsValid reports whether value is a canonical quality label or the "all" sentinel.
// Comparison is case-insensitive.
func IsValid(value string) bool {
	return lo.Contains(Canonical(), strings.ToLower(value))
}

// cacher provides an abstracted, disk-backed registry for per-user preferences.
var cacher = gache.New[map[string]string](
	&gache.Options{
		Path:       where.Preferences(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// mu serializes read-modify-write cycles against the registry.
// Distinct users share the file, so the whole map is the synchronization unit.
var mu sync.Mutex

func load() (map[string]string, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]string), nil
	}
	return cached, nil
}

// Get returns the stored preference for a user, falling back to the configured
// default quality when the user never set one.
func Get(userID int64) string {
	mu.Lock()
	defer mu.Unlock()

	prefs, err := load()
	if err != nil {
		log.Errorf("read preferences: %v", err)
		return configuredDefault()
	}

	if value, ok := prefs[strconv.FormatInt(userID, 10)]; ok {
		return value
	}
	return configuredDefault()
}

// Set validates and persists a user's quality preference.
func Set(userID int64, value string) error {
	if !IsValid(value) {
		return fmt.Errorf("%w: %q", ErrInvalidQuality, value)
	}

	mu.Lock()
	defer mu.Unlock()

	prefs, err := load()
	if err != nil {
		return fmt.Errorf("read preferences: %w", err)
	}

	prefs[strconv.FormatInt(userID, 10)] = strings.ToLower(value)
	return cacher.Set(prefs)
}

// configuredDefault resolves the default quality from configuration,
// guarding against values outside the canonical set.
func configuredDefault() string {
	if value := viper.GetString(key.ExtractDefaultQuality); IsValid(value) {
		return strings.ToLower(value)
	}
	return Fallback
}
