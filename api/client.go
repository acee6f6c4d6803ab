// Package api implements the HTTP client for the remote course catalog backend.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/coursex-bot/coursex/constant"
	"github.com/coursex-bot/coursex/course"
	"github.com/coursex-bot/coursex/internal/cache"
	"github.com/coursex-bot/coursex/key"
	"github.com/coursex-bot/coursex/log"
	"github.com/coursex-bot/coursex/network"
	"github.com/coursex-bot/coursex/util"
	"github.com/spf13/viper"
)

// Client queries the catalog backend and normalizes its payloads.
// Transport failures surface immediately; there is no retry layer here.
type Client struct {
	base string
	http *http.Client
}

// NewClient initializes a catalog client against the configured base URL.
func NewClient() *Client {
	return &Client{
		base: viper.GetString(key.APIBaseURL),
		http: network.Client,
	}
}

// Courses fetches and normalizes the catalog listing.
func (c *Client) Courses() ([]*course.CourseSummary, error) {
	payload, err := c.fetch(c.base)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return course.NormalizeCatalog(payload)
}

// Detail fetches and normalizes the full nested content of one course.
func (c *Client) Detail(id string) (*course.CourseDetail, error) {
	endpoint := fmt.Sprintf("%s/%s/classes?populate=full", c.base, url.PathEscape(id))
	payload, err := c.fetch(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch course %s: %w", id, err)
	}
	return course.NormalizeDetail(payload)
}

// fetch retrieves a decoded JSON payload, consulting the local payload cache first.
func (c *Client) fetch(endpoint string) (any, error) {
	cacheKey := cache.GenerateKey(endpoint)

	var payload any
	if cache.Read(cacheKey, &payload) {
		log.Debugf("payload cache hit for %s", endpoint)
		return payload, nil
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	if err := cache.Write(cacheKey, payload); err != nil {
		log.Warnf("cache payload for %s: %v", endpoint, err)
	}

	return payload, nil
}
