// Package geocoder resolves free text place names to coordinates through
// Nominatim, with an optional redis hot cache in front of it.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

const DefaultBaseURL = "https://nominatim.openstreetmap.org"

type Place struct {
	Name     string         `json:"name"`
	Location geo.Coordinate `json:"location"`
}

type Client struct {
	baseURL    string
	regionHint string
	httpClient *http.Client
	rc         *redis.Client
	cacheTTL   time.Duration
	log        *zap.Logger
}

// NewClient builds a geocoder. rc may be nil, which disables caching.
// regionHint is appended to every query to bias results (the catalog covers
// Karnataka).
func NewClient(baseURL, regionHint string, timeout time.Duration, rc *redis.Client,
	cacheTTL time.Duration, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		regionHint: regionHint,
		httpClient: &http.Client{Timeout: timeout},
		rc:         rc,
		cacheTTL:   cacheTTL,
		log:        log,
	}
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Search resolves a free text query to its best matching place.
func (c *Client) Search(ctx context.Context, query string) (Place, error) {
	if query == "" {
		return Place{}, util.WrapErrorf(nil, util.ErrBadParamInput, "empty geocode query")
	}

	key := "geocode:" + query
	if c.rc != nil {
		if s, _ := c.rc.Get(ctx, key).Result(); s != "" {
			var cached Place
			if err := json.Unmarshal([]byte(s), &cached); err == nil {
				return cached, nil
			}
		}
	}

	q := query
	if c.regionHint != "" {
		q = query + ", " + c.regionHint
	}
	reqURL := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", c.baseURL, url.QueryEscape(q))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Place{}, util.WrapErrorf(err, util.ErrInternalServerError, "build nominatim request")
	}
	req.Header.Set("Accept-Language", "en")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Place{}, util.WrapErrorf(err, util.ErrUpstreamUnavailable, "nominatim request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, util.WrapErrorf(nil, util.ErrUpstreamUnavailable,
			"nominatim returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Place{}, util.WrapErrorf(err, util.ErrUpstreamUnavailable, "decode nominatim response")
	}
	if len(results) == 0 {
		return Place{}, util.WrapErrorf(nil, util.ErrNotFound, "no place found for %q", query)
	}

	lat, err := util.StringToFloat64(results[0].Lat)
	if err != nil {
		return Place{}, util.WrapErrorf(err, util.ErrUpstreamUnavailable, "parse nominatim lat")
	}
	lon, err := util.StringToFloat64(results[0].Lon)
	if err != nil {
		return Place{}, util.WrapErrorf(err, util.ErrUpstreamUnavailable, "parse nominatim lon")
	}

	place := Place{Name: results[0].DisplayName, Location: geo.NewCoordinate(lat, lon)}
	if c.rc != nil {
		if b, err := json.Marshal(place); err == nil {
			ttl := c.cacheTTL
			if ttl <= 0 {
				ttl = time.Hour
			}
			_ = c.rc.Set(ctx, key, b, ttl).Err()
		}
	}
	c.log.Debug("geocoded place", zap.String("query", query), zap.String("name", place.Name))
	return place, nil
}
