// Package osrm is a thin client for the external routing provider. The
// engine never computes paths itself; it only consumes the ordered geometry,
// distance and duration the provider returns.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/nischayvm/karnataka-tolls/pkg/estimation"
	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

const (
	DefaultBaseURL = "https://router.project-osrm.org"

	profileDriving = "driving"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry string  `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// FetchRoute asks OSRM for one route between origin and destination and
// normalizes it into the engine's representation: polyline decoded to
// (lat, lon) points, meters to km, seconds to minutes. excludeTolls requests
// the toll avoiding variant.
func (c *Client) FetchRoute(ctx context.Context, origin, destination geo.Coordinate,
	excludeTolls bool) (*estimation.Route, error) {
	// OSRM takes coordinates in lon,lat order
	url := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=polyline",
		c.baseURL, profileDriving, origin.Lon, origin.Lat, destination.Lon, destination.Lat)
	if excludeTolls {
		url += "&exclude=toll"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "build osrm request")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrUpstreamUnavailable, "osrm request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, util.WrapErrorf(nil, util.ErrUpstreamUnavailable,
			"osrm returned status %d", resp.StatusCode)
	}

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, util.WrapErrorf(err, util.ErrUpstreamUnavailable, "decode osrm response")
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrNotFound,
			"no route found from %f,%f to %f,%f", origin.Lat, origin.Lon,
			destination.Lat, destination.Lon)
	}

	first := body.Routes[0]
	points, err := geo.CoordsFromPolyline(first.Geometry)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrUpstreamUnavailable, "decode osrm geometry")
	}

	route, err := estimation.NewRoute(points,
		util.MetersToKm(first.Distance), util.SecondsToMinutes(first.Duration))
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrUpstreamUnavailable, "osrm route rejected")
	}
	c.log.Debug("fetched osrm route",
		zap.Bool("excludeTolls", excludeTolls),
		zap.Int("points", len(points)),
		zap.Float64("distanceKm", route.DistanceKm()),
		zap.Float64("durationMin", route.DurationMin()))
	return route, nil
}
