package osrm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

func osrmPayload(geometry string, distanceM, durationS float64) []byte {
	payload := map[string]interface{}{
		"code": "Ok",
		"routes": []map[string]interface{}{
			{"geometry": geometry, "distance": distanceM, "duration": durationS},
		},
	}
	raw, _ := json.Marshal(payload)
	return raw
}

func TestFetchRouteNormalizesUnits(t *testing.T) {
	geometry := geo.PolylineFromCoords([]geo.Coordinate{
		geo.NewCoordinate(12.97, 77.59),
		geo.NewCoordinate(12.85, 77.65),
	})

	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write(osrmPayload(geometry, 50000, 3600))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	route, err := client.FetchRoute(context.Background(),
		geo.NewCoordinate(12.97, 77.59), geo.NewCoordinate(12.85, 77.65), false)
	require.NoError(t, err)

	assert.Contains(t, gotPath, "/route/v1/driving/")
	assert.Contains(t, gotQuery, "overview=full")
	assert.NotContains(t, gotQuery, "exclude=toll")

	assert.Equal(t, 50.0, route.DistanceKm())
	assert.Equal(t, 60.0, route.DurationMin())
	require.Len(t, route.Points(), 2)
	assert.InDelta(t, 12.97, route.Points()[0].Lat, 1e-5)
	assert.InDelta(t, 77.59, route.Points()[0].Lon, 1e-5)
}

func TestFetchRouteExcludeTolls(t *testing.T) {
	geometry := geo.PolylineFromCoords([]geo.Coordinate{
		geo.NewCoordinate(12.97, 77.59),
		geo.NewCoordinate(12.85, 77.65),
	})

	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write(osrmPayload(geometry, 60000, 4500))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	_, err := client.FetchRoute(context.Background(),
		geo.NewCoordinate(12.97, 77.59), geo.NewCoordinate(12.85, 77.65), true)
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "exclude=toll")
}

func TestFetchRouteNoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	_, err := client.FetchRoute(context.Background(),
		geo.NewCoordinate(12.97, 77.59), geo.NewCoordinate(12.85, 77.65), false)
	require.Error(t, err)
	var ierr *util.Error
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, util.ErrNotFound, ierr.Code())
}

func TestFetchRouteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	_, err := client.FetchRoute(context.Background(),
		geo.NewCoordinate(12.97, 77.59), geo.NewCoordinate(12.85, 77.65), false)
	require.Error(t, err)
	var ierr *util.Error
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, util.ErrUpstreamUnavailable, ierr.Code())
}
