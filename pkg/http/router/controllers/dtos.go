package controllers

import (
	"github.com/nischayvm/karnataka-tolls/pkg/estimation"
	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	"github.com/nischayvm/karnataka-tolls/pkg/geocoder"
	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

type estimateRouteRequest struct {
	OriginLat      float64 `json:"origin_lat" validate:"required,min=-90,max=90"`
	OriginLon      float64 `json:"origin_lon" validate:"required,min=-180,max=180"`
	DestinationLat float64 `json:"destination_lat" validate:"required,min=-90,max=90"`
	DestinationLon float64 `json:"destination_lon" validate:"required,min=-180,max=180"`
	Vehicle        string  `json:"vehicle" validate:"required,oneof=car bike truck"`
}

// routeBody carries one caller-supplied route geometry, either as an encoded
// polyline or an explicit [lat, lon] point list.
type routeBody struct {
	Polyline    string      `json:"polyline,omitempty"`
	Points      [][]float64 `json:"points,omitempty"`
	DistanceKm  float64     `json:"distance_km" validate:"min=0"`
	DurationMin float64     `json:"duration_min" validate:"min=0"`
}

func (rb *routeBody) toRoute() (*estimation.Route, error) {
	var coords []geo.Coordinate
	switch {
	case rb.Polyline != "":
		decoded, err := geo.CoordsFromPolyline(rb.Polyline)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid route polyline")
		}
		coords = decoded
	case len(rb.Points) > 0:
		coords = make([]geo.Coordinate, 0, len(rb.Points))
		for _, p := range rb.Points {
			if len(p) != 2 {
				return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
					"route points must be [lat, lon] pairs")
			}
			coords = append(coords, geo.NewCoordinate(p[0], p[1]))
		}
	default:
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"route geometry is required (polyline or points)")
	}
	return estimation.NewRoute(coords, rb.DistanceKm, rb.DurationMin)
}

type compareRoutesRequest struct {
	Standard  routeBody  `json:"standard" validate:"required"`
	Alternate *routeBody `json:"alternate,omitempty"`
	Vehicle   string     `json:"vehicle" validate:"required,oneof=car bike truck"`
}

type matchedGateResponse struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Location        geo.Coordinate `json:"location"`
	SnappedLocation geo.Coordinate `json:"snapped_location"`
	Cost            float64        `json:"cost"`
	Type            string         `json:"type"`
}

type routeCostResponse struct {
	Polyline    string                `json:"polyline"`
	DistanceKm  float64               `json:"distance_km"`
	DurationMin float64               `json:"duration_min"`
	TollCost    float64               `json:"toll_cost"`
	FuelCost    float64               `json:"fuel_cost"`
	TotalCost   float64               `json:"total_cost"`
	TollGates   []matchedGateResponse `json:"toll_gates"`
}

func NewRouteCostResponse(cost estimation.RouteCost, class tollgate.VehicleClass) routeCostResponse {
	points := cost.Route.Points()
	gates := make([]matchedGateResponse, 0, len(cost.MatchedGates))
	for _, gate := range cost.MatchedGates {
		gates = append(gates, matchedGateResponse{
			ID:              gate.ID,
			Name:            gate.Name,
			Location:        gate.Location,
			SnappedLocation: geo.SnapToPath(points, gate.Location),
			Cost:            gate.Tariff.CostFor(class),
			Type:            string(gate.Type),
		})
	}
	return routeCostResponse{
		Polyline:    geo.PolylineFromCoords(points),
		DistanceKm:  cost.Route.DistanceKm(),
		DurationMin: cost.Route.DurationMin(),
		TollCost:    cost.TollCost,
		FuelCost:    cost.FuelCost,
		TotalCost:   cost.TotalCost,
		TollGates:   gates,
	}
}

type comparisonResponse struct {
	Standard     routeCostResponse  `json:"standard"`
	Alternate    *routeCostResponse `json:"alternate,omitempty"`
	Savings      *float64           `json:"savings,omitempty"`
	ExtraTimeMin *float64           `json:"extra_time_min,omitempty"`
}

func NewComparisonResponse(result estimation.ComparisonResult,
	class tollgate.VehicleClass) comparisonResponse {
	resp := comparisonResponse{
		Standard: NewRouteCostResponse(result.Standard, class),
	}
	if result.Alternate != nil {
		alt := NewRouteCostResponse(*result.Alternate, class)
		resp.Alternate = &alt
		savings := result.Savings
		extraTime := result.ExtraTimeMin
		resp.Savings = &savings
		resp.ExtraTimeMin = &extraTime
	}
	return resp
}

type tollGateResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Location geo.Coordinate  `json:"location"`
	Cost     tollgate.Tariff `json:"cost"`
	Type     string          `json:"type"`
}

func NewTollGatesResponse(gates []tollgate.TollGate) []tollGateResponse {
	resp := make([]tollGateResponse, 0, len(gates))
	for _, gate := range gates {
		resp = append(resp, tollGateResponse{
			ID:       gate.ID,
			Name:     gate.Name,
			Location: gate.Location,
			Cost:     gate.Tariff,
			Type:     string(gate.Type),
		})
	}
	return resp
}

type placeResponse struct {
	Name     string         `json:"name"`
	Location geo.Coordinate `json:"location"`
}

func NewPlaceResponse(place geocoder.Place) placeResponse {
	return placeResponse{Name: place.Name, Location: place.Location}
}
