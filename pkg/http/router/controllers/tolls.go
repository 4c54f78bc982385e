package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"github.com/nischayvm/karnataka-tolls/pkg/estimation"
	"github.com/nischayvm/karnataka-tolls/pkg/geo"
	helper "github.com/nischayvm/karnataka-tolls/pkg/http/router/routerhelper"
	"github.com/nischayvm/karnataka-tolls/pkg/tollgate"
	"github.com/nischayvm/karnataka-tolls/pkg/util"
)

type tollAPI struct {
	estimationService EstimationService
	catalogService    CatalogService
	geocodeService    GeocodeService
	log               *zap.Logger
}

func New(estimationService EstimationService, catalogService CatalogService,
	geocodeService GeocodeService, log *zap.Logger) *tollAPI {
	return &tollAPI{
		estimationService: estimationService,
		catalogService:    catalogService,
		geocodeService:    geocodeService,
		log:               log,
	}
}

func (api *tollAPI) Routes(group *helper.RouteGroup) {
	group.GET("/estimateRoute", api.estimateRoute)
	group.POST("/compareRoutes", api.compareRoutes)
	group.GET("/tolls", api.listTolls)
	group.GET("/geocode", api.geocode)
}

func (api *tollAPI) estimateRoute(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request estimateRouteRequest
		err     error
	)

	query := r.URL.Query()

	request.OriginLat, err = util.StringToFloat64(query.Get("origin_lat"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lat is required and must be a valid float"))
		return
	}
	request.OriginLon, err = util.StringToFloat64(query.Get("origin_lon"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("origin_lon is required and must be a valid float"))
		return
	}
	request.DestinationLat, err = util.StringToFloat64(query.Get("destination_lat"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("destination_lat is required and must be a valid float"))
		return
	}
	request.DestinationLon, err = util.StringToFloat64(query.Get("destination_lon"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("destination_lon is required and must be a valid float"))
		return
	}
	request.Vehicle = query.Get("vehicle")

	if ok := api.validateRequest(w, r, request); !ok {
		return
	}

	class, err := tollgate.ParseVehicleClass(request.Vehicle)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	result, err := api.estimationService.EstimateRoute(r.Context(),
		geo.NewCoordinate(request.OriginLat, request.OriginLon),
		geo.NewCoordinate(request.DestinationLat, request.DestinationLon), class)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewComparisonResponse(result, class)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *tollAPI) compareRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request compareRoutesRequest
		err     error
	)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if ok := api.validateRequest(w, r, request); !ok {
		return
	}

	class, err := tollgate.ParseVehicleClass(request.Vehicle)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	standard, err := request.Standard.toRoute()
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}
	var alternate *estimation.Route
	if request.Alternate != nil {
		alternate, err = request.Alternate.toRoute()
		if err != nil {
			api.getStatusCode(w, r, err)
			return
		}
	}

	result, err := api.estimationService.CompareRoutes(r.Context(), standard, alternate, class)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewComparisonResponse(result, class)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *tollAPI) listTolls(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	gates, err := api.catalogService.ListGates(r.Context())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewTollGatesResponse(gates)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *tollAPI) geocode(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query().Get("q")
	if query == "" {
		api.BadRequestResponse(w, r, errors.New("q is required"))
		return
	}

	place, err := api.geocodeService.Search(r.Context(), query)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewPlaceResponse(place)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *tollAPI) validateRequest(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	return true
}
