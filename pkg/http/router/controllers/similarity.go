package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	helper "github.com/lintang-b-s/geodabs/pkg/http/router/routerhelper"
)

type similarityAPI struct {
	similarityService SimilarityService
	log               *zap.Logger
}

func New(similarityService SimilarityService, log *zap.Logger) *similarityAPI {
	return &similarityAPI{
		similarityService: similarityService,
		log:               log,
	}
}

func (api *similarityAPI) Routes(group *helper.RouteGroup) {
	group.GET("/similar", api.similar)
	group.GET("/nearby", api.nearby)
	group.GET("/dfd", api.dfd)
	group.GET("/motif", api.motif)
}

func (api *similarityAPI) similar(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request similarRequest
		err     error
	)

	query := r.URL.Query()

	request.Polyline = query.Get("polyline")
	request.Threshold, err = strconv.ParseFloat(query.Get("threshold"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("threshold is required and must be a valid float"))
		return
	}
	if err := api.validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	results, err := api.similarityService.Similar(request.Polyline, request.Threshold)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewSimilarResponse(results)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *similarityAPI) nearby(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearbyRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	request.Radius, err = strconv.ParseFloat(query.Get("radius"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("radius is required and must be a valid float"))
		return
	}
	if err := api.validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	ids := api.similarityService.Nearby(request.Lat, request.Lon, request.Radius)

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": ids}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *similarityAPI) dfd(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request dfdRequest

	query := r.URL.Query()

	request.A = query.Get("a")
	request.B = query.Get("b")
	if err := api.validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	d, err := api.similarityService.DFD(request.A, request.B)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	response := dfdResponse{Distance: d}
	if epsStr := query.Get("epsilon"); epsStr != "" {
		eps, err := strconv.ParseFloat(epsStr, 64)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("epsilon must be a valid float"))
			return
		}
		within, err := api.similarityService.Within(eps, request.A, request.B)
		if err != nil {
			api.getStatusCode(w, r, err)
			return
		}
		response.Within = &within
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": response}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *similarityAPI) motif(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request motifRequest
		err     error
	)

	query := r.URL.Query()

	request.A = query.Get("a")
	request.B = query.Get("b")
	request.MinLength, err = strconv.Atoi(query.Get("min_length"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("min_length is required and must be an integer"))
		return
	}
	if err := api.validateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	pair, err := api.similarityService.Motif(request.A, request.B, request.MinLength)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewMotifResponse(pair)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *similarityAPI) validateStruct(request interface{}) error {
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
		return fmt.Errorf("validation error: %v", vvString)
	}
	return nil
}
