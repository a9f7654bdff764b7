package server

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/goliatone/go-regform/pkg/registration"
)

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type listResponse struct {
	Data []option `json:"data"`
}

type validateResponse struct {
	Submittable bool                          `json:"submittable"`
	Errors      registration.ValidationErrors `json:"errors"`
}

type registerResponse struct {
	Data registration.Fields `json:"data"`
}

type rejectedResponse struct {
	Errors registration.ValidationErrors `json:"errors"`
}

type problemResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, listResponse{Data: options(registration.Countries())})
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	if unescaped, err := url.PathUnescape(country); err == nil {
		country = unescaped
	}
	render.JSON(w, r, listResponse{Data: options(registration.CitiesFor(country))})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	fields, ok := s.decodeFields(w, r)
	if !ok {
		return
	}
	errs := registration.Validate(fields)
	render.JSON(w, r, validateResponse{Submittable: len(errs) == 0, Errors: errs})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	fields, ok := s.decodeFields(w, r)
	if !ok {
		return
	}

	snapshot, err := registration.Submit(fields)
	if err != nil {
		verrs, _ := registration.AsValidationErrors(err)
		s.logger.Info("registration rejected", zap.Strings("fields", verrs.Fields()), zap.String("request_id", requestID(r)))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, rejectedResponse{Errors: verrs})
		return
	}

	s.logger.Info("registration accepted", zap.String("request_id", requestID(r)))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, registerResponse{Data: snapshot})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.apiDoc)
}

func (s *Server) decodeFields(w http.ResponseWriter, r *http.Request) (registration.Fields, bool) {
	var fields registration.Fields
	if err := render.DecodeJSON(r.Body, &fields); err != nil {
		s.logger.Debug("malformed registration payload", zap.Error(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, problemResponse{Error: "malformed JSON body"})
		return registration.Fields{}, false
	}
	return fields, true
}

func options(values []string) []option {
	out := make([]option, 0, len(values))
	for _, value := range values {
		out = append(out, option{Value: value, Label: value})
	}
	return out
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
