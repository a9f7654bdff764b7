package server

import (
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/goliatone/go-regform/pkg/orchestrator"
	"github.com/goliatone/go-regform/pkg/registration"
)

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	session := registration.NewSession(registration.WithPhoneCode(s.cfg.Form.DefaultPhoneCode))
	s.writeForm(w, r, http.StatusOK, session.Fields(), nil)
}

// handleSubmitForm rebuilds the field values from the posted form, then runs a
// submit attempt. A rejected attempt re-renders the form; an accepted one hands
// the snapshot to the success page and redirects there.
func (s *Server) handleSubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}

	session := registration.NewSession()
	for _, name := range registration.FieldNames() {
		var err error
		switch {
		case name == registration.FieldShowPassword:
			checked := r.PostForm.Has(name)
			err = session.UpdateField(name, strconv.FormatBool(checked), registration.InputCheckbox)
		case r.PostForm.Has(name):
			err = session.UpdateField(name, r.PostForm.Get(name), registration.InputText)
		}
		if err != nil {
			s.logger.Error("update field", zap.String("field", name), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	snapshot, err := session.Submit()
	if err != nil {
		verrs, ok := registration.AsValidationErrors(err)
		if !ok {
			s.logger.Error("submit", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.logger.Info("registration rejected", zap.Strings("fields", verrs.Fields()))
		s.writeForm(w, r, http.StatusUnprocessableEntity, session.Fields(), verrs)
		return
	}

	token, err := s.handoff.Put(r.Context(), snapshot)
	if err != nil {
		s.logger.Error("store snapshot", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.logger.Info("registration accepted",
		zap.String("request_id", requestID(r)),
		zap.Bool("city_matches_country", registration.CityBelongs(snapshot.Country, snapshot.City)),
	)
	http.Redirect(w, r, "/success?token="+url.QueryEscape(token), http.StatusSeeOther)
}

func (s *Server) handleSuccess(w http.ResponseWriter, r *http.Request) {
	var payload any
	if snapshot, ok := s.handoff.Take(r.Context(), r.URL.Query().Get("token")); ok {
		payload = snapshot
	}

	body, err := s.html.RenderSuccess(r.Context(), payload)
	if err != nil {
		s.logger.Error("render success page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeHTML(w, http.StatusOK, s.html.ContentType(), body)
}

func (s *Server) writeForm(w http.ResponseWriter, r *http.Request, status int, fields registration.Fields, verrs registration.ValidationErrors) {
	body, err := s.orch.Generate(r.Context(), orchestrator.Request{
		Fields: fields,
		Errors: verrs,
	})
	if err != nil {
		s.logger.Error("render form", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writeHTML(w, status, s.html.ContentType(), body)
}

func writeHTML(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
