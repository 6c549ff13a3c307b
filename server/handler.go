// Package server exposes IBAN validation over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/vortex-fintech/go-iban/bulk"
	"github.com/vortex-fintech/go-iban/errors"
	"github.com/vortex-fintech/go-iban/iban"
	"github.com/vortex-fintech/go-iban/logger"
	"github.com/vortex-fintech/go-iban/observe"
	"github.com/vortex-fintech/go-iban/validator"
)

const (
	PathValidate = "/v1/iban/validate"
	PathBatch    = "/v1/iban/validate:batch"
	PathCheck    = "/v1/iban/check"

	maxBodyBytes    = 1 << 20
	headerRequestID = "X-Request-ID"
)

type validateRequest struct {
	Value string `json:"value"`
}

type batchRequest struct {
	Values []string `json:"values" validate:"max=1000"`
}

type batchResponse struct {
	Results []iban.Result `json:"results"`
}

type checkRequest struct {
	Value   string `json:"value"`
	Country string `json:"country,omitempty" validate:"omitempty,len=2,alpha"`
}

type Handler struct {
	v       *observe.Validator
	log     logger.LoggerInterface
	workers int
	router  chi.Router
}

type Option func(*Handler)

func WithLogger(l logger.LoggerInterface) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithWorkers bounds concurrency of batch requests; <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(h *Handler) { h.workers = n }
}

func NewHandler(v *observe.Validator, opts ...Option) *Handler {
	if v == nil {
		v = observe.New(nil)
	}
	h := &Handler{v: v, log: logger.Nop(), router: chi.NewRouter()}
	for _, opt := range opts {
		opt(h)
	}

	h.router.Use(middleware.Recoverer, requestID)
	h.router.Post(PathValidate, h.validate)
	h.router.Post(PathBatch, h.batch)
	h.router.Post(PathCheck, h.check)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// requestID carries the caller's X-Request-ID, or a fresh one, into the
// log context and the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(headerRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(logger.ContextWithRequestID(r.Context(), id)))
	})
}

// validate answers with the result wire shape, including null for a blank
// value.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !h.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.v.ValidateTextContext(r.Context(), req.Value))
}

func (h *Handler) batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		errors.ToErrorResponse(err).ToHTTP(w)
		return
	}

	results, err := bulk.Validate(r.Context(), h.v, req.Values, h.workers)
	if err != nil {
		h.log.WarnwCtx(r.Context(), "batch validation aborted", "count", len(req.Values), "err", err)
		errors.ToErrorResponse(err).ToHTTP(w)
		return
	}
	writeJSON(w, http.StatusOK, batchResponse{Results: results})
}

// check is the strict form: 204 for a valid IBAN (optionally from the given
// country), 400 with field violations otherwise.
func (h *Handler) check(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := validator.ValidateStruct(req); err != nil {
		errors.ToErrorResponse(err).ToHTTP(w)
		return
	}
	res := h.v.ValidateTextContext(r.Context(), req.Value)
	if e, failed := errors.FromIBAN("value", res); failed {
		e.ToHTTP(w)
		return
	}
	if req.Country != "" {
		if err := validator.Instance().Var(req.Value, validator.TagIBANCountry+"="+req.Country); err != nil {
			errors.ToValidation("value", validator.ReasonCountryMismatch).
				WithDetail("country", strings.ToUpper(req.Country)).
				ToHTTP(w)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.log.DebugwCtx(r.Context(), "malformed request", "path", r.URL.Path, "err", err)
		errors.Malformed(err.Error()).ToHTTP(w)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
