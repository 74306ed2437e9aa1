package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/passgen/pkg/httpserver"
	"github.com/dmitrymomot/passgen/pkg/passgen"
	"github.com/dmitrymomot/passgen/pkg/qrcode"
	"github.com/dmitrymomot/passgen/pkg/requestid"
)

// maxBodyBytes bounds a generation request body.
const maxBodyBytes = 64 << 10

// DefaultRequest is the base every POST /v1/passwords body is decoded over.
var DefaultRequest = passgen.Request{
	Length:    16,
	Alphabets: passgen.Alphabets{Lower: true, Upper: true, Digit: true},
}

// API serves the password generator over HTTP.
type API struct {
	gen      *passgen.Generator
	log      *slog.Logger
	defaults passgen.Request
	qrSize   int
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the logger used for failed requests.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// WithDefaults replaces DefaultRequest, typically with config values.
func WithDefaults(req passgen.Request) Option {
	return func(a *API) {
		a.defaults = req
	}
}

// WithQRSize sets the edge length of QR images in pixels.
func WithQRSize(px int) Option {
	return func(a *API) {
		if px > 0 {
			a.qrSize = px
		}
	}
}

// New returns an API backed by gen. A nil gen uses a generator on the
// default source.
func New(gen *passgen.Generator, opts ...Option) *API {
	a := &API{
		gen:      gen,
		log:      slog.New(slog.DiscardHandler),
		defaults: DefaultRequest,
		qrSize:   qrcode.DefaultSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.gen == nil {
		a.gen = passgen.New(passgen.WithLogger(a.log))
	}
	return a
}

// Routes mounts the endpoints on a chi router.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.Liveness)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/passwords", a.generate)
		r.Get("/phonetic", a.phonetic)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, envelope{Error: &errorDetail{
			Code:    "not_found",
			Message: "route not found",
		}})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, envelope{Error: &errorDetail{
			Code:    "method_not_allowed",
			Message: "method not allowed",
		}})
	})
	return r
}
