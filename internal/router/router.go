package router

import (
	"html/template"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/yusufkecer/bmi-analyzer/internal/chart"
	"github.com/yusufkecer/bmi-analyzer/internal/handler"
	"github.com/yusufkecer/bmi-analyzer/internal/middleware"
	"github.com/yusufkecer/bmi-analyzer/internal/service"
)

type Options struct {
	AllowedOrigins string
	CalcRateLimit  int
	CalcRateWindow time.Duration
}

func New(opts Options, tmpl *template.Template, avatars *service.AvatarService, validate *validator.Validate) *mux.Router {
	pageHandler := handler.NewPageHandler(tmpl, validate, avatars)
	bmiHandler := handler.NewBMIHandler(validate, avatars)
	chartHandler := handler.NewChartHandler()
	avatarHandler := handler.NewAvatarHandler(avatars)

	calcRL := middleware.NewRateLimiter(opts.CalcRateLimit, opts.CalcRateWindow)

	r := mux.NewRouter()

	// Global middleware: request ID → access log → CORS → security headers → body limit
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.CORSMiddleware(opts.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.MaxBytes(1 << 20))

	r.HandleFunc("/", pageHandler.Index).Methods(http.MethodGet)
	r.HandleFunc("/introduction", pageHandler.Introduction).Methods(http.MethodGet)
	r.HandleFunc("/analyzer", pageHandler.Analyzer).Methods(http.MethodGet)
	r.Handle("/analyzer", calcRL.Middleware(http.HandlerFunc(pageHandler.Calculate))).Methods(http.MethodPost)
	r.HandleFunc("/chart.png", chartHandler.Format(chart.PNG)).Methods(http.MethodGet)
	r.HandleFunc("/chart.svg", chartHandler.Format(chart.SVG)).Methods(http.MethodGet)
	r.HandleFunc("/avatars/{key}", avatarHandler.Get).Methods(http.MethodGet)

	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet, http.MethodOptions)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.Handle("/bmi", calcRL.Middleware(http.HandlerFunc(bmiHandler.Calculate))).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/bmi", calcRL.Middleware(http.HandlerFunc(bmiHandler.CalculateQuery))).Methods(http.MethodGet)
	api.HandleFunc("/categories", bmiHandler.Categories).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/chart", chartHandler.Get).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/avatars/{key}", avatarHandler.Get).Methods(http.MethodGet, http.MethodOptions)

	return r
}
