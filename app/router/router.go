package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"mk-watch-mods/app/controller"
)

// Controllers groups the handlers mounted by SetupRoutes
type Controllers struct {
	Storefront *controller.StorefrontController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// requestLogger logs each request once it completes
func requestLogger(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Infow("request completed",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"latency", time.Since(start).String(),
			)
		})
	}
}

// SetupRoutes builds the HTTP handler for the storefront
func SetupRoutes(controllers *Controllers, log *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	// Ping endpoint
	r.Get("/ping", pingHandler)

	// Screens
	r.Get("/", controllers.Storefront.Home)

	// Actions; each one redirects back to /
	r.Post("/collection", controllers.Storefront.SwitchCollection)
	r.Post("/select", controllers.Storefront.Select)
	r.Post("/back", controllers.Storefront.Back)
	r.Post("/carousel", controllers.Storefront.Carousel)
	r.Post("/reserve", controllers.Storefront.Reserve)

	// Images
	r.Get("/images/{collection}/{id}/{index}", controllers.Storefront.Image)
	r.Get("/logo", controllers.Storefront.Logo)

	return r
}
