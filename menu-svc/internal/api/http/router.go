package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type RouterOptions struct {
	AllowedOrigins []string
	// Uploads serves locally stored assets under /uploads/ when set.
	Uploads http.Handler
}

func NewRouter(handler *Handler, opts RouterOptions) http.Handler {
	r := mux.NewRouter()
	r.Use(SecurityHeaders)
	handler.RegisterRoutes(r)
	if opts.Uploads != nil {
		r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads", opts.Uploads)).Methods("GET", "HEAD")
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(r)
}

func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

func StartServer(srv *http.Server) error {
	log.Printf("Menu Service starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
