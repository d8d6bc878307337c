package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/chetan-code/todoweb/internal/config"
	"github.com/chetan-code/todoweb/internal/handler"
	"github.com/chetan-code/todoweb/internal/repository"
)

func loggerMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		//logging completion of a request
		slog.Info("http_request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"ip", r.RemoteAddr,
			//imp : how long does it take a req to complete
			"duration", time.Since(start).String(),
		)
	})
}

func routing(h *handler.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(loggerMW)
	r.Use(middleware.Recoverer)
	r.Mount("/", h.Routes())
	return r
}

func startServer(addr string, h http.Handler) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("server_starting", "addr", addr)
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server_start_failed", "error", err)
		os.Exit(1)
	}
}

func setupSlog(level slog.Level) {
	//Json handler that writes to standard out
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: true, //adds file name and line number
	})

	//Intialise new logger and set it as default for the server
	slog.SetDefault(slog.New(handler))
}

func main() {
	//structure logging, debug until config tells otherwise
	setupSlog(slog.LevelDebug)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config_load_failed", "error", err)
		os.Exit(1)
	}
	setupSlog(cfg.LogLevel)

	api := repository.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.APITimeout})
	h := handler.NewHandler(api, cfg)

	slog.Info("api_client_ready", "base_url", cfg.APIBaseURL, "fetch_errors", cfg.FetchErrors)
	startServer(cfg.Addr, routing(h))
}
