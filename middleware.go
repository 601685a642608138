package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// requestLogger logs one line per request with status and latency.
func requestLogger(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(responseWriter, request.ProtoMajor)
			next.ServeHTTP(ww, request)

			log.Infow("http request",
				"method", request.Method,
				"path", request.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"latency", time.Since(start),
				"request_id", middleware.GetReqID(request.Context()),
			)
		})
	}
}
