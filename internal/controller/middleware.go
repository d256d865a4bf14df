package controller

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/fitclub/server/pkg/ctxlogger"
	"github.com/fitclub/server/pkg/rest"
)

func (c *controller) requestIdMw(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxlogger.AppendCtx(r.Context(), slog.String("request_id", uuid.NewString()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (c *controller) requestLoggingMw(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.logger.InfoContext(r.Context(), "request",
			"method", r.Method,
			"url", r.URL.String(),
			"remote_addr", r.RemoteAddr,
		)
		next.ServeHTTP(w, r)
	})
}

func (c *controller) registerRateLimitMw(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !c.registerLimiter.Allow() {
			rest.WriteJSON(w, http.StatusTooManyRequests, rest.Envelope{"error": "too many registration attempts, try again later"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
