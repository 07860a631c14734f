package server

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bluefightred/TheHive-Slack-Notifications/internal/utils/logger"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

func applyMiddlewares(handler http.Handler, middlewares []Middleware) http.Handler {
	wrapped := handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] == nil {
			continue
		}
		wrapped = middlewares[i](wrapped)
	}
	return wrapped
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(body []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(body)
	r.size += n
	return n, err
}

func requestLogMiddleware(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			remoteIP := r.RemoteAddr
			if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
				remoteIP = host
			}
			log.Infof("http request method=%s path=%s status=%d duration_ms=%d bytes=%d request_id=%s remote_ip=%s",
				r.Method, r.URL.Path, status, time.Since(start).Milliseconds(), rec.size, w.Header().Get("X-Request-Id"), remoteIP)
		})
	}
}

// recoverMiddleware turns a panic into a 500 when no response was written yet.
func recoverMiddleware(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}
				log.Errorf("error in webhook endpoint: %v", p)
				if rec.status != 0 {
					return
				}
				writeJSON(rec, http.StatusInternalServerError, statusResponse{Status: "error", Message: fmt.Sprint(p)})
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
