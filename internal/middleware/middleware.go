package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"ideagen/internal/handler"
	"ideagen/internal/service"
)

type Middleware func(http.Handler) http.Handler

// TokenHeader is the request header carrying the raw token. The web
// client sets the same header on every request.
const TokenHeader = "x-auth-token"

// AuthMiddleware verifies the token and attaches the resolved user to
// the request context. Public endpoints are passed through untouched.
func AuthMiddleware(authService service.AuthService, l *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			publicPaths := []string{
				"/api/auth/register",
				"/api/auth/login",
				"/api",
				"/health",
				"/",
			}

			for _, path := range publicPaths {
				if r.URL.Path == path {
					next.ServeHTTP(w, r)
					return
				}
			}

			tokenString := r.Header.Get(TokenHeader)
			if tokenString == "" {
				handlers.WriteError(w, "No token, authorization denied", http.StatusUnauthorized)
				return
			}

			// one generic failure for every verification problem
			user, err := authService.Authenticate(r.Context(), tokenString)
			if err != nil {
				l.Debug("token rejected", zap.Error(err))
				handlers.WriteError(w, "Token is not valid", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(handlers.WithUser(r.Context(), user)))
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+TokenHeader)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func LoggingMiddleware(l *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			l.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
