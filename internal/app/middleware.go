package app

import (
	"net/http"
	"strings"

	"github.com/domakasa/domakasa/internal/config"
	"github.com/domakasa/domakasa/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Resolve the bearer token into the current user. An invalid or expired
	// token behaves exactly like no token: the request proceeds anonymous and
	// protected handlers reject it downstream.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()

			if token := bearerToken(req); token != "" {
				claims, err := user.ParseToken(cfg.Auth.Secret, token)
				if err != nil {
					log.Debugf("rejected session token: %v", err)
				} else {
					u, err := deps.UserService.GetUserByUid(ctx, claims.Uid)
					if err != nil {
						log.Debugf("session token for unknown user %s", claims.Uid)
					} else {
						ctx = user.WithUser(ctx, u)
					}
				}
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}

func bearerToken(req *http.Request) string {
	header := req.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}
