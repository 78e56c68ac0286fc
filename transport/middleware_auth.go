package transport

import (
	"net/http"
	"strings"

	"github.com/browbeat/event-marketplace/application/user"
	"github.com/browbeat/event-marketplace/constant"
	utilsContext "github.com/browbeat/event-marketplace/utils/context"
	"github.com/browbeat/event-marketplace/utils/errors"
	"github.com/gorilla/mux"
)

// AuthMiddleware resolves the bearer session, when one is sent, into the
// request context. Only session endpoints insist on it; marketplace routes
// stay open to anonymous callers.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			required := isSessionPath(r.URL.Path)

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				if required {
					writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
					return
				}
				next.ServeHTTP(w, r)
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				if required {
					writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := utilsContext.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isSessionPath(path string) bool {
	return path == "/api/auth/me" || path == "/api/auth/logout"
}
