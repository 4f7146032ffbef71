package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/feddict/feddict-backend/internal/config"
	"github.com/feddict/feddict-backend/pkg/ctxutil"
)

// BasicAuth returns middleware that guards mutating endpoints with the
// configured admin credential pair. The password may be stored either as
// a bcrypt hash ($2a$/$2b$/$2y$ prefix) or as plaintext; plaintext is
// compared in constant time. On success the admin username is put on the
// request context for the access log.
func BasicAuth(cfg config.AuthConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !credentialsMatch(cfg, user, pass) {
				w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := ctxutil.WithAdminUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func credentialsMatch(cfg config.AuthConfig, user, pass string) bool {
	// Hash both sides so the comparison is constant-time regardless of length.
	userHash := sha256.Sum256([]byte(user))
	wantUserHash := sha256.Sum256([]byte(cfg.AdminUsername))
	userOK := subtle.ConstantTimeCompare(userHash[:], wantUserHash[:]) == 1

	var passOK bool
	if strings.HasPrefix(cfg.AdminPassword, "$2") {
		passOK = bcrypt.CompareHashAndPassword([]byte(cfg.AdminPassword), []byte(pass)) == nil
	} else {
		passHash := sha256.Sum256([]byte(pass))
		wantPassHash := sha256.Sum256([]byte(cfg.AdminPassword))
		passOK = subtle.ConstantTimeCompare(passHash[:], wantPassHash[:]) == 1
	}

	return userOK && passOK
}
