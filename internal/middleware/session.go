package middleware

import (
	"context"
	"net/http"

	"github.com/Lixing-Zhang/suswaad-cafe/internal/config"
	"github.com/google/uuid"
)

type sessionKey struct{}

// sessionMaxAge keeps a visitor's cart for a year, like browser local storage
const sessionMaxAge = 365 * 24 * 60 * 60

// Session ensures every request carries a visitor session ID. The ID comes
// from the session cookie; a missing or malformed cookie gets a fresh UUID.
func Session(cfg config.SessionConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(cfg.CookieName); err == nil {
				if parsed, err := uuid.Parse(c.Value); err == nil {
					id = parsed.String()
				}
			}

			if id == "" {
				id = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   sessionMaxAge,
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

// WithSessionID returns a context carrying the session ID
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionID returns the session ID stored by the Session middleware
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}
