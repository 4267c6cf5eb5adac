package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/osse101/Outfitter_Go/internal/domain"
	"github.com/osse101/Outfitter_Go/internal/logger"
)

type contextKey string

const accountIDKey contextKey = "account_id"

// Authenticator resolves a bearer token to an existing account id
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (int64, error)
}

// WithAccountID returns a context carrying the authenticated account id
func WithAccountID(ctx context.Context, accountID int64) context.Context {
	return context.WithValue(ctx, accountIDKey, accountID)
}

// AccountIDFromContext returns the account id stored by RequireBearer
func AccountIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(accountIDKey).(int64)
	return id, ok && id > 0
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header
func BearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get(HeaderAuthorization))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, SchemeBearer) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireBearer authenticates the request and stores the account id in its context.
// onReject, when set, is called for every 401 (e.g. to feed abuse detection).
func RequireBearer(authn Authenticator, onReject func(*http.Request)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			token, ok := BearerToken(r)
			if !ok {
				log.Warn(LogMsgBearerMissing, "path", r.URL.Path)
				reject(w, r, onReject)
				return
			}

			accountID, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidToken) || errors.Is(err, domain.ErrUnauthenticated) {
					log.Warn(LogMsgBearerRejected, "path", r.URL.Path, "error", err)
					reject(w, r, onReject)
					return
				}
				log.Error(LogMsgAuthLookupFailed, "error", err)
				writeError(w, http.StatusInternalServerError, ErrMsgAuthUnavailable)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccountID(r.Context(), accountID)))
		})
	}
}

func reject(w http.ResponseWriter, r *http.Request, onReject func(*http.Request)) {
	if onReject != nil {
		onReject(r)
	}
	w.Header().Set(HeaderWWWAuthenticate, SchemeBearer)
	writeError(w, http.StatusUnauthorized, ErrMsgInvalidCredentials)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
