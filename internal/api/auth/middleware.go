package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/GH-57/First-Project/internal/apperr"
	"github.com/GH-57/First-Project/internal/store"
)

type contextKey string

const accountContextKey contextKey = "account"

// AuthMiddleware validates the bearer token and resolves its subject against
// the store. A valid signature is not enough: the email must still map to a
// registered account.
func (h *AuthHandler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Missing authorization header")
			return
		}

		bearerToken := strings.SplitN(authHeader, " ", 2)
		if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "Bearer") {
			h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Invalid authorization header format")
			return
		}

		claims, err := h.service.ParseJWT(bearerToken[1])
		if err != nil {
			h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
			return
		}

		account, err := h.store.AccountByEmail(r.Context(), claims.Email)
		if err != nil {
			if errors.Is(err, apperr.ErrUnknownAccount) {
				h.sendErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Account no longer exists")
				return
			}
			h.sendErrorResponse(w, http.StatusInternalServerError, "server error", "Error resolving account")
			return
		}

		ctx := context.WithValue(r.Context(), accountContextKey, account)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccountFromContext extracts the authenticated account from the request
// context.
func AccountFromContext(r *http.Request) (*store.Account, error) {
	account, ok := r.Context().Value(accountContextKey).(*store.Account)
	if !ok {
		return nil, errors.New("no account found in context")
	}
	return account, nil
}
