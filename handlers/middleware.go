package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/graymont-pd/casefilebackend/models"
	"github.com/graymont-pd/casefilebackend/repository"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

// UserContextKey is the key used to store the caller in the request context.
const UserContextKey ContextKey = "user"

// bootstrapOfficerID is the seeded administrator. Writes from requests
// without a bearer token are attributed to it.
const bootstrapOfficerID uint = 1

// IdentityMiddleware resolves an optional Authorization bearer token into
// the authenticated user on the request context. The API is not auth-gated,
// so requests without a token (or with an invalid one) simply proceed
// anonymously.
func IdentityMiddleware(userRepo repository.UserRepository, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				next.ServeHTTP(w, r)
				return
			}

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}

			var userID uint
			if _, err := fmt.Sscan(claims.Subject, &userID); err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.GetByID(userID)
			if err != nil {
				// user may have been deleted after the token was issued
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerID returns the authenticated user's id, or the bootstrap officer id
// for anonymous requests.
func CallerID(r *http.Request) uint {
	if user, ok := r.Context().Value(UserContextKey).(*models.User); ok && user != nil {
		return user.ID
	}
	return bootstrapOfficerID
}
