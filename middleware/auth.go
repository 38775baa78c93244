// Package middleware carries the identity capability: the wallet layer in
// front of this service issues short-lived bearer tokens holding the
// connected account address, and the middleware extracts that address for
// handlers. Wallet connection state itself lives outside this service.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dinklabs/dinkpass/wallet"
	"github.com/golang-jwt/jwt/v4"
)

type contextKey string

const addressContextKey contextKey = "wallet_address"

const addressClaim = "address"

// Authenticate verifies the bearer token and stores the wallet address claim
// in the request context.
func Authenticate(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			rawToken, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || rawToken == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			address, _ := claims[addressClaim].(string)
			if !wallet.IsValid(address) {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), addressContextKey, wallet.Checksum(address))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAddressFromContext returns the authenticated wallet address placed by
// Authenticate.
func GetAddressFromContext(ctx context.Context) (string, error) {
	address, ok := ctx.Value(addressContextKey).(string)
	if !ok || address == "" {
		return "", errors.New("wallet address not found in context")
	}
	return address, nil
}
