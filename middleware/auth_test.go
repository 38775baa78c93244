package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dinklabs/dinkpass/wallet"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

const testWallet = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"

func protectedHandler(t *testing.T, gotAddress *string) http.Handler {
	return Authenticate(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		address, err := GetAddressFromContext(r.Context())
		require.NoError(t, err)
		*gotAddress = address
		w.WriteHeader(http.StatusOK)
	}))
}

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return signed
}

func TestAuthenticateValidToken(t *testing.T) {
	var gotAddress string
	handler := protectedHandler(t, &gotAddress)

	token := signToken(t, testSecret, jwt.MapClaims{
		"address": testWallet,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, wallet.Checksum(testWallet), gotAddress, "context address is checksummed")
}

func TestAuthenticateRejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, []byte("other-secret"), jwt.MapClaims{
			"address": testWallet,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})},
		{"expired token", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"address": testWallet,
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})},
		{"missing address claim", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})},
		{"invalid address claim", "Bearer " + signToken(t, testSecret, jwt.MapClaims{
			"address": "not-a-wallet",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAddress string
			handler := protectedHandler(t, &gotAddress)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, gotAddress)
		})
	}
}

func TestGetAddressFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetAddressFromContext(req.Context())
	assert.Error(t, err)
}
