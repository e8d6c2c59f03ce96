package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	keyfunc "github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// JWKSAuthenticator validates RS256 tokens against the identity provider's
// published JWKS endpoint.
type JWKSAuthenticator struct {
	keyFn func(t *jwt.Token) (any, error)
}

func NewJWKSAuthenticatorWithKeyFn(keyFn func(t *jwt.Token) (any, error)) (*JWKSAuthenticator, error) {
	return &JWKSAuthenticator{keyFn: keyFn}, nil
}

func NewJWKSAuthenticator(jwkCertUrl string) (*JWKSAuthenticator, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	k, err := keyfunc.NewDefaultCtx(ctx, []string{jwkCertUrl})
	if err != nil {
		return nil, fmt.Errorf("failed to get identity provider public keys: %w", err)
	}

	return &JWKSAuthenticator{keyFn: k.Keyfunc}, nil
}

func (j *JWKSAuthenticator) Authenticate(token string) (User, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Name}), jwt.WithIssuedAt(), jwt.WithExpirationRequired())
	t, err := parser.Parse(token, j.keyFn)
	if err != nil {
		return User{}, fmt.Errorf("failed to authenticate token: %w", err)
	}

	return userFromToken(t)
}

func (j *JWKSAuthenticator) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !found || accessToken == "" {
			http.Error(w, "No token provided", http.StatusUnauthorized)
			return
		}

		user, err := j.Authenticate(accessToken)
		if err != nil {
			zap.S().Named("auth").Debugw("authentication failed", "error", err)
			http.Error(w, "authentication failed", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(NewUserContext(r.Context(), user)))
	})
}
