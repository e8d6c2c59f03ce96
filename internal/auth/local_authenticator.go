package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocalAuthenticator validates HS256 tokens signed with a shared key. The
// token subject is the user id.
type LocalAuthenticator struct {
	signingKey []byte
}

func NewLocalAuthenticator(signingKey []byte) (*LocalAuthenticator, error) {
	if len(signingKey) == 0 {
		return nil, errors.New("local authenticator requires a signing key")
	}
	return &LocalAuthenticator{signingKey: signingKey}, nil
}

func (l *LocalAuthenticator) Authenticate(token string) (User, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithIssuedAt(), jwt.WithExpirationRequired())
	t, err := parser.Parse(token, func(t *jwt.Token) (any, error) { return l.signingKey, nil })
	if err != nil {
		return User{}, fmt.Errorf("failed to authenticate token: %w", err)
	}

	return userFromToken(t)
}

func (l *LocalAuthenticator) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !found || accessToken == "" {
			http.Error(w, "No token provided", http.StatusUnauthorized)
			return
		}

		user, err := l.Authenticate(accessToken)
		if err != nil {
			zap.S().Named("auth").Debugw("authentication failed", "error", err)
			http.Error(w, "authentication failed", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(NewUserContext(r.Context(), user)))
	})
}

func userFromToken(t *jwt.Token) (User, error) {
	sub, err := t.Claims.GetSubject()
	if err != nil {
		return User{}, fmt.Errorf("failed to read token subject: %w", err)
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return User{}, fmt.Errorf("token subject is not a user id: %w", err)
	}

	return User{ID: id, Token: t}, nil
}
