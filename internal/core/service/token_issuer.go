package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = time.Hour

// TokenIssuer mints signed HS256 bearer tokens. The payload embeds the user
// identifier under "user.id" together with iat/exp claims; expiry is issue
// time plus the configured TTL. Issue does not check that the user exists;
// the auth middleware re-resolves the record on every request.
type TokenIssuer struct {
	secret string
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue signs a token for the given user identifier.
func (i *TokenIssuer) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user": map[string]any{"id": userID},
		"iat":  now.Unix(),
		"exp":  now.Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.secret))
}

// TTL returns the configured token lifetime.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}
