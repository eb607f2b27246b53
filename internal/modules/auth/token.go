package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is how long an issued vendor token stays valid.
const TokenTTL = time.Hour

// Claims is the payload of a vendor token.
type Claims struct {
	VendorID string `json:"vendorId"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies HS256 vendor tokens with a shared secret.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTIssuer returns an issuer for the given secret. An empty secret is rejected.
func NewJWTIssuer(secret string) (*JWTIssuer, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	return &JWTIssuer{secret: []byte(secret), ttl: TokenTTL, now: time.Now}, nil
}

// Issue returns a signed token for vendorID that expires after TokenTTL.
func (i *JWTIssuer) Issue(vendorID uuid.UUID) (string, error) {
	now := i.now()
	claims := Claims{
		VendorID: vendorID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   vendorID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Parse validates token and returns its claims.
func (i *JWTIssuer) Parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.VendorID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
