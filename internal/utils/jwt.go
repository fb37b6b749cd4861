package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/photogear/camera-catalog/models"
)

// GenerateAccessToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss):  identifies the service that issued the token
//   - Subject   (sub):  the username the token is issued for
//   - IssuedAt  (iat):  the current time
//   - ExpiresAt (exp):  the current time plus tokenDuration
//   - Role      (role): the account's authorization role
//
// The signature covers the full claim set, so neither the role nor the
// expiry can be altered without invalidating the token.
//
// Issuer, username, role, and signKey are required and tokenDuration must be
// non-zero. A negative tokenDuration is accepted and yields an
// already-expired token; this is only useful for exercising expiry handling.
//
// Returns:
//
//	models.Token - contains the signed token string and the jwt.Token object
//	error        - non-nil if parameters are invalid or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateAccessToken("camera-catalog", "alice", models.RoleUser, 168*time.Hour, "secret")
func GenerateAccessToken(issuer, username string, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || username == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}
	if !role.Valid() {
		return models.Token{}, fmt.Errorf("invalid role %q for generating JWT Token", role)
	}

	now := time.Now()
	claims := &models.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Username: username, Role: role}, nil
}

// ValidateAndParseAccessToken validates the given JWT token string and extracts its claims.
//
// Validation order:
//   - Signature verification using the provided sign key — performed by the
//     parser before any claim content is trusted
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//   - Role (role) claim presence and membership in the closed role set
//
// Returns the parsed token with Username and Role populated, or an error if
// validation fails, claims are missing, or the role is unknown.
func ValidateAndParseAccessToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	username, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if username == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	role, err := models.ParseRole(claims.Role)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during parsing role from token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Username: username, Role: role}, nil
}
