package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the claim set carried by every issued access token.
//
// It extends the standard registered claim set (RFC 7519) with a single
// custom "role" claim so that authorization decisions can be made without
// a directory lookup on every request. The subject ("sub") claim holds the
// username of the account the token was issued for.
type AccessClaims struct {
	jwt.RegisteredClaims

	// Role is the authorization role embedded at issuance time.
	// It is covered by the token signature together with the registered
	// claims, so neither the role nor the expiry can be tampered with
	// independently.
	Role string `json:"role"`
}

// Token wraps a JWT access token with convenience accessors for
// authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// Username and Role are cached, parsed copies of the "sub" and "role"
// claims, populated during generation or after successful validation.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Username is the account identifier extracted from the "sub" claim.
	Username string `json:"-"`

	// Role is the authorization role extracted from the "role" claim.
	Role Role `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Identity is the authenticated caller derived from a validated access
// token. Its lifetime is a single request.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// TokenResponse is the login endpoint's response body, following the
// OAuth2 bearer-token shape.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
