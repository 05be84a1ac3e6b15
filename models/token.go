package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes the two token classes issued at login.
type TokenType string

const (
	// TokenTypeAccess is the short-lived token presented on every request.
	TokenTypeAccess TokenType = "access"

	// TokenTypeRefresh is the long-lived token accepted only by the
	// refresh exchange.
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the claim set carried by every issued JWT.
//
// On top of the standard registered claims (iss, sub, iat, exp) it carries
// the per-user revocation counter and the token class. A token is live only
// while its Version equals the user's current token_version — that counter
// comparison is the sole revocation mechanism, there is no blacklist.
type Claims struct {
	jwt.RegisteredClaims

	// Version is a copy of the user's token_version at issuance time.
	Version int `json:"ver"`

	// TokenType is either "access" or "refresh".
	TokenType TokenType `json:"type"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID and Version are cached, parsed copies of the "sub" and "ver" claims,
// populated during validation to avoid repeated string-to-int parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims provides access to the full claim set of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Version is the revocation counter extracted from the "ver" claim.
	Version int `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim,
// parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the pair of tokens handed to a client after a successful
// login or refresh exchange.
type TokenPair struct {
	// AccessToken is the short-lived bearer token.
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived token for the refresh exchange.
	RefreshToken string `json:"refresh_token"`

	// TokenTypeHint is the transport scheme of the pair, always "bearer".
	TokenTypeHint string `json:"token_type"`

	// ExpiresIn is the access-token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
}
