package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a parsed session JWT together with the fields the application
// cares about. It embeds jwt.RegisteredClaims so it can be passed directly to
// jwt.ParseWithClaims.
type Token struct {
	jwt.RegisteredClaims

	// Token is the underlying parsed token object.
	Token *jwt.Token `json:"-"`

	// SignedString is the compact serialized form of the token.
	SignedString string `json:"-"`

	// Username is the subject the token was issued for.
	Username string `json:"-"`
}
