package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields the client reads out of the credential token.
type Claims struct {
	Subject string
	Name    string
	Picture string
	Expiry  time.Time
}

// DecodeClaims parses the token without verifying its signature. The server
// is the authority on validity; the client only needs the embedded fields to
// detect expiry before spending a round trip.
func DecodeClaims(token string) (*Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	out := &Claims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.Expiry = exp.Time
	}
	if name, ok := claims["name"].(string); ok {
		out.Name = name
	}
	if pic, ok := claims["picture"].(string); ok {
		out.Picture = pic
	}
	return out, nil
}
