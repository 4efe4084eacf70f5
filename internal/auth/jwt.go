// Package auth is the identity layer: token issuance for first-party
// credentials and verification of presented bearer tokens into claims.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded identity of a requester. It is produced per
// request and never persisted.
type Claims struct {
	UID   string
	Name  string
	Email string
}

// Verifier validates a presented token and yields the decoded claims.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// JWTVerifier verifies HS256 tokens signed with a shared secret and
// issues them for login/registration.
type JWTVerifier struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTVerifier(secret []byte, ttl time.Duration) *JWTVerifier {
	return &JWTVerifier{secret: secret, ttl: ttl, now: time.Now}
}

// Issue signs a token for the given identity.
func (v *JWTVerifier) Issue(uid, name, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   uid,
		"name":  name,
		"email": email,
		"exp":   v.now().Add(v.ttl).Unix(),
	})
	return token.SignedString(v.secret)
}

// Verify parses and validates a token string. Expired, malformed, or
// wrongly-signed tokens fail; the caller maps the failure to Forbidden.
func (v *JWTVerifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return v.now() }))
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type %T", token.Claims)
	}

	uid, _ := mc["uid"].(string)
	if uid == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	name, _ := mc["name"].(string)
	email, _ := mc["email"].(string)

	return &Claims{UID: uid, Name: name, Email: email}, nil
}
