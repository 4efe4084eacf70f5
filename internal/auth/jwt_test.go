package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	v := NewJWTVerifier([]byte("secret"), time.Hour)

	token, err := v.Issue("uid-1", "Ada", "ada@x.com")
	require.NoError(t, err)

	claims, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UID)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "ada@x.com", claims.Email)
}

func TestVerifyExpired(t *testing.T) {
	v := NewJWTVerifier([]byte("secret"), time.Hour)
	v.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := v.Issue("uid-1", "Ada", "ada@x.com")
	require.NoError(t, err)

	v.now = time.Now
	_, err = v.Verify(token)
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewJWTVerifier([]byte("secret-a"), time.Hour)
	verifier := NewJWTVerifier([]byte("secret-b"), time.Hour)

	token, err := issuer.Issue("uid-1", "Ada", "ada@x.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	v := NewJWTVerifier([]byte("secret"), time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := v.Verify(tok)
		assert.Error(t, err, "token %q", tok)
	}
}

func TestVerifyRejectsWrongAlgorithm(t *testing.T) {
	v := NewJWTVerifier([]byte("secret"), time.Hour)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"uid": "uid-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRequiresSubject(t *testing.T) {
	v := NewJWTVerifier([]byte("secret"), time.Hour)

	anon := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := anon.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = v.Verify(token)
	assert.Error(t, err)
}
