package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dorixona/pharmacy-api/pkg/token"
)

const secret = "unit-test-secret"

func TestGenerateParse_RoundTrip(t *testing.T) {
	signed, err := token.Generate(secret, "3", "mijoz@dorixona.uz", "customer", "dorixona", 60)
	require.NoError(t, err)

	claims, err := token.Parse(secret, signed)
	require.NoError(t, err)
	assert.Equal(t, "3", claims.UserID)
	assert.Equal(t, "mijoz@dorixona.uz", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "dorixona", claims.Issuer)
	assert.Equal(t, "3", claims.Subject)
}

func TestParse_WrongSecret(t *testing.T) {
	signed, err := token.Generate(secret, "1", "admin@dorixona.uz", "super_admin", "dorixona", 60)
	require.NoError(t, err)

	_, err = token.Parse("another-secret", signed)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	signed, err := token.Generate(secret, "1", "admin@dorixona.uz", "super_admin", "dorixona", -1)
	require.NoError(t, err)

	_, err = token.Parse(secret, signed)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, err := token.Parse(secret, "not.a.token")
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := token.Generate("", "1", "a@b", "customer", "dorixona", 60)
	assert.Error(t, err)

	_, err = token.Parse("", "whatever")
	assert.Error(t, err)
}
