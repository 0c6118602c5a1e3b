package auth

import (
	"crypto/ed25519"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func TestJwtSignAndVerify(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err, "failed to generate key pair")

	method := jwt.GetSigningMethod("EdDSA")
	issuer := NewJwtIssuer("test-issuer", method, time.Minute, priv)
	validator := NewJwtValidator(method, pub)

	now := time.Now().UTC()

	t.Log("signed token is verified and carries source")
	{
		token, err := issuer.Sign("c1b9d5a2-3e5b-4a49-a3a2-8b39c1d0a111", "crm", now)
		require.NoError(t, err, "failed to sign jwt")
		require.Equal(t, now.Add(time.Minute).Unix(), token.ExpiresAt, "wrong expiration")

		claims, err := validator.Verify(token.Signed)
		require.NoError(t, err, "valid token was rejected")
		require.Equal(t, "crm", claims.Source(), "subject must hold source")
		require.Equal(t, "c1b9d5a2-3e5b-4a49-a3a2-8b39c1d0a111", claims.AgentID)
	}

	t.Log("expired token is rejected")
	{
		token, err := issuer.Sign("c1b9d5a2-3e5b-4a49-a3a2-8b39c1d0a111", "crm", now.Add(-time.Hour))
		require.NoError(t, err, "failed to sign jwt")

		_, err = validator.Verify(token.Signed)
		require.Error(t, err, "expired token must be rejected")
	}

	t.Log("token signed by another key is rejected")
	{
		_, otherPriv, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)

		token, err := NewJwtIssuer("test-issuer", method, time.Minute, otherPriv).Sign("id", "crm", now)
		require.NoError(t, err)

		_, err = validator.Verify(token.Signed)
		require.Error(t, err, "foreign signature must be rejected")
	}
}

func TestSecretHash(t *testing.T) {
	hash, err := HashSecret("s3cret")
	require.NoError(t, err, "failed to hash secret")

	require.NoError(t, VerifySecret(hash, "s3cret"), "matching secret must pass")
	require.Error(t, VerifySecret(hash, "other"), "wrong secret must fail")
}
