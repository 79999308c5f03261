package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/stretchr/testify/require"
)

func TestOptionalEqual(t *testing.T) {
	t.Parallel()

	t.Run("none equals none", func(t *testing.T) {
		require.True(t, domain.None[string]().Equal(domain.None[string]()))
	})

	t.Run("empty string is not none", func(t *testing.T) {
		require.False(t, domain.Some("").Equal(domain.None[string]()))
		require.False(t, domain.None[string]().Equal(domain.Some("")))
	})

	t.Run("some compares values", func(t *testing.T) {
		require.True(t, domain.Some("https://cb").Equal(domain.Some("https://cb")))
		require.False(t, domain.Some("https://cb").Equal(domain.Some("https://other")))
	})
}

func TestAuthorizationCodeExpired(t *testing.T) {
	t.Parallel()

	issued := time.Unix(1_700_000_000, 0)
	code := domain.AuthorizationCode{IssueTime: issued}

	require.False(t, code.Expired(issued.Add(599*time.Second)))
	require.False(t, code.Expired(issued.Add(600*time.Second)))
	require.True(t, code.Expired(issued.Add(601*time.Second)))
}

func TestAccessTokenExpiry(t *testing.T) {
	t.Parallel()

	issued := time.Unix(1_700_000_000, 0)
	tok := domain.AccessToken{IssueTime: issued, ExpiresIn: 3600}

	require.Equal(t, issued.Add(time.Hour), tok.ExpiresAt())
	require.False(t, tok.Expired(issued.Add(time.Hour)))
	require.True(t, tok.Expired(issued.Add(time.Hour+time.Second)))
}

func TestClientType(t *testing.T) {
	t.Parallel()

	require.True(t, domain.ClientTypeWebApplication.Valid())
	require.False(t, domain.ClientType("service").Valid())

	public := domain.Client{}
	require.False(t, public.Confidential())
	confidential := domain.Client{SecretHash: domain.Some("$argon2id$...")}
	require.True(t, confidential.Confidential())
}
