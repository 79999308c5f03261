package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/grantstore/internal/auth/domain"
	"github.com/aussiebroadwan/grantstore/internal/auth/store"
	"github.com/aussiebroadwan/grantstore/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/grantstore/pkg/cryptox"
	"github.com/aussiebroadwan/grantstore/pkg/metricsx"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestRedeemEndToEnd(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	s := newTestStore(t, clock)
	addClient(t, s, "client1", domain.None[string]())

	// The code is stored before the token it refers to.
	require.NoError(t, s.AuthorizationCodes().StoreAuthorizationCode(ctx, "code123", "client1", domain.Some("https://cb"), "tok1"))
	require.NoError(t, s.AccessTokens().StoreAccessToken(ctx, "tok1", "client1", "user1", "User One", "read", 3600))

	metrics := metricsx.New("test")
	svc := &GrantService{Store: s, Now: clock.Now, Metrics: metrics}

	got, err := svc.RedeemAuthorizationCode(ctx, "code123", domain.Some("https://cb"))
	require.NoError(t, err)

	want := domain.AccessToken{
		Token:                    "tok1",
		ClientID:                 "client1",
		ResourceOwnerID:          "user1",
		ResourceOwnerDisplayName: "User One",
		IssueTime:                clock.Now(),
		ExpiresIn:                3600,
		Scope:                    "read",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("redeemed token mismatch (-want +got):\n%s", diff)
	}

	_, err = svc.RedeemAuthorizationCode(ctx, "code123", domain.Some("https://cb"))
	require.ErrorIs(t, err, ErrCodeNotRedeemable)
	require.ErrorIs(t, err, ErrInvalidGrant)

	expected := `
# HELP test_authorization_code_redemptions_total Authorization code redemption attempts by outcome.
# TYPE test_authorization_code_redemptions_total counter
test_authorization_code_redemptions_total{outcome="not_redeemable"} 1
test_authorization_code_redemptions_total{outcome="redeemed"} 1
`
	require.NoError(t, testutil.GatherAndCompare(metrics.Registry(), strings.NewReader(expected),
		"test_authorization_code_redemptions_total"))
}

func TestRedeemExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	s := newTestStore(t, clock)
	addClient(t, s, "client1", domain.None[string]())

	issue := func(code, token string) {
		require.NoError(t, s.AccessTokens().StoreAccessToken(ctx, token, "client1", "user1", "", "read", 3600))
		require.NoError(t, s.AuthorizationCodes().StoreAuthorizationCode(ctx, code, "client1", domain.None[string](), token))
	}
	issue("fresh", "tok-fresh")
	issue("stale", "tok-stale")
	issued := clock.Now()

	svc := &GrantService{Store: s}

	t.Run("599s after issue", func(t *testing.T) {
		svc.Now = func() time.Time { return issued.Add(599 * time.Second) }
		tok, err := svc.RedeemAuthorizationCode(ctx, "fresh", domain.None[string]())
		require.NoError(t, err)
		require.Equal(t, "tok-fresh", tok.Token)
	})

	t.Run("601s after issue", func(t *testing.T) {
		svc.Now = func() time.Time { return issued.Add(601 * time.Second) }
		_, err := svc.RedeemAuthorizationCode(ctx, "stale", domain.None[string]())
		require.ErrorIs(t, err, ErrCodeNotRedeemable)

		// The expired row is removed on detection.
		_, err = s.AuthorizationCodes().GetAuthorizationCode(ctx, "stale", domain.None[string]())
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestRedeemRedirectURINullMatching(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	s := newTestStore(t, clock)
	addClient(t, s, "client1", domain.None[string]())

	require.NoError(t, s.AccessTokens().StoreAccessToken(ctx, "tok1", "client1", "user1", "", "read", 3600))
	require.NoError(t, s.AuthorizationCodes().StoreAuthorizationCode(ctx, "code", "client1", domain.None[string](), "tok1"))

	svc := &GrantService{Store: s, Now: clock.Now}

	_, err := svc.RedeemAuthorizationCode(ctx, "code", domain.Some(""))
	require.ErrorIs(t, err, ErrCodeNotRedeemable)

	_, err = svc.RedeemAuthorizationCode(ctx, "code", domain.Some("https://cb"))
	require.ErrorIs(t, err, ErrCodeNotRedeemable)

	// A mismatched attempt must not have burnt the code.
	tok, err := svc.RedeemAuthorizationCode(ctx, "code", domain.None[string]())
	require.NoError(t, err)
	require.Equal(t, "tok1", tok.Token)
}

func TestRedeemMissingTokenIsFault(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	s := newTestStore(t, clock)
	addClient(t, s, "client1", domain.None[string]())

	require.NoError(t, s.AuthorizationCodes().StoreAuthorizationCode(ctx, "orphan", "client1", domain.None[string](), "nope"))

	svc := &GrantService{Store: s, Now: clock.Now}
	_, err := svc.RedeemAuthorizationCode(ctx, "orphan", domain.None[string]())
	require.ErrorIs(t, err, store.ErrReferentialIntegrity)
	require.True(t, store.IsFault(err))
	require.NotErrorIs(t, err, ErrCodeNotRedeemable)

	// Rolled back: the code is still there for an operator to inspect.
	_, err = s.AuthorizationCodes().GetAuthorizationCode(ctx, "orphan", domain.None[string]())
	require.NoError(t, err)
}

func TestRedeemConcurrentExactlyOnce(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	s := newFileStore(t, clock)
	addClient(t, s, "client1", domain.None[string]())

	require.NoError(t, s.AccessTokens().StoreAccessToken(ctx, "tok1", "client1", "user1", "", "read", 3600))
	require.NoError(t, s.AuthorizationCodes().StoreAuthorizationCode(ctx, "race", "client1", domain.Some("https://cb"), "tok1"))

	svc := &GrantService{Store: s, Now: clock.Now}

	const workers = 16
	var redeemed, rejected atomic.Int32

	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			_, err := svc.RedeemAuthorizationCode(ctx, "race", domain.Some("https://cb"))
			switch {
			case err == nil:
				redeemed.Add(1)
			case errors.Is(err, ErrCodeNotRedeemable):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.EqualValues(t, 1, redeemed.Load())
	require.EqualValues(t, workers-1, rejected.Load())
}

func TestRedeemFaultRollsBack(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	clock := newClock()
	rows := sqlmock.NewRows([]string{"client_id", "authorization_code", "redirect_uri", "issue_time", "access_token"}).
		AddRow("client1", "code", nil, clock.Now().Unix(), "tok1")

	mock.ExpectBegin()
	mock.ExpectQuery("DELETE FROM AuthorizationCode").WillReturnRows(rows)
	mock.ExpectQuery("FROM AccessToken").WillReturnError(errors.New("database disk image is malformed"))
	mock.ExpectRollback()

	svc := &GrantService{Store: sqlite.Open(db), Now: clock.Now}
	_, err = svc.RedeemAuthorizationCode(ctx, "code", domain.None[string]())
	require.True(t, store.IsFault(err))
	require.NotErrorIs(t, err, ErrCodeNotRedeemable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExchangeAuthorizationCode(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	s := newTestStore(t, clock)

	hash, err := cryptox.HashSecret("s3cret")
	require.NoError(t, err)
	addClient(t, s, "web", domain.Some(hash))
	addClient(t, s, "native", domain.None[string]())

	issue := func(code, clientID string) {
		token := "tok-" + code
		require.NoError(t, s.AccessTokens().StoreAccessToken(ctx, token, clientID, "user1", "", "read", 3600))
		require.NoError(t, s.AuthorizationCodes().StoreAuthorizationCode(ctx, code, clientID, domain.None[string](), token))
	}

	svc := &GrantService{Store: s, Now: clock.Now}

	t.Run("confidential client must authenticate", func(t *testing.T) {
		issue("c1", "web")

		_, err := svc.ExchangeAuthorizationCode(ctx, TokenRequest{ClientID: "web", Code: "c1"})
		require.ErrorIs(t, err, ErrInvalidClient)

		_, err = svc.ExchangeAuthorizationCode(ctx, TokenRequest{ClientID: "web", ClientSecret: "wrong", Code: "c1"})
		require.ErrorIs(t, err, ErrInvalidClient)

		tok, err := svc.ExchangeAuthorizationCode(ctx, TokenRequest{ClientID: "web", ClientSecret: "s3cret", Code: "c1"})
		require.NoError(t, err)
		require.Equal(t, "tok-c1", tok.Token)
	})

	t.Run("public client needs no secret", func(t *testing.T) {
		issue("c2", "native")
		tok, err := svc.ExchangeAuthorizationCode(ctx, TokenRequest{ClientID: "native", Code: "c2"})
		require.NoError(t, err)
		require.Equal(t, "native", tok.ClientID)
	})

	t.Run("code issued to another client", func(t *testing.T) {
		issue("c3", "web")
		_, err := svc.ExchangeAuthorizationCode(ctx, TokenRequest{ClientID: "native", Code: "c3"})
		require.ErrorIs(t, err, ErrInvalidGrant)
		require.NotErrorIs(t, err, ErrCodeNotRedeemable)
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := svc.ExchangeAuthorizationCode(ctx, TokenRequest{ClientID: "ghost", Code: "c1"})
		require.ErrorIs(t, err, ErrInvalidClient)
	})

	t.Run("missing code", func(t *testing.T) {
		_, err := svc.ExchangeAuthorizationCode(ctx, TokenRequest{ClientID: "native", Code: "  "})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestIntrospectToken(t *testing.T) {
	ctx := context.Background()
	clock := newClock()
	s := newTestStore(t, clock)

	hash, err := cryptox.HashSecret("s3cret")
	require.NoError(t, err)
	addClient(t, s, "rs", domain.Some(hash))
	addClient(t, s, "native", domain.None[string]())
	require.NoError(t, s.AccessTokens().StoreAccessToken(ctx, "tok1", "native", "user1", "User One", "read", 60))

	svc := &GrantService{Store: s, Now: clock.Now}

	t.Run("live token", func(t *testing.T) {
		tok, active, err := svc.IntrospectToken(ctx, "rs", "s3cret", "tok1")
		require.NoError(t, err)
		require.True(t, active)
		require.Equal(t, "native", tok.ClientID)
		require.Equal(t, "User One", tok.ResourceOwnerDisplayName)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, active, err := svc.IntrospectToken(ctx, "rs", "s3cret", "nope")
		require.NoError(t, err)
		require.False(t, active)
	})

	t.Run("bad credentials", func(t *testing.T) {
		_, _, err := svc.IntrospectToken(ctx, "rs", "wrong", "tok1")
		require.ErrorIs(t, err, ErrInvalidClient)

		_, _, err = svc.IntrospectToken(ctx, "rs", "", "tok1")
		require.ErrorIs(t, err, ErrInvalidClient)

		_, _, err = svc.IntrospectToken(ctx, "ghost", "s3cret", "tok1")
		require.ErrorIs(t, err, ErrInvalidClient)
	})

	t.Run("public client is refused", func(t *testing.T) {
		_, _, err := svc.IntrospectToken(ctx, "native", "", "tok1")
		require.ErrorIs(t, err, ErrInvalidClient)
	})

	t.Run("expiry boundary", func(t *testing.T) {
		clock.Advance(60 * time.Second)
		_, active, err := svc.IntrospectToken(ctx, "rs", "s3cret", "tok1")
		require.NoError(t, err)
		require.True(t, active, "token is live at exactly its expiry second")

		clock.Advance(time.Second)
		_, active, err = svc.IntrospectToken(ctx, "rs", "s3cret", "tok1")
		require.NoError(t, err)
		require.False(t, active)
	})
}
