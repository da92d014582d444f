package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"corebank/internal/domain/auth/store"
	platformerrors "corebank/internal/platform/errors"
	"corebank/internal/platform/metrics"
)

type failingStore struct{}

func (failingStore) Lookup(context.Context, string) (store.Credential, bool, error) {
	return store.Credential{}, false, errors.New("connection refused")
}

func (failingStore) Close(context.Context) error { return nil }

func newTestIssuer(t *testing.T) (*Issuer, *Codec, *metrics.Registry) {
	t.Helper()

	codec, err := NewCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}
	reg := metrics.NewRegistry("auth")
	issuer, err := NewIssuer(store.SeededMemory(), codec, nil, reg)
	if err != nil {
		t.Fatalf("NewIssuer error: %v", err)
	}
	return issuer, codec, reg
}

func TestIssuerLoginSuccess(t *testing.T) {
	ctx := context.Background()
	issuer, codec, _ := newTestIssuer(t)

	result, err := issuer.Login(ctx, "user1", "password1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if result.UserID != "user1" || result.Email != "user1@example.com" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.ExpiresIn != 3600 {
		t.Fatalf("expires_in = %d, expected 3600", result.ExpiresIn)
	}

	identity, err := codec.Decode(result.Token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if identity.UserID != result.UserID {
		t.Fatalf("token user %q does not match login user %q", identity.UserID, result.UserID)
	}
}

func TestIssuerLoginRejectsIdentically(t *testing.T) {
	ctx := context.Background()
	issuer, _, _ := newTestIssuer(t)

	_, unknownErr := issuer.Login(ctx, "nouser", "x")
	_, wrongErr := issuer.Login(ctx, "user1", "wrongpass")

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Fatalf("unknown user error = %v, expected ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v, expected ErrInvalidCredentials", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("error shapes differ: %q vs %q", unknownErr, wrongErr)
	}
}

func TestIssuerLoginValidation(t *testing.T) {
	ctx := context.Background()
	issuer, _, _ := newTestIssuer(t)

	_, err := issuer.Login(ctx, "", "password1")
	if !platformerrors.IsKind(err, platformerrors.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = issuer.Login(ctx, "user1", "")
	if !platformerrors.IsKind(err, platformerrors.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestIssuerLoginStoreFailure(t *testing.T) {
	ctx := context.Background()
	codec, _ := NewCodec("test-secret", time.Hour)
	issuer, err := NewIssuer(failingStore{}, codec, nil, nil)
	if err != nil {
		t.Fatalf("NewIssuer error: %v", err)
	}

	_, err = issuer.Login(ctx, "user1", "password1")
	if !platformerrors.IsKind(err, platformerrors.KindDependency) {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestIssuerCountsOutcomes(t *testing.T) {
	ctx := context.Background()
	issuer, _, reg := newTestIssuer(t)

	if _, err := issuer.Login(ctx, "user1", "password1"); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if _, err := issuer.Login(ctx, "user1", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	families, err := reg.Gatherer().Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}

	counts := map[string]float64{}
	for _, fam := range families {
		if fam.GetName() != "auth_login_attempts_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "status" {
					counts[label.GetValue()] = m.GetCounter().GetValue()
				}
			}
		}
	}

	if counts["success"] != 1 {
		t.Fatalf("success count = %v, expected 1", counts["success"])
	}
	if counts["failure"] != 1 {
		t.Fatalf("failure count = %v, expected 1", counts["failure"])
	}
}
