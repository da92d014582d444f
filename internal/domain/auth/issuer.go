package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"corebank/internal/domain/auth/store"
	platformerrors "corebank/internal/platform/errors"
	"corebank/internal/platform/metrics"
)

// Login outcome labels for the attempt counter. Outcomes are the only
// label; usernames never reach logs or metrics.
const (
	loginOutcomeSuccess = "success"
	loginOutcomeFailure = "failure"
	loginOutcomeError   = "error"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords. The two cases must stay indistinguishable to callers.
var ErrInvalidCredentials = platformerrors.New(
	platformerrors.KindAuth,
	"auth login",
	"invalid credentials",
)

// LoginResult is what a successful login hands back to the transport.
type LoginResult struct {
	Token     string
	UserID    string
	Email     string
	ExpiresIn int
}

// Issuer authenticates username/password pairs against the credential
// store and emits signed tokens.
type Issuer struct {
	store   store.Store
	codec   *Codec
	logger  *slog.Logger
	metrics *metrics.Registry
}

// NewIssuer wires an issuer from its collaborators. The codec carries the
// injected shared secret; the issuer itself never sees it.
func NewIssuer(credStore store.Store, codec *Codec, logger *slog.Logger, reg *metrics.Registry) (*Issuer, error) {
	if credStore == nil {
		return nil, errors.New("issuer requires a credential store")
	}
	if codec == nil {
		return nil, errors.New("issuer requires a token codec")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Issuer{
		store:   credStore,
		codec:   codec,
		logger:  logger,
		metrics: reg,
	}, nil
}

// Login verifies the credentials and issues a token on success.
func (i *Issuer) Login(ctx context.Context, username, password string) (LoginResult, error) {
	if username == "" || password == "" {
		return LoginResult{}, platformerrors.New(
			platformerrors.KindValidation,
			"auth login",
			"username and password required",
		)
	}

	cred, found, err := i.store.Lookup(ctx, username)
	if err != nil {
		i.observe(loginOutcomeError)
		i.logger.Error("credential lookup failed", slog.Any("error", err))
		return LoginResult{}, platformerrors.Wrap(
			platformerrors.KindDependency,
			"auth login",
			"credential store unavailable",
			err,
		)
	}
	if !found || !hashEqual(cred.PasswordHash, HashPassword(password)) {
		i.observe(loginOutcomeFailure)
		i.logger.Warn("login failed", slog.String("outcome", loginOutcomeFailure))
		return LoginResult{}, ErrInvalidCredentials
	}

	token, identity, err := i.codec.Encode(cred.UserID, cred.Email)
	if err != nil {
		i.observe(loginOutcomeError)
		return LoginResult{}, platformerrors.Wrap(
			platformerrors.KindInternal,
			"auth login",
			"token issue failed",
			err,
		)
	}

	i.observe(loginOutcomeSuccess)
	i.logger.Info("login succeeded", slog.String("outcome", loginOutcomeSuccess))

	return LoginResult{
		Token:     token,
		UserID:    identity.UserID,
		Email:     identity.Email,
		ExpiresIn: int(identity.ExpiresAt.Sub(identity.IssuedAt) / time.Second),
	}, nil
}

func (i *Issuer) observe(outcome string) {
	if i.metrics != nil {
		i.metrics.ObserveLogin(outcome)
	}
}
