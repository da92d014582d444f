package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the claim set embedded in a token. It is immutable once
// issued; validity is decided solely from the signature and expiry.
type Identity struct {
	UserID    string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Reason classifies why verification rejected a token. The transport
// answers a uniform 401 regardless; reasons exist for logs and metrics.
type Reason string

const (
	ReasonMissing   Reason = "token_missing"
	ReasonMalformed Reason = "token_malformed"
	ReasonSignature Reason = "signature_mismatch"
	ReasonExpired   Reason = "token_expired"
	ReasonInvalid   Reason = "token_invalid"
)

// VerificationError reports a rejected token with a stable reason code.
type VerificationError struct {
	Reason Reason
	Err    error
}

func (e *VerificationError) Error() string {
	if e.Err == nil {
		return string(e.Reason)
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// ReasonOf extracts the verification reason from an error chain.
func ReasonOf(err error) Reason {
	var verr *VerificationError
	if errors.As(err, &verr) {
		return verr.Reason
	}
	return ReasonInvalid
}

type tokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Codec signs and verifies the fleet's bearer tokens with a symmetric
// HS256 secret. Every service instance must be configured with the same
// secret value; that shared value is the system's sole coupling point.
// The codec performs no I/O and is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a codec from the shared secret and token lifetime.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token codec requires a secret")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

// TTL reports the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Encode issues a signed token for the given user. Expiry is a fixed
// offset from issue time; clock skew across the fleet is not compensated.
func (c *Codec) Encode(userID, email string) (string, Identity, error) {
	now := time.Now()
	identity := Identity{
		UserID:    userID,
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(c.ttl),
	}

	claims := tokenClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(identity.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(identity.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", Identity{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, identity, nil
}

// Decode verifies the token and extracts its identity. Verification is
// all-or-nothing: a malformed structure, a signature mismatch or an
// expired claim each fail with their own reason and no partial result.
func (c *Codec) Decode(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, &VerificationError{Reason: ReasonMissing}
	}

	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return c.secret, nil
		},
	)
	if err != nil {
		return Identity{}, &VerificationError{Reason: classify(err), Err: err}
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return Identity{}, &VerificationError{Reason: ReasonInvalid}
	}
	if claims.UserID == "" {
		return Identity{}, &VerificationError{Reason: ReasonInvalid, Err: errors.New("missing user_id claim")}
	}

	identity := Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}

func classify(err error) Reason {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ReasonExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ReasonSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ReasonMalformed
	default:
		return ReasonInvalid
	}
}
