package auth

import (
	"strings"
)

// HeaderAuthorization is the designated token header.
const HeaderAuthorization = "Authorization"

const bearerPrefix = "Bearer "

// Validator extracts and verifies bearer tokens from request headers. It
// is a pure gate over the codec: no I/O, no shared mutable state, safe to
// call from any number of concurrent handlers.
type Validator struct {
	codec *Codec
}

// NewValidator builds a validator over the given codec.
func NewValidator(codec *Codec) *Validator {
	return &Validator{codec: codec}
}

// Authorize verifies the Authorization header value and returns the
// embedded identity. An absent header and an invalid token carry distinct
// reasons internally; callers answer both with the same 401.
func (v *Validator) Authorize(header string) (Identity, error) {
	if header == "" {
		return Identity{}, &VerificationError{Reason: ReasonMissing}
	}

	token := header
	if strings.HasPrefix(token, bearerPrefix) {
		token = token[len(bearerPrefix):]
	}
	return v.codec.Decode(token)
}
