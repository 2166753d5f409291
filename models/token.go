package models

import "github.com/golang-jwt/jwt/v5"

// Token purposes. Access tokens authenticate API requests; reset tokens are
// only accepted by the password-reset flow.
const (
	TokenPurposeAccess        = "access"
	TokenPurposePasswordReset = "password_reset"
)

// TokenClaims is the claim set carried by every issued JWT.
//
// UserID is serialized under the "subject" key and is the only trust-bearing
// application claim: the identity resolver always re-fetches the live account
// by this identifier. The display claims (username, names, email) are a
// convenience for the client and must never substitute for the database
// lookup — a renamed or disabled account is reflected on the next request,
// stale display claims in an already-issued token are not.
type TokenClaims struct {
	// UserID is the account identifier of the token subject.
	UserID int64 `json:"subject"`

	// Purpose scopes the token to a single flow. Empty is treated as an
	// access token for compatibility.
	Purpose string `json:"purpose,omitempty"`

	// Denormalized display attributes, not trust-bearing.
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`

	jwt.RegisteredClaims
}

// Token wraps a decoded or freshly signed JWT together with its compact
// serialized form.
//
// SignedString holds the compact representation (header.payload.signature)
// ready to be transmitted in HTTP headers or response bodies. Claims is the
// verified claim set; it must only be trusted after a successful decode.
type Token struct {
	// Claims is the verified claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
