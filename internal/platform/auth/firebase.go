package auth

import (
	"context"
	"errors"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// RoleClaim is the custom claim that carries the portal role.
const RoleClaim = "role"

// Identity is a verified caller.
type Identity struct {
	UID           string
	Email         string
	EmailVerified bool
	// Role is the value of the role custom claim, empty when absent.
	Role string
}

// Error types for authentication failures.
var (
	// ErrNoToken indicates missing Authorization header.
	ErrNoToken = errors.New("missing authorization header")

	// ErrInvalidToken indicates an invalid token format or signature.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired indicates the token has expired.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked indicates the token has been revoked.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrUserDisabled indicates the user account is disabled.
	ErrUserDisabled = errors.New("user disabled")

	// ErrCertificateFetch indicates a network error fetching public keys.
	// This should result in HTTP 503 (service unavailable).
	ErrCertificateFetch = errors.New("failed to fetch certificates")

	// ErrNotConfigured indicates no verifier backend is available.
	ErrNotConfigured = errors.New("token verification not configured")
)

// Verifier validates tokens and returns the caller's identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// FirebaseVerifier implements Verifier using Firebase Admin SDK.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier creates a new verifier with the given auth client.
func NewFirebaseVerifier(client *fbauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

// Verify validates a Firebase ID token and checks for revocation.
func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	token, err := v.client.VerifyIDTokenAndCheckRevoked(ctx, idToken)
	if err != nil {
		switch {
		case fbauth.IsCertificateFetchFailed(err):
			return nil, ErrCertificateFetch
		case fbauth.IsIDTokenExpired(err):
			return nil, ErrTokenExpired
		case fbauth.IsIDTokenRevoked(err):
			return nil, ErrTokenRevoked
		case fbauth.IsUserDisabled(err):
			return nil, ErrUserDisabled
		default:
			return nil, ErrInvalidToken
		}
	}
	return identityFromClaims(token.UID, token.Claims), nil
}

func identityFromClaims(uid string, claims map[string]any) *Identity {
	email, _ := claims["email"].(string)
	verified, _ := claims["email_verified"].(bool)
	role, _ := claims[RoleClaim].(string)
	return &Identity{
		UID:           uid,
		Email:         email,
		EmailVerified: verified,
		Role:          strings.ToLower(strings.TrimSpace(role)),
	}
}

// DisabledVerifier rejects every token. It stands in when Firebase Auth is off.
type DisabledVerifier struct{}

// Verify always fails with ErrNotConfigured.
func (DisabledVerifier) Verify(context.Context, string) (*Identity, error) {
	return nil, ErrNotConfigured
}

// ExtractBearerToken extracts the token from Authorization header.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrNoToken
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", ErrInvalidToken
	}
	return parts[1], nil
}

var (
	_ Verifier = (*FirebaseVerifier)(nil)
	_ Verifier = DisabledVerifier{}
)
