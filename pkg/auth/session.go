package auth

import (
	"context"

	"github.com/azacreation/adminsdk/pkg/config"
	"github.com/azacreation/adminsdk/pkg/errors"
)

// State is the session gate's state. There are exactly two: a token
// is present, or it is not. No expiry transition exists.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// Session is the client-side gate in front of protected views. It
// trusts the stored opaque token blindly; that weakness is the
// documented security model, not an oversight to fix here.
type Session struct {
	tokens TokenStore
	otp    *OTPClient
}

// NewSession wires the gate to its token store and OTP client.
func NewSession(tokens TokenStore, otp *OTPClient) *Session {
	return &Session{tokens: tokens, otp: otp}
}

// NewSessionFromConfig builds the gate from configuration: the OTP
// client on the auth host, and Redis-backed token persistence when
// REDIS_URL is set, in-memory otherwise.
func NewSessionFromConfig(cfg *config.Config) (*Session, error) {
	var tokens TokenStore = NewMemoryTokenStore()
	if cfg.RedisURL != "" {
		store, err := NewRedisTokenStoreFromURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		tokens = store
	}

	otp := NewOTPClient(&OTPClientConfig{
		BaseURL: cfg.AuthBaseURL,
		Timeout: cfg.RequestTimeout,
		Headers: cfg.BypassHeader(),
	})
	return NewSession(tokens, otp), nil
}

// State reports the current gate state from token presence alone.
func (s *Session) State() State {
	token, err := s.tokens.Get()
	if err != nil || token == "" {
		return StateUnauthenticated
	}
	return StateAuthenticated
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.State() == StateAuthenticated
}

// RequireAuth gates entry to a protected view: it fails with a
// missing-token error when no token is stored, and the caller
// redirects to the login entry point.
func (s *Session) RequireAuth() error {
	if !s.Authenticated() {
		return errors.ErrMissingToken
	}
	return nil
}

// Token returns the stored token for request use.
func (s *Session) Token() (string, error) {
	return s.tokens.Get()
}

// SendCode starts the challenge: mail a one-time code to the address.
func (s *Session) SendCode(ctx context.Context, email string) error {
	return s.otp.SendOTP(ctx, email)
}

// VerifyCode completes the challenge. On success the server token
// (or the fallback sentinel) is stored and the gate opens.
func (s *Session) VerifyCode(ctx context.Context, email, code string) error {
	token, err := s.otp.VerifyOTP(ctx, email, code)
	if err != nil {
		return err
	}
	return s.tokens.Set(token)
}

// Logout removes the token; the next protected route entry denies.
func (s *Session) Logout() error {
	return s.tokens.Clear()
}
