// Package account implements the mock sign-in and sign-up flow. Any
// complete form is accepted; nothing is verified or stored.
package account

import (
	"strings"

	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
)

// AuthMode selects between signing in and creating an account.
type AuthMode string

const (
	ModeLogin  AuthMode = "login"
	ModeSignup AuthMode = "signup"
)

// Toggle returns the other mode.
func (m AuthMode) Toggle() AuthMode {
	if m == ModeSignup {
		return ModeLogin
	}
	return ModeSignup
}

// Title is the heading shown above the auth form.
func (m AuthMode) Title() string {
	if m == ModeSignup {
		return "Create Account"
	}
	return "Sign In"
}

// ParseAuthMode accepts "login" or "signup" (case-insensitive).
func ParseAuthMode(s string) (AuthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ModeLogin):
		return ModeLogin, nil
	case string(ModeSignup):
		return ModeSignup, nil
	}
	return "", errors.NewValidationError("mode", "must be login or signup").
		WithValue(s).
		WithCause(errors.ErrInvalidMode)
}

// Credentials is the auth form. Name is only used when signing up.
type Credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate reports every blank field the mode requires.
func (c Credentials) Validate(mode AuthMode) error {
	var errs []error
	if mode == ModeSignup && blank(c.Name) {
		errs = append(errs, errors.NewValidationError("name", "is required"))
	}
	if blank(c.Email) {
		errs = append(errs, errors.NewValidationError("email", "is required"))
	}
	if blank(c.Password) {
		errs = append(errs, errors.NewValidationError("password", "is required"))
	}
	return errors.Join(errs...)
}

// Session is the mocked signed-in state.
type Session struct {
	LoggedIn    bool   `json:"loggedIn"`
	DisplayName string `json:"displayName"`
}

// SignIn validates creds and returns an active session. The display name is
// the local part of the email when logging in and the typed name when
// signing up.
func SignIn(mode AuthMode, creds Credentials) (Session, error) {
	if err := creds.Validate(mode); err != nil {
		return Session{}, err
	}
	return Session{LoggedIn: true, DisplayName: DisplayName(mode, creds)}, nil
}

// DisplayName derives the greeting name for a successful sign-in.
func DisplayName(mode AuthMode, creds Credentials) string {
	if mode == ModeSignup {
		return creds.Name
	}
	local, _, _ := strings.Cut(creds.Email, "@")
	return local
}

// SignOut clears the session.
func (s *Session) SignOut() {
	s.LoggedIn = false
	s.DisplayName = ""
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
