package storefront

import (
	"github.com/DanielWebDeveloper25/e-commerce/internal/account"
	"github.com/DanielWebDeveloper25/e-commerce/internal/event"
)

// AuthMode returns the mode of the auth modal.
func (s *Storefront) AuthMode() account.AuthMode {
	return s.authMode
}

// AuthForm returns the current auth form contents.
func (s *Storefront) AuthForm() account.Credentials {
	return s.authForm
}

// OpenAuth opens the auth modal in mode and closes the menu.
func (s *Storefront) OpenAuth(mode account.AuthMode) {
	s.authMode = mode
	s.setOverlay(OverlayMenu, &s.menuOpen, false)
	s.setOverlay(OverlayAuth, &s.authOpen, true)
}

// ToggleAuthMode switches the modal between signing in and signing up. The
// form contents are kept.
func (s *Storefront) ToggleAuthMode() {
	s.authMode = s.authMode.Toggle()
	s.logger.Debug("auth mode toggled", "mode", string(s.authMode))
}

// SetAuthForm replaces the auth form contents.
func (s *Storefront) SetAuthForm(creds account.Credentials) {
	s.authForm = creds
}

// CloseAuth closes the auth modal and clears the form.
func (s *Storefront) CloseAuth() {
	s.authForm = account.Credentials{}
	s.setOverlay(OverlayAuth, &s.authOpen, false)
}

// SubmitAuth signs in with the form contents. On success the modal closes
// and the form is cleared; on failure nothing changes and the error lists
// the missing fields.
func (s *Storefront) SubmitAuth() (account.Session, error) {
	session, err := account.SignIn(s.authMode, s.authForm)
	if err != nil {
		s.logger.Debug("auth rejected", "mode", string(s.authMode), "error", err.Error())
		return s.session, err
	}

	s.session = session
	s.logger.Debug("signed in", "mode", string(s.authMode), "display_name", session.DisplayName)
	s.publish(event.NewSignedInEvent(s.id, string(s.authMode), session.DisplayName))
	s.CloseAuth()
	return session, nil
}

// SignOut ends the mock session and closes the menu.
func (s *Storefront) SignOut() {
	wasLoggedIn := s.session.LoggedIn
	s.session.SignOut()
	s.setOverlay(OverlayMenu, &s.menuOpen, false)
	if wasLoggedIn {
		s.logger.Debug("signed out")
		s.publish(event.NewSignedOutEvent(s.id))
	}
}
