package auth

import "sync"

// Session is the client-held login state. The cleartext credential lives only
// in memory so that saves can be re-verified; it is never persisted.
type Session struct {
	mu            sync.RWMutex
	authenticated bool
	credential    string
}

// NewVerifiedSession builds a session for a request that already carried a
// checked password.
func NewVerifiedSession(password string) *Session {
	return &Session{authenticated: true, credential: password}
}

// Login authenticates against a and keeps the credential on success.
func (s *Session) Login(a *Authenticator, username, password string) bool {
	ok := a.Login(username, password)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = ok
	if ok {
		s.credential = password
	} else {
		s.credential = ""
	}
	return ok
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.credential = ""
}

func (s *Session) IsAuthenticated() bool {
	if s == nil {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Credential returns the held password and whether the session may save.
func (s *Session) Credential() (string, bool) {
	if s == nil {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential, s.authenticated && s.credential != ""
}
