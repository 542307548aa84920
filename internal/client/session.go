package client

import (
	"context"
	"sync"
	"unicode/utf8"
)

type Status int

const (
	// StatusUnknown holds until the first bootstrap completes.
	StatusUnknown Status = iota
	StatusLoading
	StatusAuthenticated
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	}
	return "invalid"
}

// Session tracks who is signed in. Bootstrap, Login, Register and
// Logout drive the transitions; every loading transition ends in
// exactly one of authenticated or anonymous.
//
// Each operation takes a sequence number when it starts. A completion
// only mutates state while its number is still the newest, so a slow
// response can never overwrite the outcome of a later operation.
type Session struct {
	client *Client
	store  TokenStore

	mu     sync.Mutex
	status Status
	user   *User
	seq    uint64
}

func NewSession(client *Client, store TokenStore) *Session {
	return &Session{
		client: client,
		store:  store,
		status: StatusUnknown,
	}
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// User returns the current identity, nil unless authenticated.
func (s *Session) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) IsAuthenticated() bool {
	return s.Status() == StatusAuthenticated
}

// begin starts a new operation and invalidates any still in flight.
func (s *Session) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.status = StatusLoading
	return s.seq
}

func (s *Session) applyAuthenticated(seq uint64, token string, user *User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}

	if token != "" {
		s.client.SetToken(token)
		_ = s.store.Save(token)
	}
	s.status = StatusAuthenticated
	s.user = user
	return true
}

func (s *Session) applyAnonymous(seq uint64, discardToken bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}

	if discardToken {
		s.client.SetToken("")
		_ = s.store.Clear()
	}
	s.status = StatusAnonymous
	s.user = nil
	return true
}

// Bootstrap rehydrates the session from the persisted token. Any
// failure, network errors included, discards the token and lands in
// anonymous.
func (s *Session) Bootstrap(ctx context.Context) error {
	token, err := s.store.Load()
	if err != nil || token == "" {
		seq := s.begin()
		s.applyAnonymous(seq, false)
		return err
	}

	seq := s.begin()

	// the token rides on this one request only; it is attached for
	// future requests inside the guarded apply, never before
	user, err := s.client.CurrentUserWithToken(ctx, token)
	if err != nil {
		s.applyAnonymous(seq, true)
		return err
	}

	s.applyAuthenticated(seq, token, user)
	return nil
}

func (s *Session) Login(ctx context.Context, email, password string) (*User, error) {
	seq := s.begin()

	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		// nothing was persisted, prior stored token stays untouched
		s.applyAnonymous(seq, false)
		return nil, err
	}

	user, err := s.client.CurrentUserWithToken(ctx, token)
	if err != nil {
		s.applyAnonymous(seq, false)
		return nil, err
	}

	s.applyAuthenticated(seq, token, user)
	return user, nil
}

// Register signs up and logs in. The confirmation and length checks run
// locally and short-circuit without a network call or state change.
func (s *Session) Register(ctx context.Context, name, email, password, confirm string) (*User, error) {
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	if utf8.RuneCountInString(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	seq := s.begin()

	token, err := s.client.Register(ctx, RegisterInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		s.applyAnonymous(seq, false)
		return nil, err
	}

	user, err := s.client.CurrentUserWithToken(ctx, token)
	if err != nil {
		s.applyAnonymous(seq, false)
		return nil, err
	}

	s.applyAuthenticated(seq, token, user)
	return user, nil
}

// Logout is synchronous and unconditional: it clears the persisted
// token, detaches it from future requests and invalidates in-flight
// operations. Calling it while already anonymous changes nothing.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.client.SetToken("")
	err := s.store.Clear()
	s.status = StatusAnonymous
	s.user = nil

	return err
}
