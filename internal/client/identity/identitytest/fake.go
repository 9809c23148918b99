// Package identitytest provides an in-memory identity.Backend for tests.
// It emits session events synchronously from the calling goroutine, so a
// test can assert on the stream right after the call returns.
package identitytest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"signet/internal/client/identity"
)

type account struct {
	uid      string
	password string
}

// Fake is an in-memory identity.Backend. The zero value is not usable;
// construct with New. All exported counter and Last* fields are guarded by
// the same mutex as the session state; read them only after the calls under
// test have returned.
type Fake struct {
	mu       sync.Mutex
	accounts map[string]*account // keyed by email
	session  *identity.Session
	stale    bool
	subs     map[int]chan *identity.Session
	nextSub  int

	CreateCalls int
	AuthCalls   int
	EndCalls    int
	UpdateCalls int

	// Injected errors returned ahead of normal behavior.
	CreateErr error
	AuthErr   error
	EndErr    error
	UpdateErr error

	LastEmail       string
	LastPassword    string
	LastNewPassword string
}

func New() *Fake {
	return &Fake{
		accounts: make(map[string]*account),
		subs:     make(map[int]chan *identity.Session),
	}
}

// Seed registers an account without emitting any event and returns its UID.
func (f *Fake) Seed(email, password string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	uid := uuid.NewString()
	f.accounts[email] = &account{uid: uid, password: password}
	return uid
}

// MarkStale makes subsequent UpdateCredential calls fail with
// ErrRequiresRecentLogin, mimicking the provider's recent-login policy.
func (f *Fake) MarkStale() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stale = true
}

func (f *Fake) CreateAccount(ctx context.Context, email, password string) (*identity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	f.LastEmail, f.LastPassword = email, password
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	if _, ok := f.accounts[email]; ok {
		return nil, identity.ErrAlreadyExists
	}
	acc := &account{uid: uuid.NewString(), password: password}
	f.accounts[email] = acc
	return f.signInLocked(email, acc), nil
}

func (f *Fake) Authenticate(ctx context.Context, email, password string) (*identity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AuthCalls++
	f.LastEmail, f.LastPassword = email, password
	if f.AuthErr != nil {
		return nil, f.AuthErr
	}
	acc, ok := f.accounts[email]
	if !ok {
		return nil, identity.ErrNotFound
	}
	if acc.password != password {
		return nil, identity.ErrWrongCredential
	}
	return f.signInLocked(email, acc), nil
}

func (f *Fake) EndSession(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.EndCalls++
	if f.EndErr != nil {
		return f.EndErr
	}
	if f.session == nil {
		return nil
	}
	f.session = nil
	f.emitLocked(nil)
	return nil
}

func (f *Fake) UpdateCredential(ctx context.Context, newPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	f.LastNewPassword = newPassword
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	if f.session == nil {
		return identity.ErrNoSession
	}
	if f.stale {
		return identity.ErrRequiresRecentLogin
	}
	if acc, ok := f.accounts[f.session.Email]; ok {
		acc.password = newPassword
	}
	return nil
}

func (f *Fake) Subscribe() (<-chan *identity.Session, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan *identity.Session, 16)
	id := f.nextSub
	f.nextSub++
	f.subs[id] = ch
	ch <- f.session
	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if sub, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Session returns the currently active session, if any.
func (f *Fake) Session() *identity.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

func (f *Fake) signInLocked(email string, acc *account) *identity.Session {
	sess := &identity.Session{UID: acc.uid, Email: email, Token: "fake-token-" + acc.uid}
	f.session = sess
	f.emitLocked(sess)
	return sess
}

func (f *Fake) emitLocked(s *identity.Session) {
	for _, ch := range f.subs {
		ch <- s
	}
}
