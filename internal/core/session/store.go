// Package session holds the single source of truth for "who is logged in"
// and "who could log in". The store owns the active session and the roster
// of known identities; nothing else mutates either. Consumers that need to
// react to session changes register a subscriber instead of polling.
package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/artgallery/gallery-service/internal/core/domain"
)

// CredentialVerifier decides whether a password is acceptable for an
// identity. The default AcceptAny verifier approves everything, which is
// the intended demo behaviour; swap in a real verifier (e.g. BcryptVerifier)
// without touching the store or the guard.
type CredentialVerifier interface {
	Verify(identity domain.Identity, password string) bool
}

// VerifierFunc adapts a plain function to a CredentialVerifier.
type VerifierFunc func(identity domain.Identity, password string) bool

func (f VerifierFunc) Verify(identity domain.Identity, password string) bool {
	return f(identity, password)
}

// AcceptAny returns the demo verifier: any or no password succeeds as long
// as the username matched an active identity.
func AcceptAny() CredentialVerifier {
	return VerifierFunc(func(domain.Identity, string) bool { return true })
}

// Snapshot is the read-only view of the session handed to subscribers and
// to the policy guard.
type Snapshot struct {
	Identity      domain.Identity
	Authenticated bool
}

// IsArtist reports whether the snapshot holds an authenticated artist.
func (s Snapshot) IsArtist() bool {
	return s.Authenticated && s.Identity.Role == domain.RoleArtist
}

// IsEnthusiast reports whether the snapshot holds an authenticated enthusiast.
func (s Snapshot) IsEnthusiast() bool {
	return s.Authenticated && s.Identity.Role == domain.RoleEnthusiast
}

// RegisterInput carries the caller-supplied fields of a new identity.
// ID, creation timestamp, and the active flag are assigned by the store.
type RegisterInput struct {
	Username string
	Email    string
	FullName string
	Role     domain.Role
	Bio      string
}

// Options controls store construction. Zero values fall back to the demo
// defaults: the fixture roster, the accept-any verifier, the wall clock,
// and a no-op logger.
type Options struct {
	Roster   []domain.Identity
	Verifier CredentialVerifier
	Now      func() time.Time
	Logger   zerolog.Logger
}

// Store owns the session and the roster. All operations are synchronous
// and run to completion; the mutex keeps last-writer-wins semantics when
// the HTTP layer shares one store across requests.
type Store struct {
	mu      sync.Mutex
	roster  []domain.Identity
	current *domain.Identity
	verify  CredentialVerifier
	now     func() time.Time
	log     zerolog.Logger
	subs    map[int]func(Snapshot)
	nextSub int
}

// New builds a Store. The roster must not be empty; when none is given the
// fixture roster is used so identifier assignment is always well-defined.
func New(opts Options) *Store {
	roster := opts.Roster
	if len(roster) == 0 {
		roster = DefaultRoster()
	}
	verify := opts.Verifier
	if verify == nil {
		verify = AcceptAny()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		roster: append([]domain.Identity(nil), roster...),
		verify: verify,
		now:    now,
		log:    opts.Logger,
		subs:   make(map[int]func(Snapshot)),
	}
}

// Login matches username against active identities (case-sensitive) and
// delegates the password check to the configured verifier. On success the
// session is replaced wholesale; on failure it is left untouched.
func (s *Store) Login(username, password string) bool {
	s.mu.Lock()
	for i := range s.roster {
		id := s.roster[i]
		if id.Username != username || !id.IsActive {
			continue
		}
		if !s.verify.Verify(id, password) {
			break
		}
		s.current = &id
		snap := s.snapshotLocked()
		s.mu.Unlock()

		s.log.Info().
			Str("role", string(id.Role)).
			Str("username", id.Username).
			Int("id", id.ID).
			Msg("logged in")
		s.notify(snap)
		return true
	}
	s.mu.Unlock()
	return false
}

// Logout unconditionally clears the session. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.current = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info().Msg("logged out")
	s.notify(snap)
}

// Register appends a new identity and auto-logs it in. Returns false
// without mutating anything when the username is already taken. The new
// identifier is one above the current roster maximum.
func (s *Store) Register(in RegisterInput) bool {
	s.mu.Lock()
	for i := range s.roster {
		if s.roster[i].Username == in.Username {
			s.mu.Unlock()
			return false
		}
	}

	maxID := 0
	for i := range s.roster {
		if s.roster[i].ID > maxID {
			maxID = s.roster[i].ID
		}
	}

	id := domain.Identity{
		ID:        maxID + 1,
		Username:  in.Username,
		Email:     in.Email,
		FullName:  in.FullName,
		Role:      in.Role,
		Bio:       in.Bio,
		CreatedAt: s.now(),
		IsActive:  true,
	}
	s.roster = append(s.roster, id)
	s.current = &id
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.log.Info().
		Str("role", string(id.Role)).
		Str("username", id.Username).
		Int("id", id.ID).
		Msg("registered and logged in")
	s.notify(snap)
	return true
}

// UpdateIdentity replaces the roster entry whose id matches, keeping the
// session in sync when the current identity is the one replaced. An unknown
// id is a silent no-op.
func (s *Store) UpdateIdentity(updated domain.Identity) {
	s.mu.Lock()
	replaced := false
	for i := range s.roster {
		if s.roster[i].ID == updated.ID {
			s.roster[i] = updated
			replaced = true
			break
		}
	}
	if !replaced {
		s.mu.Unlock()
		return
	}
	if s.current != nil && s.current.ID == updated.ID {
		s.current = &updated
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Current returns the active identity, if any.
func (s *Store) Current() (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.Identity{}, false
	}
	return *s.current, true
}

// Snapshot returns the session view used by the guard and by subscribers.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Roster returns a copy of all known identities in insertion order.
func (s *Store) Roster() []domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Identity(nil), s.roster...)
}

// Subscribe registers fn to be called after every successful mutation.
// The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) snapshotLocked() Snapshot {
	if s.current == nil {
		return Snapshot{}
	}
	return Snapshot{Identity: *s.current, Authenticated: true}
}

func (s *Store) notify(snap Snapshot) {
	s.mu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
