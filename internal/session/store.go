package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/angelmondragon/shopfront-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
	"github.com/angelmondragon/shopfront-client/pkg/logger"
)

// GuestScope keys durable state for the unauthenticated principal.
const GuestScope = "guest"

// Principal is the authenticated identity held by the client. The role is
// navigation UX only; the backend re-checks authorization on every
// privileged request.
type Principal struct {
	ID          string         `json:"id"`
	DisplayName string         `json:"displayName"`
	Email       string         `json:"email"`
	Role        enums.UserRole `json:"role"`
}

// PersistedSession is the durable slice of session state: the principal
// identity and the opaque bearer credential. Nothing else survives a
// restart.
type PersistedSession struct {
	Principal  Principal
	Credential string
}

// CredentialStore persists the credential across restarts.
type CredentialStore interface {
	SaveCredential(ctx context.Context, session PersistedSession) error
	LoadCredential(ctx context.Context) (*PersistedSession, error)
	ClearCredential(ctx context.Context) error
}

// Snapshot is what listeners observe after every session change.
type Snapshot struct {
	Authenticated bool
	Principal     Principal
	Scope         string
}

// Listener receives session snapshots; the cart store subscribes to swap
// its persistence scope when the principal changes.
type Listener func(Snapshot)

// Store owns the principal and credential. All mutations notify
// subscribers; the credential write-through keeps durable state aligned.
type Store struct {
	mu         sync.RWMutex
	principal  *Principal
	credential string

	creds     CredentialStore
	logger    *logger.Logger
	listeners []Listener
}

// NewStore wires the session store to its durable credential backend.
func NewStore(creds CredentialStore, logg *logger.Logger) (*Store, error) {
	if creds == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "credential store required")
	}
	return &Store{creds: creds, logger: logg}, nil
}

// Restore loads the persisted credential at boot. A credential that parses
// as an expired JWT is discarded instead of restored; an opaque credential
// is kept as-is, the backend will reject it if stale.
func (s *Store) Restore(ctx context.Context) error {
	persisted, err := s.creds.LoadCredential(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load persisted session")
	}
	if persisted == nil || strings.TrimSpace(persisted.Credential) == "" {
		return nil
	}

	if expired(persisted.Credential, time.Now()) {
		if s.logger != nil {
			s.logger.Info(ctx, "discarding expired persisted credential")
		}
		return s.creds.ClearCredential(ctx)
	}

	s.mu.Lock()
	principal := persisted.Principal
	s.principal = &principal
	s.credential = persisted.Credential
	s.mu.Unlock()

	s.notify()
	return nil
}

// Login sets the authenticated state and persists the credential.
func (s *Store) Login(ctx context.Context, principal Principal, credential string) error {
	if strings.TrimSpace(principal.ID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "principal id required")
	}
	if !principal.Role.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "principal role required")
	}
	if strings.TrimSpace(credential) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "credential required")
	}

	if err := s.creds.SaveCredential(ctx, PersistedSession{Principal: principal, Credential: credential}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist credential")
	}

	s.mu.Lock()
	p := principal
	s.principal = &p
	s.credential = credential
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info(s.logger.WithPrincipalID(ctx, principal.ID), "session established")
	}
	s.notify()
	return nil
}

// Logout clears the session and durable storage. Calling it while already
// unauthenticated is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	wasAuthenticated := s.principal != nil
	s.principal = nil
	s.credential = ""
	s.mu.Unlock()

	if !wasAuthenticated {
		return nil
	}

	if err := s.creds.ClearCredential(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear persisted credential")
	}
	s.notify()
	return nil
}

// ForceLogout is the global reaction to an authorization failure from any
// collaborator. It is idempotent: overlapping 401 responses collapse into
// one transition.
func (s *Store) ForceLogout(reason string) {
	s.mu.Lock()
	wasAuthenticated := s.principal != nil
	s.principal = nil
	s.credential = ""
	s.mu.Unlock()

	if !wasAuthenticated {
		return
	}

	ctx := context.Background()
	if s.logger != nil {
		s.logger.Warn(s.logger.WithField(ctx, "reason", reason), "session forced out")
	}
	if err := s.creds.ClearCredential(ctx); err != nil && s.logger != nil {
		s.logger.Error(ctx, "clearing persisted credential", err)
	}
	s.notify()
}

// IsAuthenticated reports whether a principal is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal != nil
}

// HasRole reports whether the current principal carries the given role.
func (s *Store) HasRole(role enums.UserRole) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal != nil && s.principal.Role == role
}

// Principal returns the current principal, if any.
func (s *Store) Principal() (Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return Principal{}, false
	}
	return *s.principal, true
}

// Credential implements the API client token source.
func (s *Store) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// Scope names the durable-state partition for the current principal.
// Carts persisted under one scope are never visible under another.
func (s *Store) Scope() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return GuestScope
	}
	return s.principal.ID
}

// Subscribe registers a listener; it immediately receives the current state.
func (s *Store) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, listener)
	s.mu.Unlock()
	listener(s.snapshot())
}

func (s *Store) snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{Scope: GuestScope}
	if s.principal != nil {
		snap.Authenticated = true
		snap.Principal = *s.principal
		snap.Scope = s.principal.ID
	}
	return snap
}

func (s *Store) notify() {
	snap := s.snapshot()
	s.mu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()
	for _, listener := range listeners {
		listener(snap)
	}
}

// expired reports whether the credential is a JWT whose exp is in the
// past. Opaque credentials never report expired here.
func expired(credential string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(credential, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
