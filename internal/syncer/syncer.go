package syncer

import (
	"context"
	"sync/atomic"

	"github.com/angelmondragon/shopfront-client/internal/notify"
	"github.com/angelmondragon/shopfront-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
	"github.com/angelmondragon/shopfront-client/pkg/logger"
)

// Syncer pairs the view cache with mutation bookkeeping: a confirmed
// mutation invalidates every cached view of its resource kind, a failed
// one leaves the cache untouched. The read path then refetches stale
// views on demand.
type Syncer struct {
	cache    *ViewCache
	notifier *notify.Notifier
	logger   *logger.Logger
	inFlight atomic.Int64
}

func New(cache *ViewCache, notifier *notify.Notifier, logg *logger.Logger) (*Syncer, error) {
	if cache == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "view cache is required")
	}
	if notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "notifier is required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger is required")
	}
	return &Syncer{cache: cache, notifier: notifier, logger: logg}, nil
}

func (s *Syncer) Cache() *ViewCache {
	return s.cache
}

// InFlight reports whether any mutation is currently running, so a UI
// can disable controls. Mutations are not deduplicated here; rapid
// repeats each run and each settle independently.
func (s *Syncer) InFlight() bool {
	return s.inFlight.Load() > 0
}

// Mutate runs op and settles its side effects: on success the kind's
// cached views are invalidated and a success notice is published; on
// failure the cache is left exactly as it was and an error notice is
// published. Mutations are never retried automatically.
func (s *Syncer) Mutate(ctx context.Context, kind enums.ResourceKind, successMsg string, op func(ctx context.Context) error) error {
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	ctx = s.logger.WithResource(ctx, string(kind))
	if err := op(ctx); err != nil {
		s.logger.Warn(s.logger.WithField(ctx, "error", err.Error()), "mutation failed")
		s.notifier.Error(noticeMessage(err))
		return err
	}

	s.cache.Invalidate(kind)
	s.logger.Info(ctx, "mutation confirmed, views invalidated")
	if successMsg != "" {
		s.notifier.Success(successMsg)
	}
	return nil
}

// InvalidateAll discards every cached view. Wired to session changes so
// one principal's data never survives into another's session.
func (s *Syncer) InvalidateAll() {
	s.cache.InvalidateAll()
}

func noticeMessage(err error) string {
	code := pkgerrors.CodeOf(err)
	meta := pkgerrors.MetadataFor(code)
	if typed := pkgerrors.As(err); typed != nil && meta.DetailsAllowed && typed.Message() != "" {
		return typed.Message()
	}
	return meta.PublicMessage
}

// Query serves a view from cache when the cached copy is current, and
// otherwise fetches and fills. The generation is sampled before the fetch
// starts; if an invalidation lands while the fetch is in flight the
// response is returned to the caller but not cached, so the next read
// goes back to the backend.
func Query[T any](ctx context.Context, s *Syncer, kind enums.ResourceKind, params string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if cached, ok := s.cache.Lookup(kind, params); ok {
		if value, ok := cached.(T); ok {
			return value, nil
		}
	}

	generation := s.cache.Generation(kind)
	value, err := fetch(s.logger.WithResource(ctx, string(kind)))
	if err != nil {
		return zero, err
	}
	s.cache.Store(kind, params, generation, value)
	return value, nil
}
