package admin

import (
	"context"

	"github.com/angelmondragon/shopfront-client/internal/api"
	"github.com/angelmondragon/shopfront-client/internal/syncer"
	"github.com/angelmondragon/shopfront-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
	"github.com/angelmondragon/shopfront-client/pkg/pagination"
)

// NotificationAPI is the backend surface the notification service
// depends on.
type NotificationAPI interface {
	List(ctx context.Context, params pagination.ListParams) (*pagination.Page[api.Notification], error)
	Retry(ctx context.Context, id string) (*api.Notification, error)
}

// NotificationService is the delivery-log table. Retry re-sends a failed
// notification; on confirmation the cached views are invalidated, so the
// refetched row shows its new status.
type NotificationService interface {
	List(ctx context.Context, params pagination.ListParams) (*pagination.Page[api.Notification], error)
	Retry(ctx context.Context, id string) (*api.Notification, error)
}

type notificationService struct {
	backend NotificationAPI
	sync    *syncer.Syncer
}

func NewNotificationService(backend NotificationAPI, sync *syncer.Syncer) (NotificationService, error) {
	if backend == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "notification api is required")
	}
	if sync == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "syncer is required")
	}
	return &notificationService{backend: backend, sync: sync}, nil
}

func (s *notificationService) List(ctx context.Context, params pagination.ListParams) (*pagination.Page[api.Notification], error) {
	params = params.Normalize()
	return syncer.Query(ctx, s.sync, enums.ResourceNotifications, params.Key(), func(ctx context.Context) (*pagination.Page[api.Notification], error) {
		return s.backend.List(ctx, params)
	})
}

func (s *notificationService) Retry(ctx context.Context, id string) (*api.Notification, error) {
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "notification id is required")
	}
	var retried *api.Notification
	err := s.sync.Mutate(ctx, enums.ResourceNotifications, "Notification re-sent", func(ctx context.Context) error {
		notification, err := s.backend.Retry(ctx, id)
		if err != nil {
			return err
		}
		retried = notification
		return nil
	})
	if err != nil {
		return nil, err
	}
	return retried, nil
}
