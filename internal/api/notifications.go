package api

import (
	"context"
	"net/http"

	"github.com/angelmondragon/shopfront-client/pkg/pagination"
)

// NotificationAPI wraps the notification collaborator endpoints.
type NotificationAPI struct {
	client *Client
}

func NewNotificationAPI(client *Client) *NotificationAPI {
	return &NotificationAPI{client: client}
}

func (a *NotificationAPI) List(ctx context.Context, params pagination.ListParams) (*pagination.Page[Notification], error) {
	var page pagination.Page[Notification]
	err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/notification",
		query:  params.QueryValues(),
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Retry re-attempts delivery of a failed notification. On success the
// backend flips its status from failed to sent; the refreshed list view
// picks that up after invalidation.
func (a *NotificationAPI) Retry(ctx context.Context, id string) (*Notification, error) {
	var notification Notification
	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/notification/" + id + "/retry",
	}, &notification)
	if err != nil {
		return nil, err
	}
	return &notification, nil
}
