package api

import (
	"context"
	"net/http"

	"github.com/angelmondragon/shopfront-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
	"github.com/angelmondragon/shopfront-client/pkg/pagination"
)

// UserAPI wraps the user collaborator endpoints.
type UserAPI struct {
	client *Client
}

func NewUserAPI(client *Client) *UserAPI {
	return &UserAPI{client: client}
}

func (a *UserAPI) List(ctx context.Context, params pagination.ListParams) (*pagination.Page[User], error) {
	var page pagination.Page[User]
	err := a.client.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/users",
		query:  params.QueryValues(),
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *UserAPI) Create(ctx context.Context, input UserInput) (*User, error) {
	var user User
	err := a.client.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/users",
		body:   input,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *UserAPI) Update(ctx context.Context, id string, input UserInput) (*User, error) {
	var user User
	err := a.client.do(ctx, request{
		method: http.MethodPut,
		path:   "/api/users/" + id,
		body:   input,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *UserAPI) UpdateRole(ctx context.Context, id string, role enums.UserRole) (*User, error) {
	if !role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid user role")
	}

	var user User
	err := a.client.do(ctx, request{
		method: http.MethodPatch,
		path:   "/api/users/" + id + "/role",
		body:   map[string]enums.UserRole{"role": role},
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *UserAPI) UpdateStatus(ctx context.Context, id string, status enums.UserStatus) (*User, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid user status")
	}

	var user User
	err := a.client.do(ctx, request{
		method: http.MethodPatch,
		path:   "/api/users/" + id + "/status",
		body:   map[string]enums.UserStatus{"status": status},
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *UserAPI) Delete(ctx context.Context, id string) error {
	return a.client.do(ctx, request{
		method: http.MethodDelete,
		path:   "/api/users/" + id,
	}, nil)
}
