package admin

import (
	"context"

	"github.com/angelmondragon/shopfront-client/internal/api"
	"github.com/angelmondragon/shopfront-client/internal/syncer"
	"github.com/angelmondragon/shopfront-client/pkg/enums"
	pkgerrors "github.com/angelmondragon/shopfront-client/pkg/errors"
	"github.com/angelmondragon/shopfront-client/pkg/pagination"
)

// UserAPI is the backend surface the user service depends on.
type UserAPI interface {
	List(ctx context.Context, params pagination.ListParams) (*pagination.Page[api.User], error)
	Create(ctx context.Context, input api.UserInput) (*api.User, error)
	Update(ctx context.Context, id string, input api.UserInput) (*api.User, error)
	UpdateRole(ctx context.Context, id string, role enums.UserRole) (*api.User, error)
	UpdateStatus(ctx context.Context, id string, status enums.UserStatus) (*api.User, error)
	Delete(ctx context.Context, id string) error
}

// UserService manages the account table: cached list reads, account
// CRUD, and role/status assignment.
type UserService interface {
	List(ctx context.Context, params pagination.ListParams) (*pagination.Page[api.User], error)
	Create(ctx context.Context, input api.UserInput) (*api.User, error)
	Update(ctx context.Context, id string, input api.UserInput) (*api.User, error)
	UpdateRole(ctx context.Context, id string, role enums.UserRole) (*api.User, error)
	UpdateStatus(ctx context.Context, id string, status enums.UserStatus) (*api.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	backend UserAPI
	sync    *syncer.Syncer
}

func NewUserService(backend UserAPI, sync *syncer.Syncer) (UserService, error) {
	if backend == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "user api is required")
	}
	if sync == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "syncer is required")
	}
	return &userService{backend: backend, sync: sync}, nil
}

func (s *userService) List(ctx context.Context, params pagination.ListParams) (*pagination.Page[api.User], error) {
	params = params.Normalize()
	return syncer.Query(ctx, s.sync, enums.ResourceUsers, params.Key(), func(ctx context.Context) (*pagination.Page[api.User], error) {
		return s.backend.List(ctx, params)
	})
}

func (s *userService) Create(ctx context.Context, input api.UserInput) (*api.User, error) {
	var created *api.User
	err := s.sync.Mutate(ctx, enums.ResourceUsers, "User created", func(ctx context.Context) error {
		user, err := s.backend.Create(ctx, input)
		if err != nil {
			return err
		}
		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *userService) Update(ctx context.Context, id string, input api.UserInput) (*api.User, error) {
	var updated *api.User
	err := s.sync.Mutate(ctx, enums.ResourceUsers, "User updated", func(ctx context.Context) error {
		user, err := s.backend.Update(ctx, id, input)
		if err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *userService) UpdateRole(ctx context.Context, id string, role enums.UserRole) (*api.User, error) {
	if !role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid user role").WithDetails(string(role))
	}
	var updated *api.User
	err := s.sync.Mutate(ctx, enums.ResourceUsers, "User role updated", func(ctx context.Context) error {
		user, err := s.backend.UpdateRole(ctx, id, role)
		if err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *userService) UpdateStatus(ctx context.Context, id string, status enums.UserStatus) (*api.User, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid user status").WithDetails(string(status))
	}
	var updated *api.User
	err := s.sync.Mutate(ctx, enums.ResourceUsers, "User status updated", func(ctx context.Context) error {
		user, err := s.backend.UpdateStatus(ctx, id, status)
		if err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.sync.Mutate(ctx, enums.ResourceUsers, "User deleted", func(ctx context.Context) error {
		return s.backend.Delete(ctx, id)
	})
}
