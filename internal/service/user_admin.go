package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"modgoviya.io/modgoviya/ent"
	"modgoviya.io/modgoviya/ent/user"
	apperrors "modgoviya.io/modgoviya/internal/pkg/errors"
	"modgoviya.io/modgoviya/internal/pkg/logger"
)

// ListUsersFilter narrows an administrative user listing.
type ListUsersFilter struct {
	Role     string
	IsActive *bool
	Limit    int
	Offset   int
}

// allRoles maps every assignable role, administrative ones included.
var allRoles = map[string]user.Role{
	"farmer":            user.RoleFarmer,
	"trader":            user.RoleTrader,
	"buyer":             user.RoleBuyer,
	"extension_officer": user.RoleExtensionOfficer,
	"admin":             user.RoleAdmin,
}

// ListUsers returns a page of accounts plus the unpaged total.
func (s *AuthService) ListUsers(ctx context.Context, filter ListUsersFilter) ([]*ent.User, int, error) {
	q := s.client.User.Query()

	if filter.Role != "" {
		r, ok := allRoles[filter.Role]
		if !ok {
			return nil, 0, apperrors.BadRequest(apperrors.CodeValidationFailed,
				fmt.Sprintf("unknown role %q", filter.Role))
		}
		q = q.Where(user.RoleEQ(r))
	}
	if filter.IsActive != nil {
		q = q.Where(user.IsActiveEQ(*filter.IsActive))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	users, err := q.
		Order(ent.Desc(user.FieldCreatedAt)).
		Limit(limit).
		Offset(filter.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}

// AdminUserPatch carries an administrative account update. Nil fields are
// left untouched.
type AdminUserPatch struct {
	IsActive *bool
	Role     *string
}

// AdminUpdateUser applies activation and role changes. This is the only
// path that can assign extension_officer or admin.
func (s *AuthService) AdminUpdateUser(ctx context.Context, userID string, patch AdminUserPatch) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	upd := u.Update()
	if patch.IsActive != nil {
		upd.SetIsActive(*patch.IsActive)
	}
	if patch.Role != nil {
		r, ok := allRoles[*patch.Role]
		if !ok {
			return nil, apperrors.BadRequest(apperrors.CodeValidationFailed,
				fmt.Sprintf("unknown role %q", *patch.Role))
		}
		upd.SetRole(r)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	logger.Info("User updated by admin",
		zap.String("user_id", updated.ID),
		zap.Bool("is_active", updated.IsActive),
		zap.String("role", string(updated.Role)),
	)
	return updated, nil
}
