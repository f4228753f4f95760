package userstore

import (
	"context"
	"time"

	"github.com/dalemusser/mongoidentity/models"
)

// Each storage capability the authentication framework consumes is its own
// interface, so callers can depend on exactly the capability they need. One
// concrete type, *Store, implements all of them against the same collection
// handle.

// UserStore is the core create/find/update/delete contract.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByName(ctx context.Context, normalizedName string) (*models.User, error)

	UserName(ctx context.Context, u *models.User) (string, error)
	SetUserName(ctx context.Context, u *models.User, userName string) error
	NormalizedUserName(ctx context.Context, u *models.User) (string, error)
	SetNormalizedUserName(ctx context.Context, u *models.User, normalized string) error
}

type UserPasswordStore interface {
	PasswordHash(ctx context.Context, u *models.User) (string, error)
	SetPasswordHash(ctx context.Context, u *models.User, hash string) error
	HasPassword(ctx context.Context, u *models.User) (bool, error)
}

type UserSecurityStampStore interface {
	SecurityStamp(ctx context.Context, u *models.User) (string, error)
	SetSecurityStamp(ctx context.Context, u *models.User, stamp string) error
}

type UserEmailStore interface {
	Email(ctx context.Context, u *models.User) (string, error)
	SetEmail(ctx context.Context, u *models.User, email string) error
	NormalizedEmail(ctx context.Context, u *models.User) (string, error)
	SetNormalizedEmail(ctx context.Context, u *models.User, normalized string) error
	EmailConfirmed(ctx context.Context, u *models.User) (bool, error)
	SetEmailConfirmed(ctx context.Context, u *models.User, confirmed bool) error
	FindByEmail(ctx context.Context, normalizedEmail string) (*models.User, error)
}

type UserPhoneNumberStore interface {
	PhoneNumber(ctx context.Context, u *models.User) (string, error)
	SetPhoneNumber(ctx context.Context, u *models.User, phone string) error
	PhoneNumberConfirmed(ctx context.Context, u *models.User) (bool, error)
	SetPhoneNumberConfirmed(ctx context.Context, u *models.User, confirmed bool) error
}

type UserTwoFactorStore interface {
	TwoFactorEnabled(ctx context.Context, u *models.User) (bool, error)
	SetTwoFactorEnabled(ctx context.Context, u *models.User, enabled bool) error
}

type UserLockoutStore interface {
	LockoutEnd(ctx context.Context, u *models.User) (*time.Time, error)
	SetLockoutEnd(ctx context.Context, u *models.User, end *time.Time) error
	LockoutEnabled(ctx context.Context, u *models.User) (bool, error)
	SetLockoutEnabled(ctx context.Context, u *models.User, enabled bool) error
	AccessFailedCount(ctx context.Context, u *models.User) (int, error)
	IncrementAccessFailedCount(ctx context.Context, u *models.User) (int, error)
	ResetAccessFailedCount(ctx context.Context, u *models.User) error
}

type UserClaimStore interface {
	Claims(ctx context.Context, u *models.User) ([]models.UserClaim, error)
	AddClaims(ctx context.Context, u *models.User, claims ...models.UserClaim) error
	ReplaceClaim(ctx context.Context, u *models.User, oldClaim, newClaim models.UserClaim) error
	RemoveClaims(ctx context.Context, u *models.User, claims ...models.UserClaim) error
	UsersForClaim(ctx context.Context, claim models.UserClaim) ([]*models.User, error)
}

type UserRoleStore interface {
	AddToRole(ctx context.Context, u *models.User, roleName string) error
	RemoveFromRole(ctx context.Context, u *models.User, roleName string) error
	Roles(ctx context.Context, u *models.User) ([]string, error)
	IsInRole(ctx context.Context, u *models.User, roleName string) (bool, error)
	UsersInRole(ctx context.Context, roleName string) ([]*models.User, error)
}

type UserLoginStore interface {
	AddLogin(ctx context.Context, u *models.User, login models.UserLogin) error
	RemoveLogin(ctx context.Context, u *models.User, provider, key string) error
	Logins(ctx context.Context, u *models.User) ([]models.UserLogin, error)
	FindByLogin(ctx context.Context, provider, key string) (*models.User, error)
}

type UserTokenStore interface {
	SetToken(ctx context.Context, u *models.User, provider, name, value string) error
	RemoveToken(ctx context.Context, u *models.User, provider, name string) error
	Token(ctx context.Context, u *models.User, provider, name string) (string, bool, error)
}

var (
	_ UserStore              = (*Store)(nil)
	_ UserPasswordStore      = (*Store)(nil)
	_ UserSecurityStampStore = (*Store)(nil)
	_ UserEmailStore         = (*Store)(nil)
	_ UserPhoneNumberStore   = (*Store)(nil)
	_ UserTwoFactorStore     = (*Store)(nil)
	_ UserLockoutStore       = (*Store)(nil)
	_ UserClaimStore         = (*Store)(nil)
	_ UserRoleStore          = (*Store)(nil)
	_ UserLoginStore         = (*Store)(nil)
	_ UserTokenStore         = (*Store)(nil)
)
