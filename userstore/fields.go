package userstore

import (
	"context"
	"time"

	"github.com/dalemusser/mongoidentity/models"
)

// Simple field accessors and mutators. These read or write one field of the
// caller's in-memory record and never touch the database; Update persists
// the record afterwards. Every operation guards disposal and cancellation
// first and rejects a nil record.

func (s *Store) fieldGuard(ctx context.Context, u *models.User) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	if u == nil {
		return ErrNilUser
	}
	return nil
}

/* --- username --- */

func (s *Store) UserName(ctx context.Context, u *models.User) (string, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return "", err
	}
	return u.UserName, nil
}

func (s *Store) SetUserName(ctx context.Context, u *models.User, userName string) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	u.UserName = userName
	return nil
}

func (s *Store) NormalizedUserName(ctx context.Context, u *models.User) (string, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return "", err
	}
	return u.NormalizedUserName, nil
}

func (s *Store) SetNormalizedUserName(ctx context.Context, u *models.User, normalized string) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	u.NormalizedUserName = normalized
	return nil
}

/* --- password hash --- */

// PasswordHash returns the stored hash. It is opaque to the store; hashing
// and verification belong to the calling framework.
func (s *Store) PasswordHash(ctx context.Context, u *models.User) (string, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return "", err
	}
	return u.PasswordHash, nil
}

func (s *Store) SetPasswordHash(ctx context.Context, u *models.User, hash string) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (s *Store) HasPassword(ctx context.Context, u *models.User) (bool, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return false, err
	}
	return u.PasswordHash != "", nil
}

/* --- security stamp --- */

func (s *Store) SecurityStamp(ctx context.Context, u *models.User) (string, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return "", err
	}
	return u.SecurityStamp, nil
}

func (s *Store) SetSecurityStamp(ctx context.Context, u *models.User, stamp string) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	u.SecurityStamp = stamp
	return nil
}

/* --- email --- */

func (s *Store) Email(ctx context.Context, u *models.User) (string, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return "", err
	}
	return u.Email, nil
}

func (s *Store) SetEmail(ctx context.Context, u *models.User, email string) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	u.Email = email
	return nil
}

func (s *Store) NormalizedEmail(ctx context.Context, u *models.User) (string, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return "", err
	}
	return u.NormalizedEmail, nil
}

func (s *Store) SetNormalizedEmail(ctx context.Context, u *models.User, normalized string) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	u.NormalizedEmail = normalized
	return nil
}

func (s *Store) EmailConfirmed(ctx context.Context, u *models.User) (bool, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return false, err
	}
	return u.EmailConfirmed, nil
}

func (s *Store) SetEmailConfirmed(ctx context.Context, u *models.User, confirmed bool) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	u.EmailConfirmed = confirmed
	return nil
}

/* --- phone --- */

func (s *Store) PhoneNumber(ctx context.Context, u *models.User) (string, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return "", err
	}
	return u.PhoneNumber, nil
}

func (s *Store) SetPhoneNumber(ctx context.Context, u *models.User, phone string) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	u.PhoneNumber = phone
	return nil
}

func (s *Store) PhoneNumberConfirmed(ctx context.Context, u *models.User) (bool, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return false, err
	}
	return u.PhoneNumberConfirmed, nil
}

func (s *Store) SetPhoneNumberConfirmed(ctx context.Context, u *models.User, confirmed bool) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	u.PhoneNumberConfirmed = confirmed
	return nil
}

/* --- two-factor --- */

func (s *Store) TwoFactorEnabled(ctx context.Context, u *models.User) (bool, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return false, err
	}
	return u.TwoFactorEnabled, nil
}

func (s *Store) SetTwoFactorEnabled(ctx context.Context, u *models.User, enabled bool) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	u.TwoFactorEnabled = enabled
	return nil
}

/* --- lockout --- */

func (s *Store) LockoutEnd(ctx context.Context, u *models.User) (*time.Time, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return nil, err
	}
	return u.LockoutEnd, nil
}

func (s *Store) SetLockoutEnd(ctx context.Context, u *models.User, end *time.Time) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	u.LockoutEnd = end
	return nil
}

func (s *Store) LockoutEnabled(ctx context.Context, u *models.User) (bool, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return false, err
	}
	return u.LockoutEnabled, nil
}

func (s *Store) SetLockoutEnabled(ctx context.Context, u *models.User, enabled bool) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	u.LockoutEnabled = enabled
	return nil
}

func (s *Store) AccessFailedCount(ctx context.Context, u *models.User) (int, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return 0, err
	}
	return u.AccessFailedCount, nil
}

// IncrementAccessFailedCount bumps the failure counter and returns the
// post-increment value. The lockout threshold is the framework's policy; the
// store enforces no upper bound.
func (s *Store) IncrementAccessFailedCount(ctx context.Context, u *models.User) (int, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return 0, err
	}
	u.AccessFailedCount++
	return u.AccessFailedCount, nil
}

func (s *Store) ResetAccessFailedCount(ctx context.Context, u *models.User) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	u.AccessFailedCount = 0
	return nil
}
