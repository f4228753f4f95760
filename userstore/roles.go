package userstore

import (
	"context"

	"github.com/dalemusser/mongoidentity/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
)

// Roles are stored folded (case/diacritics-insensitive form) so that
// membership is case-insensitive; roles exist only as these strings, there
// is no separate role collection.

// AddToRole records membership in roleName, skipping the add when an
// equivalent entry already exists.
func (s *Store) AddToRole(ctx context.Context, u *models.User, roleName string) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	if roleName == "" {
		return emptyArg("roleName")
	}

	folded := text.Fold(roleName)
	for _, r := range u.Roles {
		if text.Fold(r) == folded {
			return nil
		}
	}
	u.Roles = append(u.Roles, folded)
	return nil
}

// RemoveFromRole deletes every stored entry case-insensitively equal to
// roleName.
func (s *Store) RemoveFromRole(ctx context.Context, u *models.User, roleName string) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	if roleName == "" {
		return emptyArg("roleName")
	}

	folded := text.Fold(roleName)
	kept := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		if text.Fold(r) != folded {
			kept = append(kept, r)
		}
	}
	u.Roles = kept
	return nil
}

// Roles returns a copy of the user's role names (in stored, folded form).
func (s *Store) Roles(ctx context.Context, u *models.User) ([]string, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return nil, err
	}
	return append([]string(nil), u.Roles...), nil
}

// IsInRole reports case-insensitive membership in roleName.
func (s *Store) IsInRole(ctx context.Context, u *models.User, roleName string) (bool, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return false, err
	}
	if roleName == "" {
		return false, emptyArg("roleName")
	}

	folded := text.Fold(roleName)
	for _, r := range u.Roles {
		if text.Fold(r) == folded {
			return true, nil
		}
	}
	return false, nil
}

// UsersInRole returns every record that is a member of roleName. The
// argument is folded before matching, so callers get the same answer here
// that IsInRole gives them for any one record.
func (s *Store) UsersInRole(ctx context.Context, roleName string) ([]*models.User, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	if roleName == "" {
		return nil, emptyArg("roleName")
	}
	return s.findAll(ctx, bson.M{"Roles": text.Fold(roleName)})
}
