package userstore

import (
	"context"

	"github.com/dalemusser/mongoidentity/models"
	"go.mongodb.org/mongo-driver/bson"
)

// AddLogin records an external-provider login. (LoginProvider, ProviderKey)
// identifies a login; a second entry with the same pair is not added.
func (s *Store) AddLogin(ctx context.Context, u *models.User, login models.UserLogin) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	if login.LoginProvider == "" {
		return emptyArg("login.LoginProvider")
	}
	if login.ProviderKey == "" {
		return emptyArg("login.ProviderKey")
	}

	for _, l := range u.Logins {
		if l.LoginProvider == login.LoginProvider && l.ProviderKey == login.ProviderKey {
			return nil
		}
	}
	u.Logins = append(u.Logins, login)
	return nil
}

// RemoveLogin deletes every entry matching provider and key exactly.
func (s *Store) RemoveLogin(ctx context.Context, u *models.User, provider, key string) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	if provider == "" {
		return emptyArg("provider")
	}
	if key == "" {
		return emptyArg("key")
	}

	kept := make([]models.UserLogin, 0, len(u.Logins))
	for _, l := range u.Logins {
		if l.LoginProvider != provider || l.ProviderKey != key {
			kept = append(kept, l)
		}
	}
	u.Logins = kept
	return nil
}

// Logins returns a copy of the user's external logins.
func (s *Store) Logins(ctx context.Context, u *models.User) ([]models.UserLogin, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return nil, err
	}
	return append([]models.UserLogin(nil), u.Logins...), nil
}

// FindByLogin returns the record holding a login entry with the given
// provider and key. A single embedded entry must match both; partial matches
// across different entries do not qualify.
func (s *Store) FindByLogin(ctx context.Context, provider, key string) (*models.User, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	if provider == "" {
		return nil, emptyArg("provider")
	}
	if key == "" {
		return nil, emptyArg("key")
	}

	filter := bson.M{"Logins": bson.M{"$elemMatch": bson.M{
		"LoginProvider": provider,
		"ProviderKey":   key,
	}}}
	return s.findOne(ctx, filter)
}
