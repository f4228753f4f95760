package userstore

import (
	"context"

	"github.com/dalemusser/mongoidentity/models"
)

// Authentication tokens the framework issues per (provider, name), stored in
// the same embedded-list fashion as logins.

// SetToken stores value under (provider, name), overwriting any existing
// entry for that pair.
func (s *Store) SetToken(ctx context.Context, u *models.User, provider, name, value string) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	if provider == "" {
		return emptyArg("provider")
	}
	if name == "" {
		return emptyArg("name")
	}

	for i := range u.Tokens {
		if u.Tokens[i].LoginProvider == provider && u.Tokens[i].Name == name {
			u.Tokens[i].Value = value
			return nil
		}
	}
	u.Tokens = append(u.Tokens, models.UserToken{LoginProvider: provider, Name: name, Value: value})
	return nil
}

// RemoveToken deletes the entry for (provider, name), if any.
func (s *Store) RemoveToken(ctx context.Context, u *models.User, provider, name string) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	if provider == "" {
		return emptyArg("provider")
	}
	if name == "" {
		return emptyArg("name")
	}

	kept := make([]models.UserToken, 0, len(u.Tokens))
	for _, tok := range u.Tokens {
		if tok.LoginProvider != provider || tok.Name != name {
			kept = append(kept, tok)
		}
	}
	u.Tokens = kept
	return nil
}

// Token returns the value stored under (provider, name); ok reports whether
// an entry exists, distinguishing an empty value from an absent one.
func (s *Store) Token(ctx context.Context, u *models.User, provider, name string) (value string, ok bool, err error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return "", false, err
	}
	if provider == "" {
		return "", false, emptyArg("provider")
	}
	if name == "" {
		return "", false, emptyArg("name")
	}

	for _, tok := range u.Tokens {
		if tok.LoginProvider == provider && tok.Name == name {
			return tok.Value, true, nil
		}
	}
	return "", false, nil
}
