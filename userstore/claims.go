package userstore

import (
	"context"

	"github.com/dalemusser/mongoidentity/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Claims returns a copy of the user's embedded claim pairs.
func (s *Store) Claims(ctx context.Context, u *models.User) ([]models.UserClaim, error) {
	if err := s.fieldGuard(ctx, u); err != nil {
		return nil, err
	}
	return append([]models.UserClaim(nil), u.Claims...), nil
}

// AddClaims appends each claim the user does not already hold. A claim is
// the whole (type, value) pair, so adding an existing pair is a no-op while
// a new value under an existing type is appended.
func (s *Store) AddClaims(ctx context.Context, u *models.User, claims ...models.UserClaim) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	for _, c := range claims {
		if !containsClaim(u.Claims, c) {
			u.Claims = append(u.Claims, c)
		}
	}
	return nil
}

// ReplaceClaim overwrites the first embedded pair equal to oldClaim with
// newClaim. It is a no-op when oldClaim is not present, and it does not
// deduplicate newClaim against other existing pairs.
func (s *Store) ReplaceClaim(ctx context.Context, u *models.User, oldClaim, newClaim models.UserClaim) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	for i := range u.Claims {
		if u.Claims[i] == oldClaim {
			u.Claims[i] = newClaim
			break
		}
	}
	return nil
}

// RemoveClaims deletes every embedded pair equal to any of the given claims.
func (s *Store) RemoveClaims(ctx context.Context, u *models.User, claims ...models.UserClaim) error {
	if err := s.fieldGuard(ctx, u); err != nil {
		return err
	}
	kept := make([]models.UserClaim, 0, len(u.Claims))
	for _, existing := range u.Claims {
		if !containsClaim(claims, existing) {
			kept = append(kept, existing)
		}
	}
	u.Claims = kept
	return nil
}

// UsersForClaim returns every record holding the claim. A single embedded
// entry must carry both the queried type and the queried value; two partial
// matches on different entries do not qualify.
func (s *Store) UsersForClaim(ctx context.Context, claim models.UserClaim) ([]*models.User, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	if claim.Type == "" {
		return nil, emptyArg("claim.Type")
	}

	filter := bson.M{"Claims": bson.M{"$elemMatch": bson.M{
		"ClaimType":  claim.Type,
		"ClaimValue": claim.Value,
	}}}
	return s.findAll(ctx, filter)
}

func containsClaim(claims []models.UserClaim, c models.UserClaim) bool {
	for _, existing := range claims {
		if existing == c {
			return true
		}
	}
	return false
}
