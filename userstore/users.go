package userstore

import (
	"context"

	"github.com/dalemusser/mongoidentity/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts u as a new document. A unique-index violation on the
// normalized username is reported as ErrDuplicateUserName; every other
// insert fault propagates unchanged.
func (s *Store) Create(ctx context.Context, u *models.User) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	if u == nil {
		return ErrNilUser
	}
	if u.ID == "" {
		u.ID = primitive.NewObjectID().Hex()
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateUserName
		}
		return err
	}
	return nil
}

// Update replaces the stored document matching u's identifier with u. There
// is no upsert and no version check; the later replace wins. An identifier
// that matches nothing yields ErrUserNotFound.
func (s *Store) Update(ctx context.Context, u *models.User) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	if u == nil {
		return ErrNilUser
	}

	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes the document matching u's identifier. Deleting an
// already-deleted record yields ErrUserNotFound, not a crash.
func (s *Store) Delete(ctx context.Context, u *models.User) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	if u == nil {
		return ErrNilUser
	}

	res, err := s.c.DeleteOne(ctx, bson.M{"_id": u.ID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// FindByID loads a user by its hex identifier. A malformed identifier can
// never match a stored document, so it returns no user without querying.
func (s *Store) FindByID(ctx context.Context, id string) (*models.User, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, nil
	}
	return s.findOne(ctx, bson.M{"_id": id})
}

// FindByName looks up the single user with the given normalized username.
func (s *Store) FindByName(ctx context.Context, normalizedName string) (*models.User, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	if normalizedName == "" {
		return nil, emptyArg("normalizedName")
	}
	return s.findOne(ctx, bson.M{"NormalizedUserName": normalizedName})
}

// FindByEmail looks up a user by normalized email. The email index is not
// unique; the first match wins.
func (s *Store) FindByEmail(ctx context.Context, normalizedEmail string) (*models.User, error) {
	if err := s.guard(ctx); err != nil {
		return nil, err
	}
	if normalizedEmail == "" {
		return nil, emptyArg("normalizedEmail")
	}
	return s.findOne(ctx, bson.M{"NormalizedEmail": normalizedEmail})
}

// findOne maps the driver's no-documents sentinel to (nil, nil): a miss is a
// normal outcome for the identity contract, not a fault.
func (s *Store) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, filter).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) findAll(ctx context.Context, filter bson.M) ([]*models.User, error) {
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var users []*models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
