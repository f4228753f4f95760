package userstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the two indexes the lookup invariants rely on: a
// unique ascending index on NormalizedUserName and a non-unique ascending
// index on NormalizedEmail. Creation is idempotent when the indexes already
// exist with the same options.
//
// Construction runs this in the background and swallows failures; operators
// can call it again after fixing whatever made that attempt fail.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if err := s.guard(ctx); err != nil {
		return err
	}

	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "NormalizedUserName", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_users_normalized_username"),
		},
		{
			Keys:    bson.D{{Key: "NormalizedEmail", Value: 1}},
			Options: options.Index().SetName("idx_users_normalized_email"),
		},
	})
	return err
}
