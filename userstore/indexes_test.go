package userstore_test

import (
	"testing"

	"github.com/dalemusser/mongoidentity/internal/testutil"
	"github.com/dalemusser/mongoidentity/userstore"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}
	// Re-triggering against existing indexes must stay clean.
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("second EnsureIndexes failed: %v", err)
	}

	cur, err := db.Collection(userstore.CollectionName).Indexes().List(ctx)
	if err != nil {
		t.Fatalf("listing indexes failed: %v", err)
	}
	byName := map[string]struct {
		Name   string `bson:"name"`
		Key    bson.D `bson:"key"`
		Unique bool   `bson:"unique"`
	}{}
	for cur.Next(ctx) {
		var idx struct {
			Name   string `bson:"name"`
			Key    bson.D `bson:"key"`
			Unique bool   `bson:"unique"`
		}
		if err := cur.Decode(&idx); err != nil {
			t.Fatalf("decoding index failed: %v", err)
		}
		byName[idx.Name] = idx
	}
	if err := cur.Close(ctx); err != nil {
		t.Fatalf("closing index cursor failed: %v", err)
	}

	uname, ok := byName["uniq_users_normalized_username"]
	if !ok {
		t.Fatal("missing unique NormalizedUserName index")
	}
	if !uname.Unique {
		t.Error("NormalizedUserName index must be unique")
	}

	email, ok := byName["idx_users_normalized_email"]
	if !ok {
		t.Fatal("missing NormalizedEmail index")
	}
	if email.Unique {
		t.Error("NormalizedEmail index must not be unique")
	}
}
