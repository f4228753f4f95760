package userstore_test

// Reverse lookups: given a claim/role/login, find the records holding it.

import (
	"testing"

	"github.com/dalemusser/mongoidentity/internal/testutil"
	"github.com/dalemusser/mongoidentity/models"
	"github.com/dalemusser/mongoidentity/userstore"
)

func TestUsersForClaim(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	blue := models.UserClaim{Type: "color", Value: "blue"}

	holder := models.NewUser("holder")
	if err := store.AddClaims(ctx, holder, blue); err != nil {
		t.Fatalf("AddClaims failed: %v", err)
	}
	if err := store.Create(ctx, holder); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	bystander := models.NewUser("bystander")
	if err := store.Create(ctx, bystander); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	users, err := store.UsersForClaim(ctx, blue)
	if err != nil {
		t.Fatalf("UsersForClaim failed: %v", err)
	}
	if len(users) != 1 || users[0].ID != holder.ID {
		t.Errorf("expected exactly the holder, got %d users", len(users))
	}
}

// A record holding (color, blue) and (size, large) must not match a query
// for (color, large): the type and value have to come from one embedded
// entry, not be assembled across two.
func TestUsersForClaim_RequiresSingleEntry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := models.NewUser("mixed")
	err := store.AddClaims(ctx, u,
		models.UserClaim{Type: "color", Value: "blue"},
		models.UserClaim{Type: "size", Value: "large"})
	if err != nil {
		t.Fatalf("AddClaims failed: %v", err)
	}
	if err := store.Create(ctx, u); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	users, err := store.UsersForClaim(ctx, models.UserClaim{Type: "color", Value: "large"})
	if err != nil {
		t.Fatalf("UsersForClaim failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("cross-entry combination must not match, got %d users", len(users))
	}

	users, err = store.UsersForClaim(ctx, models.UserClaim{Type: "size", Value: "large"})
	if err != nil {
		t.Fatalf("UsersForClaim failed: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("exact pair should match, got %d users", len(users))
	}
}

func TestUsersInRole_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	member := models.NewUser("member")
	if err := store.AddToRole(ctx, member, "Admin"); err != nil {
		t.Fatalf("AddToRole failed: %v", err)
	}
	if err := store.Create(ctx, member); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	outsider := models.NewUser("outsider")
	if err := store.Create(ctx, outsider); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// The same string any caller would pass to IsInRole must work here too,
	// whatever its case.
	for _, q := range []string{"Admin", "admin", "ADMIN"} {
		users, err := store.UsersInRole(ctx, q)
		if err != nil {
			t.Fatalf("UsersInRole(%q) failed: %v", q, err)
		}
		if len(users) != 1 || users[0].ID != member.ID {
			t.Errorf("UsersInRole(%q): expected exactly the member, got %d users", q, len(users))
		}
	}
}

func TestFindByLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := models.NewUser("social")
	login := models.UserLogin{LoginProvider: "Google", ProviderKey: "g123", ProviderDisplayName: "Google"}
	if err := store.AddLogin(ctx, u, login); err != nil {
		t.Fatalf("AddLogin failed: %v", err)
	}
	if err := store.Create(ctx, u); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.FindByLogin(ctx, "Google", "g123")
	if err != nil {
		t.Fatalf("FindByLogin failed: %v", err)
	}
	if found == nil || found.ID != u.ID {
		t.Error("FindByLogin did not return the record")
	}

	if err := store.RemoveLogin(ctx, found, "Google", "g123"); err != nil {
		t.Fatalf("RemoveLogin failed: %v", err)
	}
	if err := store.Update(ctx, found); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	logins, err := store.Logins(ctx, found)
	if err != nil {
		t.Fatalf("Logins failed: %v", err)
	}
	if len(logins) != 0 {
		t.Errorf("expected empty login list, got %+v", logins)
	}
	missing, err := store.FindByLogin(ctx, "Google", "g123")
	if err != nil {
		t.Fatalf("FindByLogin failed: %v", err)
	}
	if missing != nil {
		t.Error("expected no match after login removal")
	}
}

func TestFindByLogin_RequiresSingleEntry(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := models.NewUser("multi")
	if err := store.AddLogin(ctx, u, models.UserLogin{LoginProvider: "Google", ProviderKey: "g1"}); err != nil {
		t.Fatalf("AddLogin failed: %v", err)
	}
	if err := store.AddLogin(ctx, u, models.UserLogin{LoginProvider: "GitHub", ProviderKey: "h2"}); err != nil {
		t.Fatalf("AddLogin failed: %v", err)
	}
	if err := store.Create(ctx, u); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := store.FindByLogin(ctx, "Google", "h2")
	if err != nil {
		t.Fatalf("FindByLogin failed: %v", err)
	}
	if found != nil {
		t.Error("provider and key from different entries must not match")
	}
}
