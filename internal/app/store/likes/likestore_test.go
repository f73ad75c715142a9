package likestore_test

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/cohorthub/internal/app/sheets"
	"github.com/dalemusser/cohorthub/internal/testutil"
)

func TestAddRemoveCount(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	if err := env.Likes.Add(ctx, "upd_1", "ava@example.com"); err != nil {
		t.Fatal(err)
	}
	if err := env.Likes.Add(ctx, "upd_1", "ben@example.com"); err != nil {
		t.Fatal(err)
	}
	if err := env.Likes.Add(ctx, "upd_2", "ava@example.com"); err != nil {
		t.Fatal(err)
	}

	n, err := env.Likes.CountByUpdate(ctx, "upd_1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("upd_1: expected 2 likes, got %d", n)
	}

	if err := env.Likes.Remove(ctx, "upd_1", "ava@example.com"); err != nil {
		t.Fatal(err)
	}
	n, err = env.Likes.CountByUpdate(ctx, "upd_1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("after remove: expected 1 like, got %d", n)
	}
}

func TestHasFresh_BypassesSnapshot(t *testing.T) {
	// Long TTL so a stale snapshot would mask the like if HasFresh read
	// through the cache.
	env := testutil.NewEnvTTL(t, time.Hour)
	ctx := context.Background()

	// Warm the snapshot with an empty Likes sheet.
	if _, err := env.Cache.Rows(ctx, sheets.SheetLikes); err != nil {
		t.Fatal(err)
	}

	if err := env.Likes.Add(ctx, "upd_1", "ava@example.com"); err != nil {
		t.Fatal(err)
	}
	ok, err := env.Likes.HasFresh(ctx, "upd_1", "ava@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("HasFresh should see the like immediately after Add")
	}

	ok, err = env.Likes.HasFresh(ctx, "upd_1", "ben@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("HasFresh reported a like that was never added")
	}
}
