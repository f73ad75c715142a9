package sheets_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/dalemusser/cohorthub/internal/app/sheets"
	"github.com/dalemusser/cohorthub/internal/testutil"
)

func newClient(t *testing.T) (*sheets.Client, *testutil.FakeBackend) {
	t.Helper()
	backend := testutil.NewFakeBackend()
	return sheets.NewClient(backend, zap.NewNop()), backend
}

func appendTeam(t *testing.T, c *sheets.Client, name, desc string) {
	t.Helper()
	err := c.AppendRow(context.Background(), sheets.SheetTeams, sheets.Row{
		"TeamName": name, "Description": desc, "CreatedAt": "2026-01-02T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("append %q: %v", name, err)
	}
}

func TestAppendAndReadAll(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	appendTeam(t, c, "Alpha", "first")
	appendTeam(t, c, "Beta", "second")

	rows, err := c.ReadAll(ctx, sheets.SheetTeams)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["TeamName"] != "Alpha" || rows[1]["Description"] != "second" {
		t.Errorf("rows out of order or mismapped: %+v", rows)
	}
}

func TestUpdateByKey_MergesPatch(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	appendTeam(t, c, "Alpha", "first")

	err := c.UpdateByKey(ctx, sheets.SheetTeams, "Alpha", sheets.Row{"Description": "updated"})
	if err != nil {
		t.Fatal(err)
	}

	rows, err := c.ReadAll(ctx, sheets.SheetTeams)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0]["Description"] != "updated" {
		t.Errorf("patch not applied: %+v", rows[0])
	}
	if rows[0]["CreatedAt"] != "2026-01-02T00:00:00Z" {
		t.Errorf("untouched cell lost: %+v", rows[0])
	}
}

func TestUpdateByKey_NotFound(t *testing.T) {
	c, _ := newClient(t)

	err := c.UpdateByKey(context.Background(), sheets.SheetTeams, "Ghost", sheets.Row{"Description": "x"})
	if !errors.Is(err, sheets.ErrRowNotFound) {
		t.Errorf("expected ErrRowNotFound, got %v", err)
	}
}

func TestDeleteWhere_RemovesAllMatches(t *testing.T) {
	c, backend := newClient(t)
	ctx := context.Background()

	appendTeam(t, c, "Alpha", "keep")
	appendTeam(t, c, "Beta", "drop")
	appendTeam(t, c, "Gamma", "drop")
	appendTeam(t, c, "Delta", "keep")

	n, err := c.DeleteWhere(ctx, sheets.SheetTeams, func(r sheets.Row) bool {
		return r["Description"] == "drop"
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 deletions, got %d", n)
	}
	if got := backend.RowCount(sheets.SheetTeams); got != 2 {
		t.Errorf("expected 2 surviving rows, got %d", got)
	}

	rows, err := c.ReadAll(ctx, sheets.SheetTeams)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0]["TeamName"] != "Alpha" || rows[1]["TeamName"] != "Delta" {
		t.Errorf("wrong rows survived: %+v", rows)
	}
}

func TestDeleteByKey_NotFound(t *testing.T) {
	c, _ := newClient(t)

	err := c.DeleteByKey(context.Background(), sheets.SheetTeams, "Ghost")
	if !errors.Is(err, sheets.ErrRowNotFound) {
		t.Errorf("expected ErrRowNotFound, got %v", err)
	}
}

func TestBlankRowsSkippedButIndexed(t *testing.T) {
	c, backend := newClient(t)
	ctx := context.Background()

	appendTeam(t, c, "Alpha", "first")
	// A hand-cleared row in the middle of the sheet.
	if err := backend.Append(ctx, sheets.SheetTeams, []string{"", "", ""}); err != nil {
		t.Fatal(err)
	}
	appendTeam(t, c, "Beta", "second")

	rows, err := c.ReadAll(ctx, sheets.SheetTeams)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected blank row to be skipped, got %d rows", len(rows))
	}

	// Updating Beta must write to its real position, not the blank row's.
	if err := c.UpdateByKey(ctx, sheets.SheetTeams, "Beta", sheets.Row{"Description": "patched"}); err != nil {
		t.Fatal(err)
	}
	rows, err = c.ReadAll(ctx, sheets.SheetTeams)
	if err != nil {
		t.Fatal(err)
	}
	if rows[1]["TeamName"] != "Beta" || rows[1]["Description"] != "patched" {
		t.Errorf("update landed on the wrong row: %+v", rows)
	}
}

func TestUnknownSheetRejected(t *testing.T) {
	c, _ := newClient(t)

	if _, err := c.ReadAll(context.Background(), "Nope"); !errors.Is(err, sheets.ErrUnknownSheet) {
		t.Errorf("expected ErrUnknownSheet, got %v", err)
	}
}
