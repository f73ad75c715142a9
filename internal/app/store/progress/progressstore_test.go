package progressstore_test

import (
	"context"
	"testing"

	"github.com/dalemusser/cohorthub/internal/domain/models"
	"github.com/dalemusser/cohorthub/internal/testutil"
)

func TestUpsert_InsertThenUpdate(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	err := env.Progress.Upsert(ctx, models.PhaseProgress{
		ProjectName: "P1",
		Phase:       models.PhaseDesign,
		Status:      models.ProgressInProgress,
		StartDate:   "2026-01-10",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Same (project, phase) updates in place.
	err = env.Progress.Upsert(ctx, models.PhaseProgress{
		ProjectName: "P1",
		Phase:       models.PhaseDesign,
		Status:      models.ProgressCompleted,
		StartDate:   "2026-01-10",
		EndDate:     "2026-01-20",
	})
	if err != nil {
		t.Fatal(err)
	}

	rows, err := env.Progress.ListByProject(ctx, "P1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row after upsert, got %d", len(rows))
	}
	if rows[0].Status != models.ProgressCompleted || rows[0].EndDate != "2026-01-20" {
		t.Errorf("unexpected row %+v", rows[0])
	}

	pp, ok, err := env.Progress.Get(ctx, "P1", models.PhaseDesign)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if pp.StartDate != "2026-01-10" {
		t.Errorf("start date: got %q", pp.StartDate)
	}
}

func TestDeleteByProject_ScopedToProject(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()

	for _, project := range []string{"P1", "P2"} {
		for _, phase := range []string{models.PhaseRequirements, models.PhaseDesign} {
			err := env.Progress.Upsert(ctx, models.PhaseProgress{
				ProjectName: project, Phase: phase, Status: models.ProgressInProgress,
			})
			if err != nil {
				t.Fatal(err)
			}
		}
	}

	n, err := env.Progress.DeleteByProject(ctx, "P1")
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 rows removed, got %d", n)
	}

	left, err := env.Progress.ListByProject(ctx, "P2")
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 2 {
		t.Errorf("P2 rows should be untouched, got %d", len(left))
	}
}
