package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/claude/liftlog/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	if err := RunMigrations(dir); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	s, err := Open(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleLog(date, dayID string, weight float64) models.WorkoutLog {
	return models.WorkoutLog{
		Date:  date,
		DayID: dayID,
		Exercises: map[string][]models.SetRecord{
			"sq": {set(weight, 5, true)},
		},
	}
}

// TestListLogsEmpty verifies a fresh store has no logs.
func TestListLogsEmpty(t *testing.T) {
	s := testStore(t)
	if logs := s.ListLogs(context.Background()); len(logs) != 0 {
		t.Errorf("got %d logs, want 0", len(logs))
	}
}

// TestUpsertComputesStats verifies a save fills in the derived fields and
// the round trip through the store preserves them.
func TestUpsertComputesStats(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	saved, err := s.UpsertLog(ctx, models.WorkoutLog{
		Date:  "2025-03-01",
		DayID: "sq-day",
		Exercises: map[string][]models.SetRecord{
			"sq": {set(100, 5, true), set(100, 5, true)},
			"dl": {set(140, 3, true)},
		},
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if saved.TotalVolume != 1420 {
		t.Errorf("totalVolume = %v, want 1420", saved.TotalVolume)
	}
	if saved.TotalSets != 3 {
		t.Errorf("totalSets = %d, want 3", saved.TotalSets)
	}
	if len(saved.PRs) != 2 {
		t.Errorf("prs = %v, want [dl sq]", saved.PRs)
	}

	logs := s.ListLogs(ctx)
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	if logs[0].TotalVolume != 1420 || logs[0].TotalSets != 3 || len(logs[0].PRs) != 2 {
		t.Errorf("reloaded log lost derived fields: %+v", logs[0])
	}
}

// TestUpsertIdempotent verifies that re-saving an identical session yields
// identical derived stats: the log never competes against its own previous
// save.
func TestUpsertIdempotent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first, err := s.UpsertLog(ctx, sampleLog("2025-03-01", "sq-day", 100))
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := s.UpsertLog(ctx, sampleLog("2025-03-01", "sq-day", 100))
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if first.TotalVolume != second.TotalVolume {
		t.Errorf("volume changed on re-save: %v vs %v", first.TotalVolume, second.TotalVolume)
	}
	if first.TotalSets != second.TotalSets {
		t.Errorf("set count changed on re-save: %d vs %d", first.TotalSets, second.TotalSets)
	}
	if len(first.PRs) != 1 || len(second.PRs) != 1 {
		t.Errorf("prs changed on re-save: %v vs %v", first.PRs, second.PRs)
	}
	if logs := s.ListLogs(ctx); len(logs) != 1 {
		t.Errorf("got %d logs after double save, want 1", len(logs))
	}
}

// TestUpsertReplacesByIdentity verifies at-most-one-per-(date, dayId): N
// saves with the same identity leave exactly one log reflecting the last
// write.
func TestUpsertReplacesByIdentity(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, w := range []float64{60, 80, 70} {
		if _, err := s.UpsertLog(ctx, sampleLog("2025-03-01", "sq-day", w)); err != nil {
			t.Fatalf("upsert %v: %v", w, err)
		}
	}

	logs := s.ListLogs(ctx)
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	if logs[0].TotalVolume != 70*5 {
		t.Errorf("totalVolume = %v, want %v (last write)", logs[0].TotalVolume, 70*5)
	}
}

// TestUpsertPRAgainstOtherSessions verifies that an earlier session with a
// higher max suppresses the record on a later, weaker session.
func TestUpsertPRAgainstOtherSessions(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, err := s.UpsertLog(ctx, sampleLog("2025-03-01", "sq-day", 100)); err != nil {
		t.Fatal(err)
	}
	weaker, err := s.UpsertLog(ctx, sampleLog("2025-03-08", "sq-day", 95))
	if err != nil {
		t.Fatal(err)
	}
	if len(weaker.PRs) != 0 {
		t.Errorf("weaker session prs = %v, want none", weaker.PRs)
	}
}

// TestUpsertValidation verifies malformed candidates are rejected with
// ErrInvalidLog instead of being persisted.
func TestUpsertValidation(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	cases := []struct {
		name string
		log  models.WorkoutLog
	}{
		{"missing dayId", models.WorkoutLog{Date: "2025-03-01"}},
		{"missing date", models.WorkoutLog{DayID: "sq-day"}},
		{"bad date format", models.WorkoutLog{Date: "01.03.2025", DayID: "sq-day"}},
		{"negative duration", models.WorkoutLog{Date: "2025-03-01", DayID: "sq-day", Duration: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.UpsertLog(ctx, tc.log)
			if !errors.Is(err, ErrInvalidLog) {
				t.Errorf("err = %v, want ErrInvalidLog", err)
			}
		})
	}

	if logs := s.ListLogs(ctx); len(logs) != 0 {
		t.Errorf("invalid candidates were persisted: %d logs", len(logs))
	}
}

// TestDeleteByStartTime verifies deletion removes exactly the log with the
// matching start time and leaves the rest untouched.
func TestDeleteByStartTime(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i, date := range []string{"2025-03-01", "2025-03-02", "2025-03-03"} {
		l := sampleLog(date, "sq-day", 100)
		l.StartTime = int64(1000 + i)
		if _, err := s.UpsertLog(ctx, l); err != nil {
			t.Fatal(err)
		}
	}

	if err := s.DeleteLog(ctx, models.LogRef{StartTime: 1001}); err != nil {
		t.Fatalf("delete: %v", err)
	}

	logs := s.ListLogs(ctx)
	if len(logs) != 2 {
		t.Fatalf("got %d logs, want 2", len(logs))
	}
	for _, l := range logs {
		if l.StartTime == 1001 {
			t.Errorf("log with startTime 1001 still present")
		}
	}
}

// TestDeleteCompositeFallback verifies deletion falls back to the
// (date, dayId, duration) match when no start time is given.
func TestDeleteCompositeFallback(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	a := sampleLog("2025-03-01", "sq-day", 100)
	a.Duration = 3600
	b := sampleLog("2025-03-01", "routine-a", 60)
	b.Duration = 1800
	for _, l := range []models.WorkoutLog{a, b} {
		if _, err := s.UpsertLog(ctx, l); err != nil {
			t.Fatal(err)
		}
	}

	err := s.DeleteLog(ctx, models.LogRef{Date: "2025-03-01", DayID: "sq-day", Duration: 3600})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}

	logs := s.ListLogs(ctx)
	if len(logs) != 1 || logs[0].DayID != "routine-a" {
		t.Errorf("remaining logs = %+v, want only routine-a", logs)
	}
}

// TestDeleteNoMatchIsNoop verifies deleting a nonexistent log neither errors
// nor disturbs the collection.
func TestDeleteNoMatchIsNoop(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	if _, err := s.UpsertLog(ctx, sampleLog("2025-03-01", "sq-day", 100)); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteLog(ctx, models.LogRef{Date: "2099-01-01", DayID: "nope"}); err != nil {
		t.Errorf("delete of missing log errored: %v", err)
	}
	if logs := s.ListLogs(ctx); len(logs) != 1 {
		t.Errorf("got %d logs, want 1", len(logs))
	}
}

// TestCorruptLogsDocument verifies a corrupt persisted payload reads as
// empty instead of failing, and the next save recovers the document.
func TestCorruptLogsDocument(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (key, value) VALUES (?, ?)`, docLogs, "{not json")
	if err != nil {
		t.Fatalf("planting corrupt doc: %v", err)
	}

	if logs := s.ListLogs(ctx); len(logs) != 0 {
		t.Errorf("corrupt doc yielded %d logs, want 0", len(logs))
	}

	if _, err := s.UpsertLog(ctx, sampleLog("2025-03-01", "sq-day", 100)); err != nil {
		t.Fatalf("upsert over corrupt doc: %v", err)
	}
	if logs := s.ListLogs(ctx); len(logs) != 1 {
		t.Errorf("got %d logs after recovery, want 1", len(logs))
	}
}

// TestLogsBetween verifies inclusive date-range filtering, oldest first.
func TestLogsBetween(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, date := range []string{"2025-02-28", "2025-03-01", "2025-03-05", "2025-03-10"} {
		if _, err := s.UpsertLog(ctx, sampleLog(date, "sq-day", 100)); err != nil {
			t.Fatal(err)
		}
	}

	logs := s.LogsBetween(ctx, "2025-03-01", "2025-03-05")
	if len(logs) != 2 {
		t.Fatalf("got %d logs, want 2", len(logs))
	}
	if logs[0].Date != "2025-03-01" || logs[1].Date != "2025-03-05" {
		t.Errorf("range = %s..%s, want 2025-03-01..2025-03-05 inclusive", logs[0].Date, logs[1].Date)
	}
}

// TestRecentLogsOrder verifies RecentLogs sorts newest first and honors the
// limit.
func TestRecentLogsOrder(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, date := range []string{"2025-03-02", "2025-03-01", "2025-03-05"} {
		if _, err := s.UpsertLog(ctx, sampleLog(date, "sq-day", 100)); err != nil {
			t.Fatal(err)
		}
	}

	recent := s.RecentLogs(ctx, 2)
	if len(recent) != 2 {
		t.Fatalf("got %d logs, want 2", len(recent))
	}
	if recent[0].Date != "2025-03-05" || recent[1].Date != "2025-03-02" {
		t.Errorf("order = %s, %s; want 2025-03-05, 2025-03-02", recent[0].Date, recent[1].Date)
	}
}
