package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-shapecast/internal/collide"
	"github.com/vovakirdan/tui-shapecast/internal/geom"
	"github.com/vovakirdan/tui-shapecast/internal/sweep"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func hitRecord(scene string, ht collide.HitType, dist float64) CastRecord {
	return CastRecord{
		Scene:    scene,
		Box:      geom.NewBox(0, 0, 1, 1),
		Delta:    geom.V(4, 0),
		HitType:  ht.String(),
		Normal:   ht.Normal(),
		Distance: dist,
		Collider: 0,
		Source:   "test",
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveCast(hitRecord("demo", collide.HitUtD, 2.5)); err != nil {
		t.Fatalf("SaveCast() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	casts, err := store.RecentCasts(10)
	if err != nil {
		t.Fatalf("RecentCasts() failed: %v", err)
	}
	if len(casts) != 1 {
		t.Errorf("Expected 1 cast after reopen, got %d", len(casts))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rec := CastRecord{
		Scene:    "demo",
		Box:      geom.NewBox(-0.5, -0.25, 0.5, 0.75),
		Delta:    geom.V(0, 6),
		HitType:  "utd",
		Normal:   geom.Down,
		Distance: 2.25,
		Collider: 0,
		Source:   "cli",
	}
	id, err := store.SaveCast(rec)
	if err != nil {
		t.Fatalf("SaveCast() failed: %v", err)
	}

	casts, err := store.CastsByScene("demo", 10)
	if err != nil {
		t.Fatalf("CastsByScene() failed: %v", err)
	}
	if len(casts) != 1 {
		t.Fatalf("Expected 1 cast, got %d", len(casts))
	}

	got := casts[0]
	rec.ID = id
	rec.CreatedAt = got.CreatedAt
	if got != rec {
		t.Errorf("stored cast = %+v\nexpected %+v", got, rec)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
	if !got.Hit() {
		t.Error("Hit() should be true for a utd cast")
	}
}

func TestStoreRecentOrdering(t *testing.T) {
	store := openTestStore(t)

	for i, scene := range []string{"demo", "ramps", "demo", "corridor"} {
		if _, err := store.SaveCast(hitRecord(scene, collide.HitRtL, float64(i))); err != nil {
			t.Fatalf("SaveCast() failed: %v", err)
		}
	}

	recent, err := store.RecentCasts(3)
	if err != nil {
		t.Fatalf("RecentCasts() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 casts, got %d", len(recent))
	}
	if recent[0].Scene != "corridor" || recent[2].Scene != "ramps" {
		t.Errorf("Expected newest first, got %s ... %s", recent[0].Scene, recent[2].Scene)
	}

	demo, err := store.CastsByScene("demo", 0)
	if err != nil {
		t.Fatalf("CastsByScene() failed: %v", err)
	}
	if len(demo) != 2 {
		t.Fatalf("Expected 2 demo casts, got %d", len(demo))
	}
	if demo[0].Distance != 2 || demo[1].Distance != 0 {
		t.Errorf("Expected newest demo cast first, got distances %v, %v", demo[0].Distance, demo[1].Distance)
	}
}

func TestStoreHitStats(t *testing.T) {
	store := openTestStore(t)

	records := []CastRecord{
		hitRecord("demo", collide.HitUtD, 1),
		hitRecord("demo", collide.HitUtD, 2),
		hitRecord("demo", collide.HitSlope, 3),
		{Scene: "demo", Collider: -1, Distance: 5},
		hitRecord("ramps", collide.HitDtU, 7),
	}
	for _, r := range records {
		if _, err := store.SaveCast(r); err != nil {
			t.Fatalf("SaveCast() failed: %v", err)
		}
	}

	stats, err := store.HitStats("demo")
	if err != nil {
		t.Fatalf("HitStats() failed: %v", err)
	}
	expected := map[string]int{"utd": 2, "slope": 1, "none": 1}
	if len(stats) != len(expected) {
		t.Errorf("HitStats() = %v, expected %v", stats, expected)
	}
	for k, v := range expected {
		if stats[k] != v {
			t.Errorf("HitStats()[%q] = %d, expected %d", k, stats[k], v)
		}
	}

	all, err := store.HitStats("")
	if err != nil {
		t.Fatalf("HitStats(\"\") failed: %v", err)
	}
	if all["dtu"] != 1 || all["utd"] != 2 {
		t.Errorf("HitStats(\"\") = %v", all)
	}

	scenes, err := store.AllSceneStats()
	if err != nil {
		t.Fatalf("AllSceneStats() failed: %v", err)
	}
	demo := scenes["demo"]
	if demo == nil || demo.Casts != 4 || demo.Hits != 3 {
		t.Fatalf("demo stats = %+v", demo)
	}
	if demo.AvgDistance != 2.75 {
		t.Errorf("AvgDistance = %v, expected 2.75", demo.AvgDistance)
	}
	if scenes["ramps"] == nil || scenes["ramps"].Casts != 1 {
		t.Errorf("ramps stats = %+v", scenes["ramps"])
	}
}

func TestStoreClearCasts(t *testing.T) {
	store := openTestStore(t)

	for _, scene := range []string{"demo", "demo", "ramps"} {
		if _, err := store.SaveCast(hitRecord(scene, collide.HitLtR, 1)); err != nil {
			t.Fatalf("SaveCast() failed: %v", err)
		}
	}

	n, err := store.ClearCasts("demo")
	if err != nil {
		t.Fatalf("ClearCasts() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("ClearCasts() removed %d, expected 2", n)
	}

	demo, _ := store.CastsByScene("demo", 10)
	if len(demo) != 0 {
		t.Errorf("Expected no demo casts after clear, got %d", len(demo))
	}
	ramps, _ := store.CastsByScene("ramps", 10)
	if len(ramps) != 1 {
		t.Errorf("Other scenes should be untouched, got %d ramps casts", len(ramps))
	}

	if _, err := store.ClearCasts(""); err != nil {
		t.Fatalf("ClearCasts(\"\") failed: %v", err)
	}
	all, _ := store.RecentCasts(10)
	if len(all) != 0 {
		t.Errorf("Expected empty history, got %d", len(all))
	}
}

func TestNewCastRecord(t *testing.T) {
	colliders := []collide.Collider{collide.NewBoxCollider(geom.NewBox(2, 0, 3, 1))}

	hit := sweep.Resolve(geom.NewBox(0, 0, 1, 1), colliders, geom.V(4, 0))
	rec := NewCastRecord("demo", "tui", hit)
	if rec.HitType != "rtl" || rec.Distance != 1 || rec.Collider != 0 {
		t.Errorf("hit record = %+v", rec)
	}
	if rec.Delta != geom.V(4, 0) || rec.Normal != geom.Left {
		t.Errorf("hit record vectors = %v, %v", rec.Delta, rec.Normal)
	}

	clear := sweep.Resolve(geom.NewBox(0, 0, 1, 1), colliders, geom.V(0, 3))
	rec = NewCastRecord("demo", "tui", clear)
	if rec.Hit() || rec.Collider != -1 || rec.Distance != 3 {
		t.Errorf("clear record = %+v", rec)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.shapecast/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".shapecast", "test.db")); err != nil {
		t.Errorf("Expected database under home: %v", err)
	}
}
