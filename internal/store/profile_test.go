package store

import (
	"strings"
	"sync"
	"testing"

	"github.com/nelld28/chorebender/internal/database"
	"github.com/nelld28/chorebender/internal/model"
)

func setupTestDB(t *testing.T) (*ProfileStore, *ChoreStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewProfileStore(db), NewChoreStore(db)
}

func TestProfileCreate(t *testing.T) {
	ps, _ := setupTestDB(t)

	p, err := ps.Create("Katara", model.ElementWater, "")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected generated id")
	}
	if p.Name != "Katara" {
		t.Errorf("name = %q, want %q", p.Name, "Katara")
	}
	if p.Element != model.ElementWater {
		t.Errorf("element = %q, want %q", p.Element, model.ElementWater)
	}
	if p.Chi != 0 {
		t.Errorf("chi = %d, want 0", p.Chi)
	}
	if p.StepsToday != 0 {
		t.Errorf("steps_today = %d, want 0", p.StepsToday)
	}
	if !strings.HasPrefix(p.AvatarURL, "https://placehold.co/100x100.png?text=K") {
		t.Errorf("avatar_url = %q, want lettered placeholder", p.AvatarURL)
	}
	if p.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestProfileCreateKeepsExplicitAvatar(t *testing.T) {
	ps, _ := setupTestDB(t)

	p, err := ps.Create("Toph", model.ElementEarth, "https://example.com/toph.png")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if p.AvatarURL != "https://example.com/toph.png" {
		t.Errorf("avatar_url = %q, want explicit url", p.AvatarURL)
	}
}

func TestProfileGetByIDNotFound(t *testing.T) {
	ps, _ := setupTestDB(t)

	p, err := ps.GetByID("no-such-id")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p != nil {
		t.Error("expected nil for nonexistent profile")
	}
}

func TestProfileListOrderedByName(t *testing.T) {
	ps, _ := setupTestDB(t)

	for _, name := range []string{"Zuko", "Aang", "Katara"} {
		if _, err := ps.Create(name, model.ElementFire, ""); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	profiles, err := ps.List()
	if err != nil {
		t.Fatalf("list profiles: %v", err)
	}
	want := []string{"Aang", "Katara", "Zuko"}
	if len(profiles) != len(want) {
		t.Fatalf("expected %d profiles, got %d", len(want), len(profiles))
	}
	for i, name := range want {
		if profiles[i].Name != name {
			t.Errorf("profiles[%d].Name = %q, want %q", i, profiles[i].Name, name)
		}
	}
}

func TestProfilePartialUpdate(t *testing.T) {
	ps, _ := setupTestDB(t)

	p, err := ps.Create("Sokka", model.ElementWater, "")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	name := "Sokka of the Water Tribe"
	updated, err := ps.Update(p.ID, ProfileUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Name != name {
		t.Errorf("name = %q, want %q", updated.Name, name)
	}
	if updated.Element != model.ElementWater {
		t.Errorf("element changed to %q on name-only update", updated.Element)
	}
	if updated.AvatarURL != p.AvatarURL {
		t.Errorf("avatar_url changed to %q on name-only update", updated.AvatarURL)
	}

	steps := 8500
	updated, err = ps.Update(p.ID, ProfileUpdate{StepsToday: &steps})
	if err != nil {
		t.Fatalf("update steps: %v", err)
	}
	if updated.StepsToday != 8500 {
		t.Errorf("steps_today = %d, want 8500", updated.StepsToday)
	}
	if updated.Name != name {
		t.Errorf("name reverted to %q on steps-only update", updated.Name)
	}
}

func TestProfileUpdateNoFields(t *testing.T) {
	ps, _ := setupTestDB(t)

	p, err := ps.Create("Iroh", model.ElementFire, "")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	same, err := ps.Update(p.ID, ProfileUpdate{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if same.Name != "Iroh" {
		t.Errorf("name = %q after empty update", same.Name)
	}
}

func TestAddChi(t *testing.T) {
	ps, _ := setupTestDB(t)

	p, err := ps.Create("Aang", model.ElementAir, "")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	applied, err := ps.AddChi(p.ID, 50)
	if err != nil {
		t.Fatalf("add chi: %v", err)
	}
	if !applied {
		t.Fatal("expected chi award to apply")
	}
	applied, err = ps.AddChi(p.ID, 50)
	if err != nil {
		t.Fatalf("add chi again: %v", err)
	}
	if !applied {
		t.Fatal("expected second chi award to apply")
	}

	got, err := ps.GetByID(p.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got.Chi != 100 {
		t.Errorf("chi = %d, want 100", got.Chi)
	}
}

func TestAddChiMissingProfile(t *testing.T) {
	ps, _ := setupTestDB(t)

	applied, err := ps.AddChi("no-such-id", 50)
	if err != nil {
		t.Fatalf("add chi: %v", err)
	}
	if applied {
		t.Error("expected no-op for missing profile")
	}
}

func TestAddChiConcurrent(t *testing.T) {
	ps, _ := setupTestDB(t)

	p, err := ps.Create("Aang", model.ElementAir, "")
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	const workers = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ps.AddChi(p.ID, 50); err != nil {
				t.Errorf("add chi: %v", err)
			}
		}()
	}
	wg.Wait()

	got, err := ps.GetByID(p.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got.Chi != workers*50 {
		t.Errorf("chi = %d, want %d", got.Chi, workers*50)
	}
}
