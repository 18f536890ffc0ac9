package store

import (
	"testing"
	"time"

	"github.com/nelld28/chorebender/internal/model"
)

func testChore(assignedTo, assigneeName string, due time.Time) NewChore {
	return NewChore{
		Name:              "Clean the living room",
		Description:       "Vacuum, dust, and tidy up",
		AssignedTo:        assignedTo,
		AssigneeName:      assigneeName,
		AssigneeAvatarURL: "https://placehold.co/40x40.png",
		DueDate:           due,
		ElementType:       model.ElementAir,
	}
}

func TestChoreCreate(t *testing.T) {
	_, cs := setupTestDB(t)

	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	c, err := cs.Create(testChore("profile-1", "Aang", due))
	if err != nil {
		t.Fatalf("create chore: %v", err)
	}
	if c.ID == "" {
		t.Fatal("expected generated id")
	}
	if c.IsCompleted {
		t.Error("new chore must start incomplete")
	}
	if c.AssigneeName != "Aang" {
		t.Errorf("assignee_name = %q, want %q", c.AssigneeName, "Aang")
	}
	if !c.DueDate.Equal(due) {
		t.Errorf("due_date = %v, want %v", c.DueDate, due)
	}
	if c.ElementType != model.ElementAir {
		t.Errorf("element_type = %q, want %q", c.ElementType, model.ElementAir)
	}
	if c.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestChoreGetByIDNotFound(t *testing.T) {
	_, cs := setupTestDB(t)

	c, err := cs.GetByID("no-such-id")
	if err != nil {
		t.Fatalf("get chore: %v", err)
	}
	if c != nil {
		t.Error("expected nil for nonexistent chore")
	}
}

func TestChorePartialUpdate(t *testing.T) {
	_, cs := setupTestDB(t)

	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	c, err := cs.Create(testChore("profile-1", "Aang", due))
	if err != nil {
		t.Fatalf("create chore: %v", err)
	}

	name := "Clean the kitchen"
	updated, err := cs.Update(c.ID, ChoreUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update chore: %v", err)
	}
	if updated.Name != name {
		t.Errorf("name = %q, want %q", updated.Name, name)
	}
	// Untouched fields survive a partial update.
	if updated.AssignedTo != "profile-1" {
		t.Errorf("assigned_to = %q, want %q", updated.AssignedTo, "profile-1")
	}
	if updated.AssigneeName != "Aang" {
		t.Errorf("assignee_name = %q, want %q", updated.AssigneeName, "Aang")
	}
	if !updated.DueDate.Equal(due) {
		t.Errorf("due_date = %v, want %v", updated.DueDate, due)
	}
	if updated.IsCompleted {
		t.Error("completion flag flipped by field update")
	}
}

func TestChoreSetCompleted(t *testing.T) {
	_, cs := setupTestDB(t)

	c, err := cs.Create(testChore("profile-1", "Aang", time.Now()))
	if err != nil {
		t.Fatalf("create chore: %v", err)
	}

	if err := cs.SetCompleted(c.ID, true); err != nil {
		t.Fatalf("set completed: %v", err)
	}
	got, err := cs.GetByID(c.ID)
	if err != nil {
		t.Fatalf("get chore: %v", err)
	}
	if !got.IsCompleted {
		t.Error("expected chore to be completed")
	}

	if err := cs.SetCompleted(c.ID, false); err != nil {
		t.Fatalf("set incomplete: %v", err)
	}
	got, err = cs.GetByID(c.ID)
	if err != nil {
		t.Fatalf("get chore: %v", err)
	}
	if got.IsCompleted {
		t.Error("expected chore to be incomplete again")
	}
}

func TestChoreDelete(t *testing.T) {
	_, cs := setupTestDB(t)

	c, err := cs.Create(testChore("profile-1", "Aang", time.Now()))
	if err != nil {
		t.Fatalf("create chore: %v", err)
	}

	if err := cs.Delete(c.ID); err != nil {
		t.Fatalf("delete chore: %v", err)
	}
	got, err := cs.GetByID(c.ID)
	if err != nil {
		t.Fatalf("get deleted chore: %v", err)
	}
	if got != nil {
		t.Error("expected nil for deleted chore")
	}
}

func TestChoreListByElement(t *testing.T) {
	_, cs := setupTestDB(t)

	air := testChore("p1", "Aang", time.Now())
	water := testChore("p2", "Katara", time.Now())
	water.ElementType = model.ElementWater

	if _, err := cs.Create(air); err != nil {
		t.Fatalf("create air chore: %v", err)
	}
	if _, err := cs.Create(water); err != nil {
		t.Fatalf("create water chore: %v", err)
	}

	chores, err := cs.ListByElement(model.ElementWater)
	if err != nil {
		t.Fatalf("list by element: %v", err)
	}
	if len(chores) != 1 {
		t.Fatalf("expected 1 water chore, got %d", len(chores))
	}
	if chores[0].AssignedTo != "p2" {
		t.Errorf("assigned_to = %q, want %q", chores[0].AssignedTo, "p2")
	}
}

func TestChoreListByAssigneeOrderedByDueDate(t *testing.T) {
	_, cs := setupTestDB(t)

	later := testChore("p1", "Aang", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	sooner := testChore("p1", "Aang", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	other := testChore("p2", "Katara", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))

	for _, in := range []NewChore{later, sooner, other} {
		if _, err := cs.Create(in); err != nil {
			t.Fatalf("create chore: %v", err)
		}
	}

	chores, err := cs.ListByAssignee("p1")
	if err != nil {
		t.Fatalf("list by assignee: %v", err)
	}
	if len(chores) != 2 {
		t.Fatalf("expected 2 chores, got %d", len(chores))
	}
	if !chores[0].DueDate.Before(chores[1].DueDate) {
		t.Errorf("chores not ordered by due date: %v, %v", chores[0].DueDate, chores[1].DueDate)
	}
}
