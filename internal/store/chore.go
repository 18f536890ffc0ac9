package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nelld28/chorebender/internal/model"
)

type ChoreStore struct {
	db *sql.DB
}

func NewChoreStore(db *sql.DB) *ChoreStore {
	return &ChoreStore{db: db}
}

const choreCols = `id, name, description, assigned_to, assignee_name, assignee_avatar_url, due_date, is_completed, element_type, created_at`

func scanChore(scanner interface{ Scan(...any) error }) (*model.Chore, error) {
	var c model.Chore
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Description, &c.AssignedTo,
		&c.AssigneeName, &c.AssigneeAvatarURL,
		&c.DueDate, &c.IsCompleted, &c.ElementType, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// NewChore carries the fields the lifecycle persists on create. The assignee
// snapshot fields arrive already resolved; new chores are always incomplete.
type NewChore struct {
	Name              string
	Description       string
	AssignedTo        string
	AssigneeName      string
	AssigneeAvatarURL string
	DueDate           time.Time
	ElementType       model.Element
}

func (s *ChoreStore) Create(in NewChore) (*model.Chore, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO chores (id, name, description, assigned_to, assignee_name, assignee_avatar_url, due_date, is_completed, element_type)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?)`,
		id, in.Name, in.Description, in.AssignedTo, in.AssigneeName, in.AssigneeAvatarURL, in.DueDate.UTC(), in.ElementType,
	)
	if err != nil {
		return nil, fmt.Errorf("insert chore: %w", err)
	}
	return s.GetByID(id)
}

func (s *ChoreStore) GetByID(id string) (*model.Chore, error) {
	row := s.db.QueryRow(`SELECT `+choreCols+` FROM chores WHERE id = ?`, id)
	c, err := scanChore(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chore: %w", err)
	}
	return c, nil
}

func (s *ChoreStore) queryChores(query string, args ...any) ([]model.Chore, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list chores: %w", err)
	}
	defer rows.Close()

	var chores []model.Chore
	for rows.Next() {
		c, err := scanChore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chore: %w", err)
		}
		chores = append(chores, *c)
	}
	return chores, rows.Err()
}

// List returns all chores in insertion order. Display ordering (completed
// last, due date ascending) is applied by the chore package, not here.
func (s *ChoreStore) List() ([]model.Chore, error) {
	return s.queryChores(`SELECT ` + choreCols + ` FROM chores ORDER BY created_at ASC, id ASC`)
}

func (s *ChoreStore) ListByElement(element model.Element) ([]model.Chore, error) {
	return s.queryChores(
		`SELECT `+choreCols+` FROM chores WHERE element_type = ? ORDER BY created_at ASC, id ASC`,
		element,
	)
}

func (s *ChoreStore) ListByAssignee(profileID string) ([]model.Chore, error) {
	return s.queryChores(
		`SELECT `+choreCols+` FROM chores WHERE assigned_to = ? ORDER BY due_date ASC, id ASC`,
		profileID,
	)
}

// ChoreUpdate carries a partial chore edit. Nil fields are left untouched.
// The snapshot pair travels with AssignedTo and the completion flag is not
// representable here; it only moves through SetCompleted.
type ChoreUpdate struct {
	Name              *string
	Description       *string
	AssignedTo        *string
	AssigneeName      *string
	AssigneeAvatarURL *string
	DueDate           *time.Time
	ElementType       *model.Element
}

func (s *ChoreStore) Update(id string, u ChoreUpdate) (*model.Chore, error) {
	sets := []string{}
	args := []any{}
	if u.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *u.Name)
	}
	if u.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *u.Description)
	}
	if u.AssignedTo != nil {
		sets = append(sets, "assigned_to = ?")
		args = append(args, *u.AssignedTo)
	}
	if u.AssigneeName != nil {
		sets = append(sets, "assignee_name = ?")
		args = append(args, *u.AssigneeName)
	}
	if u.AssigneeAvatarURL != nil {
		sets = append(sets, "assignee_avatar_url = ?")
		args = append(args, *u.AssigneeAvatarURL)
	}
	if u.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, u.DueDate.UTC())
	}
	if u.ElementType != nil {
		sets = append(sets, "element_type = ?")
		args = append(args, *u.ElementType)
	}
	if len(sets) == 0 {
		return s.GetByID(id)
	}

	args = append(args, id)
	query := "UPDATE chores SET "
	for i, set := range sets {
		if i > 0 {
			query += ", "
		}
		query += set
	}
	query += " WHERE id = ?"

	if _, err := s.db.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("update chore: %w", err)
	}
	return s.GetByID(id)
}

func (s *ChoreStore) SetCompleted(id string, completed bool) error {
	_, err := s.db.Exec(`UPDATE chores SET is_completed = ? WHERE id = ?`, completed, id)
	if err != nil {
		return fmt.Errorf("set completed: %w", err)
	}
	return nil
}

func (s *ChoreStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM chores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete chore: %w", err)
	}
	return nil
}
