// Package lifecycle orchestrates chore create/update/complete/delete,
// including the assignee denormalization snapshot and the chi award that
// settles when a chore flips to complete.
package lifecycle

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nelld28/chorebender/internal/model"
	"github.com/nelld28/chorebender/internal/store"
)

// CompletionAward is the chi granted to the assignee when a chore transitions
// to complete. There is no symmetric deduction on un-completing.
const CompletionAward = 50

const (
	unknownAssigneeName  = "Unknown"
	placeholderAvatarURL = "https://placehold.co/40x40.png"
)

const minNameLen = 3

// ErrChoreNotFound is returned when an operation targets a chore id that does
// not exist.
var ErrChoreNotFound = errors.New("chore not found")

// ValidationError reports an input that failed shape checks before any store
// access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

type Service struct {
	chores   *store.ChoreStore
	profiles *store.ProfileStore
	logger   *slog.Logger
}

func NewService(cs *store.ChoreStore, ps *store.ProfileStore, logger *slog.Logger) *Service {
	return &Service{chores: cs, profiles: ps, logger: logger}
}

// ChoreInput is the payload for creating a chore.
type ChoreInput struct {
	Name        string
	Description string
	AssignedTo  string
	DueDate     string
	ElementType string
}

// ChoreUpdate is a partial edit; nil fields are left untouched. The
// completion flag is not part of this type and only moves through
// ToggleComplete.
type ChoreUpdate struct {
	Name        *string
	Description *string
	AssignedTo  *string
	DueDate     *string
	ElementType *string
}

// Create validates the input, snapshots the assignee's display fields, and
// inserts a new incomplete chore. A failed assignee lookup falls back to
// placeholder display values rather than failing the create.
func (s *Service) Create(in ChoreInput) (string, error) {
	name := strings.TrimSpace(in.Name)
	if len([]rune(name)) < minNameLen {
		return "", &ValidationError{"name", fmt.Sprintf("must be at least %d characters", minNameLen)}
	}
	if strings.TrimSpace(in.AssignedTo) == "" {
		return "", &ValidationError{"assigned_to", "is required"}
	}
	due, err := parseDueDate(in.DueDate)
	if err != nil {
		return "", &ValidationError{"due_date", "must be a date like 2025-01-10"}
	}
	element, err := model.ParseElement(in.ElementType)
	if err != nil {
		return "", &ValidationError{"element_type", "must be one of air, water, earth, fire"}
	}

	assigneeName, assigneeAvatar := s.resolveAssignee(in.AssignedTo)

	c, err := s.chores.Create(store.NewChore{
		Name:              name,
		Description:       in.Description,
		AssignedTo:        in.AssignedTo,
		AssigneeName:      assigneeName,
		AssigneeAvatarURL: assigneeAvatar,
		DueDate:           due,
		ElementType:       element,
	})
	if err != nil {
		return "", fmt.Errorf("create chore: %w", err)
	}
	return c.ID, nil
}

// Update overwrites the fields present in u. When AssignedTo is present the
// assignee snapshot is re-taken against the profile's current state; absent
// fields, including the old snapshot, are left as they are.
func (s *Service) Update(id string, u ChoreUpdate) error {
	existing, err := s.chores.GetByID(id)
	if err != nil {
		return fmt.Errorf("get chore: %w", err)
	}
	if existing == nil {
		return ErrChoreNotFound
	}

	var su store.ChoreUpdate
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if len([]rune(name)) < minNameLen {
			return &ValidationError{"name", fmt.Sprintf("must be at least %d characters", minNameLen)}
		}
		su.Name = &name
	}
	if u.Description != nil {
		su.Description = u.Description
	}
	if u.DueDate != nil {
		due, err := parseDueDate(*u.DueDate)
		if err != nil {
			return &ValidationError{"due_date", "must be a date like 2025-01-10"}
		}
		su.DueDate = &due
	}
	if u.ElementType != nil {
		element, err := model.ParseElement(*u.ElementType)
		if err != nil {
			return &ValidationError{"element_type", "must be one of air, water, earth, fire"}
		}
		su.ElementType = &element
	}
	if u.AssignedTo != nil {
		assignedTo := strings.TrimSpace(*u.AssignedTo)
		if assignedTo == "" {
			return &ValidationError{"assigned_to", "must not be empty"}
		}
		assigneeName, assigneeAvatar := s.resolveAssignee(assignedTo)
		su.AssignedTo = &assignedTo
		su.AssigneeName = &assigneeName
		su.AssigneeAvatarURL = &assigneeAvatar
	}

	if _, err := s.chores.Update(id, su); err != nil {
		return fmt.Errorf("update chore: %w", err)
	}
	return nil
}

// ToggleComplete overwrites the completion flag. When the chore flips to
// complete, its assignee is awarded CompletionAward chi via an atomic
// increment. The flag is persisted before settlement, so a settlement failure
// leaves the chore completed with no award. There is no guard against
// settling the same chore twice.
func (s *Service) ToggleComplete(id string, completed bool) error {
	existing, err := s.chores.GetByID(id)
	if err != nil {
		return fmt.Errorf("get chore: %w", err)
	}
	if existing == nil {
		return ErrChoreNotFound
	}

	if err := s.chores.SetCompleted(id, completed); err != nil {
		return fmt.Errorf("set completed: %w", err)
	}
	if !completed {
		return nil
	}

	// Re-read to settle against the current assignee, not the one observed
	// before the flag write.
	c, err := s.chores.GetByID(id)
	if err != nil {
		return fmt.Errorf("settlement read: %w", err)
	}
	if c == nil || c.AssignedTo == "" {
		return nil
	}

	applied, err := s.profiles.AddChi(c.AssignedTo, CompletionAward)
	if err != nil {
		return fmt.Errorf("award chi: %w", err)
	}
	if !applied {
		s.logger.Warn("chi award skipped, assignee profile missing",
			"chore_id", id, "profile_id", c.AssignedTo)
	}
	return nil
}

// Delete removes the chore. Chi already awarded for it is kept.
func (s *Service) Delete(id string) error {
	existing, err := s.chores.GetByID(id)
	if err != nil {
		return fmt.Errorf("get chore: %w", err)
	}
	if existing == nil {
		return ErrChoreNotFound
	}
	if err := s.chores.Delete(id); err != nil {
		return fmt.Errorf("delete chore: %w", err)
	}
	return nil
}

// resolveAssignee looks up the assignee's current display fields for the
// denormalized snapshot. Misses and read failures both degrade to
// placeholders; a chore write never fails on the lookup.
func (s *Service) resolveAssignee(profileID string) (name, avatarURL string) {
	p, err := s.profiles.GetByID(profileID)
	if err != nil {
		s.logger.Warn("assignee lookup failed", "profile_id", profileID, "error", err)
		return unknownAssigneeName, placeholderAvatarURL
	}
	if p == nil {
		return unknownAssigneeName, placeholderAvatarURL
	}
	avatar := p.AvatarURL
	if avatar == "" {
		avatar = placeholderAvatarURL
	}
	return p.Name, avatar
}

func parseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty due date")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable due date %q", s)
}
