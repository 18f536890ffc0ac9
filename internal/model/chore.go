package model

import "time"

type Chore struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
	// AssigneeName and AssigneeAvatarURL are snapshots of the assignee's
	// profile taken at the last create/update that touched AssignedTo. They
	// are not kept in sync with later profile edits.
	AssigneeName      string    `json:"assignee_name"`
	AssigneeAvatarURL string    `json:"assignee_avatar_url"`
	DueDate           time.Time `json:"due_date"`
	IsCompleted       bool      `json:"is_completed"`
	ElementType       Element   `json:"element_type"`
	CreatedAt         time.Time `json:"created_at"`
}
