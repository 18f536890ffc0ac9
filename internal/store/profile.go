package store

import (
	"database/sql"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/nelld28/chorebender/internal/model"
)

// defaultAvatarURL returns the placeholder avatar for a profile created
// without an image, stamped with the first letter of the name.
func defaultAvatarURL(name string) string {
	initial := ""
	for _, r := range name {
		initial = string(r)
		break
	}
	return "https://placehold.co/100x100.png?text=" + url.QueryEscape(initial)
}

type ProfileStore struct {
	db *sql.DB
}

func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

const profileCols = `id, name, element, chi, steps_today, avatar_url, created_at`

func scanProfile(scanner interface{ Scan(...any) error }) (*model.Profile, error) {
	var p model.Profile
	err := scanner.Scan(&p.ID, &p.Name, &p.Element, &p.Chi, &p.StepsToday, &p.AvatarURL, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProfileStore) Create(name string, element model.Element, avatarURL string) (*model.Profile, error) {
	if avatarURL == "" {
		avatarURL = defaultAvatarURL(name)
	}

	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO profiles (id, name, element, avatar_url) VALUES (?, ?, ?, ?)`,
		id, name, element, avatarURL,
	)
	if err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return s.GetByID(id)
}

func (s *ProfileStore) GetByID(id string) (*model.Profile, error) {
	row := s.db.QueryRow(`SELECT `+profileCols+` FROM profiles WHERE id = ?`, id)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *ProfileStore) List() ([]model.Profile, error) {
	rows, err := s.db.Query(`SELECT ` + profileCols + ` FROM profiles ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// ProfileUpdate carries a partial profile edit. Nil fields are left untouched.
// Chi is deliberately absent: the balance only moves through AddChi.
type ProfileUpdate struct {
	Name       *string
	Element    *model.Element
	AvatarURL  *string
	StepsToday *int
}

func (s *ProfileStore) Update(id string, u ProfileUpdate) (*model.Profile, error) {
	sets := []string{}
	args := []any{}
	if u.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *u.Name)
	}
	if u.Element != nil {
		sets = append(sets, "element = ?")
		args = append(args, *u.Element)
	}
	if u.AvatarURL != nil {
		sets = append(sets, "avatar_url = ?")
		args = append(args, *u.AvatarURL)
	}
	if u.StepsToday != nil {
		sets = append(sets, "steps_today = ?")
		args = append(args, *u.StepsToday)
	}
	if len(sets) == 0 {
		return s.GetByID(id)
	}

	args = append(args, id)
	query := "UPDATE profiles SET "
	for i, set := range sets {
		if i > 0 {
			query += ", "
		}
		query += set
	}
	query += " WHERE id = ?"

	if _, err := s.db.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return s.GetByID(id)
}

// AddChi atomically increments a profile's chi balance. It reports whether a
// row was updated, so a dangling profile reference settles as a quiet no-op.
func (s *ProfileStore) AddChi(id string, amount int) (bool, error) {
	result, err := s.db.Exec(`UPDATE profiles SET chi = chi + ? WHERE id = ?`, amount, id)
	if err != nil {
		return false, fmt.Errorf("add chi: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
