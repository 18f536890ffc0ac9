package model

import "time"

type Profile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Element    Element   `json:"element"`
	Chi        int       `json:"chi"`
	StepsToday int       `json:"steps_today"`
	AvatarURL  string    `json:"avatar_url"`
	CreatedAt  time.Time `json:"created_at"`
}
