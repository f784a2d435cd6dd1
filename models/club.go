package models

import "time"

type Club struct {
	ID           int        `json:"id"`
	Nickname     string     `json:"nickname"`
	Creator      string     `json:"creator"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
