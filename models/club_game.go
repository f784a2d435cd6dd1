package models

import "time"

// ClubGame is a many-to-many link recording that a club plays a game. The
// link carries no payload and is independent of either entity's active
// flag: deactivating a game hides it from club listings without touching
// the row.
type ClubGame struct {
	ID        int       `json:"id"`
	ClubID    int       `json:"club_id"`
	GameID    int       `json:"game_id"`
	CreatedAt time.Time `json:"created_at"`
}
