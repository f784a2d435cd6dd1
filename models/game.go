package models

import "time"

// GameComposition tags how a game is played: by individual players, by
// teams, or either.
const (
	CompositionPlayer       = "player"
	CompositionTeam         = "team"
	CompositionPlayerOrTeam = "player_or_team"
)

type Game struct {
	ID                         int        `json:"id"`
	Name                       string     `json:"name"`
	Description                *string    `json:"description,omitempty"`
	GameComposition            string     `json:"game_composition"`
	MinNumberOfTeams           *int       `json:"min_number_of_teams,omitempty"`
	MaxNumberOfTeams           *int       `json:"max_number_of_teams,omitempty"`
	MinNumberOfPlayers         int        `json:"min_number_of_players"`
	MaxNumberOfPlayers         *int       `json:"max_number_of_players,omitempty"`
	MinNumberOfPlayersPerTeams *int       `json:"min_number_of_players_per_teams,omitempty"`
	MaxNumberOfPlayersPerTeams *int       `json:"max_number_of_players_per_teams,omitempty"`
	Thumbnail                  *string    `json:"thumbnail,omitempty"`
	Active                     bool       `json:"active"`
	CreatedAt                  time.Time  `json:"created_at"`
	UpdatedAt                  *time.Time `json:"updated_at"`
}
