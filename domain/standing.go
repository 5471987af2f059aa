package domain

import "github.com/google/uuid"

// Standing is a player's best accepted proposal, measured in unit moves.
type Standing struct {
	PlayerID uuid.UUID `json:"player_id"`
	Moves    int       `json:"moves"`
}
