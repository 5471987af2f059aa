// Package domain holds the records the service persists.
package domain

import (
	"time"

	"github.com/beka-birhanu/icare/route"
	"github.com/google/uuid"
)

// Attempt is one submitted proposal together with the verdict it received.
type Attempt struct {
	ID          uuid.UUID     `bson:"_id" json:"id"`
	PlayerID    uuid.UUID     `bson:"playerId" json:"player_id"`
	Steps       route.Steps   `bson:"steps" json:"steps"`
	Start       route.Cell    `bson:"start" json:"start"`
	Goal        route.Cell    `bson:"goal" json:"goal"`
	Verdict     route.Verdict `bson:"verdict" json:"verdict"`
	SubmittedAt time.Time     `bson:"submittedAt" json:"submitted_at"`
}

// NewAttempt stamps a verdict with a fresh ID and the current time.
func NewAttempt(playerID uuid.UUID, steps route.Steps, start, goal route.Cell, v route.Verdict) *Attempt {
	return &Attempt{
		ID:          uuid.New(),
		PlayerID:    playerID,
		Steps:       steps,
		Start:       start,
		Goal:        goal,
		Verdict:     v,
		SubmittedAt: time.Now().UTC(),
	}
}
