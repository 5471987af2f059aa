// Package proposalapi exposes proposal authoring and submission over HTTP.
package proposalapi

import (
	"fmt"
	"time"

	"github.com/beka-birhanu/icare/domain"
	"github.com/beka-birhanu/icare/route"
)

// AppendStepRequest adds a step. Count is kept as text so that non numeric
// input is reported as an invalid count rather than a binding error.
type AppendStepRequest struct {
	Direction string `json:"direction" binding:"required"`
	Count     string `json:"count" binding:"required"`
}

// UpdateCountRequest changes the count of an existing step.
type UpdateCountRequest struct {
	Count string `json:"count" binding:"required"`
}

// MoveStepRequest moves a step to a new position.
type MoveStepRequest struct {
	To *int `json:"to" binding:"required"`
}

// ProposalResponse is the current draft.
type ProposalResponse struct {
	Steps     route.Steps `json:"steps"`
	UnitMoves int         `json:"unit_moves"`
	Text      string      `json:"text"`
}

func newProposalResponse(steps route.Steps) *ProposalResponse {
	if steps == nil {
		steps = route.Steps{}
	}
	return &ProposalResponse{
		Steps:     steps,
		UnitMoves: steps.UnitMoves(),
		Text:      steps.String(),
	}
}

// VerdictResponse reports the outcome of a submission.
type VerdictResponse struct {
	AttemptID    string        `json:"attempt_id"`
	Accepted     bool          `json:"accepted"`
	Verdict      route.Verdict `json:"verdict"`
	Message      string        `json:"message"`
	SubmittedAt  time.Time     `json:"submitted_at"`
	ProposalText string        `json:"proposal"`
}

func newVerdictResponse(a *domain.Attempt) *VerdictResponse {
	return &VerdictResponse{
		AttemptID:    a.ID.String(),
		Accepted:     a.Verdict.Accepted(),
		Verdict:      a.Verdict,
		Message:      verdictMessage(a.Verdict),
		SubmittedAt:  a.SubmittedAt,
		ProposalText: a.Steps.String(),
	}
}

func verdictMessage(v route.Verdict) string {
	switch v.Outcome {
	case route.Success:
		return "path accepted"
	case route.Blocked:
		return fmt.Sprintf("path rejected: blocked at %s on step %d, unit move %d", v.Cell, v.StepIndex+1, v.SubStepIndex+1)
	default:
		return fmt.Sprintf("path rejected: stopped at %s before reaching the goal", v.Cell)
	}
}
