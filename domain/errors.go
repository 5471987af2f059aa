package domain

import "errors"

var (
	// ErrDraftBusy is returned when another request holds the draft lock.
	ErrDraftBusy = errors.New("draft is being edited by another request")
)
