package services

import "errors"

// Natural-key collision errors. Handlers map these to 409 Conflict.
var (
	ErrDuplicateSubmission     = errors.New("a submission for this contest already exists")
	ErrDuplicateWinner         = errors.New("a winner has already been declared for this contest")
	ErrDuplicateCreatorRequest = errors.New("a creator request for this email is already pending approval")
)

// Ownership / state errors
var (
	ErrNotContestOwner = errors.New("contest is owned by another creator")
	ErrContestNotEditable = errors.New("only pending contests can be updated")
)

// ErrInvalidCredentials is returned on a failed ops login
var ErrInvalidCredentials = errors.New("invalid credentials")
