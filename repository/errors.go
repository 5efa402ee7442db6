package repository

import "errors"

// Domain rule violations surfaced by the repositories. Handlers map these to
// 400 responses; gorm.ErrRecordNotFound maps to 404 and anything else is
// treated as an infrastructure failure.
var (
	ErrUsernameTaken    = errors.New("username already exists")
	ErrBranchHeadExists = errors.New("branch already has a branch head")
	ErrComplaintClosed  = errors.New("complaint is already closed")
)
