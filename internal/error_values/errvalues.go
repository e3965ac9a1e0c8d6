package errorvalues

import "errors"

var (
	ErrNoState      = errors.New("no saved state")
	ErrCorruptState = errors.New("saved state is corrupt")
	ErrNotOnboarded = errors.New("profile is not set up yet")
	ErrStateReset   = errors.New("state was reset while the request was running")

	ErrInvalidProfile    = errors.New("invalid profile")
	ErrEmptyGoalTitle    = errors.New("goal title is empty")
	ErrGoalNotFound      = errors.New("goal doesn't exist")
	ErrEmptyLog          = errors.New("log has neither wins nor failures")
	ErrInvalidFocus      = errors.New("focus must be between 1 and 10")
	ErrInvalidWastedTime = errors.New("wasted time must be one of 0, 1, 2, 3, 4, 5+")

	ErrCallInFlight = errors.New("request for this action is already in progress")
	ErrUnknownSite  = errors.New("unknown call site")
)
