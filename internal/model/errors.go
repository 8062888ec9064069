package model

import "github.com/pkg/errors"

// Business-rule failures. All are terminal for the current operation; the
// rest layer maps them onto response statuses.
var (
	ErrClubNotFound     = errors.New("club not found")
	ErrMemberNotFound   = errors.New("member not found")
	ErrLanguageNotFound = errors.New("language not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrHostNotFound     = errors.New("club has no host")
	ErrOverCapacity     = errors.New("club is already full")
	ErrAlreadyApproved  = errors.New("member is already approved")
	ErrAlreadyApplied   = errors.New("member has already applied")
	ErrNotHost          = errors.New("requester is not the club host")
	ErrInvalidGender    = errors.New("invalid gender")
)
