package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID           = errors.New("invalid ID")
	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrEmptyName           = errors.New("name is required")
	ErrInvalidPhone        = errors.New("phone must be digits only without leading zeros")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidPasswordHash = errors.New("password hash must be 64 lower-case hex characters")

	ErrInvalidGuestID          = errors.New("invalid guest ID")
	ErrInvalidRSVPStatus       = errors.New("invalid RSVP status")
	ErrInvalidInvitationStatus = errors.New("invalid invitation status")
	ErrInvalidGroup            = errors.New("invalid guest group")
	ErrNegativeHeadcount       = errors.New("headcount cannot be negative")

	ErrInvalidFinanceType = errors.New("invalid finance type")
	ErrInvalidAmount      = errors.New("amount must be a non-negative number")

	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrEmptyTitle    = errors.New("title is required")
)
