package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/guest-nama/models"
)

// RecordValidator implements Validator for the event records written by
// the storage service: guests, finance entries, tasks and their partial
// updates.
//
// Every supported model is accepted both by value and by pointer. Optional
// field names restrict validation to the named subset.
type RecordValidator struct{}

// NewRecordValidator constructs a RecordValidator and returns it as Validator.
func NewRecordValidator() Validator {
	return &RecordValidator{}
}

// Validate dispatches to the type-specific check.
//
// Supported types:
//   - models.Guest / *models.Guest
//   - models.GuestStatusUpdate / *models.GuestStatusUpdate
//   - models.FinanceEntry / *models.FinanceEntry
//   - models.Task / *models.Task
//   - models.TaskCompletionUpdate / *models.TaskCompletionUpdate
func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Guest:
		return v.validateGuest(ctx, value, fields...)
	case *models.Guest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateGuest(ctx, *value, fields...)

	case models.GuestStatusUpdate:
		return v.validateGuestStatusUpdate(ctx, value, fields...)
	case *models.GuestStatusUpdate:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateGuestStatusUpdate(ctx, *value, fields...)

	case models.FinanceEntry:
		return v.validateFinanceEntry(ctx, value, fields...)
	case *models.FinanceEntry:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateFinanceEntry(ctx, *value, fields...)

	case models.Task:
		return v.validateTask(ctx, value, fields...)
	case *models.Task:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTask(ctx, *value, fields...)

	case models.TaskCompletionUpdate:
		return v.validateTaskCompletionUpdate(ctx, value, fields...)
	case *models.TaskCompletionUpdate:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTaskCompletionUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateGuest checks a guest household.
//
// Default fields: ID, UserID, Name, RSVPStatus, InvitationSent, Group,
// Headcount. Group may be empty.
func (v *RecordValidator) validateGuest(_ context.Context, guest models.Guest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldName, FieldRSVPStatus, FieldInvitationStatus, FieldGroup, FieldHeadcount}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(guest.ID) == "" {
				return ErrInvalidID
			}
		case FieldUserID:
			if strings.TrimSpace(guest.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldName:
			if strings.TrimSpace(guest.Name) == "" {
				return ErrEmptyName
			}
		case FieldRSVPStatus:
			if !guest.RSVPStatus.IsValid() {
				return ErrInvalidRSVPStatus
			}
		case FieldInvitationStatus:
			if !isValidInvitationStatus(guest.InvitationSent) {
				return ErrInvalidInvitationStatus
			}
		case FieldGroup:
			if guest.Group != "" && !isValidGroup(guest.Group) {
				return ErrInvalidGroup
			}
		case FieldHeadcount:
			if guest.Men.Float() < 0 || guest.Women.Float() < 0 || guest.Children.Float() < 0 {
				return ErrNegativeHeadcount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateGuestStatusUpdate(_ context.Context, update models.GuestStatusUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGuestID, FieldRSVPStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldGuestID:
			if strings.TrimSpace(update.GuestID) == "" {
				return ErrInvalidGuestID
			}
		case FieldRSVPStatus:
			if !update.RSVPStatus.IsValid() {
				return ErrInvalidRSVPStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFinanceEntry checks a ledger entry. Amount is stored unsigned;
// the direction comes from Type.
func (v *RecordValidator) validateFinanceEntry(_ context.Context, entry models.FinanceEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldFinanceType, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(entry.ID) == "" {
				return ErrInvalidID
			}
		case FieldUserID:
			if strings.TrimSpace(entry.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldFinanceType:
			if !entry.Type.IsValid() {
				return ErrInvalidFinanceType
			}
		case FieldAmount:
			amount := float64(entry.Amount)
			if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
				return ErrInvalidAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateTask(_ context.Context, task models.Task, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(task.ID) == "" {
				return ErrInvalidID
			}
		case FieldUserID:
			if strings.TrimSpace(task.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if strings.TrimSpace(task.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateTaskCompletionUpdate(_ context.Context, update models.TaskCompletionUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTaskID}
	}

	for _, f := range fields {
		switch f {
		case FieldTaskID:
			if strings.TrimSpace(update.TaskID) == "" {
				return ErrInvalidTaskID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidInvitationStatus(s models.InvitationStatus) bool {
	switch s {
	case models.InvitationNotSent, models.InvitationSent, models.InvitationDelivered, models.InvitationSeen:
		return true
	}
	return false
}

func isValidGroup(g models.GuestGroup) bool {
	switch g {
	case models.GroupFamily, models.GroupFriends, models.GroupColleagues, models.GroupOther:
		return true
	}
	return false
}
