package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/guest-nama/internal/validators"
	"github.com/MKhiriev/guest-nama/models"
)

// RecordValidationService is a RecordService decorator that rejects invalid
// input before it reaches the inner service. Reads only require a user ID.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

// NewRecordValidationService returns the validating wrapper. Call Wrap to
// attach the inner service.
func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RecordValidationService) Wrap(inner RecordService) RecordService {
	v.inner = inner
	return v
}

func (v *RecordValidationService) ListGuests(ctx context.Context, userID string, role models.Role) ([]models.Guest, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrValidationNoUserID
	}
	return v.inner.ListGuests(ctx, userID, role)
}

// AddGuest validates the caller-supplied fields only: the ID is assigned by
// the inner service and blank status labels are defaulted there.
func (v *RecordValidationService) AddGuest(ctx context.Context, guest models.Guest) (models.Guest, error) {
	fields := []string{validators.FieldUserID, validators.FieldName, validators.FieldGroup, validators.FieldHeadcount}
	if guest.RSVPStatus != "" {
		fields = append(fields, validators.FieldRSVPStatus)
	}
	if guest.InvitationSent != "" {
		fields = append(fields, validators.FieldInvitationStatus)
	}

	if err := v.validator.Validate(ctx, guest, fields...); err != nil {
		return models.Guest{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AddGuest(ctx, guest)
}

func (v *RecordValidationService) UpdateGuestStatus(ctx context.Context, update models.GuestStatusUpdate) error {
	if err := v.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateGuestStatus(ctx, update)
}

func (v *RecordValidationService) DeleteGuest(ctx context.Context, guestID string) error {
	if strings.TrimSpace(guestID) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidGuestID)
	}
	return v.inner.DeleteGuest(ctx, guestID)
}

func (v *RecordValidationService) ListFinance(ctx context.Context, userID string) ([]models.FinanceEntry, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrValidationNoUserID
	}
	return v.inner.ListFinance(ctx, userID)
}

func (v *RecordValidationService) AddFinanceEntry(ctx context.Context, entry models.FinanceEntry) (models.FinanceEntry, error) {
	err := v.validator.Validate(ctx, entry, validators.FieldUserID, validators.FieldFinanceType, validators.FieldAmount)
	if err != nil {
		return models.FinanceEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AddFinanceEntry(ctx, entry)
}

func (v *RecordValidationService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrValidationNoUserID
	}
	return v.inner.ListTasks(ctx, userID)
}

func (v *RecordValidationService) AddTask(ctx context.Context, task models.Task) (models.Task, error) {
	if err := v.validator.Validate(ctx, task, validators.FieldUserID, validators.FieldTitle); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AddTask(ctx, task)
}

func (v *RecordValidationService) SetTaskCompletion(ctx context.Context, update models.TaskCompletionUpdate) error {
	if err := v.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.SetTaskCompletion(ctx, update)
}
