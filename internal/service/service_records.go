package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/store"
	"github.com/MKhiriev/guest-nama/models"
)

type recordService struct {
	guests  store.GuestRepository
	finance store.FinanceRepository
	tasks   store.TaskRepository

	ids IDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewRecordService constructs the RecordService over the three record
// repositories. New records get a generated ID and a CreatedAt stamp here;
// input validation is the job of the validation wrapper.
func NewRecordService(storages *store.Storages, ids IDGenerator, logger *logger.Logger) RecordService {
	return &recordService{
		guests:  storages.GuestRepository,
		finance: storages.FinanceRepository,
		tasks:   storages.TaskRepository,
		ids:     ids,
		now:     time.Now,
		logger:  logger,
	}
}

func (r *recordService) ListGuests(ctx context.Context, userID string, role models.Role) ([]models.Guest, error) {
	guests, err := r.guests.ListGuests(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return guests, nil
}

// AddGuest stores guest. Empty RSVP and invitation labels default to
// Pending and Not Sent.
func (r *recordService) AddGuest(ctx context.Context, guest models.Guest) (models.Guest, error) {
	guest.ID = r.newID(guest.ID)
	guest.CreatedAt = r.stamp(guest.CreatedAt)
	if guest.RSVPStatus == "" {
		guest.RSVPStatus = models.RSVPPending
	}
	if guest.InvitationSent == "" {
		guest.InvitationSent = models.InvitationNotSent
	}

	if err := r.guests.CreateGuest(ctx, guest); err != nil {
		logger.FromContext(ctx).Err(err).Str("guest_id", guest.ID).Msg("guest creation ended with error")
		return models.Guest{}, fmt.Errorf("add guest: %w", err)
	}
	return guest, nil
}

func (r *recordService) UpdateGuestStatus(ctx context.Context, update models.GuestStatusUpdate) error {
	if err := r.guests.UpdateGuestStatus(ctx, update); err != nil {
		return fmt.Errorf("update guest status: %w", err)
	}
	return nil
}

func (r *recordService) DeleteGuest(ctx context.Context, guestID string) error {
	if err := r.guests.DeleteGuest(ctx, guestID); err != nil {
		return fmt.Errorf("delete guest: %w", err)
	}
	return nil
}

func (r *recordService) ListFinance(ctx context.Context, userID string) ([]models.FinanceEntry, error) {
	entries, err := r.finance.ListFinance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list finance: %w", err)
	}
	return entries, nil
}

func (r *recordService) AddFinanceEntry(ctx context.Context, entry models.FinanceEntry) (models.FinanceEntry, error) {
	entry.ID = r.newID(entry.ID)
	entry.CreatedAt = r.stamp(entry.CreatedAt)

	if err := r.finance.CreateFinanceEntry(ctx, entry); err != nil {
		logger.FromContext(ctx).Err(err).Str("entry_id", entry.ID).Msg("finance entry creation ended with error")
		return models.FinanceEntry{}, fmt.Errorf("add finance entry: %w", err)
	}
	return entry, nil
}

func (r *recordService) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	tasks, err := r.tasks.ListTasks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *recordService) AddTask(ctx context.Context, task models.Task) (models.Task, error) {
	task.ID = r.newID(task.ID)
	task.CreatedAt = r.stamp(task.CreatedAt)
	task.Title = strings.TrimSpace(task.Title)

	if err := r.tasks.CreateTask(ctx, task); err != nil {
		logger.FromContext(ctx).Err(err).Str("task_id", task.ID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("add task: %w", err)
	}
	return task, nil
}

func (r *recordService) SetTaskCompletion(ctx context.Context, update models.TaskCompletionUpdate) error {
	if err := r.tasks.SetTaskCompletion(ctx, update); err != nil {
		return fmt.Errorf("set task completion: %w", err)
	}
	return nil
}

func (r *recordService) newID(id string) string {
	if id != "" {
		return id
	}
	return r.ids.Generate()
}

func (r *recordService) stamp(t time.Time) time.Time {
	if !t.IsZero() {
		return t
	}
	return r.now().UTC()
}
