package service

import (
	"context"

	"github.com/MKhiriev/guest-nama/models"
)

// AppInfoService exposes static information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserService manages accounts on the storage server.
type UserService interface {
	// ListUsers returns every account including password hashes.
	ListUsers(ctx context.Context) ([]models.User, error)

	// AddUser normalizes and stores a new account. It returns the stored
	// user. A phone collision is reported as store.ErrPhoneAlreadyExists.
	AddUser(ctx context.Context, user models.User) (models.User, error)

	// VerifyUser reports whether userID identifies a live account.
	VerifyUser(ctx context.Context, userID string) (bool, error)
}

// GuestService manages guest households.
type GuestService interface {
	ListGuests(ctx context.Context, userID string, role models.Role) ([]models.Guest, error)
	AddGuest(ctx context.Context, guest models.Guest) (models.Guest, error)
	UpdateGuestStatus(ctx context.Context, update models.GuestStatusUpdate) error
	DeleteGuest(ctx context.Context, guestID string) error
}

// FinanceService manages ledger entries.
type FinanceService interface {
	ListFinance(ctx context.Context, userID string) ([]models.FinanceEntry, error)
	AddFinanceEntry(ctx context.Context, entry models.FinanceEntry) (models.FinanceEntry, error)
}

// TaskService manages checklist tasks.
type TaskService interface {
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	AddTask(ctx context.Context, task models.Task) (models.Task, error)
	SetTaskCompletion(ctx context.Context, update models.TaskCompletionUpdate) error
}

// RecordService groups every event-record operation behind one value.
type RecordService interface {
	GuestService
	FinanceService
	TaskService
}

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// logging or validating.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService // returns a decorated RecordService applying additional behavior
}
