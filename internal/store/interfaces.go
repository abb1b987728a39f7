package store

import (
	"context"

	"github.com/MKhiriev/guest-nama/models"
)

// UserRepository persists accounts.
type UserRepository interface {
	// ListUsers returns every account including its password hash.
	ListUsers(ctx context.Context) ([]models.User, error)
	// CreateUser inserts user. A phone collision yields [ErrPhoneAlreadyExists].
	CreateUser(ctx context.Context, user models.User) error
	// UserExists reports whether an account with userID is present.
	UserExists(ctx context.Context, userID string) (bool, error)
}

// GuestRepository persists guest households.
type GuestRepository interface {
	// ListGuests returns the guests owned by userID, or every guest when
	// role is ADMIN.
	ListGuests(ctx context.Context, userID string, role models.Role) ([]models.Guest, error)
	CreateGuest(ctx context.Context, guest models.Guest) error
	UpdateGuestStatus(ctx context.Context, update models.GuestStatusUpdate) error
	DeleteGuest(ctx context.Context, guestID string) error
}

// FinanceRepository persists ledger entries.
type FinanceRepository interface {
	ListFinance(ctx context.Context, userID string) ([]models.FinanceEntry, error)
	CreateFinanceEntry(ctx context.Context, entry models.FinanceEntry) error
}

// TaskRepository persists checklist tasks.
type TaskRepository interface {
	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	CreateTask(ctx context.Context, task models.Task) error
	SetTaskCompletion(ctx context.Context, update models.TaskCompletionUpdate) error
}
