package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/models"
	"github.com/jackc/pgerrcode"
)

// guestRepository is the PostgreSQL-backed implementation of [GuestRepository].
type guestRepository struct {
	*DB
	logger *logger.Logger
}

func NewGuestRepository(db *DB, logger *logger.Logger) GuestRepository {
	return &guestRepository{
		DB:     db,
		logger: logger,
	}
}

// ListGuests returns the guests visible to the caller. Role scoping is done
// by [buildSelectGuestsQuery].
func (g *guestRepository) ListGuests(ctx context.Context, userID string, role models.Role) ([]models.Guest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectGuestsQuery(userID, role)
	if err != nil {
		log.Err(err).Str("func", "guestRepository.ListGuests").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var guests []models.Guest
	err = g.retryRead(ctx, func() error {
		rows, err := g.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		guests = make([]models.Guest, 0, 64)
		for rows.Next() {
			var (
				item                 models.Guest
				men, women, children float64
			)
			scanErr := rows.Scan(
				&item.ID,
				&item.UserID,
				&item.Name,
				&item.Phone,
				&item.City,
				&item.VIP,
				&men,
				&women,
				&children,
				&item.Relationship,
				&item.OwnCar,
				&item.InvitedBy,
				&item.RSVPStatus,
				&item.InvitationRequired,
				&item.InvitationSent,
				&item.CheckedIn,
				&item.Group,
				&item.Notes,
				&item.EventDate,
				&item.CreatedAt,
			)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			item.Men, item.Women, item.Children = models.Number(men), models.Number(women), models.Number(children)
			guests = append(guests, item)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).
			Str("func", "guestRepository.ListGuests").
			Str("user_id", userID).
			Str("role", string(role)).
			Msg("failed to list guests")
		return nil, err
	}

	return guests, nil
}

func (g *guestRepository) CreateGuest(ctx context.Context, guest models.Guest) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertGuestQuery(guest)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = g.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "guestRepository.CreateGuest").
			Str("user_id", guest.UserID).
			Msg("failed to insert guest")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrUnknownUser
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (g *guestRepository) UpdateGuestStatus(ctx context.Context, update models.GuestStatusUpdate) error {
	log := logger.FromContext(ctx)

	res, err := g.DB.ExecContext(ctx, updateGuestStatus, string(update.RSVPStatus), update.GuestID)
	if err != nil {
		log.Err(err).Str("func", "guestRepository.UpdateGuestStatus").Str("guest_id", update.GuestID).Msg("failed to update guest status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrGuestNotFound)
}

func (g *guestRepository) DeleteGuest(ctx context.Context, guestID string) error {
	log := logger.FromContext(ctx)

	res, err := g.DB.ExecContext(ctx, deleteGuest, guestID)
	if err != nil {
		log.Err(err).Str("func", "guestRepository.DeleteGuest").Str("guest_id", guestID).Msg("failed to delete guest")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(res, ErrGuestNotFound)
}
