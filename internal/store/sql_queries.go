package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/guest-nama/models"
)

const (
	selectAllUsers = `SELECT id, name, phone, role, password_hash, created_at
    FROM users
    ORDER BY created_at;`

	insertUser = `INSERT INTO users (id, name, phone, role, password_hash, created_at)
    VALUES ($1, $2, $3, $4, $5, $6);`

	userExists = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1);`

	updateGuestStatus = `UPDATE guests SET rsvp_status = $1 WHERE id = $2;`

	deleteGuest = `DELETE FROM guests WHERE id = $1;`

	updateTaskCompletion = `UPDATE tasks SET is_completed = $1 WHERE id = $2;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var guestColumns = []string{
	"id",
	"user_id",
	"name",
	"phone",
	"city",
	"vip",
	"men",
	"women",
	"children",
	"relationship",
	"own_car",
	"invited_by",
	"rsvp_status",
	"invitation_required",
	"invitation_sent",
	"checked_in",
	"guest_group",
	"notes",
	"event_date",
	"created_at",
}

var financeColumns = []string{
	"id",
	"user_id",
	"type",
	"amount",
	"category",
	"description",
	"entry_date",
	"created_at",
}

var taskColumns = []string{
	"id",
	"user_id",
	"title",
	"is_completed",
	"due_date",
	"created_at",
}

// buildSelectGuestsQuery returns the guest list visible to a caller: every
// guest for ADMIN, only the caller's own guests otherwise.
func buildSelectGuestsQuery(userID string, role models.Role) (string, []any, error) {
	query := psql.Select(guestColumns...).From("guests")
	if role != models.RoleAdmin {
		query = query.Where(sq.Eq{"user_id": userID})
	}

	return query.OrderBy("created_at").ToSql()
}

func buildInsertGuestQuery(g models.Guest) (string, []any, error) {
	return psql.Insert("guests").
		Columns(guestColumns...).
		Values(
			g.ID,
			g.UserID,
			g.Name,
			g.Phone,
			g.City,
			g.VIP,
			g.Men.Float(),
			g.Women.Float(),
			g.Children.Float(),
			g.Relationship,
			g.OwnCar,
			g.InvitedBy,
			string(g.RSVPStatus),
			g.InvitationRequired,
			string(g.InvitationSent),
			g.CheckedIn,
			string(g.Group),
			g.Notes,
			g.EventDate,
			g.CreatedAt,
		).
		ToSql()
}

func buildSelectFinanceQuery(userID string) (string, []any, error) {
	return psql.Select(financeColumns...).
		From("finance_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		ToSql()
}

func buildInsertFinanceQuery(e models.FinanceEntry) (string, []any, error) {
	return psql.Insert("finance_entries").
		Columns(financeColumns...).
		Values(
			e.ID,
			e.UserID,
			string(e.Type),
			e.Amount.Float(),
			e.Category,
			e.Description,
			e.Date,
			e.CreatedAt,
		).
		ToSql()
}

func buildSelectTasksQuery(userID string) (string, []any, error) {
	return psql.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at").
		ToSql()
}

func buildInsertTaskQuery(t models.Task) (string, []any, error) {
	return psql.Insert("tasks").
		Columns(taskColumns...).
		Values(t.ID, t.UserID, t.Title, t.IsCompleted, t.DueDate, t.CreatedAt).
		ToSql()
}
