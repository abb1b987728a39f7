package validators

// Field names accepted by the validators to scope a check to a subset of
// the model.
const (
	FieldID           = "ID"
	FieldUserID       = "UserID"
	FieldName         = "Name"
	FieldPhone        = "Phone"
	FieldRole         = "Role"
	FieldPasswordHash = "PasswordHash"

	FieldGuestID          = "GuestID"
	FieldRSVPStatus       = "RSVPStatus"
	FieldInvitationStatus = "InvitationSent"
	FieldGroup            = "Group"
	FieldHeadcount        = "Headcount"

	FieldFinanceType = "Type"
	FieldAmount      = "Amount"

	FieldTaskID = "TaskID"
	FieldTitle  = "Title"
)
