package models

import "time"

// RSVPStatus is the attendance answer of a guest household.
//
// Older guest screens used {Pending, Confirmed, Declined}; newer ones added
// Accepted, Chances and Maybe. All labels are kept in one enumeration and
// grouped through the helper predicates below.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "Pending"
	RSVPConfirmed RSVPStatus = "Confirmed"
	RSVPAccepted  RSVPStatus = "Accepted"
	RSVPChances   RSVPStatus = "Chances"
	RSVPMaybe     RSVPStatus = "Maybe"
	RSVPDeclined  RSVPStatus = "Declined"
)

// RSVPStatuses lists every accepted RSVP label in funnel order.
var RSVPStatuses = []RSVPStatus{
	RSVPPending,
	RSVPConfirmed,
	RSVPAccepted,
	RSVPChances,
	RSVPMaybe,
	RSVPDeclined,
}

// IsValid reports whether s is a known label.
func (s RSVPStatus) IsValid() bool {
	for _, known := range RSVPStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsConfirmed reports whether s belongs to the confirmed-equivalent subset
// {Confirmed, Accepted}.
func (s RSVPStatus) IsConfirmed() bool {
	return s == RSVPConfirmed || s == RSVPAccepted
}

// IsTentative reports whether s is one of the undecided answers.
func (s RSVPStatus) IsTentative() bool {
	return s == RSVPChances || s == RSVPMaybe
}

// InvitationStatus is the delivery stage of a printed invitation card.
// The stages are monotonic: Not Sent -> Sent -> Delivered -> Seen.
type InvitationStatus string

const (
	InvitationNotSent   InvitationStatus = "Not Sent"
	InvitationSent      InvitationStatus = "Sent"
	InvitationDelivered InvitationStatus = "Delivered"
	InvitationSeen      InvitationStatus = "Seen"
)

// Stage returns the position of s in the invitation funnel: 0 for Not Sent
// (or any unknown label), 1 for Sent, 2 for Delivered and 3 for Seen.
func (s InvitationStatus) Stage() int {
	switch s {
	case InvitationSent:
		return 1
	case InvitationDelivered:
		return 2
	case InvitationSeen:
		return 3
	default:
		return 0
	}
}

// GuestGroup is the coarse grouping used by the guest list.
type GuestGroup string

const (
	GroupFamily     GuestGroup = "Family"
	GroupFriends    GuestGroup = "Friends"
	GroupColleagues GuestGroup = "Colleagues"
	GroupOther      GuestGroup = "Other"
)

// Guest is one invited household. Men, Women and Children are headcounts;
// they use [Number] because the storage service may hand them back as
// strings or blanks.
type Guest struct {
	ID                 string           `json:"id"`
	UserID             string           `json:"userId"`
	Name               string           `json:"name"`
	Phone              string           `json:"phone"`
	City               string           `json:"city"`
	VIP                bool             `json:"vipStatus"`
	Men                Number           `json:"men"`
	Women              Number           `json:"women"`
	Children           Number           `json:"children"`
	Relationship       string           `json:"relationship"`
	OwnCar             string           `json:"ownCar"`
	InvitedBy          string           `json:"invitedBy"`
	RSVPStatus         RSVPStatus       `json:"rsvpStatus"`
	InvitationRequired bool             `json:"invitationRequired"`
	InvitationSent     InvitationStatus `json:"invitationSent"`
	CheckedIn          bool             `json:"checkedIn"`
	Group              GuestGroup       `json:"group"`
	Notes              string           `json:"notes"`
	EventDate          string           `json:"eventDate"`
	CreatedAt          time.Time        `json:"createdAt"`
}

// Headcount returns the number of persons in the household.
func (g Guest) Headcount() int {
	return g.Men.Count() + g.Women.Count() + g.Children.Count()
}

// GuestStatusUpdate changes the RSVP answer of a single guest.
type GuestStatusUpdate struct {
	GuestID    string     `json:"guestId"`
	RSVPStatus RSVPStatus `json:"rsvpStatus"`
}
