package models

import (
	"math"
	"time"
)

// GuestMetrics summarises the guest list.
type GuestMetrics struct {
	// Total is the number of guest records (households).
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Tentative int `json:"tentative"`
	Declined  int `json:"declined"`
	CheckedIn int `json:"checkedIn"`

	Men            int `json:"men"`
	Women          int `json:"women"`
	Children       int `json:"children"`
	TotalHeadcount int `json:"totalHeadcount"`

	// InvitationNeeded counts guests that require a printed card. The three
	// counters below only consider those guests.
	InvitationNeeded    int `json:"invitationNeeded"`
	InvitationSent      int `json:"invitationSentCount"`
	InvitationDelivered int `json:"invitationDeliveredCount"`
	InvitationSeen      int `json:"invitationSeenCount"`
}

// FinanceMetrics summarises the ledger.
type FinanceMetrics struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// TaskMetrics summarises the checklist.
type TaskMetrics struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Percentage int `json:"percentage"`
}

// DerivedMetrics is the dashboard projection of guests, finance entries and
// tasks. It is never persisted and never updated in place.
type DerivedMetrics struct {
	Guests     GuestMetrics   `json:"guestStats"`
	Finance    FinanceMetrics `json:"financeStats"`
	Tasks      TaskMetrics    `json:"taskStats"`
	ComputedAt time.Time      `json:"computedAt"`
}

// Aggregate computes DerivedMetrics from the three collections. It is a pure
// function of its arguments; computedAt is only copied into the result.
func Aggregate(guests []Guest, finance []FinanceEntry, tasks []Task, computedAt time.Time) DerivedMetrics {
	return DerivedMetrics{
		Guests:     aggregateGuests(guests),
		Finance:    aggregateFinance(finance),
		Tasks:      aggregateTasks(tasks),
		ComputedAt: computedAt,
	}
}

func aggregateGuests(guests []Guest) GuestMetrics {
	m := GuestMetrics{Total: len(guests)}

	for _, g := range guests {
		m.Men += g.Men.Count()
		m.Women += g.Women.Count()
		m.Children += g.Children.Count()

		switch {
		case g.RSVPStatus.IsConfirmed():
			m.Confirmed++
		case g.RSVPStatus.IsTentative():
			m.Tentative++
		case g.RSVPStatus == RSVPPending:
			m.Pending++
		case g.RSVPStatus == RSVPDeclined:
			m.Declined++
		}

		if g.CheckedIn {
			m.CheckedIn++
		}

		if !g.InvitationRequired {
			continue
		}
		m.InvitationNeeded++

		stage := g.InvitationSent.Stage()
		if stage >= InvitationSent.Stage() {
			m.InvitationSent++
		}
		if stage >= InvitationDelivered.Stage() {
			m.InvitationDelivered++
		}
		if stage >= InvitationSeen.Stage() {
			m.InvitationSeen++
		}
	}

	m.TotalHeadcount = m.Men + m.Women + m.Children
	return m
}

func aggregateFinance(entries []FinanceEntry) FinanceMetrics {
	var m FinanceMetrics

	for _, e := range entries {
		switch e.Type {
		case FinanceIncome:
			m.Income += e.Amount.Float()
		case FinanceExpense:
			m.Expenses += e.Amount.Float()
		}
	}

	m.Balance = m.Income - m.Expenses
	return m
}

func aggregateTasks(tasks []Task) TaskMetrics {
	m := TaskMetrics{Total: len(tasks)}

	for _, t := range tasks {
		if t.IsCompleted {
			m.Completed++
		}
	}

	if m.Total > 0 {
		m.Percentage = int(math.Floor(float64(m.Completed)/float64(m.Total)*100 + 0.5))
	}
	return m
}
