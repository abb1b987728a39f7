package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ── finance ──────────────────────────────────────────────────────────────────

func TestAggregate_FinanceBalance(t *testing.T) {
	finance := []FinanceEntry{
		{Type: FinanceIncome, Amount: 1000},
		{Type: FinanceExpense, Amount: 300},
		{Type: FinanceIncome, Amount: 200},
	}

	m := Aggregate(nil, finance, nil, time.Time{})

	assert.Equal(t, 1200.0, m.Finance.Income)
	assert.Equal(t, 300.0, m.Finance.Expenses)
	assert.Equal(t, 900.0, m.Finance.Balance)
}

func TestAggregate_FinanceIgnoresUnknownTypes(t *testing.T) {
	finance := []FinanceEntry{
		{Type: FinanceIncome, Amount: 500},
		{Type: "Refund", Amount: 100},
		{Type: "", Amount: 42},
		{Type: FinanceExpense, Amount: 50},
	}

	m := Aggregate(nil, finance, nil, time.Time{})

	assert.Equal(t, 500.0, m.Finance.Income)
	assert.Equal(t, 50.0, m.Finance.Expenses)
	assert.Equal(t, 450.0, m.Finance.Balance)
}

// ── tasks ────────────────────────────────────────────────────────────────────

func TestAggregate_TaskPercentage(t *testing.T) {
	tests := []struct {
		name      string
		tasks     []Task
		completed int
		want      int
	}{
		{name: "no tasks", tasks: nil, completed: 0, want: 0},
		{
			name:      "one of three",
			tasks:     []Task{{IsCompleted: true}, {}, {}},
			completed: 1,
			want:      33,
		},
		{
			name:      "two of three rounds up",
			tasks:     []Task{{IsCompleted: true}, {IsCompleted: true}, {}},
			completed: 2,
			want:      67,
		},
		{
			name:      "half rounds up",
			tasks:     []Task{{IsCompleted: true}, {}, {IsCompleted: true}, {}, {IsCompleted: true}, {}, {}, {}},
			completed: 3,
			want:      38,
		},
		{
			name:      "all done",
			tasks:     []Task{{IsCompleted: true}, {IsCompleted: true}},
			completed: 2,
			want:      100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Aggregate(nil, nil, tt.tasks, time.Time{})
			assert.Equal(t, len(tt.tasks), m.Tasks.Total)
			assert.Equal(t, tt.completed, m.Tasks.Completed)
			assert.Equal(t, tt.want, m.Tasks.Percentage)
		})
	}
}

// ── guests ───────────────────────────────────────────────────────────────────

func TestAggregate_Demographics(t *testing.T) {
	guests := []Guest{
		{Men: 2, Women: 1, Children: 0},
		{Men: 0, Women: 0, Children: 3},
	}

	m := Aggregate(guests, nil, nil, time.Time{})

	assert.Equal(t, 2, m.Guests.Total)
	assert.Equal(t, 2, m.Guests.Men)
	assert.Equal(t, 1, m.Guests.Women)
	assert.Equal(t, 3, m.Guests.Children)
	assert.Equal(t, 6, m.Guests.TotalHeadcount)
}

func TestAggregate_DemographicsCoerceBadValues(t *testing.T) {
	guests := []Guest{
		{Men: -4, Women: 2.9, Children: 1},
	}

	m := Aggregate(guests, nil, nil, time.Time{})

	assert.Equal(t, 0, m.Guests.Men)
	assert.Equal(t, 2, m.Guests.Women)
	assert.Equal(t, 1, m.Guests.Children)
	assert.Equal(t, 3, m.Guests.TotalHeadcount)
}

func TestAggregate_RSVPFunnel(t *testing.T) {
	guests := []Guest{
		{RSVPStatus: RSVPConfirmed},
		{RSVPStatus: RSVPAccepted},
		{RSVPStatus: RSVPPending},
		{RSVPStatus: RSVPMaybe},
		{RSVPStatus: RSVPChances},
		{RSVPStatus: RSVPDeclined},
		{RSVPStatus: "Whatever"},
		{RSVPStatus: RSVPConfirmed, CheckedIn: true},
	}

	m := Aggregate(guests, nil, nil, time.Time{})

	assert.Equal(t, 8, m.Guests.Total)
	assert.Equal(t, 3, m.Guests.Confirmed)
	assert.Equal(t, 1, m.Guests.Pending)
	assert.Equal(t, 2, m.Guests.Tentative)
	assert.Equal(t, 1, m.Guests.Declined)
	assert.Equal(t, 1, m.Guests.CheckedIn)
}

func TestAggregate_InvitationFunnel(t *testing.T) {
	guests := []Guest{
		{InvitationRequired: true, InvitationSent: InvitationNotSent},
		{InvitationRequired: true, InvitationSent: InvitationSent},
		{InvitationRequired: true, InvitationSent: InvitationDelivered},
		{InvitationRequired: true, InvitationSent: InvitationSeen},
		// not required: ignored even when marked as seen
		{InvitationRequired: false, InvitationSent: InvitationSeen},
	}

	m := Aggregate(guests, nil, nil, time.Time{})

	assert.Equal(t, 4, m.Guests.InvitationNeeded)
	assert.Equal(t, 3, m.Guests.InvitationSent)
	assert.Equal(t, 2, m.Guests.InvitationDelivered)
	assert.Equal(t, 1, m.Guests.InvitationSeen)
}

func TestAggregate_EmptyInputs(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	m := Aggregate(nil, nil, nil, at)

	assert.Equal(t, DerivedMetrics{ComputedAt: at}, m)
}

func TestAggregate_Deterministic(t *testing.T) {
	guests := []Guest{{Men: 1, RSVPStatus: RSVPAccepted}}
	finance := []FinanceEntry{{Type: FinanceIncome, Amount: 10}}
	tasks := []Task{{IsCompleted: true}}
	at := time.Now()

	assert.Equal(t, Aggregate(guests, finance, tasks, at), Aggregate(guests, finance, tasks, at))
}
