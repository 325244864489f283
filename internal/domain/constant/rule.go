package constant

// ReminderRule identifies one of the day-offset reminder rules.
type ReminderRule string

const (
	// RuleFlight fires 7 days out when the flight is not booked yet.
	RuleFlight ReminderRule = "flight"
	// RuleSessions fires 3 days out when no work-sessions are logged.
	RuleSessions ReminderRule = "sessions"
	// RuleChecklist fires 1 day out when checklist items are still pending.
	RuleChecklist ReminderRule = "checklist"
)

const (
	// FlightOffsetDays is the day-offset at which the flight rule applies.
	FlightOffsetDays = 7
	// SessionsOffsetDays is the day-offset at which the sessions rule applies.
	SessionsOffsetDays = 3
	// ChecklistOffsetDays is the day-offset at which the checklist rule applies.
	ChecklistOffsetDays = 1
)

func (r ReminderRule) String() string {
	return string(r)
}
