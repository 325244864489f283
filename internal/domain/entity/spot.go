package entity

import "time"

// Spot represents a booked studio engagement with its preparation checklist.
type Spot struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	UserID     string    `gorm:"column:user_id;index"`
	StudioName string    `gorm:"column:studio_name"`
	StartDate  time.Time `gorm:"column:start_date;index"`
	EndDate    time.Time `gorm:"column:end_date"`

	CheckFlight          bool `gorm:"column:check_flight"`
	CheckAccommodation   bool `gorm:"column:check_accommodation"`
	CheckStudioAddress   bool `gorm:"column:check_studio_address"`
	CheckClientsNotified bool `gorm:"column:check_clients_notified"`
	CheckDeposits        bool `gorm:"column:check_deposits"`
	CheckGear            bool `gorm:"column:check_gear"`
	CheckContract        bool `gorm:"column:check_contract"`

	// FlightReminderSent suppresses the flight reminder once it has been
	// delivered successfully.
	FlightReminderSent bool `gorm:"column:flight_reminder_sent"`

	// SessionsNotifiedOn / ChecklistNotifiedOn record the day the
	// corresponding reminder was last delivered, so repeated runs on the
	// same day do not duplicate notifications.
	SessionsNotifiedOn  *time.Time `gorm:"column:sessions_notified_on"`
	ChecklistNotifiedOn *time.Time `gorm:"column:checklist_notified_on"`
}

// TableName specifies the table name for the Spot entity.
func (Spot) TableName() string {
	return "spots"
}

// ChecklistFlags returns the seven preparation flags in a fixed order.
func (s *Spot) ChecklistFlags() []bool {
	return []bool{
		s.CheckFlight,
		s.CheckAccommodation,
		s.CheckStudioAddress,
		s.CheckClientsNotified,
		s.CheckDeposits,
		s.CheckGear,
		s.CheckContract,
	}
}

// PendingChecklistCount returns the number of checklist flags still unset.
func (s *Spot) PendingChecklistCount() int {
	pending := 0
	for _, done := range s.ChecklistFlags() {
		if !done {
			pending++
		}
	}
	return pending
}
