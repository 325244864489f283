package entity

import "time"

// Session represents a logged work-session for a spot.
type Session struct {
	ID     uint      `gorm:"primaryKey;autoIncrement"`
	SpotID uint      `gorm:"column:spot_id;index"`
	Date   time.Time `gorm:"column:date"`
	Notes  string    `gorm:"column:notes;type:text"`
}

// TableName specifies the table name for the Session entity.
func (Session) TableName() string {
	return "sessions"
}
