package dto

import (
	"spotwatch/internal/domain/entity"
	"time"
)

// SpotResponse is the DTO for sending spot information to the client.
type SpotResponse struct {
	ID         uint   `json:"id"`
	UserID     string `json:"user_id"`
	StudioName string `json:"studio_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`

	CheckFlight          bool `json:"check_flight"`
	CheckAccommodation   bool `json:"check_accommodation"`
	CheckStudioAddress   bool `json:"check_studio_address"`
	CheckClientsNotified bool `json:"check_clients_notified"`
	CheckDeposits        bool `json:"check_deposits"`
	CheckGear            bool `json:"check_gear"`
	CheckContract        bool `json:"check_contract"`

	PendingChecklistItems int `json:"pending_checklist_items"`
}

// DateLayout is the wire format for calendar dates (time-of-day is ignored).
const DateLayout = "2006-01-02"

// ToSpotResponse converts an entity.Spot to a SpotResponse DTO.
func ToSpotResponse(s *entity.Spot) SpotResponse {
	return SpotResponse{
		ID:                    s.ID,
		UserID:                s.UserID,
		StudioName:            s.StudioName,
		StartDate:             s.StartDate.Format(DateLayout),
		EndDate:               s.EndDate.Format(DateLayout),
		CheckFlight:           s.CheckFlight,
		CheckAccommodation:    s.CheckAccommodation,
		CheckStudioAddress:    s.CheckStudioAddress,
		CheckClientsNotified:  s.CheckClientsNotified,
		CheckDeposits:         s.CheckDeposits,
		CheckGear:             s.CheckGear,
		CheckContract:         s.CheckContract,
		PendingChecklistItems: s.PendingChecklistCount(),
	}
}

// ToSpotResponseList converts a slice of entity.Spot to a slice of SpotResponse DTOs.
func ToSpotResponseList(spots []*entity.Spot) []SpotResponse {
	list := make([]SpotResponse, len(spots))
	for i, s := range spots {
		list[i] = ToSpotResponse(s)
	}
	return list
}

// CreateSpotRequest is the DTO for creating a new spot.
type CreateSpotRequest struct {
	UserID     string `json:"user_id"`
	StudioName string `json:"studio_name"`
	StartDate  string `json:"start_date"` // "2006-01-02"
	EndDate    string `json:"end_date"`   // "2006-01-02"
}

// UpdateChecklistRequest is the DTO for partially updating checklist flags.
// Nil fields are left unchanged.
type UpdateChecklistRequest struct {
	CheckFlight          *bool `json:"check_flight"`
	CheckAccommodation   *bool `json:"check_accommodation"`
	CheckStudioAddress   *bool `json:"check_studio_address"`
	CheckClientsNotified *bool `json:"check_clients_notified"`
	CheckDeposits        *bool `json:"check_deposits"`
	CheckGear            *bool `json:"check_gear"`
	CheckContract        *bool `json:"check_contract"`
}

// LogSessionRequest is the DTO for logging a work-session against a spot.
type LogSessionRequest struct {
	Date  string `json:"date"` // "2006-01-02"
	Notes string `json:"notes"`
}

// SessionResponse is the DTO for sending session information to the client.
type SessionResponse struct {
	ID     uint   `json:"id"`
	SpotID uint   `json:"spot_id"`
	Date   string `json:"date"`
	Notes  string `json:"notes"`
}

// ToSessionResponse converts an entity.Session to a SessionResponse DTO.
func ToSessionResponse(s *entity.Session) SessionResponse {
	return SessionResponse{
		ID:     s.ID,
		SpotID: s.SpotID,
		Date:   s.Date.Format(DateLayout),
		Notes:  s.Notes,
	}
}

// ToSessionResponseList converts a slice of entity.Session to SessionResponse DTOs.
func ToSessionResponseList(sessions []*entity.Session) []SessionResponse {
	list := make([]SessionResponse, len(sessions))
	for i, s := range sessions {
		list[i] = ToSessionResponse(s)
	}
	return list
}

// ParseDate parses a wire-format date into a calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}
