package service

import (
	"context"
	"errors"
	"fmt"
	"spotwatch/internal/application/dto"
	"spotwatch/internal/domain/entity"
	"spotwatch/internal/domain/repository"
	appErrors "spotwatch/internal/pkg/errors"
	"spotwatch/internal/pkg/logger"

	"gorm.io/gorm"
)

type spotService struct {
	spotRepo    repository.SpotRepository
	sessionRepo repository.SessionRepository
	log         logger.Logger
}

// NewSpotService creates a new instance of SpotService implementation.
func NewSpotService(spotRepo repository.SpotRepository, sessionRepo repository.SessionRepository, log logger.Logger) SpotService {
	return &spotService{
		spotRepo:    spotRepo,
		sessionRepo: sessionRepo,
		log:         log,
	}
}

// CreateSpot creates a new spot. Returns the ID of the created spot.
func (s *spotService) CreateSpot(ctx context.Context, req dto.CreateSpotRequest) (uint, error) {
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return 0, fmt.Errorf("%w: start_date %q", appErrors.ErrInvalidDate, req.StartDate)
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		return 0, fmt.Errorf("%w: end_date %q", appErrors.ErrInvalidDate, req.EndDate)
	}

	spot := &entity.Spot{
		UserID:     req.UserID,
		StudioName: req.StudioName,
		StartDate:  startDate,
		EndDate:    endDate,
	}
	spotID, err := s.spotRepo.Create(ctx, spot)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to create spot for user %s", req.UserID), err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created spot %d for user %s", spotID, req.UserID))
	return spotID, nil
}

// ListSpots retrieves all spots for a user, ordered by start date.
func (s *spotService) ListSpots(ctx context.Context, userID string) ([]dto.SpotResponse, error) {
	spots, err := s.spotRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list spots for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToSpotResponseList(spots), nil
}

// GetSpot retrieves a single spot by its ID.
func (s *spotService) GetSpot(ctx context.Context, id uint) (*dto.SpotResponse, error) {
	spot, err := s.findSpot(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToSpotResponse(spot)
	return &resp, nil
}

// UpdateChecklist partially updates a spot's checklist flags.
func (s *spotService) UpdateChecklist(ctx context.Context, id uint, req dto.UpdateChecklistRequest) (*dto.SpotResponse, error) {
	spot, err := s.findSpot(ctx, id)
	if err != nil {
		return nil, err
	}

	applyFlag(&spot.CheckFlight, req.CheckFlight)
	applyFlag(&spot.CheckAccommodation, req.CheckAccommodation)
	applyFlag(&spot.CheckStudioAddress, req.CheckStudioAddress)
	applyFlag(&spot.CheckClientsNotified, req.CheckClientsNotified)
	applyFlag(&spot.CheckDeposits, req.CheckDeposits)
	applyFlag(&spot.CheckGear, req.CheckGear)
	applyFlag(&spot.CheckContract, req.CheckContract)

	if err := s.spotRepo.Update(ctx, spot); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update checklist for spot %d", id), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	resp := dto.ToSpotResponse(spot)
	return &resp, nil
}

// DeleteSpot deletes a spot and its logged sessions.
func (s *spotService) DeleteSpot(ctx context.Context, id uint) error {
	if _, err := s.findSpot(ctx, id); err != nil {
		return err
	}
	if err := s.sessionRepo.DeleteBySpotID(ctx, id); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete sessions for spot %d", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	if err := s.spotRepo.Delete(ctx, id); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete spot %d", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Deleted spot %d", id))
	return nil
}

// LogSession logs a work-session against a spot.
func (s *spotService) LogSession(ctx context.Context, spotID uint, req dto.LogSessionRequest) (uint, error) {
	if _, err := s.findSpot(ctx, spotID); err != nil {
		return 0, err
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return 0, fmt.Errorf("%w: date %q", appErrors.ErrInvalidDate, req.Date)
	}

	sessionID, err := s.sessionRepo.Create(ctx, &entity.Session{
		SpotID: spotID,
		Date:   date,
		Notes:  req.Notes,
	})
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to log session for spot %d", spotID), err)
		return 0, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Logged session %d for spot %d", sessionID, spotID))
	return sessionID, nil
}

// ListSessions retrieves the sessions logged for a spot.
func (s *spotService) ListSessions(ctx context.Context, spotID uint) ([]dto.SessionResponse, error) {
	sessions, err := s.sessionRepo.FindBySpotID(ctx, spotID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list sessions for spot %d", spotID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToSessionResponseList(sessions), nil
}

// findSpot fetches a spot and maps a missing record to ErrSpotNotFound.
func (s *spotService) findSpot(ctx context.Context, id uint) (*entity.Spot, error) {
	spot, err := s.spotRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrSpotNotFound
		}
		s.log.Error(fmt.Sprintf("Failed to find spot %d", id), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return spot, nil
}

func applyFlag(target *bool, value *bool) {
	if value != nil {
		*target = *value
	}
}
