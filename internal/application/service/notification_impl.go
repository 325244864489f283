package service

import (
	"context"
	"fmt"
	"math"
	"spotwatch/internal/application/dto"
	"spotwatch/internal/domain/constant"
	"spotwatch/internal/domain/entity"
	"spotwatch/internal/domain/repository"
	appErrors "spotwatch/internal/pkg/errors"
	"spotwatch/internal/pkg/logger"
	"sync"
	"time"
)

// reminderEvent is one notification produced for a spot during a run.
// It only exists between rule evaluation and dispatch.
type reminderEvent struct {
	spot    *entity.Spot
	rule    constant.ReminderRule
	sub     *entity.PushSubscription
	payload dto.PushPayload
}

type notificationService struct {
	spotRepo         repository.SpotRepository
	subscriptionRepo repository.SubscriptionRepository
	sessionRepo      repository.SessionRepository
	sender           PushSender
	log              logger.Logger
	now              func() time.Time
}

// NewNotificationService creates a new instance of NotificationService implementation.
func NewNotificationService(
	spotRepo repository.SpotRepository,
	subscriptionRepo repository.SubscriptionRepository,
	sessionRepo repository.SessionRepository,
	sender PushSender,
	log logger.Logger,
) NotificationService {
	return &notificationService{
		spotRepo:         spotRepo,
		subscriptionRepo: subscriptionRepo,
		sessionRepo:      sessionRepo,
		sender:           sender,
		log:              log,
		now:              time.Now,
	}
}

// SendReminders runs one reminder pass: load, evaluate, dispatch, report.
func (s *notificationService) SendReminders(ctx context.Context) (*dto.ReminderRunReport, error) {
	today := startOfDay(s.now())

	spots, err := s.spotRepo.FindUpcoming(ctx, today)
	if err != nil {
		s.log.Error("Failed to load upcoming spots for reminder run", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	subs, err := s.subscriptionRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to load push subscriptions for reminder run", err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	// One subscription per user, built once for O(1) lookup per spot.
	subsByUser := make(map[string]*entity.PushSubscription, len(subs))
	for _, sub := range subs {
		subsByUser[sub.UserID] = sub
	}

	var events []reminderEvent
	for _, spot := range spots {
		sub, ok := subsByUser[spot.UserID]
		if !ok {
			// Owner never enabled notifications. Not an error.
			continue
		}
		event, err := s.evaluateSpot(ctx, spot, sub, today)
		if err != nil {
			return nil, err
		}
		if event != nil {
			events = append(events, *event)
		}
	}

	outcomes := s.dispatch(ctx, events)
	report := s.summarize(ctx, events, outcomes, today)
	s.log.Info(fmt.Sprintf("Reminder run complete. Sent: %d, Failed: %d, Total: %d",
		report.Sent, report.Failed, report.Total))
	return report, nil
}

// evaluateSpot applies the day-offset rules to one spot. Since the day-offset
// is a single integer, at most one rule can match per run.
func (s *notificationService) evaluateSpot(ctx context.Context, spot *entity.Spot, sub *entity.PushSubscription, today time.Time) (*reminderEvent, error) {
	detailURL := fmt.Sprintf("/spots/%d", spot.ID)

	switch daysUntil(today, spot.StartDate) {
	case constant.FlightOffsetDays:
		if spot.CheckFlight || spot.FlightReminderSent {
			return nil, nil
		}
		return &reminderEvent{
			spot: spot,
			rule: constant.RuleFlight,
			sub:  sub,
			payload: dto.PushPayload{
				Title: fmt.Sprintf("✈️ %s in 7 days", spot.StudioName),
				Body:  "Have you booked your flight yet?",
				URL:   detailURL,
			},
		}, nil

	case constant.SessionsOffsetDays:
		if notifiedOn(spot.SessionsNotifiedOn, today) {
			return nil, nil
		}
		count, err := s.sessionRepo.CountBySpotID(ctx, spot.ID)
		if err != nil {
			s.log.Error(fmt.Sprintf("Failed to count sessions for spot %d", spot.ID), err)
			return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
		if count > 0 {
			return nil, nil
		}
		return &reminderEvent{
			spot: spot,
			rule: constant.RuleSessions,
			sub:  sub,
			payload: dto.PushPayload{
				Title: fmt.Sprintf("📅 %s in 3 days", spot.StudioName),
				Body:  "No sessions logged yet. Are your clients confirmed?",
				URL:   detailURL,
			},
		}, nil

	case constant.ChecklistOffsetDays:
		if notifiedOn(spot.ChecklistNotifiedOn, today) {
			return nil, nil
		}
		pending := spot.PendingChecklistCount()
		if pending == 0 {
			return nil, nil
		}
		return &reminderEvent{
			spot: spot,
			rule: constant.RuleChecklist,
			sub:  sub,
			payload: dto.PushPayload{
				Title: fmt.Sprintf("⚡ Tomorrow: %s", spot.StudioName),
				Body:  checklistBody(pending),
				URL:   detailURL,
			},
		}, nil
	}

	// Day-offset outside {1, 3, 7}, including spots starting today or
	// already in progress. No event.
	return nil, nil
}

// dispatch sends all events concurrently. Each outcome lands in its own
// slot, so one failing send never affects another.
func (s *notificationService) dispatch(ctx context.Context, events []reminderEvent) []error {
	outcomes := make([]error, len(events))
	var wg sync.WaitGroup
	for i := range events {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i] = s.sender.Send(ctx, events[i].sub, events[i].payload)
		}(i)
	}
	wg.Wait()
	return outcomes
}

// summarize folds the dispatch outcomes into the run report and records
// delivery markers for the reminders that went out.
func (s *notificationService) summarize(ctx context.Context, events []reminderEvent, outcomes []error, today time.Time) *dto.ReminderRunReport {
	report := &dto.ReminderRunReport{Total: len(events)}
	for i, err := range outcomes {
		if err != nil {
			report.Failed++
			s.log.Error(fmt.Sprintf("Failed to deliver %s reminder for spot %d", events[i].rule, events[i].spot.ID), err)
			continue
		}
		report.Sent++
		s.markNotified(ctx, events[i], today)
	}
	return report
}

// markNotified records that a reminder was delivered so a later run on the
// same day does not repeat it. A failing marker update is logged only, the
// notification itself already went out.
func (s *notificationService) markNotified(ctx context.Context, event reminderEvent, today time.Time) {
	spot := event.spot
	switch event.rule {
	case constant.RuleFlight:
		spot.FlightReminderSent = true
	case constant.RuleSessions:
		day := today
		spot.SessionsNotifiedOn = &day
	case constant.RuleChecklist:
		day := today
		spot.ChecklistNotifiedOn = &day
	}
	if err := s.spotRepo.Update(ctx, spot); err != nil {
		s.log.Error(fmt.Sprintf("Failed to record delivery marker for spot %d", spot.ID), err)
	}
}

// daysUntil counts whole calendar days from today (already truncated to
// midnight) to the spot's start date. Comparing midnights rounds up, so a
// spot starting tomorrow yields 1 at any time of day. The start value is
// viewed in today's location first; the sqlite driver hands timestamps
// back in UTC, and reading the calendar day in the wrong zone would shift
// every offset by one.
func daysUntil(today time.Time, start time.Time) int {
	y, m, d := start.In(today.Location()).Date()
	startDay := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return int(math.Round(startDay.Sub(today).Hours() / 24))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func notifiedOn(marker *time.Time, day time.Time) bool {
	if marker == nil {
		return false
	}
	// Same zone normalization as daysUntil: the stored marker may come
	// back from the database relabeled as UTC.
	y1, m1, d1 := marker.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func checklistBody(pending int) string {
	if pending == 1 {
		return "1 checklist item still pending."
	}
	return fmt.Sprintf("%d checklist items still pending.", pending)
}
