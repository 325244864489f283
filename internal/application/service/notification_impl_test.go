package service

import (
	"context"
	"fmt"
	"spotwatch/internal/application/dto"
	"spotwatch/internal/domain/entity"
	appErrors "spotwatch/internal/pkg/errors"
	"spotwatch/internal/pkg/logger"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ==========================
// Fakes
// ==========================

type fakeSpotRepo struct {
	spots   []*entity.Spot
	findErr error
	updates int
}

func (f *fakeSpotRepo) FindByID(ctx context.Context, id uint) (*entity.Spot, error) {
	for _, s := range f.spots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("spot with ID %d not found: %w", id, gorm.ErrRecordNotFound)
}

func (f *fakeSpotRepo) FindByUserID(ctx context.Context, userID string) ([]*entity.Spot, error) {
	return f.spots, nil
}

func (f *fakeSpotRepo) FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Spot, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var upcoming []*entity.Spot
	for _, s := range f.spots {
		if !s.StartDate.Before(from) {
			upcoming = append(upcoming, s)
		}
	}
	return upcoming, nil
}

func (f *fakeSpotRepo) Create(ctx context.Context, spot *entity.Spot) (uint, error) {
	f.spots = append(f.spots, spot)
	return spot.ID, nil
}

func (f *fakeSpotRepo) Update(ctx context.Context, spot *entity.Spot) error {
	f.updates++
	return nil
}

func (f *fakeSpotRepo) Delete(ctx context.Context, id uint) error { return nil }

type fakeSubscriptionRepo struct {
	subs    []*entity.PushSubscription
	findErr error
}

func (f *fakeSubscriptionRepo) FindAll(ctx context.Context) ([]*entity.PushSubscription, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.subs, nil
}

func (f *fakeSubscriptionRepo) FindByUserID(ctx context.Context, userID string) (*entity.PushSubscription, error) {
	for _, s := range f.subs {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, appErrors.ErrSubscriptionNotFound
}

func (f *fakeSubscriptionRepo) Upsert(ctx context.Context, sub *entity.PushSubscription) error {
	return nil
}

func (f *fakeSubscriptionRepo) DeleteByUserID(ctx context.Context, userID string) error { return nil }

type fakeSessionRepo struct {
	counts   map[uint]int64
	countErr error
}

func (f *fakeSessionRepo) FindBySpotID(ctx context.Context, spotID uint) ([]*entity.Session, error) {
	return nil, nil
}

func (f *fakeSessionRepo) CountBySpotID(ctx context.Context, spotID uint) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[spotID], nil
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) (uint, error) {
	return 0, nil
}

func (f *fakeSessionRepo) DeleteBySpotID(ctx context.Context, spotID uint) error { return nil }

type fakeSender struct {
	mu            sync.Mutex
	sent          []dto.PushPayload
	attempts      int
	failEndpoints map[string]bool
}

func (f *fakeSender) Send(ctx context.Context, sub *entity.PushSubscription, payload dto.PushPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	if f.failEndpoints[sub.Endpoint] {
		return fmt.Errorf("%w: endpoint returned status 410", appErrors.ErrPushDelivery)
	}
	f.sent = append(f.sent, payload)
	return nil
}

// ==========================
// Test Helper Functions
// ==========================

// Reference instant for all tests: mid-afternoon so the ceil behavior of
// the day-offset math is exercised.
var testNow = time.Date(2025, time.June, 10, 15, 4, 5, 0, time.Local)

func startIn(days int) time.Time {
	return time.Date(2025, time.June, 10, 0, 0, 0, 0, time.Local).AddDate(0, 0, days)
}

func testSubscription(userID string) *entity.PushSubscription {
	return &entity.PushSubscription{
		UserID:   userID,
		Endpoint: "https://push.example.com/" + userID,
		P256dh:   "p256dh-key",
		Auth:     "auth-secret",
	}
}

func completedSpot(id uint, userID string, start time.Time) *entity.Spot {
	return &entity.Spot{
		ID:                   id,
		UserID:               userID,
		StudioName:           "Aperture Studio",
		StartDate:            start,
		EndDate:              start.AddDate(0, 0, 2),
		CheckFlight:          true,
		CheckAccommodation:   true,
		CheckStudioAddress:   true,
		CheckClientsNotified: true,
		CheckDeposits:        true,
		CheckGear:            true,
		CheckContract:        true,
	}
}

func newTestService(spots *fakeSpotRepo, subs *fakeSubscriptionRepo, sessions *fakeSessionRepo, sender *fakeSender) *notificationService {
	if sessions == nil {
		sessions = &fakeSessionRepo{counts: map[uint]int64{}}
	}
	return &notificationService{
		spotRepo:         spots,
		subscriptionRepo: subs,
		sessionRepo:      sessions,
		sender:           sender,
		log:              logger.NewNop(),
		now:              func() time.Time { return testNow },
	}
}

// ==========================
// Rule Engine Tests
// ==========================

func TestSendReminders_FlightRule(t *testing.T) {
	tests := []struct {
		name      string
		spot      *entity.Spot
		wantSent  int
		wantTitle string
	}{
		{
			name: "flight not booked fires reminder",
			spot: func() *entity.Spot {
				s := completedSpot(1, "user-a", startIn(7))
				s.CheckFlight = false
				return s
			}(),
			wantSent:  1,
			wantTitle: "✈️ Aperture Studio in 7 days",
		},
		{
			name:     "flight already booked stays quiet",
			spot:     completedSpot(2, "user-a", startIn(7)),
			wantSent: 0,
		},
		{
			name: "reminder already sent stays quiet",
			spot: func() *entity.Spot {
				s := completedSpot(3, "user-a", startIn(7))
				s.CheckFlight = false
				s.FlightReminderSent = true
				return s
			}(),
			wantSent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			svc := newTestService(
				&fakeSpotRepo{spots: []*entity.Spot{tt.spot}},
				&fakeSubscriptionRepo{subs: []*entity.PushSubscription{testSubscription("user-a")}},
				nil,
				sender,
			)

			report, err := svc.SendReminders(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantSent, report.Sent)
			assert.Equal(t, 0, report.Failed)
			if tt.wantSent == 1 {
				require.Len(t, sender.sent, 1)
				assert.Equal(t, tt.wantTitle, sender.sent[0].Title)
				assert.Equal(t, "Have you booked your flight yet?", sender.sent[0].Body)
				assert.Equal(t, fmt.Sprintf("/spots/%d", tt.spot.ID), sender.sent[0].URL)
			}
		})
	}
}

func TestSendReminders_SessionsRule(t *testing.T) {
	tests := []struct {
		name     string
		sessions int64
		wantSent int
	}{
		{name: "no sessions logged fires reminder", sessions: 0, wantSent: 1},
		{name: "logged sessions stay quiet", sessions: 2, wantSent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spot := completedSpot(5, "user-a", startIn(3))
			sender := &fakeSender{}
			svc := newTestService(
				&fakeSpotRepo{spots: []*entity.Spot{spot}},
				&fakeSubscriptionRepo{subs: []*entity.PushSubscription{testSubscription("user-a")}},
				&fakeSessionRepo{counts: map[uint]int64{5: tt.sessions}},
				sender,
			)

			report, err := svc.SendReminders(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantSent, report.Sent)
			if tt.wantSent == 1 {
				require.Len(t, sender.sent, 1)
				assert.Equal(t, "📅 Aperture Studio in 3 days", sender.sent[0].Title)
				assert.Equal(t, "No sessions logged yet. Are your clients confirmed?", sender.sent[0].Body)
			}
		})
	}
}

func TestSendReminders_ChecklistRule(t *testing.T) {
	tests := []struct {
		name     string
		spot     *entity.Spot
		wantSent int
		wantBody string
	}{
		{
			name: "all seven items pending",
			spot: &entity.Spot{
				ID:         3,
				UserID:     "user-a",
				StudioName: "Aperture Studio",
				StartDate:  startIn(1),
			},
			wantSent: 1,
			wantBody: "7 checklist items still pending.",
		},
		{
			name: "single pending item uses singular wording",
			spot: func() *entity.Spot {
				s := completedSpot(6, "user-a", startIn(1))
				s.CheckGear = false
				return s
			}(),
			wantSent: 1,
			wantBody: "1 checklist item still pending.",
		},
		{
			name:     "complete checklist stays quiet",
			spot:     completedSpot(4, "user-a", startIn(1)),
			wantSent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			svc := newTestService(
				&fakeSpotRepo{spots: []*entity.Spot{tt.spot}},
				&fakeSubscriptionRepo{subs: []*entity.PushSubscription{testSubscription("user-a")}},
				nil,
				sender,
			)

			report, err := svc.SendReminders(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantSent, report.Sent)
			if tt.wantSent == 1 {
				require.Len(t, sender.sent, 1)
				assert.Equal(t, "⚡ Tomorrow: Aperture Studio", sender.sent[0].Title)
				assert.Equal(t, tt.wantBody, sender.sent[0].Body)
			}
		})
	}
}

func TestSendReminders_OffsetsOutsideRules(t *testing.T) {
	// Spots with every flag pending and no sessions, so any matching rule
	// would fire. None of these offsets match.
	var spots []*entity.Spot
	for i, days := range []int{0, 2, 4, 6, 8, 30} {
		spots = append(spots, &entity.Spot{
			ID:         uint(i + 1),
			UserID:     "user-a",
			StudioName: "Aperture Studio",
			StartDate:  startIn(days),
		})
	}
	sender := &fakeSender{}
	svc := newTestService(
		&fakeSpotRepo{spots: spots},
		&fakeSubscriptionRepo{subs: []*entity.PushSubscription{testSubscription("user-a")}},
		nil,
		sender,
	)

	report, err := svc.SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.Empty(t, sender.sent)
}

func TestSendReminders_NoSubscriptionSkipsSpot(t *testing.T) {
	spot := &entity.Spot{
		ID:         9,
		UserID:     "user-without-subscription",
		StudioName: "Aperture Studio",
		StartDate:  startIn(1),
	}
	sender := &fakeSender{}
	svc := newTestService(
		&fakeSpotRepo{spots: []*entity.Spot{spot}},
		&fakeSubscriptionRepo{subs: []*entity.PushSubscription{testSubscription("someone-else")}},
		nil,
		sender,
	)

	report, err := svc.SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &dto.ReminderRunReport{Sent: 0, Failed: 0, Total: 0}, report)
	assert.Zero(t, sender.attempts)
}

func TestSendReminders_EveningRunStillCountsTomorrowAsOneDay(t *testing.T) {
	spot := &entity.Spot{
		ID:         11,
		UserID:     "user-a",
		StudioName: "Aperture Studio",
		StartDate:  startIn(1),
	}
	sender := &fakeSender{}
	svc := newTestService(
		&fakeSpotRepo{spots: []*entity.Spot{spot}},
		&fakeSubscriptionRepo{subs: []*entity.PushSubscription{testSubscription("user-a")}},
		nil,
		sender,
	)
	// 23:30 on the reference day; the offset must still round up to 1.
	svc.now = func() time.Time {
		return time.Date(2025, time.June, 10, 23, 30, 0, 0, time.Local)
	}

	report, err := svc.SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
}

// ==========================
// Dispatcher & Summarizer Tests
// ==========================

func TestSendReminders_DispatchIsolation(t *testing.T) {
	var spots []*entity.Spot
	var subs []*entity.PushSubscription
	for i := 1; i <= 4; i++ {
		userID := fmt.Sprintf("user-%d", i)
		spots = append(spots, &entity.Spot{
			ID:         uint(i),
			UserID:     userID,
			StudioName: "Aperture Studio",
			StartDate:  startIn(1),
		})
		subs = append(subs, testSubscription(userID))
	}

	sender := &fakeSender{failEndpoints: map[string]bool{
		"https://push.example.com/user-2": true,
		"https://push.example.com/user-4": true,
	}}
	svc := newTestService(&fakeSpotRepo{spots: spots}, &fakeSubscriptionRepo{subs: subs}, nil, sender)

	report, err := svc.SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 4, report.Total)
	// Every send is attempted regardless of individual failures.
	assert.Equal(t, 4, sender.attempts)
}

func TestSendReminders_SecondRunSameDayDeliversNothing(t *testing.T) {
	flight := completedSpot(1, "user-a", startIn(7))
	flight.CheckFlight = false
	sessions := completedSpot(2, "user-a", startIn(3))
	checklist := completedSpot(3, "user-a", startIn(1))
	checklist.CheckContract = false

	spotRepo := &fakeSpotRepo{spots: []*entity.Spot{flight, sessions, checklist}}
	sender := &fakeSender{}
	svc := newTestService(
		spotRepo,
		&fakeSubscriptionRepo{subs: []*entity.PushSubscription{testSubscription("user-a")}},
		&fakeSessionRepo{counts: map[uint]int64{}},
		sender,
	)

	first, err := svc.SendReminders(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, first.Sent)

	// Markers were set on the spot entities; a second run on the same day
	// must produce nothing.
	second, err := svc.SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Total)
	assert.Equal(t, 3, sender.attempts)
}

func TestSendReminders_FailedSendLeavesMarkerUnset(t *testing.T) {
	spot := completedSpot(1, "user-a", startIn(1))
	spot.CheckDeposits = false

	sender := &fakeSender{failEndpoints: map[string]bool{
		"https://push.example.com/user-a": true,
	}}
	svc := newTestService(
		&fakeSpotRepo{spots: []*entity.Spot{spot}},
		&fakeSubscriptionRepo{subs: []*entity.PushSubscription{testSubscription("user-a")}},
		nil,
		sender,
	)

	report, err := svc.SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Nil(t, spot.ChecklistNotifiedOn)

	// The next run may retry since delivery never happened.
	report, err = svc.SendReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)
}

// ==========================
// Error Handling Tests
// ==========================

func TestSendReminders_RepositoryFailureAbortsRun(t *testing.T) {
	repoErr := fmt.Errorf("connection refused")

	tests := []struct {
		name  string
		spots *fakeSpotRepo
		subs  *fakeSubscriptionRepo
		sess  *fakeSessionRepo
	}{
		{
			name:  "spot load failure",
			spots: &fakeSpotRepo{findErr: repoErr},
			subs:  &fakeSubscriptionRepo{},
		},
		{
			name:  "subscription load failure",
			spots: &fakeSpotRepo{},
			subs:  &fakeSubscriptionRepo{findErr: repoErr},
		},
		{
			name: "session count failure",
			spots: &fakeSpotRepo{spots: []*entity.Spot{
				completedSpot(1, "user-a", startIn(3)),
			}},
			subs: &fakeSubscriptionRepo{subs: []*entity.PushSubscription{testSubscription("user-a")}},
			sess: &fakeSessionRepo{countErr: repoErr},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.spots, tt.subs, tt.sess, &fakeSender{})
			report, err := svc.SendReminders(context.Background())
			require.ErrorIs(t, err, appErrors.ErrDatabaseOperation)
			assert.Nil(t, report)
		})
	}
}

// ==========================
// Day-Offset Math Tests
// ==========================

func TestDaysUntil(t *testing.T) {
	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		start time.Time
		want  int
	}{
		{name: "starts today", start: startIn(0), want: 0},
		{name: "starts tomorrow", start: startIn(1), want: 1},
		{name: "starts in a week", start: startIn(7), want: 7},
		{name: "already started", start: startIn(-2), want: -2},
		{name: "time of day on start date is ignored", start: startIn(3).Add(18 * time.Hour), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysUntil(today, tt.start))
		})
	}
}

func TestDaysUntil_StartDateScannedInUTC(t *testing.T) {
	// The sqlite driver hands stored timestamps back in UTC. A start date
	// saved as local midnight must still land on the same calendar day.
	zone := time.FixedZone("UTC+2", 2*60*60)
	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, zone)
	start := time.Date(2025, time.June, 11, 0, 0, 0, 0, zone).UTC()

	assert.Equal(t, 1, daysUntil(today, start), "spot starts tomorrow")
}

func TestNotifiedOn_MarkerScannedInUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, zone)
	marker := today.UTC()

	assert.True(t, notifiedOn(&marker, today), "marker from an earlier run today must suppress a repeat")
	assert.False(t, notifiedOn(nil, today))
}

func TestChecklistBody(t *testing.T) {
	assert.Equal(t, "1 checklist item still pending.", checklistBody(1))
	assert.Equal(t, "2 checklist items still pending.", checklistBody(2))
	assert.Equal(t, "7 checklist items still pending.", checklistBody(7))
}
