package booking

import (
	"context"
	"testing"
	"time"

	bookingRepo "styledecor/database/repository/booking"
	"styledecor/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// --- Mock BookingRepository ---

type recordedUpdate struct {
	id    string
	set   bson.M
	entry *models.TimelineEntry
}

type mockBookingRepo struct {
	getFn   func(id string) (*models.Booking, error)
	staleFn func(before string) ([]models.Booking, error)
	updates []recordedUpdate
}

func (m *mockBookingRepo) Create(b *models.Booking) error { return nil }
func (m *mockBookingRepo) GetByID(id string) (*models.Booking, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, nil
}
func (m *mockBookingRepo) List(email string, status models.ServiceStatus) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) ListByDecorator(email string, bucket bookingRepo.DecoratorBucket) ([]models.Booking, error) {
	return nil, nil
}
func (m *mockBookingRepo) UpdateWithTimeline(id string, set bson.M, entry *models.TimelineEntry) error {
	m.updates = append(m.updates, recordedUpdate{id: id, set: set, entry: entry})
	return nil
}
func (m *mockBookingRepo) SetServiceDate(id, date string) error { return nil }
func (m *mockBookingRepo) Delete(id string) error               { return nil }
func (m *mockBookingRepo) ListStale(before string) ([]models.Booking, error) {
	if m.staleFn != nil {
		return m.staleFn(before)
	}
	return nil, nil
}
func (m *mockBookingRepo) DecoratorEmailsOnDate(date string) ([]string, error) { return nil, nil }

// --- Mock DecoratorRepository ---

type mockDecoratorRepo struct {
	workStatusCalls []string
	lastWorkStatus  models.WorkStatus
}

func (m *mockDecoratorRepo) Create(d *models.Decorator) error            { return nil }
func (m *mockDecoratorRepo) GetByID(id string) (*models.Decorator, error) { return nil, nil }
func (m *mockDecoratorRepo) List(status models.ApprovalStatus, district string) ([]models.Decorator, error) {
	return nil, nil
}
func (m *mockDecoratorRepo) ListApprovedExcluding(emails []string, district string) ([]models.Decorator, error) {
	return nil, nil
}
func (m *mockDecoratorRepo) SetDecision(id string, status models.ApprovalStatus) error { return nil }
func (m *mockDecoratorRepo) SetWorkStatusByEmail(email string, ws models.WorkStatus) error {
	m.workStatusCalls = append(m.workStatusCalls, email)
	m.lastWorkStatus = ws
	return nil
}
func (m *mockDecoratorRepo) Delete(id string) error { return nil }

func newTestService(repo *mockBookingRepo, decorators *mockDecoratorRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:          repo,
		DecoratorRepo: decorators,
		Logger:        zap.NewNop(),
		Now:           func() time.Time { return time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC) },
	}
}

func assignedBooking() *models.Booking {
	return &models.Booking{
		ID:                "b1",
		UserEmail:         "customer@example.com",
		ServiceID:         "s1",
		ServiceStatus:     models.StatusAssigned,
		DecoratorResponse: models.ResponsePending,
		DecoratorID:       "d1",
		DecoratorName:     "Dina",
		DecoratorEmail:    "dina@example.com",
		PaymentStatus:     models.PaymentUnpaid,
		StatusTimeline: []models.TimelineEntry{
			{Status: "assigned", UpdatedBy: "admin"},
		},
	}
}

// --- Tests ---

func TestAssign_SetsPendingResponseAndTimeline(t *testing.T) {
	b := &models.Booking{ID: "b1", UserEmail: "customer@example.com", ServiceID: "s1", ServiceStatus: models.StatusPending}
	repo := &mockBookingRepo{getFn: func(id string) (*models.Booking, error) { return b, nil }}
	svc := newTestService(repo, &mockDecoratorRepo{})

	err := svc.Assign(context.Background(), "b1", models.DecoratorRef{ID: "d1", Name: "Dina", Email: "dina@example.com"})

	assert.NoError(t, err)
	assert.Len(t, repo.updates, 1)
	update := repo.updates[0]
	assert.Equal(t, models.StatusAssigned, update.set["serviceStatus"])
	assert.Equal(t, models.ResponsePending, update.set["decoratorResponse"])
	assert.Equal(t, "dina@example.com", update.set["decoratorEmail"])
	assert.Equal(t, AdminActor, update.entry.UpdatedBy)
	assert.Equal(t, string(models.StatusAssigned), update.entry.Status)
}

func TestAssign_ReassignReplacesDecorator(t *testing.T) {
	b := assignedBooking()
	repo := &mockBookingRepo{getFn: func(id string) (*models.Booking, error) { return b, nil }}
	svc := newTestService(repo, &mockDecoratorRepo{})

	err := svc.Assign(context.Background(), "b1", models.DecoratorRef{ID: "d2", Name: "Remy", Email: "remy@example.com"})

	assert.NoError(t, err)
	assert.Len(t, repo.updates, 1)
	update := repo.updates[0]
	assert.Equal(t, models.StatusAssigned, update.set["serviceStatus"])
	assert.Equal(t, "remy@example.com", update.set["decoratorEmail"])
	assert.Equal(t, models.ResponsePending, update.set["decoratorResponse"])
}

func TestAssign_IncompleteReference(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newTestService(repo, &mockDecoratorRepo{})

	err := svc.Assign(context.Background(), "b1", models.DecoratorRef{Name: "Dina"})

	assert.Equal(t, CodeInvalidReference, CodeOf(err))
	assert.Empty(t, repo.updates)
}

func TestAccept_MovesToPlanningAndMarksDecoratorBusy(t *testing.T) {
	b := assignedBooking()
	repo := &mockBookingRepo{getFn: func(id string) (*models.Booking, error) { return b, nil }}
	decorators := &mockDecoratorRepo{}
	svc := newTestService(repo, decorators)

	err := svc.Accept(context.Background(), "b1", "dina@example.com")

	assert.NoError(t, err)
	assert.Len(t, repo.updates, 1)
	update := repo.updates[0]
	assert.Equal(t, models.StatusPlanning, update.set["serviceStatus"])
	assert.Equal(t, models.ResponseAccepted, update.set["decoratorResponse"])
	assert.NotNil(t, update.entry)
	assert.Equal(t, string(models.StatusPlanning), update.entry.Status)
	assert.Equal(t, "dina@example.com", update.entry.UpdatedBy)
	assert.Equal(t, []string{"dina@example.com"}, decorators.workStatusCalls)
	assert.Equal(t, models.WorkBusy, decorators.lastWorkStatus)
}

func TestAccept_SecondCallAfterPlanningFails(t *testing.T) {
	b := assignedBooking()
	b.ServiceStatus = models.StatusPlanning
	b.DecoratorResponse = models.ResponseAccepted
	repo := &mockBookingRepo{getFn: func(id string) (*models.Booking, error) { return b, nil }}
	decorators := &mockDecoratorRepo{}
	svc := newTestService(repo, decorators)

	err := svc.Accept(context.Background(), "b1", "dina@example.com")

	assert.Error(t, err)
	assert.Equal(t, CodeInvalidTransition, CodeOf(err))
	assert.Empty(t, repo.updates, "a rejected transition must not mutate state")
	assert.Empty(t, decorators.workStatusCalls)
}

func TestAccept_CallerIsNotAssignedDecorator(t *testing.T) {
	b := assignedBooking()
	repo := &mockBookingRepo{getFn: func(id string) (*models.Booking, error) { return b, nil }}
	svc := newTestService(repo, &mockDecoratorRepo{})

	err := svc.Accept(context.Background(), "b1", "other@example.com")

	assert.Equal(t, CodeInvalidTransition, CodeOf(err))
	assert.Empty(t, repo.updates)
}

func TestReject_ResetsAssignmentAndFreesDecorator(t *testing.T) {
	b := assignedBooking()
	repo := &mockBookingRepo{getFn: func(id string) (*models.Booking, error) { return b, nil }}
	decorators := &mockDecoratorRepo{}
	svc := newTestService(repo, decorators)

	err := svc.Reject(context.Background(), "b1", "dina@example.com")

	assert.NoError(t, err)
	assert.Len(t, repo.updates, 1)
	update := repo.updates[0]
	assert.Equal(t, models.StatusPending, update.set["serviceStatus"])
	assert.Equal(t, models.ResponseUnset, update.set["decoratorResponse"])
	assert.Nil(t, update.set["decoratorId"])
	assert.Nil(t, update.set["decoratorName"])
	assert.Nil(t, update.set["decoratorEmail"])
	assert.Equal(t, models.TimelineRejected, update.entry.Status)
	assert.Equal(t, models.WorkAvailable, decorators.lastWorkStatus)
}

func TestAdvance_InvalidTargetLeavesStateUntouched(t *testing.T) {
	repo := &mockBookingRepo{getFn: func(id string) (*models.Booking, error) {
		t.Fatal("an invalid target must be rejected before any read")
		return nil, nil
	}}
	svc := newTestService(repo, &mockDecoratorRepo{})

	err := svc.Advance(context.Background(), "b1", "dina@example.com", "cancelled")

	assert.Equal(t, CodeInvalidTransition, CodeOf(err))
	assert.Empty(t, repo.updates)
}

func TestAdvance_ForbiddenForOtherDecorator(t *testing.T) {
	b := assignedBooking()
	b.ServiceStatus = models.StatusPlanning
	b.DecoratorResponse = models.ResponseAccepted
	repo := &mockBookingRepo{getFn: func(id string) (*models.Booking, error) { return b, nil }}
	svc := newTestService(repo, &mockDecoratorRepo{})

	err := svc.Advance(context.Background(), "b1", "intruder@example.com", models.StatusOnTheWay)

	assert.Equal(t, CodeForbidden, CodeOf(err))
	assert.Empty(t, repo.updates)
}

func TestAdvance_AppendsOneTimelineEntry(t *testing.T) {
	b := assignedBooking()
	b.ServiceStatus = models.StatusPlanning
	b.DecoratorResponse = models.ResponseAccepted
	repo := &mockBookingRepo{getFn: func(id string) (*models.Booking, error) { return b, nil }}
	svc := newTestService(repo, &mockDecoratorRepo{})

	err := svc.Advance(context.Background(), "b1", "dina@example.com", models.StatusMaterialsPrepared)

	assert.NoError(t, err)
	assert.Len(t, repo.updates, 1)
	assert.Equal(t, string(models.StatusMaterialsPrepared), repo.updates[0].entry.Status)
}

func TestMarkPaid_ReopensBookingWithoutTimelineEntry(t *testing.T) {
	b := assignedBooking()
	b.ServiceStatus = models.StatusPlanning
	repo := &mockBookingRepo{getFn: func(id string) (*models.Booking, error) { return b, nil }}
	svc := newTestService(repo, &mockDecoratorRepo{})

	err := svc.MarkPaid(context.Background(), "b1", "PRCL-20250610-A1B2C3")

	assert.NoError(t, err)
	assert.Len(t, repo.updates, 1)
	update := repo.updates[0]
	assert.Equal(t, models.PaymentPaid, update.set["paymentStatus"])
	assert.Equal(t, models.StatusPending, update.set["serviceStatus"])
	assert.Equal(t, "PRCL-20250610-A1B2C3", update.set["trackingId"])
	assert.Nil(t, update.entry)
}

func TestReleaseStale_CompletesBookingAndFreesDecorator(t *testing.T) {
	stale := *assignedBooking()
	stale.ServiceStatus = models.StatusPlanning
	stale.DecoratorResponse = models.ResponseAccepted
	stale.ServiceDate = "2025-06-09"

	calls := 0
	repo := &mockBookingRepo{staleFn: func(before string) ([]models.Booking, error) {
		calls++
		assert.Equal(t, "2025-06-10", before)
		if calls == 1 {
			return []models.Booking{stale}, nil
		}
		// Second sweep: nothing stale remains.
		return nil, nil
	}}
	decorators := &mockDecoratorRepo{}
	svc := newTestService(repo, decorators)

	released, err := svc.ReleaseStale(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, released)
	assert.Len(t, repo.updates, 1)
	update := repo.updates[0]
	assert.Equal(t, models.StatusCompleted, update.set["serviceStatus"])
	assert.Nil(t, update.entry, "forced completion records no timeline actor entry")
	assert.Equal(t, models.WorkAvailable, decorators.lastWorkStatus)

	released, err = svc.ReleaseStale(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, released)
	assert.Len(t, repo.updates, 1, "re-running the sweep is a no-op")
}

func TestCreate_StartsPendingAndUnpaid(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newTestService(repo, &mockDecoratorRepo{})

	created, err := svc.Create(context.Background(), &models.Booking{
		UserEmail: "customer@example.com",
		ServiceID: "s1",
		// Clients cannot smuggle in a decorator or status.
		ServiceStatus:  models.StatusCompleted,
		DecoratorEmail: "sneaky@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.ServiceStatus)
	assert.Equal(t, models.PaymentUnpaid, created.PaymentStatus)
	assert.Equal(t, models.ResponseUnset, created.DecoratorResponse)
	assert.Empty(t, created.DecoratorEmail)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.StatusTimeline)
}

func TestCreate_RequiresUserAndService(t *testing.T) {
	svc := newTestService(&mockBookingRepo{}, &mockDecoratorRepo{})

	_, err := svc.Create(context.Background(), &models.Booking{UserEmail: "x@example.com"})

	assert.Equal(t, CodeInvalidReference, CodeOf(err))
}
