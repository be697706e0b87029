package booking

import (
	"context"
	"time"

	bookingRepo "styledecor/database/repository/booking"
	decoratorRepo "styledecor/database/repository/decorator"
	"styledecor/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminActor is the timeline actor recorded for admin-driven transitions.
const AdminActor = "admin"

// DefaultBookingService is the production lifecycle engine. Booking and
// decorator mutations are two separate writes against the store; a crash
// between them can leave workStatus stale until the release sweep runs.
type DefaultBookingService struct {
	Repo          bookingRepo.BookingRepository
	DecoratorRepo decoratorRepo.DecoratorRepository
	Logger        *zap.Logger

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create registers a new booking in the initial pending/unpaid state.
func (s *DefaultBookingService) Create(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	if b.UserEmail == "" || b.ServiceID == "" {
		return nil, NewLifecycleError(CodeInvalidReference, "user email and service reference are required")
	}

	b.ID = uuid.New().String()
	b.ServiceStatus = models.StatusPending
	b.PaymentStatus = models.PaymentUnpaid
	b.DecoratorResponse = models.ResponseUnset
	b.DecoratorID = ""
	b.DecoratorName = ""
	b.DecoratorEmail = ""
	b.StatusTimeline = []models.TimelineEntry{}

	if err := s.Repo.Create(b); err != nil {
		return nil, NewLifecycleError(CodeStoreFailure, err.Error())
	}
	return b, nil
}

// List returns bookings filtered by user email and status, newest-first.
func (s *DefaultBookingService) List(ctx context.Context, email string, status models.ServiceStatus) ([]models.Booking, error) {
	if status != "" && !status.Valid() {
		return nil, NewLifecycleError(CodeInvalidReference, "unknown service status "+string(status))
	}
	bookings, err := s.Repo.List(email, status)
	if err != nil {
		return nil, NewLifecycleError(CodeStoreFailure, err.Error())
	}
	return bookings, nil
}

// ListForDecorator returns a decorator's bookings, bucketed completed vs
// not-completed.
func (s *DefaultBookingService) ListForDecorator(ctx context.Context, email string, bucket bookingRepo.DecoratorBucket) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByDecorator(email, bucket)
	if err != nil {
		return nil, NewLifecycleError(CodeStoreFailure, err.Error())
	}
	return bookings, nil
}

// Assign attaches a decorator to a booking on behalf of an admin and marks
// the response pending.
func (s *DefaultBookingService) Assign(ctx context.Context, id string, ref models.DecoratorRef) error {
	if ref.ID == "" || ref.Email == "" {
		return NewLifecycleError(CodeInvalidReference, "decorator reference is incomplete")
	}

	b, err := s.load(id)
	if err != nil {
		return err
	}

	next, err := admit(b, ActionAssign, "")
	if err != nil {
		return err
	}

	if b.Assigned() {
		s.Logger.Info("reassigning booking to a new decorator",
			zap.String("bookingId", id),
			zap.String("previous", b.DecoratorEmail),
			zap.String("next", ref.Email))
	}

	set := map[string]interface{}{
		"serviceStatus":     next,
		"decoratorResponse": models.ResponsePending,
		"decoratorId":       ref.ID,
		"decoratorName":     ref.Name,
		"decoratorEmail":    ref.Email,
	}
	entry := &models.TimelineEntry{
		Status:    string(next),
		UpdatedAt: s.now(),
		UpdatedBy: AdminActor,
	}
	if err := s.Repo.UpdateWithTimeline(id, set, entry); err != nil {
		return NewLifecycleError(CodeStoreFailure, err.Error())
	}
	return nil
}

// Accept records the assigned decorator accepting the job and moves the
// booking into planning. The decorator's cached availability is flipped to
// busy in a second, non-atomic write.
func (s *DefaultBookingService) Accept(ctx context.Context, id, callerEmail string) error {
	b, err := s.loadForResponse(id, callerEmail)
	if err != nil {
		return err
	}

	next, err := admit(b, ActionAccept, "")
	if err != nil {
		return err
	}

	set := map[string]interface{}{
		"decoratorResponse": models.ResponseAccepted,
		"serviceStatus":     next,
	}
	entry := &models.TimelineEntry{
		Status:    string(next),
		UpdatedAt: s.now(),
		UpdatedBy: callerEmail,
	}
	if err := s.Repo.UpdateWithTimeline(id, set, entry); err != nil {
		return NewLifecycleError(CodeStoreFailure, err.Error())
	}

	if err := s.DecoratorRepo.SetWorkStatusByEmail(callerEmail, models.WorkBusy); err != nil {
		s.Logger.Warn("booking accepted but work status update failed",
			zap.String("bookingId", id), zap.String("decorator", callerEmail), zap.Error(err))
		return NewLifecycleError(CodeStoreFailure, err.Error())
	}
	return nil
}

// Reject returns the booking to pending with the assignment cleared and
// frees the decorator. The rejection is recorded on the timeline; the
// response resets to unset because no decorator remains assigned.
func (s *DefaultBookingService) Reject(ctx context.Context, id, callerEmail string) error {
	b, err := s.loadForResponse(id, callerEmail)
	if err != nil {
		return err
	}

	next, err := admit(b, ActionReject, "")
	if err != nil {
		return err
	}

	set := map[string]interface{}{
		"serviceStatus":     next,
		"decoratorResponse": models.ResponseUnset,
		"decoratorId":       nil,
		"decoratorName":     nil,
		"decoratorEmail":    nil,
	}
	entry := &models.TimelineEntry{
		Status:    models.TimelineRejected,
		UpdatedAt: s.now(),
		UpdatedBy: callerEmail,
	}
	if err := s.Repo.UpdateWithTimeline(id, set, entry); err != nil {
		return NewLifecycleError(CodeStoreFailure, err.Error())
	}

	if err := s.DecoratorRepo.SetWorkStatusByEmail(callerEmail, models.WorkAvailable); err != nil {
		s.Logger.Warn("booking rejected but work status update failed",
			zap.String("bookingId", id), zap.String("decorator", callerEmail), zap.Error(err))
		return NewLifecycleError(CodeStoreFailure, err.Error())
	}
	return nil
}

// Advance moves an accepted booking to one of the forward statuses. An
// invalid target fails before any write.
func (s *DefaultBookingService) Advance(ctx context.Context, id, callerEmail string, target models.ServiceStatus) error {
	if !advanceTargets[target] {
		return NewLifecycleError(CodeInvalidTransition, "invalid target status "+string(target))
	}

	b, err := s.load(id)
	if err != nil {
		return err
	}
	if b.DecoratorEmail != callerEmail {
		return NewLifecycleError(CodeForbidden, "caller is not the assigned decorator")
	}

	next, err := admit(b, ActionAdvance, target)
	if err != nil {
		return err
	}

	set := map[string]interface{}{"serviceStatus": next}
	entry := &models.TimelineEntry{
		Status:    string(next),
		UpdatedAt: s.now(),
		UpdatedBy: callerEmail,
	}
	if err := s.Repo.UpdateWithTimeline(id, set, entry); err != nil {
		return NewLifecycleError(CodeStoreFailure, err.Error())
	}
	return nil
}

// MarkPaid records a settled payment: booking paid, re-opened to pending,
// tracking ID attached. No timeline entry is appended for this reset.
func (s *DefaultBookingService) MarkPaid(ctx context.Context, id, trackingID string) error {
	b, err := s.load(id)
	if err != nil {
		return err
	}

	next, err := admit(b, ActionSettle, "")
	if err != nil {
		return err
	}

	set := map[string]interface{}{
		"paymentStatus": models.PaymentPaid,
		"serviceStatus": next,
		"trackingId":    trackingID,
	}
	if err := s.Repo.UpdateWithTimeline(id, set, nil); err != nil {
		return NewLifecycleError(CodeStoreFailure, err.Error())
	}
	return nil
}

// SetServiceDate updates the booking's service date.
func (s *DefaultBookingService) SetServiceDate(ctx context.Context, id, date string) error {
	if date == "" {
		return NewLifecycleError(CodeInvalidReference, "service date required")
	}
	if _, err := s.load(id); err != nil {
		return err
	}
	if err := s.Repo.SetServiceDate(id, date); err != nil {
		return NewLifecycleError(CodeStoreFailure, err.Error())
	}
	return nil
}

// Delete hard-removes a booking, bypassing the state machine.
func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	if _, err := s.load(id); err != nil {
		return err
	}
	if err := s.Repo.Delete(id); err != nil {
		return NewLifecycleError(CodeStoreFailure, err.Error())
	}
	return nil
}

// ReleaseStale force-completes bookings whose service date is in the past
// and frees their decorators. The stale filter excludes completed bookings,
// so the sweep is idempotent per booking.
func (s *DefaultBookingService) ReleaseStale(ctx context.Context) (int, error) {
	today := s.now().UTC().Format("2006-01-02")

	stale, err := s.Repo.ListStale(today)
	if err != nil {
		return 0, NewLifecycleError(CodeStoreFailure, err.Error())
	}

	released := 0
	for i := range stale {
		b := &stale[i]
		next, err := admit(b, ActionReconcile, "")
		if err != nil {
			continue
		}

		// Forced completion records no timeline actor entry.
		set := map[string]interface{}{"serviceStatus": next}
		if err := s.Repo.UpdateWithTimeline(b.ID, set, nil); err != nil {
			s.Logger.Warn("release sweep failed to complete booking",
				zap.String("bookingId", b.ID), zap.Error(err))
			continue
		}
		if err := s.DecoratorRepo.SetWorkStatusByEmail(b.DecoratorEmail, models.WorkAvailable); err != nil {
			s.Logger.Warn("release sweep failed to free decorator",
				zap.String("decorator", b.DecoratorEmail), zap.Error(err))
			continue
		}
		released++
	}

	if released > 0 {
		s.Logger.Info("release sweep completed stale bookings", zap.Int("released", released))
	}
	return released, nil
}

// load fetches a booking or returns a coded not-found error.
func (s *DefaultBookingService) load(id string) (*models.Booking, error) {
	if id == "" {
		return nil, NewLifecycleError(CodeInvalidReference, "booking id required")
	}
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, NewLifecycleError(CodeStoreFailure, err.Error())
	}
	if b == nil {
		return nil, NewLifecycleError(CodeNotFound, "booking not found")
	}
	return b, nil
}

// loadForResponse fetches a booking for an accept/reject call. A missing
// booking and a caller that is not the assigned decorator both come back as
// the same invalid-transition error, so the response does not reveal
// whether the booking exists.
func (s *DefaultBookingService) loadForResponse(id, callerEmail string) (*models.Booking, error) {
	if id == "" {
		return nil, NewLifecycleError(CodeInvalidReference, "booking id required")
	}
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, NewLifecycleError(CodeStoreFailure, err.Error())
	}
	if b == nil || b.DecoratorEmail != callerEmail {
		return nil, NewLifecycleError(CodeInvalidTransition, "invalid request")
	}
	return b, nil
}
