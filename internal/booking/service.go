package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"commonhub/internal/events"
	"commonhub/internal/facility"
	"commonhub/internal/logger"
	"commonhub/internal/metrics"

	"github.com/google/uuid"
)

// EventQueue receives booking lifecycle events for asynchronous publishing.
type EventQueue interface {
	Enqueue(ctx context.Context, e events.Event) error
}

type Service interface {
	Availability(ctx context.Context, facilityID uuid.UUID, date time.Time) (*DayAvailability, error)
	Calendar(ctx context.Context, facilityID uuid.UUID, from, to time.Time) (*CalendarView, error)
	AttemptBooking(ctx context.Context, userID, facilityID uuid.UUID, date time.Time, start facility.ClockTime, notes string) (*AdmissionResult, error)
	CancelBooking(ctx context.Context, actor Actor, bookingID uuid.UUID, reason string) (*CancelResult, error)
	ApproveBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error)
	RejectBooking(ctx context.Context, bookingID uuid.UUID, reason string) (*Booking, error)
	UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, to PaymentStatus) (*Booking, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	ListFacilityBookings(ctx context.Context, facilityID uuid.UUID, date time.Time) ([]Booking, error)
	BookingStats(ctx context.Context, facilityID *uuid.UUID, from, to time.Time) ([]DayStats, error)
	Today() time.Time
	Location() *time.Location
}

type service struct {
	bookingRepo  Repository
	facilityRepo facility.Repository
	queue        EventQueue
	loc          *time.Location
	now          func() time.Time
}

func NewService(bookingRepo Repository, facilityRepo facility.Repository, queue EventQueue, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		bookingRepo:  bookingRepo,
		facilityRepo: facilityRepo,
		queue:        queue,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *service) clock() time.Time {
	return s.now().In(s.loc)
}

func (s *service) Today() time.Time {
	y, m, d := s.clock().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, s.loc)
}

func (s *service) Location() *time.Location {
	return s.loc
}

func (s *service) Availability(ctx context.Context, facilityID uuid.UUID, date time.Time) (*DayAvailability, error) {
	f, err := s.facilityRepo.GetFacilityByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if !f.Config.IsBookable() {
		return nil, ErrWalkInFacility
	}

	bookings, err := s.bookingRepo.ListForFacilityDate(ctx, facilityID, date)
	if err != nil {
		return nil, err
	}

	return s.dayAvailability(f, bookings, date), nil
}

func (s *service) dayAvailability(f *facility.Facility, bookings []Booking, date time.Time) *DayAvailability {
	day := &DayAvailability{
		FacilityID: f.ID,
		Date:       date.Format(DateLayout),
		Slots:      ResolveDay(f.Config, bookings, date),
	}
	if len(day.Slots) == 0 {
		day.Message = NoSlotsMessage
	}
	return day
}

func (s *service) Calendar(ctx context.Context, facilityID uuid.UUID, from, to time.Time) (*CalendarView, error) {
	f, err := s.facilityRepo.GetFacilityByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if !f.Config.IsBookable() {
		return nil, ErrWalkInFacility
	}

	view := &CalendarView{
		FacilityID: f.ID,
		From:       from.Format(DateLayout),
		To:         to.Format(DateLayout),
		Dates:      []string{},
	}
	for _, d := range SelectableDates(f.Config, from, to, s.Today()) {
		view.Dates = append(view.Dates, d.Format(DateLayout))
	}
	return view, nil
}

func (s *service) AttemptBooking(ctx context.Context, userID, facilityID uuid.UUID, date time.Time, start facility.ClockTime, notes string) (*AdmissionResult, error) {
	f, err := s.facilityRepo.GetFacilityByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	userBookings, err := s.bookingRepo.ListActiveForUser(ctx, userID, facilityID)
	if err != nil {
		return nil, err
	}

	// A unique violation on the seat index means another request took the
	// chosen seat after our snapshot. Re-admit against a fresh snapshot; each
	// conflict consumes a seat, so capacity bounds the attempts.
	var created *Booking
	for attempt := 1; ; attempt++ {
		bookings, err := s.bookingRepo.ListForFacilityDate(ctx, facilityID, date)
		if err != nil {
			return nil, err
		}

		candidate, err := Admit(AdmissionRequest{
			FacilityID:   facilityID,
			UserID:       userID,
			Config:       f.Config,
			Date:         date,
			Start:        start,
			Notes:        notes,
			Bookings:     bookings,
			UserBookings: userBookings,
			Now:          s.clock(),
		})
		if err != nil {
			metrics.RecordAdmissionFailure(admissionFailureReason(err))
			logger.Info("Booking refused",
				"user_id", userID,
				"facility_id", facilityID,
				"date", date.Format(DateLayout),
				"start", start,
				"reason", err.Error(),
			)
			return nil, err
		}

		created, err = s.bookingRepo.CreateBooking(ctx, candidate)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrSlotFull) {
			metrics.RecordAdmissionFailure("persistence")
			logger.Error("Failed to persist booking", "facility_id", facilityID, "user_id", userID, "error", err)
			return nil, &PersistenceFailure{Err: err}
		}
		if attempt >= f.Config.Capacity() {
			metrics.RecordAdmissionFailure(admissionFailureReason(err))
			return nil, ErrSlotFull
		}
		logger.Debug("Seat taken concurrently, re-admitting",
			"facility_id", facilityID,
			"seat", candidate.Seat,
			"attempt", attempt,
		)
	}

	metrics.RecordAdmission(string(created.Status), string(created.PaymentStatus))
	s.publish(ctx, events.BookingCreated, created, "")
	logger.Info("Booking admitted",
		"booking_id", created.ID,
		"facility_id", facilityID,
		"status", created.Status,
		"payment_status", created.PaymentStatus,
	)

	result := &AdmissionResult{
		Booking: created,
		Message: ConfirmationMessage(created, f.Config),
	}

	refreshed, err := s.bookingRepo.ListForFacilityDate(ctx, facilityID, date)
	if err != nil {
		logger.Warn("Failed to refresh availability after booking", "facility_id", facilityID, "error", err)
		return result, nil
	}
	result.Availability = s.dayAvailability(f, refreshed, date)
	return result, nil
}

func admissionFailureReason(err error) string {
	var tooMany *TooManyActiveBookingsError
	switch {
	case errors.As(err, &tooMany):
		return "too_many_active"
	case errors.Is(err, ErrSlotFull):
		return "slot_full"
	case errors.Is(err, ErrAlreadyBooked):
		return "already_booked"
	case errors.Is(err, ErrOutsideBookingWindow):
		return "outside_window"
	case errors.Is(err, ErrSlotNotOffered):
		return "slot_not_offered"
	case errors.Is(err, ErrSlotInPast):
		return "slot_in_past"
	case errors.Is(err, ErrWalkInFacility):
		return "walk_in"
	default:
		return "other"
	}
}

// CancelBooking cancels a pending or approved booking that has not ended.
// Cancelling inside the facility's notice window succeeds with a warning.
func (s *service) CancelBooking(ctx context.Context, actor Actor, bookingID uuid.UUID, reason string) (*CancelResult, error) {
	b, err := s.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !actor.IsAdmin && b.UserID != actor.UserID {
		return nil, ErrForbidden
	}
	if !b.Status.IsActive() {
		return nil, ErrInvalidTransition
	}

	now := s.clock()
	if b.HasEnded(now) {
		return nil, ErrBookingEnded
	}

	cancelled, err := s.transition(ctx, b, StatusCancelled, reason)
	if err != nil {
		return nil, err
	}

	result := &CancelResult{
		Booking: cancelled,
		Message: "Booking cancelled successfully",
	}

	f, err := s.facilityRepo.GetFacilityByID(ctx, b.FacilityID)
	if err != nil {
		logger.Warn("Failed to load facility for cancellation notice", "facility_id", b.FacilityID, "error", err)
		return result, nil
	}
	result.Warning = cancellationWarning(f.Config, *b, now)
	return result, nil
}

func cancellationWarning(cfg facility.Config, b Booking, now time.Time) string {
	if cfg.CancellationNoticeHours <= 0 {
		return ""
	}
	notice := time.Duration(cfg.CancellationNoticeHours) * time.Hour
	if b.StartsAt(now.Location()).Sub(now) >= notice {
		return ""
	}
	return fmt.Sprintf("Cancelled with less than the facility's %dh notice", cfg.CancellationNoticeHours)
}

func (s *service) ApproveBooking(ctx context.Context, bookingID uuid.UUID) (*Booking, error) {
	b, err := s.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusPending {
		return nil, ErrInvalidTransition
	}
	if b.HasEnded(s.clock()) {
		return nil, ErrBookingEnded
	}

	return s.transition(ctx, b, StatusApproved, "")
}

func (s *service) RejectBooking(ctx context.Context, bookingID uuid.UUID, reason string) (*Booking, error) {
	b, err := s.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusPending {
		return nil, ErrInvalidTransition
	}

	return s.transition(ctx, b, StatusRejected, reason)
}

func (s *service) transition(ctx context.Context, b *Booking, to Status, reason string) (*Booking, error) {
	updated, err := s.bookingRepo.UpdateStatus(ctx, b.ID, b.Status, to, reason)
	if err != nil {
		if errors.Is(err, ErrBookingChanged) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	metrics.RecordTransition(string(to))
	s.publish(ctx, eventTypeFor(to), updated, reason)
	logger.Info("Booking status changed",
		"booking_id", updated.ID,
		"from", b.Status,
		"to", to,
	)
	return updated, nil
}

func eventTypeFor(to Status) events.Type {
	switch to {
	case StatusApproved:
		return events.BookingApproved
	case StatusRejected:
		return events.BookingRejected
	default:
		return events.BookingCancelled
	}
}

var paymentTransitions = map[PaymentStatus]PaymentStatus{
	PaymentUnpaid: PaymentPaid,
	PaymentPaid:   PaymentRefunded,
}

func (s *service) UpdatePaymentStatus(ctx context.Context, bookingID uuid.UUID, to PaymentStatus) (*Booking, error) {
	b, err := s.bookingRepo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if next, ok := paymentTransitions[b.PaymentStatus]; !ok || next != to {
		return nil, ErrInvalidTransition
	}

	updated, err := s.bookingRepo.UpdatePaymentStatus(ctx, b.ID, b.PaymentStatus, to)
	if err != nil {
		if errors.Is(err, ErrBookingChanged) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	s.publish(ctx, events.BookingPaymentUpdated, updated, "")
	logger.Info("Booking payment updated", "booking_id", updated.ID, "from", b.PaymentStatus, "to", to)
	return updated, nil
}

func (s *service) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	bookings, err := s.bookingRepo.ListUserBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withDerivedStatus(bookings), nil
}

func (s *service) ListFacilityBookings(ctx context.Context, facilityID uuid.UUID, date time.Time) ([]Booking, error) {
	if _, err := s.facilityRepo.GetFacilityByID(ctx, facilityID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListForFacilityDate(ctx, facilityID, date)
	if err != nil {
		return nil, err
	}
	return s.withDerivedStatus(bookings), nil
}

func (s *service) withDerivedStatus(bookings []Booking) []Booking {
	now := s.clock()
	out := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.WithDerivedStatus(now))
	}
	return out
}

func (s *service) BookingStats(ctx context.Context, facilityID *uuid.UUID, from, to time.Time) ([]DayStats, error) {
	return s.bookingRepo.GetBookingStatsByDay(ctx, facilityID, from, to)
}

// publish enqueues a lifecycle event. A queue failure is logged and never
// undoes the booking change that caused it.
func (s *service) publish(ctx context.Context, t events.Type, b *Booking, reason string) {
	if s.queue == nil {
		return
	}

	e := events.Event{
		ID:            uuid.New(),
		Type:          t,
		BookingID:     b.ID,
		FacilityID:    b.FacilityID,
		UserID:        b.UserID,
		BookingDate:   b.BookingDate.Format(DateLayout),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Reason:        reason,
		OccurredAt:    s.clock(),
	}
	if err := s.queue.Enqueue(ctx, e); err != nil {
		logger.Warn("Failed to enqueue booking event", "type", t, "booking_id", b.ID, "error", err)
	}
}
