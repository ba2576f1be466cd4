package booking

import (
	"errors"
	"io"
	"net/http"
	"time"

	"commonhub/internal/api"
	"commonhub/internal/auth"
	"commonhub/internal/facility"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultCalendarDays = 30
	maxRangeDays        = 366
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	var tooMany *TooManyActiveBookingsError
	var persistence *PersistenceFailure

	switch {
	case errors.As(err, &tooMany):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.As(err, &persistence):
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, facility.ErrFacilityNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Facility not found"})
	case errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrSlotFull),
		errors.Is(err, ErrAlreadyBooked),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrBookingEnded):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrWalkInFacility),
		errors.Is(err, ErrOutsideBookingWindow),
		errors.Is(err, ErrSlotNotOffered),
		errors.Is(err, ErrSlotInPast):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: fallback})
	}
}

// bindOptionalJSON binds a request body when one is sent, chunked or not. An
// empty body leaves obj at its zero value.
func bindOptionalJSON(c *gin.Context, obj interface{}) bool {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		api.RespondBindError(c, err)
		return false
	}
	return true
}

func uuidParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) dateQuery(c *gin.Context, name string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		if fallback.IsZero() {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: name + " query param is required"})
			return time.Time{}, false
		}
		return fallback, true
	}

	d, err := ParseDate(raw, h.service.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid " + name + " format, use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return d, true
}

func (h *Handler) dateRange(c *gin.Context, defaultFrom time.Time) (time.Time, time.Time, bool) {
	from, ok := h.dateQuery(c, "from", defaultFrom)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	var defaultTo time.Time
	if !defaultFrom.IsZero() {
		defaultTo = from.AddDate(0, 0, defaultCalendarDays)
	}
	to, ok := h.dateQuery(c, "to", defaultTo)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	if to.Before(from) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "to must not be before from"})
		return time.Time{}, time.Time{}, false
	}
	if daysBetween(from, to) > maxRangeDays {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date range is limited to one year"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// GetAvailability godoc
// @Summary      Slot availability for a date
// @Description  Generates the facility's slots for the date and resolves how many seats remain in each.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        facilityID  path      string  true  "Facility ID"
// @Param        date        query     string  true  "Date (YYYY-MM-DD)"
// @Success      200         {object}  booking.DayAvailability
// @Failure      400         {object}  api.ErrorResponse
// @Failure      404         {object}  api.ErrorResponse
// @Failure      500         {object}  api.ErrorResponse
// @Router       /facilities/{facilityID}/availability [get]
func (h *Handler) GetAvailability(c *gin.Context) {
	facilityID, ok := uuidParam(c, "facilityID", "facility")
	if !ok {
		return
	}

	date, ok := h.dateQuery(c, "date", time.Time{})
	if !ok {
		return
	}

	day, err := h.service.Availability(c.Request.Context(), facilityID, date)
	if err != nil {
		h.respondError(c, err, "Failed to resolve availability")
		return
	}

	c.JSON(http.StatusOK, day)
}

// GetCalendar godoc
// @Summary      Bookable dates
// @Description  Lists the dates in [from, to] a resident may pick. Defaults to the next 30 days.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        facilityID  path      string  true   "Facility ID"
// @Param        from        query     string  false  "First date (YYYY-MM-DD)"
// @Param        to          query     string  false  "Last date (YYYY-MM-DD)"
// @Success      200         {object}  booking.CalendarView
// @Failure      400         {object}  api.ErrorResponse
// @Failure      404         {object}  api.ErrorResponse
// @Router       /facilities/{facilityID}/calendar [get]
func (h *Handler) GetCalendar(c *gin.Context) {
	facilityID, ok := uuidParam(c, "facilityID", "facility")
	if !ok {
		return
	}

	from, to, ok := h.dateRange(c, h.service.Today())
	if !ok {
		return
	}

	view, err := h.service.Calendar(c.Request.Context(), facilityID, from, to)
	if err != nil {
		h.respondError(c, err, "Failed to build calendar")
		return
	}

	c.JSON(http.StatusOK, view)
}

// CreateBooking godoc
// @Summary      Book a slot
// @Description  Runs the admission checks and creates a pending or approved booking.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        facilityID  path      string                        true  "Facility ID"
// @Param        request     body      booking.CreateBookingRequest  true  "Slot to book"
// @Success      201         {object}  booking.AdmissionResult
// @Failure      400         {object}  api.ErrorResponse
// @Failure      404         {object}  api.ErrorResponse
// @Failure      409         {object}  api.ErrorResponse
// @Failure      500         {object}  api.ErrorResponse
// @Router       /facilities/{facilityID}/bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	facilityID, ok := uuidParam(c, "facilityID", "facility")
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	date, err := ParseDate(req.Date, h.service.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date format, use YYYY-MM-DD"})
		return
	}
	start, err := facility.ParseClock(req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid start_time format, use HH:MM"})
		return
	}

	result, err := h.service.AttemptBooking(c.Request.Context(), userID, facilityID, date, start, req.Notes)
	if err != nil {
		h.respondError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// CancelBooking godoc
// @Summary      Cancel booking
// @Description  Cancels a pending or approved booking of the current user before it ends.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID  path      string                        true   "Booking ID"
// @Param        request    body      booking.CancelBookingRequest  false  "Cancellation reason"
// @Success      200        {object}  booking.CancelResult
// @Failure      400        {object}  api.ErrorResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [post]
func (h *Handler) CancelBooking(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookingID, ok := uuidParam(c, "bookingID", "booking")
	if !ok {
		return
	}

	var req CancelBookingRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	actor := Actor{UserID: userID, IsAdmin: auth.IsAdmin(c)}
	result, err := h.service.CancelBooking(c.Request.Context(), actor, bookingID, req.Reason)
	if err != nil {
		h.respondError(c, err, "Failed to cancel booking")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListMyBookings godoc
// @Summary      List my bookings
// @Description  Returns bookings of the authenticated user. Approved bookings that are over read as completed.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   booking.Booking
// @Failure      500  {object}  api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookings, err := h.service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListFacilityBookings godoc
// @Summary      List bookings of a facility for a date
// @Tags         admin,bookings
// @Security     BearerAuth
// @Produce      json
// @Param        facilityID  path      string  true  "Facility ID"
// @Param        date        query     string  true  "Date (YYYY-MM-DD)"
// @Success      200         {array}   booking.Booking
// @Failure      400         {object}  api.ErrorResponse
// @Failure      404         {object}  api.ErrorResponse
// @Router       /admin/facilities/{facilityID}/bookings [get]
func (h *Handler) ListFacilityBookings(c *gin.Context) {
	facilityID, ok := uuidParam(c, "facilityID", "facility")
	if !ok {
		return
	}

	date, ok := h.dateQuery(c, "date", time.Time{})
	if !ok {
		return
	}

	bookings, err := h.service.ListFacilityBookings(c.Request.Context(), facilityID, date)
	if err != nil {
		h.respondError(c, err, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ApproveBooking godoc
// @Summary      Approve a pending booking
// @Tags         admin,bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID  path      string  true  "Booking ID"
// @Success      200        {object}  booking.Booking
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /admin/bookings/{bookingID}/approve [post]
func (h *Handler) ApproveBooking(c *gin.Context) {
	bookingID, ok := uuidParam(c, "bookingID", "booking")
	if !ok {
		return
	}

	b, err := h.service.ApproveBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.respondError(c, err, "Failed to approve booking")
		return
	}

	c.JSON(http.StatusOK, b)
}

// RejectBooking godoc
// @Summary      Reject a pending booking
// @Tags         admin,bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID  path      string                        true   "Booking ID"
// @Param        request    body      booking.RejectBookingRequest  false  "Rejection reason"
// @Success      200        {object}  booking.Booking
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /admin/bookings/{bookingID}/reject [post]
func (h *Handler) RejectBooking(c *gin.Context) {
	bookingID, ok := uuidParam(c, "bookingID", "booking")
	if !ok {
		return
	}

	var req RejectBookingRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	b, err := h.service.RejectBooking(c.Request.Context(), bookingID, req.Reason)
	if err != nil {
		h.respondError(c, err, "Failed to reject booking")
		return
	}

	c.JSON(http.StatusOK, b)
}

// UpdatePayment godoc
// @Summary      Record a payment or refund
// @Description  Moves payment status unpaid -> paid or paid -> refunded.
// @Tags         admin,bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID  path      string                        true  "Booking ID"
// @Param        request    body      booking.UpdatePaymentRequest  true  "New payment status"
// @Success      200        {object}  booking.Booking
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Router       /admin/bookings/{bookingID}/payment [put]
func (h *Handler) UpdatePayment(c *gin.Context) {
	bookingID, ok := uuidParam(c, "bookingID", "booking")
	if !ok {
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	b, err := h.service.UpdatePaymentStatus(c.Request.Context(), bookingID, req.PaymentStatus)
	if err != nil {
		h.respondError(c, err, "Failed to update payment")
		return
	}

	c.JSON(http.StatusOK, b)
}

// GetBookingAnalytics godoc
// @Summary      Booking analytics
// @Description  Per-day booking counts by status. Admin only.
// @Tags         admin,bookings
// @Security     BearerAuth
// @Produce      json
// @Param        from         query     string  true   "First date (YYYY-MM-DD)"
// @Param        to           query     string  true   "Last date (YYYY-MM-DD)"
// @Param        facility_id  query     string  false  "Facility ID"
// @Success      200          {object}  map[string]interface{}
// @Failure      400          {object}  api.ErrorResponse
// @Failure      500          {object}  api.ErrorResponse
// @Router       /admin/analytics/bookings [get]
func (h *Handler) GetBookingAnalytics(c *gin.Context) {
	from, to, ok := h.dateRange(c, time.Time{})
	if !ok {
		return
	}

	var facilityID *uuid.UUID
	if raw := c.Query("facility_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid facility ID"})
			return
		}
		facilityID = &id
	}

	stats, err := h.service.BookingStats(c.Request.Context(), facilityID, from, to)
	if err != nil {
		h.respondError(c, err, "failed to fetch stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"group_by":    "day",
		"from":        from.Format(DateLayout),
		"to":          to.Format(DateLayout),
		"facility_id": facilityID,
		"data":        stats,
	})
}
