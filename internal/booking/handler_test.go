package booking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"commonhub/internal/auth"
	"commonhub/internal/facility"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// withUser stands in for the JWT middleware.
func withUser(userID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

func setupRouter(svc Service, userID uuid.UUID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	r := gin.New()
	r.Use(withUser(userID, role))
	r.GET("/facilities/:facilityID/availability", h.GetAvailability)
	r.GET("/facilities/:facilityID/calendar", h.GetCalendar)
	r.POST("/facilities/:facilityID/bookings", h.CreateBooking)
	r.GET("/bookings", h.ListMyBookings)
	r.POST("/bookings/:bookingID/cancel", h.CancelBooking)
	r.GET("/admin/facilities/:facilityID/bookings", h.ListFacilityBookings)
	r.POST("/admin/bookings/:bookingID/approve", h.ApproveBooking)
	r.POST("/admin/bookings/:bookingID/reject", h.RejectBooking)
	r.PUT("/admin/bookings/:bookingID/payment", h.UpdatePayment)
	r.GET("/admin/analytics/bookings", h.GetBookingAnalytics)
	return r
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestHandler_GetAvailability(t *testing.T) {
	svc := new(MockService)
	r := setupRouter(svc, uuid.New(), auth.RoleResident)
	facilityID := uuid.New()

	svc.On("Availability", mock.Anything, facilityID, testMonday).Return(&DayAvailability{
		FacilityID: facilityID,
		Date:       "2026-10-19",
		Slots: []SlotAvailability{{
			TimeSlot:     slot("09:00", "10:00"),
			Availability: Availability{Booked: 1, Capacity: 2, Available: 1},
		}},
	}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/facilities/"+facilityID.String()+"/availability?date=2026-10-19", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	slots := body["slots"].([]interface{})
	require.Len(t, slots, 1)
	first := slots[0].(map[string]interface{})
	assert.Equal(t, "09:00", first["start"])
	assert.Equal(t, float64(1), first["available"])
}

func TestHandler_GetAvailability_BadInput(t *testing.T) {
	svc := new(MockService)
	r := setupRouter(svc, uuid.New(), auth.RoleResident)
	facilityID := uuid.New().String()

	tests := []struct {
		name string
		url  string
	}{
		{"missing date", "/facilities/" + facilityID + "/availability"},
		{"malformed date", "/facilities/" + facilityID + "/availability?date=19-10-2026"},
		{"bad facility id", "/facilities/nope/availability?date=2026-10-19"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	svc.AssertNotCalled(t, "Availability", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_GetAvailability_WalkIn(t *testing.T) {
	svc := new(MockService)
	r := setupRouter(svc, uuid.New(), auth.RoleResident)
	facilityID := uuid.New()

	svc.On("Availability", mock.Anything, facilityID, testMonday).Return(nil, ErrWalkInFacility).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/facilities/"+facilityID.String()+"/availability?date=2026-10-19", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCalendar_DefaultRange(t *testing.T) {
	svc := new(MockService)
	r := setupRouter(svc, uuid.New(), auth.RoleResident)
	facilityID := uuid.New()
	today := testNow.Truncate(24 * time.Hour)

	svc.On("Today").Return(today)
	svc.On("Calendar", mock.Anything, facilityID, today, today.AddDate(0, 0, 30)).
		Return(&CalendarView{FacilityID: facilityID, Dates: []string{"2026-10-19"}}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/facilities/"+facilityID.String()+"/calendar", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_GetCalendar_Ranges(t *testing.T) {
	svc := new(MockService)
	r := setupRouter(svc, uuid.New(), auth.RoleResident)
	facilityID := uuid.New()
	svc.On("Today").Return(testMonday)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/facilities/"+facilityID.String()+"/calendar?from=2026-10-20&to=2026-10-19", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/facilities/"+facilityID.String()+"/calendar?from=2026-01-01&to=2027-06-01", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking(t *testing.T) {
	userID := uuid.New()
	facilityID := uuid.New()
	url := "/facilities/" + facilityID.String() + "/bookings"
	req := CreateBookingRequest{Date: "2026-10-19", StartTime: "09:00", Notes: "league match"}

	t.Run("created", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(svc, userID, auth.RoleResident)

		b := newBooking(facilityID, userID, testMonday, "09:00", StatusApproved)
		svc.On("AttemptBooking", mock.Anything, userID, facilityID, testMonday, clock("09:00"), "league match").
			Return(&AdmissionResult{Booking: &b, Message: "Booking confirmed"}, nil).Once()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, url, jsonBody(t, req)))

		require.Equal(t, http.StatusCreated, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Booking confirmed", body["message"])
	})

	errorCases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"too many active", &TooManyActiveBookingsError{Limit: 1}, http.StatusConflict, "you already have the maximum of 1 active bookings for this facility"},
		{"slot full", ErrSlotFull, http.StatusConflict, ErrSlotFull.Error()},
		{"already booked", ErrAlreadyBooked, http.StatusConflict, ErrAlreadyBooked.Error()},
		{"outside window", ErrOutsideBookingWindow, http.StatusBadRequest, ErrOutsideBookingWindow.Error()},
		{"slot not offered", ErrSlotNotOffered, http.StatusBadRequest, ErrSlotNotOffered.Error()},
		{"slot in past", ErrSlotInPast, http.StatusBadRequest, ErrSlotInPast.Error()},
		{"unknown facility", facility.ErrFacilityNotFound, http.StatusNotFound, "Facility not found"},
		{"storage failure", &PersistenceFailure{Err: errors.New("disk full")}, http.StatusInternalServerError, "disk full"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Failed to create booking"},
	}

	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			r := setupRouter(svc, userID, auth.RoleResident)
			svc.On("AttemptBooking", mock.Anything, userID, facilityID, testMonday, clock("09:00"), "league match").
				Return(nil, tt.err).Once()

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, url, jsonBody(t, req)))

			assert.Equal(t, tt.wantCode, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestHandler_CreateBooking_Validation(t *testing.T) {
	svc := new(MockService)
	r := setupRouter(svc, uuid.New(), auth.RoleResident)
	url := "/facilities/" + uuid.New().String() + "/bookings"

	bodies := map[string]string{
		"missing start":  `{"date":"2026-10-19"}`,
		"bad date":       `{"date":"19/10/2026","start_time":"09:00"}`,
		"bad start time": `{"date":"2026-10-19","start_time":"9am"}`,
		"not json":       `date=2026-10-19`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, url, bytes.NewBufferString(body)))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	svc.AssertNotCalled(t, "AttemptBooking")
}

func TestHandler_CreateBooking_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandler(new(MockService))
	r := gin.New()
	r.POST("/facilities/:facilityID/bookings", h.CreateBooking)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/facilities/"+uuid.New().String()+"/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CancelBooking(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	t.Run("resident without body", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(svc, userID, auth.RoleResident)
		b := newBooking(uuid.New(), userID, testMonday, "09:00", StatusCancelled)
		svc.On("CancelBooking", mock.Anything, Actor{UserID: userID}, bookingID, "").
			Return(&CancelResult{Booking: &b, Message: "Booking cancelled successfully", Warning: "Cancelled with less than the facility's 24h notice"}, nil).Once()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, url, nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Cancelled with less than the facility's 24h notice", body["warning"])
	})

	t.Run("admin with reason", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(svc, userID, auth.RoleAdmin)
		b := newBooking(uuid.New(), uuid.New(), testMonday, "09:00", StatusCancelled)
		svc.On("CancelBooking", mock.Anything, Actor{UserID: userID, IsAdmin: true}, bookingID, "pool closed").
			Return(&CancelResult{Booking: &b}, nil).Once()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, url, jsonBody(t, CancelBookingRequest{Reason: "pool closed"})))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("chunked body keeps the reason", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(svc, userID, auth.RoleResident)
		b := newBooking(uuid.New(), userID, testMonday, "09:00", StatusCancelled)
		svc.On("CancelBooking", mock.Anything, Actor{UserID: userID}, bookingID, "plans changed").
			Return(&CancelResult{Booking: &b}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, url, jsonBody(t, CancelBookingRequest{Reason: "plans changed"}))
		req.ContentLength = -1
		req.TransferEncoding = []string{"chunked"}

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("empty body", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(svc, userID, auth.RoleResident)
		b := newBooking(uuid.New(), userID, testMonday, "09:00", StatusCancelled)
		svc.On("CancelBooking", mock.Anything, Actor{UserID: userID}, bookingID, "").
			Return(&CancelResult{Booking: &b}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(nil))
		req.ContentLength = -1

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(MockService)
		r := setupRouter(svc, userID, auth.RoleResident)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, url, bytes.NewBufferString(`{"reason":`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	codes := map[string]struct {
		err  error
		code int
	}{
		"forbidden": {ErrForbidden, http.StatusForbidden},
		"not found": {ErrBookingNotFound, http.StatusNotFound},
		"ended":     {ErrBookingEnded, http.StatusConflict},
		"inactive":  {ErrInvalidTransition, http.StatusConflict},
	}
	for name, tt := range codes {
		t.Run(name, func(t *testing.T) {
			svc := new(MockService)
			r := setupRouter(svc, userID, auth.RoleResident)
			svc.On("CancelBooking", mock.Anything, mock.Anything, bookingID, "").Return(nil, tt.err).Once()

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, url, nil))
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandler_ListMyBookings(t *testing.T) {
	userID := uuid.New()
	svc := new(MockService)
	r := setupRouter(svc, userID, auth.RoleResident)

	b := newBooking(uuid.New(), userID, testMonday, "09:00", StatusCompleted)
	svc.On("ListUserBookings", mock.Anything, userID).Return([]Booking{b}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "completed", body[0]["status"])
	assert.Equal(t, "09:00", body[0]["start_time"])
	assert.NotContains(t, body[0], "seat")
}

func TestHandler_ListFacilityBookings(t *testing.T) {
	svc := new(MockService)
	r := setupRouter(svc, uuid.New(), auth.RoleAdmin)
	facilityID := uuid.New()

	svc.On("ListFacilityBookings", mock.Anything, facilityID, testMonday).Return([]Booking{}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/facilities/"+facilityID.String()+"/bookings?date=2026-10-19", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_ApproveAndReject(t *testing.T) {
	svc := new(MockService)
	r := setupRouter(svc, uuid.New(), auth.RoleAdmin)
	bookingID := uuid.New()

	approved := newBooking(uuid.New(), uuid.New(), testMonday, "09:00", StatusApproved)
	svc.On("ApproveBooking", mock.Anything, bookingID).Return(&approved, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/bookings/"+bookingID.String()+"/approve", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	svc.On("RejectBooking", mock.Anything, bookingID, "double booked").Return(nil, ErrInvalidTransition).Once()

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/bookings/"+bookingID.String()+"/reject",
		jsonBody(t, RejectBookingRequest{Reason: "double booked"})))
	assert.Equal(t, http.StatusConflict, w.Code)

	rejected := newBooking(uuid.New(), uuid.New(), testMonday, "09:00", StatusRejected)
	svc.On("RejectBooking", mock.Anything, bookingID, "facility closed").Return(&rejected, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/admin/bookings/"+bookingID.String()+"/reject",
		jsonBody(t, RejectBookingRequest{Reason: "facility closed"}))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_UpdatePayment(t *testing.T) {
	svc := new(MockService)
	r := setupRouter(svc, uuid.New(), auth.RoleAdmin)
	bookingID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/payment"

	paid := newBooking(uuid.New(), uuid.New(), testMonday, "09:00", StatusApproved)
	paid.PaymentStatus = PaymentPaid
	svc.On("UpdatePaymentStatus", mock.Anything, bookingID, PaymentPaid).Return(&paid, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, url, bytes.NewBufferString(`{"payment_status":"paid"}`)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, url, bytes.NewBufferString(`{"payment_status":"unpaid"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBookingAnalytics(t *testing.T) {
	svc := new(MockService)
	r := setupRouter(svc, uuid.New(), auth.RoleAdmin)
	to := testMonday.AddDate(0, 0, 6)

	svc.On("BookingStats", mock.Anything, (*uuid.UUID)(nil), testMonday, to).
		Return([]DayStats{{Day: "2026-10-19", Approved: 2, Total: 2}}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/analytics/bookings?from=2026-10-19&to=2026-10-25", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "day", body["group_by"])
	assert.Len(t, body["data"], 1)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/analytics/bookings?from=2026-10-19", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/analytics/bookings?from=2026-10-19&to=2026-10-25&facility_id=x", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
