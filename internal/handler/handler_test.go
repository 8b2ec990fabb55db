package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/handler/dto"
	hmocks "github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/handler/mocks"
)

type handlerMocks struct {
	availability *hmocks.MockAvailabilitySvc
	bookings     *hmocks.MockBookingSvc
	approvals    *hmocks.MockApprovalSvc
	allotments   *hmocks.MockAllotmentSvc
	users        *hmocks.MockUserSvc
}

// setupRouter регистрирует маршруты без JWT-мидлвары: личность подкладывается
// напрямую, сами проверки токена покрыты тестами middleware.
func setupRouter(t *testing.T, identity *domain.Identity) (handlerMocks, http.Handler) {
	t.Helper()

	m := handlerMocks{
		availability: hmocks.NewMockAvailabilitySvc(t),
		bookings:     hmocks.NewMockBookingSvc(t),
		approvals:    hmocks.NewMockApprovalSvc(t),
		allotments:   hmocks.NewMockAllotmentSvc(t),
		users:        hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.availability, m.bookings, m.approvals, m.allotments, m.users)

	r := ginext.New("test")
	if identity != nil {
		r.Use(func(c *ginext.Context) {
			c.Set("identity", *identity)
			c.Next()
		})
	}

	api := r.Group("/api")
	{
		api.GET("/availability", h.CheckAvailability)
		api.POST("/bookings", h.SubmitBooking)
		api.GET("/bookings/my", h.MyBookings)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/approve", h.ApproveBooking)
		api.POST("/bookings/:id/reject", h.RejectBooking)
		api.GET("/allotments", h.ListAllotments)
		api.POST("/students", h.CreateStudent)
		api.GET("/students", h.ListStudents)
	}

	return m, r
}

func studentIdentity() *domain.Identity {
	return &domain.Identity{
		Email:      "alice@college.edu",
		Name:       "Alice",
		RollNumber: "CS-101",
	}
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              uuid.New().String(),
		StudentName:     "Alice",
		StudentEmail:    "alice@college.edu",
		RollNumber:      "CS-101",
		Ground:          "Main Ground",
		Sport:           "Cricket",
		Date:            time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		TimeSlot:        "07:00 AM - 09:00 AM",
		Purpose:         "Practice",
		NumberOfPlayers: 1,
		Status:          status,
		CreatedAt:       time.Now(),
	}
}

// --- Availability ---

func TestHandler_CheckAvailability_Success(t *testing.T) {
	m, r := setupRouter(t, nil)

	statuses := []domain.SlotStatus{
		{Time: "07:00 AM - 09:00 AM", Status: domain.SlotStateBooked},
		{Time: "09:00 AM - 11:00 AM", Status: domain.SlotStateAvailable},
	}
	m.availability.EXPECT().
		SlotStatuses(mock.Anything, "Main Ground", "2026-09-10", "Cricket").
		Return(statuses, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/availability?ground=Main+Ground&date=2026-09-10&sport=Cricket", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "booked", resp.Slots[0].Status)
	assert.Equal(t, "available", resp.Slots[1].Status)
}

func TestHandler_CheckAvailability_InvalidDate(t *testing.T) {
	m, r := setupRouter(t, nil)

	m.availability.EXPECT().
		SlotStatuses(mock.Anything, "Main Ground", "not-a-date", "Cricket").
		Return(nil, domain.ErrValidation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/availability?ground=Main+Ground&date=not-a-date&sport=Cricket", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_SubmitBooking_Success(t *testing.T) {
	m, r := setupRouter(t, studentIdentity())

	booking := testBooking(domain.BookingStatusPending)
	m.bookings.EXPECT().Submit(mock.Anything, mock.Anything).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Ground:   "Main Ground",
		Sport:    "Cricket",
		Date:     "2026-09-10",
		TimeSlot: "07:00 AM - 09:00 AM",
		Purpose:  "Practice",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, "2026-09-10", resp.Date)
}

func TestHandler_SubmitBooking_NoIdentity(t *testing.T) {
	_, r := setupRouter(t, nil)

	body := []byte(`{"ground":"Main Ground","sport":"Cricket","date":"2026-09-10","time_slot":"07:00 AM - 09:00 AM","purpose":"Practice"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_SubmitBooking_BadRequest(t *testing.T) {
	_, r := setupRouter(t, studentIdentity())

	body := []byte(`{"ground":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitBooking_InvalidDate(t *testing.T) {
	_, r := setupRouter(t, studentIdentity())

	body := []byte(`{"ground":"Main Ground","sport":"Cricket","date":"10.09.2026","time_slot":"07:00 AM - 09:00 AM","purpose":"Practice"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitBooking_Cooldown(t *testing.T) {
	m, r := setupRouter(t, studentIdentity())

	m.bookings.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, domain.ErrCooldown)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		Ground:   "Main Ground",
		Sport:    "Cricket",
		Date:     "2026-09-10",
		TimeSlot: "07:00 AM - 09:00 AM",
		Purpose:  "Practice",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_MyBookings_Success(t *testing.T) {
	m, r := setupRouter(t, studentIdentity())

	bookings := []*domain.Booking{
		testBooking(domain.BookingStatusApproved),
		testBooking(domain.BookingStatusPending),
	}
	m.bookings.EXPECT().ListByStudent(mock.Anything, "alice@college.edu").Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/my", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	m, r := setupRouter(t, studentIdentity())

	booking := testBooking(domain.BookingStatusPending)
	m.bookings.EXPECT().Get(mock.Anything, booking.ID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+booking.ID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "Pending", resp.Status)
}

func TestHandler_GetBooking_InvalidID(t *testing.T) {
	_, r := setupRouter(t, studentIdentity())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	m, r := setupRouter(t, studentIdentity())

	id := uuid.New().String()
	m.bookings.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListBookings_StatusFilter(t *testing.T) {
	m, r := setupRouter(t, studentIdentity())

	m.bookings.EXPECT().
		List(mock.Anything, domain.BookingStatusPending).
		Return([]*domain.Booking{testBooking(domain.BookingStatusPending)}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=Pending", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListBookings_UnknownStatus(t *testing.T) {
	_, r := setupRouter(t, studentIdentity())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=Cancelled", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Approvals ---

func TestHandler_ApproveBooking_Success(t *testing.T) {
	m, r := setupRouter(t, studentIdentity())

	winner := testBooking(domain.BookingStatusApproved)
	loser := testBooking(domain.BookingStatusRejected)
	m.approvals.EXPECT().Approve(mock.Anything, winner.ID).Return(&domain.ApprovalResult{
		Winner:       winner,
		AutoRejected: []*domain.Booking{loser},
		Promoted:     true,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+winner.ID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ApprovalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Approved", resp.Winner.Status)
	require.Len(t, resp.AutoRejected, 1)
	assert.Equal(t, "Rejected", resp.AutoRejected[0].Status)
}

func TestHandler_ApproveBooking_InvalidID(t *testing.T) {
	_, r := setupRouter(t, studentIdentity())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/not-a-uuid/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveBooking_NotFound(t *testing.T) {
	m, r := setupRouter(t, studentIdentity())

	id := uuid.New().String()
	m.approvals.EXPECT().Approve(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RejectBooking_Success(t *testing.T) {
	m, r := setupRouter(t, studentIdentity())

	booking := testBooking(domain.BookingStatusRejected)
	m.approvals.EXPECT().Reject(mock.Anything, booking.ID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+booking.ID+"/reject", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Rejected", resp.Status)
}

// --- Allotments ---

func TestHandler_ListAllotments_Success(t *testing.T) {
	m, r := setupRouter(t, studentIdentity())

	bookingID := uuid.New().String()
	allotments := []*domain.Allotment{{
		ID:         uuid.New().String(),
		BookingID:  &bookingID,
		Date:       time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Ground:     "Main Ground",
		TimeSlot:   "07:00 AM - 09:00 AM",
		AllottedTo: "Alice",
		RollNumber: "CS-101",
		Purpose:    "Practice",
		Players:    11,
	}}
	m.allotments.EXPECT().List(mock.Anything, mock.Anything).Return(allotments, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/allotments?date=2026-09-10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AllotmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Alice", resp[0].AllottedTo)
	assert.Equal(t, "2026-09-10", resp[0].Date)
}

func TestHandler_ListAllotments_InvalidDate(t *testing.T) {
	_, r := setupRouter(t, studentIdentity())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/allotments?date=bad", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Students ---

func TestHandler_CreateStudent_Success(t *testing.T) {
	m, r := setupRouter(t, studentIdentity())

	user := &domain.StudentUser{
		ID:         uuid.New().String(),
		Email:      "bob@college.edu",
		Name:       "Bob",
		RollNumber: "CS-102",
		CreatedAt:  time.Now(),
	}
	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.CreateStudentRequest{
		Email:      "bob@college.edu",
		Password:   "secret-pass",
		Name:       "Bob",
		RollNumber: "CS-102",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.StudentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "bob@college.edu", resp.Email)
}

func TestHandler_CreateStudent_EmailTaken(t *testing.T) {
	m, r := setupRouter(t, studentIdentity())

	m.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.CreateStudentRequest{
		Email:      "bob@college.edu",
		Password:   "secret-pass",
		Name:       "Bob",
		RollNumber: "CS-102",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateStudent_BadRequest(t *testing.T) {
	_, r := setupRouter(t, studentIdentity())

	body := []byte(`{"email":"not-an-email"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListStudents_Success(t *testing.T) {
	m, r := setupRouter(t, studentIdentity())

	users := []*domain.StudentUser{
		{ID: "u1", Email: "a@college.edu", Name: "A", RollNumber: "CS-101", CreatedAt: time.Now()},
		{ID: "u2", Email: "b@college.edu", Name: "B", RollNumber: "CS-102", CreatedAt: time.Now()},
	}
	m.users.EXPECT().List(mock.Anything).Return(users, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.StudentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
