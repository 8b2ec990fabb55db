package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/handler/dto"
	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type AvailabilitySvc interface {
	SlotStatuses(ctx context.Context, ground, date, sport string) ([]domain.SlotStatus, error)
}

type BookingSvc interface {
	Submit(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	ListByStudent(ctx context.Context, email string) ([]*domain.Booking, error)
	List(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
}

type ApprovalSvc interface {
	Approve(ctx context.Context, id string) (*domain.ApprovalResult, error)
	Reject(ctx context.Context, id string) (*domain.Booking, error)
}

type AllotmentSvc interface {
	List(ctx context.Context, date *time.Time) ([]*domain.Allotment, error)
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateStudentInput) (*domain.StudentUser, error)
	List(ctx context.Context) ([]*domain.StudentUser, error)
}

type Handler struct {
	availability AvailabilitySvc
	bookings     BookingSvc
	approvals    ApprovalSvc
	allotments   AllotmentSvc
	users        UserSvc
}

func NewHandler(
	availability AvailabilitySvc,
	bookings BookingSvc,
	approvals ApprovalSvc,
	allotments AllotmentSvc,
	users UserSvc,
) *Handler {
	return &Handler{
		availability: availability,
		bookings:     bookings,
		approvals:    approvals,
		allotments:   allotments,
		users:        users,
	}
}

// Availability

func (h *Handler) CheckAvailability(c *ginext.Context) {
	statuses, err := h.availability.SlotStatuses(
		c.Request.Context(),
		c.Query("ground"), c.Query("date"), c.Query("sport"),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityResponse(statuses))
}

// Bookings

func (h *Handler) SubmitBooking(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateBookingInput{
		Organizer:       identity,
		Ground:          req.Ground,
		Sport:           req.Sport,
		Date:            date,
		TimeSlot:        req.TimeSlot,
		Purpose:         req.Purpose,
		Equipment:       req.Equipment,
		NumberOfPlayers: req.NumberOfPlayers,
		Players:         req.Players,
	}

	booking, err := h.bookings.Submit(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) MyBookings(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing identity"})
		return
	}

	bookings, err := h.bookings.ListByStudent(c.Request.Context(), identity.Email)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookings.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	status := domain.BookingStatus(c.Query("status"))
	switch status {
	case "", domain.BookingStatusPending, domain.BookingStatusApproved, domain.BookingStatusRejected:
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown status filter"})
		return
	}

	bookings, err := h.bookings.List(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Approvals

func (h *Handler) ApproveBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	res, err := h.approvals.Approve(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApprovalResponse(res))
}

func (h *Handler) RejectBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.approvals.Reject(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Allotments

func (h *Handler) ListAllotments(c *ginext.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		date = &d
	}

	allotments, err := h.allotments.List(c.Request.Context(), date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AllotmentResponse, 0, len(allotments))
	for _, a := range allotments {
		resp = append(resp, dto.ToAllotmentResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

// Students

func (h *Handler) CreateStudent(c *ginext.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateStudentInput{
		Email:          req.Email,
		Password:       req.Password,
		Name:           req.Name,
		RollNumber:     req.RollNumber,
		Branch:         req.Branch,
		Year:           req.Year,
		Division:       req.Division,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.users.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStudentResponse(user))
}

func (h *Handler) ListStudents(c *ginext.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.StudentResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToStudentResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func toBookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCooldown),
		errors.Is(err, domain.ErrSlotTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
