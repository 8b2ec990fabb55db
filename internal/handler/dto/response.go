package dto

import (
	"time"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID              string           `json:"id"`
	StudentName     string           `json:"student_name"`
	StudentEmail    string           `json:"student_email"`
	RollNumber      string           `json:"roll_number"`
	Ground          string           `json:"ground"`
	Sport           string           `json:"sport"`
	Date            string           `json:"date"`
	TimeSlot        string           `json:"time_slot"`
	Purpose         string           `json:"purpose"`
	Equipment       string           `json:"equipment,omitempty"`
	NumberOfPlayers int              `json:"number_of_players"`
	Status          string           `json:"status"`
	Players         []PlayerResponse `json:"players,omitempty"`
	CreatedAt       string           `json:"created_at"`
}

type PlayerResponse struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Branch   string `json:"branch"`
	Year     string `json:"year"`
	Division string `json:"division"`
}

type ApprovalResponse struct {
	Winner       BookingResponse   `json:"winner"`
	AutoRejected []BookingResponse `json:"auto_rejected"`
}

type AvailabilityResponse struct {
	Slots []SlotStatusResponse `json:"slots"`
}

type SlotStatusResponse struct {
	Time   string `json:"time"`
	Status string `json:"status"`
}

type AllotmentResponse struct {
	ID         string  `json:"id"`
	BookingRef *string `json:"booking_ref,omitempty"`
	Date       string  `json:"date"`
	Ground     string  `json:"ground"`
	TimeSlot   string  `json:"time_slot"`
	AllottedTo string  `json:"allotted_to"`
	RollNumber string  `json:"roll_number"`
	Purpose    string  `json:"purpose"`
	Players    int     `json:"players"`
}

type StudentResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	RollNumber string `json:"roll_number"`
	Branch     string `json:"branch"`
	Year       string `json:"year"`
	Division   string `json:"division"`
	CreatedAt  string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	players := make([]PlayerResponse, 0, len(b.Players))
	for _, p := range b.Players {
		players = append(players, PlayerResponse{
			Email:    p.Email,
			Name:     p.Name,
			Branch:   p.Branch,
			Year:     p.Year,
			Division: p.Division,
		})
	}

	return BookingResponse{
		ID:              b.ID,
		StudentName:     b.StudentName,
		StudentEmail:    b.StudentEmail,
		RollNumber:      b.RollNumber,
		Ground:          b.Ground,
		Sport:           b.Sport,
		Date:            b.Date.Format(dateLayout),
		TimeSlot:        b.TimeSlot,
		Purpose:         b.Purpose,
		Equipment:       b.Equipment,
		NumberOfPlayers: b.NumberOfPlayers,
		Status:          string(b.Status),
		Players:         players,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func ToApprovalResponse(res *domain.ApprovalResult) ApprovalResponse {
	rejected := make([]BookingResponse, 0, len(res.AutoRejected))
	for _, b := range res.AutoRejected {
		rejected = append(rejected, ToBookingResponse(b))
	}

	return ApprovalResponse{
		Winner:       ToBookingResponse(res.Winner),
		AutoRejected: rejected,
	}
}

func ToAvailabilityResponse(statuses []domain.SlotStatus) AvailabilityResponse {
	slots := make([]SlotStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		slots = append(slots, SlotStatusResponse{Time: s.Time, Status: string(s.Status)})
	}
	return AvailabilityResponse{Slots: slots}
}

func ToAllotmentResponse(a *domain.Allotment) AllotmentResponse {
	return AllotmentResponse{
		ID:         a.ID,
		BookingRef: a.BookingID,
		Date:       a.Date.Format(dateLayout),
		Ground:     a.Ground,
		TimeSlot:   a.TimeSlot,
		AllottedTo: a.AllottedTo,
		RollNumber: a.RollNumber,
		Purpose:    a.Purpose,
		Players:    a.Players,
	}
}

func ToStudentResponse(u *domain.StudentUser) StudentResponse {
	return StudentResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		RollNumber: u.RollNumber,
		Branch:     u.Branch,
		Year:       u.Year,
		Division:   u.Division,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
}
