package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusApproved BookingStatus = "Approved"
	BookingStatusRejected BookingStatus = "Rejected"
)

type Booking struct {
	ID              string        `json:"id"`
	StudentName     string        `json:"student_name"`
	StudentEmail    string        `json:"student_email"`
	RollNumber      string        `json:"roll_number"`
	Ground          string        `json:"ground"`
	Sport           string        `json:"sport"`
	Date            time.Time     `json:"date"`
	TimeSlot        string        `json:"time_slot"`
	Purpose         string        `json:"purpose"`
	Equipment       string        `json:"equipment"`
	NumberOfPlayers int           `json:"number_of_players"`
	Status          BookingStatus `json:"status"`
	Players         []Player      `json:"players,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type Player struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Branch   string `json:"branch"`
	Year     string `json:"year"`
	Division string `json:"division"`
}

type CreateBookingInput struct {
	Organizer       Identity
	Ground          string
	Sport           string
	Date            time.Time
	TimeSlot        string
	Purpose         string
	Equipment       string
	NumberOfPlayers int
	Players         []string // emails, разрешаются в профили при создании
}

// Identity — личность запроса, разобранная из bearer-токена на входе.
type Identity struct {
	Email      string
	Name       string
	RollNumber string
	Admin      bool
}
