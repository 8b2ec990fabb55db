package domain

import "time"

// Allotment — материализованная запись "кто держит слот". Живёт независимо
// от исходной заявки: booking_id у записей, созданных вручную, может быть пуст.
type Allotment struct {
	ID         string    `json:"id"`
	BookingID  *string   `json:"booking_id,omitempty"`
	Date       time.Time `json:"date"`
	Ground     string    `json:"ground"`
	TimeSlot   string    `json:"time_slot"`
	AllottedTo string    `json:"allotted_to"`
	RollNumber string    `json:"roll_number"`
	Purpose    string    `json:"purpose"`
	Players    int       `json:"players"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SlotState — статус слота каталога в выдаче оракула доступности.
type SlotState string

const (
	SlotStateFreeze    SlotState = "freeze"
	SlotStateBooked    SlotState = "booked"
	SlotStateAvailable SlotState = "available"
)

type SlotStatus struct {
	Time   string    `json:"time"`
	Status SlotState `json:"status"`
}

type ApprovalResult struct {
	Winner       *Booking   `json:"winner"`
	AutoRejected []*Booking `json:"auto_rejected"`
	// Promoted — победитель переведён в Approved этим вызовом, а не раньше.
	Promoted bool `json:"promoted"`
}
