package dto

type CreateBookingRequest struct {
	Ground          string   `json:"ground" binding:"required"`
	Sport           string   `json:"sport" binding:"required"`
	Date            string   `json:"date" binding:"required"`
	TimeSlot        string   `json:"time_slot" binding:"required"`
	Purpose         string   `json:"purpose" binding:"required"`
	Equipment       string   `json:"equipment"`
	NumberOfPlayers int      `json:"number_of_players"`
	Players         []string `json:"players" binding:"omitempty,dive,email"`
}

type CreateStudentRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Name           string `json:"name" binding:"required"`
	RollNumber     string `json:"roll_number" binding:"required"`
	Branch         string `json:"branch"`
	Year           string `json:"year"`
	Division       string `json:"division"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
