package domain

import "time"

// StudentUser — учётная запись студента. Ядро читает её только чтобы
// разрешить email игрока в отображаемый профиль.
type StudentUser struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	RollNumber     string    `json:"roll_number"`
	Branch         string    `json:"branch"`
	Year           string    `json:"year"`
	Division       string    `json:"division"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateStudentInput struct {
	Email          string
	Password       string
	Name           string
	RollNumber     string
	Branch         string
	Year           string
	Division       string
	TelegramChatID *int64
}
