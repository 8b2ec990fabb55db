package notification

import (
	"context"
	"fmt"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/service/ports"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier — дополнительный канал для студентов, привязавших chat id
// к своему профилю. Пустой токен выключает канал целиком.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	users  ports.UserRepo
	logger logger.Logger
}

func NewTelegramNotifier(token string, users ports.UserRepo, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, telegram notifications disabled")
		return &TelegramNotifier{bot: nil, users: users, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, users: users, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingSubmitted(ctx context.Context, b *domain.Booking) {
	n.send(ctx, b, fmt.Sprintf(
		"*Заявка принята*\n\nПлощадка: %s (%s)\nДата: %s\nСлот: %s\nОжидает решения администратора.",
		b.Ground, b.Sport, b.Date.Format(bookingDateLayout), b.TimeSlot,
	))
}

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, b *domain.Booking) {
	n.send(ctx, b, fmt.Sprintf(
		"*Бронирование одобрено!*\n\nПлощадка: %s (%s)\nДата: %s\nСлот: %s",
		b.Ground, b.Sport, b.Date.Format(bookingDateLayout), b.TimeSlot,
	))
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, b *domain.Booking) {
	n.send(ctx, b, fmt.Sprintf(
		"*Заявка отклонена*\n\nПлощадка: %s (%s)\nДата: %s\nСлот: %s",
		b.Ground, b.Sport, b.Date.Format(bookingDateLayout), b.TimeSlot,
	))
}

func (n *TelegramNotifier) NotifyBookingExpired(ctx context.Context, b *domain.Booking) {
	n.send(ctx, b, fmt.Sprintf(
		"*Заявка просрочена*\n\nПлощадка: %s (%s)\nДата: %s\nСлот: %s\nДата прошла без решения, заявка закрыта.",
		b.Ground, b.Sport, b.Date.Format(bookingDateLayout), b.TimeSlot,
	))
}

func (n *TelegramNotifier) send(ctx context.Context, b *domain.Booking, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.String("booking_id", b.ID),
		)
		return
	}

	user, err := n.users.GetByEmail(ctx, b.StudentEmail)
	if err != nil {
		n.logger.Debug("notification skipped (no profile)",
			logger.String("email", b.StudentEmail),
		)
		return
	}

	if user.TelegramChatID == nil {
		n.logger.Debug("notification skipped (no chat_id)",
			logger.String("email", b.StudentEmail),
		)
		return
	}

	msg := tgbotapi.NewMessage(*user.TelegramChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *user.TelegramChatID),
			logger.String("error", err.Error()),
		)
	}
}
