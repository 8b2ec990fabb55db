package notification

import (
	"context"
	"fmt"

	"github.com/Aashutosh-Mahajan/Ground-Booking-System/internal/domain"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/gomail.v2"
)

const bookingDateLayout = "02.01.2006"

// EmailNotifier шлёт письма организатору заявки. Пустой host выключает
// отправку: уведомления — побочный эффект, их сбой не должен ломать поток.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Logger
}

func NewEmailNotifier(host string, port int, username, password, from string, logger logger.Logger) *EmailNotifier {
	if host == "" {
		logger.Warn("smtp host is empty, email notifications disabled")
		return &EmailNotifier{logger: logger}
	}

	return &EmailNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: logger,
	}
}

func (n *EmailNotifier) NotifyBookingSubmitted(ctx context.Context, b *domain.Booking) {
	body := fmt.Sprintf(
		"Your booking request for %s (%s) on %s, slot %s, has been received and is pending approval.",
		b.Ground, b.Sport, b.Date.Format(bookingDateLayout), b.TimeSlot,
	)
	n.send(ctx, b.StudentEmail, "Booking request received", body)
}

func (n *EmailNotifier) NotifyBookingApproved(ctx context.Context, b *domain.Booking) {
	body := fmt.Sprintf(
		"Your booking for %s (%s) on %s, slot %s, has been approved. The ground is allotted to you.",
		b.Ground, b.Sport, b.Date.Format(bookingDateLayout), b.TimeSlot,
	)
	n.send(ctx, b.StudentEmail, "Booking approved", body)
}

func (n *EmailNotifier) NotifyBookingRejected(ctx context.Context, b *domain.Booking) {
	body := fmt.Sprintf(
		"Your booking request for %s (%s) on %s, slot %s, has been rejected.",
		b.Ground, b.Sport, b.Date.Format(bookingDateLayout), b.TimeSlot,
	)
	n.send(ctx, b.StudentEmail, "Booking rejected", body)
}

func (n *EmailNotifier) NotifyBookingExpired(ctx context.Context, b *domain.Booking) {
	body := fmt.Sprintf(
		"Your booking request for %s (%s) on %s, slot %s, expired without a decision and was closed.",
		b.Ground, b.Sport, b.Date.Format(bookingDateLayout), b.TimeSlot,
	)
	n.send(ctx, b.StudentEmail, "Booking request expired", body)
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) {
	if n.dialer == nil {
		n.logger.Debug("notification skipped (smtp disabled)", logger.String("subject", subject))
		return
	}

	if to == "" {
		n.logger.Debug("notification skipped (no recipient)", logger.String("subject", subject))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)", logger.String("to", to))
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(msg); err != nil {
		n.logger.Error("failed to send email notification",
			logger.String("to", to),
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
	}
}
