package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

// TelegramNotifier posts reservation activity to the organizer channel.
// Every notification is best-effort: failures are logged and never reach
// the participant's request.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyReservationConfirmed(ctx context.Context, d *domain.ReservationDetails) {
	n.send(ctx, fmt.Sprintf(
		"*Запись подтверждена*\n\n%s — новая запись от %s.",
		n.header(d), d.Reservation.Email,
	))
}

func (n *TelegramNotifier) NotifyReservationWaitlisted(ctx context.Context, d *domain.ReservationDetails) {
	n.send(ctx, fmt.Sprintf(
		"*Запись в лист ожидания*\n\n%s — %s, позиция %d.",
		n.header(d), d.Reservation.Email, d.Reservation.Position,
	))
}

func (n *TelegramNotifier) NotifyReservationPromoted(ctx context.Context, d *domain.ReservationDetails) {
	n.send(ctx, fmt.Sprintf(
		"*Продвижение из листа ожидания*\n\n%s — %s получает подтверждённое место.",
		n.header(d), d.Reservation.Email,
	))
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, d *domain.ReservationDetails) {
	n.send(ctx, fmt.Sprintf(
		"*Запись отменена*\n\n%s — %s.",
		n.header(d), d.Reservation.Email,
	))
}

func (n *TelegramNotifier) header(d *domain.ReservationDetails) string {
	return fmt.Sprintf(
		"Мероприятие: %s\nКатегория: %s\nДата: %s",
		d.EventTitle, d.SlotName, d.OccurrenceDate.Format("02.01.2006"),
	)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
