package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mgoscar2018/invitaboda/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier tells the couple's chat about every RSVP so they can
// follow the guest list without opening the admin endpoints.
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

func (n *TelegramNotifier) NotifyConfirmed(ctx context.Context, inv *domain.Invitation) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*¡Confirmación recibida!*\n\nInvitación: %s\nPases confirmados: %d de %d\n",
		inv.DisplayName, inv.ConfirmedPassCount, inv.AssignedPasses)
	for _, name := range inv.Adults {
		fmt.Fprintf(&sb, "• %s\n", name)
	}
	for _, child := range inv.Children {
		fmt.Fprintf(&sb, "• %s (%d años)\n", child.Name, child.Age)
	}
	n.send(ctx, sb.String())
}

func (n *TelegramNotifier) NotifyDeclined(ctx context.Context, inv *domain.Invitation) {
	text := fmt.Sprintf(
		"*Respuesta recibida*\n\nInvitación: %s\nNo podrán asistir.",
		inv.DisplayName,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyPendingDigest(ctx context.Context, summary *domain.Summary) {
	text := fmt.Sprintf(
		"*Resumen de confirmaciones*\n\n"+
			"Sin responder: %d invitaciones (%d pases asignados en total)\n"+
			"Confirmadas: %d · Declinadas: %d\n"+
			"Pases confirmados: %d",
		summary.Pending, summary.PassesAssigned,
		summary.Confirmed, summary.Declined,
		summary.PassesConfirmed,
	)
	n.send(ctx, text)
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
