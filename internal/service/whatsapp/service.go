package whatsapp

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/domain/models"
	client "github.com/mamadbah2/poultryfarm/pkg/clients/whatsapp"
)

const sendTimeout = 10 * time.Second

// ReportNotifier pushes daily report summaries to a WhatsApp recipient.
type ReportNotifier struct {
	client    client.Client
	recipient string
	logger    *zap.Logger
}

// NewReportNotifier wires a notifier sending to recipient.
func NewReportNotifier(c client.Client, recipient string, logger *zap.Logger) *ReportNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportNotifier{client: c, recipient: recipient, logger: logger}
}

// Name identifies the notifier as a report sink.
func (n *ReportNotifier) Name() string { return "whatsapp" }

// PublishReport sends the formatted summary.
func (n *ReportNotifier) PublishReport(ctx context.Context, report models.DailyReport, summary string) error {
	if summary == "" {
		return errors.New("empty report summary")
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	resp, err := n.client.SendTextMessage(ctxWithTimeout, client.SendTextMessageRequest{
		To:   n.recipient,
		Body: summary,
	})
	if err != nil {
		return err
	}

	var messageID string
	if resp != nil && len(resp.Messages) > 0 {
		messageID = resp.Messages[0].ID
	}
	n.logger.Info("report summary delivered", zap.String("date", report.Date), zap.String("message_id", messageID))
	return nil
}
