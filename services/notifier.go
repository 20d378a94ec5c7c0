package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"shophub/awsx"
	"shophub/models"
	"shophub/repository"
	"shophub/sender"
)

var statusMessages = map[models.OrderStatus]string{
	models.StatusPaid:       "Your payment has been confirmed!",
	models.StatusProcessing: "Your order is being processed.",
	models.StatusShipped:    "Your order has been shipped!",
	models.StatusDelivered:  "Your order has been delivered.",
}

// Notifier is the outbound notification queue. Publishers hand off an event
// and move on; a background worker emails the customer and mirrors the event
// to SNS. Nothing here ever fails the operation that triggered it.
type Notifier struct {
	events      chan models.OrderStatusEvent
	email       sender.EmailSender
	logs        repository.NotificationRepository
	sns         awsx.SNSPublisher
	snsTopicArn string
	logger      *zap.Logger
	wg          sync.WaitGroup
}

// NewNotifier creates a Notifier and starts its worker. email, logs and sns
// may each be nil; the corresponding step is skipped.
func NewNotifier(
	email sender.EmailSender,
	logs repository.NotificationRepository,
	sns awsx.SNSPublisher,
	snsTopicArn string,
	logger *zap.Logger,
) *Notifier {
	n := &Notifier{
		events:      make(chan models.OrderStatusEvent, 64),
		email:       email,
		logs:        logs,
		sns:         sns,
		snsTopicArn: snsTopicArn,
		logger:      logger,
	}
	n.wg.Add(1)
	go n.run()
	return n
}

// Publish hands an event to the worker without blocking. When the buffer is
// full the event is dropped with a warning; there is no delivery guarantee.
func (n *Notifier) Publish(event models.OrderStatusEvent) {
	select {
	case n.events <- event:
	default:
		n.logger.Warn("notification queue full, dropping event",
			zap.String("order_id", event.OrderID.String()),
		)
	}
}

// Close stops accepting events and waits for the worker to drain the queue.
func (n *Notifier) Close() {
	close(n.events)
	n.wg.Wait()
}

func (n *Notifier) run() {
	defer n.wg.Done()
	for event := range n.events {
		n.deliver(event)
	}
}

func (n *Notifier) deliver(event models.OrderStatusEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if n.email != nil && event.Email != "" {
		subject, body := renderStatusEmail(event)
		_, err := n.email.SendEmail(ctx, event.Email, subject, body)
		n.record(ctx, event, err)
		if err != nil {
			n.logger.Warn("status email failed",
				zap.String("order_id", event.OrderID.String()),
				zap.Error(err),
			)
		}
	}

	if n.sns != nil && n.snsTopicArn != "" {
		payload, err := json.Marshal(event)
		if err == nil {
			err = n.sns.Publish(ctx, n.snsTopicArn, payload)
		}
		if err != nil {
			n.logger.Warn("sns publish failed",
				zap.String("order_id", event.OrderID.String()),
				zap.Error(err),
			)
		}
	}
}

func (n *Notifier) record(ctx context.Context, event models.OrderStatusEvent, sendErr error) {
	if n.logs == nil {
		return
	}

	log := &models.NotificationLog{
		UserID:    event.UserID,
		Recipient: event.Email,
		Type:      models.TypeOrderStatus,
		Channel:   models.ChannelEmail,
		Status:    models.NotificationSent,
	}
	if sendErr != nil {
		log.Status = models.NotificationFailed
		log.Error = sendErr.Error()
	}
	if err := n.logs.Create(ctx, log); err != nil {
		n.logger.Warn("failed to record notification", zap.Error(err))
	}
}

func renderStatusEmail(event models.OrderStatusEvent) (subject, body string) {
	message, ok := statusMessages[event.Status]
	if !ok {
		message = "Your order status has been updated."
	}

	shortID := event.OrderID.String()
	shortID = shortID[len(shortID)-8:]

	subject = fmt.Sprintf("Order Update: %s", message)
	body = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #3b82f6;">ShopHub Order Update</h1>
  <p>Hello!</p>
  <p>Your order #%s has been updated.</p>
  <div style="background: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="margin: 0 0 10px 0;">Order Status: %s</h2>
    <p style="margin: 0;">%s</p>
  </div>
  <p><strong>Order Total:</strong> $%.2f</p>
  <p>Thank you for shopping with ShopHub!</p>
  <hr style="margin: 30px 0;">
  <p style="color: #666; font-size: 12px;">This is an automated email. Please do not reply.</p>
</div>`, shortID, strings.ToUpper(string(event.Status)), message, event.OrderTotal)
	return subject, body
}
