// Package sink implements the DeliverySink boundary: one adapter per
// notification channel plus a registry that routes intents to them.
package sink

import (
	"context"
	"fmt"

	"orderbell/config"
	"orderbell/internal/domain/entity"
	"orderbell/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// firebaseSink delivers push intents through Firebase Cloud Messaging.
// Intents fan out to an audience topic rather than individual device
// tokens; token management belongs to the mobile apps.
type firebaseSink struct {
	client          *messaging.Client
	customerTopic   string
	restaurantTopic string
}

// NewFirebaseSink creates a push notification sink backed by FCM
func NewFirebaseSink(ctx context.Context, cfg *config.FirebaseConfig) (service.DeliverySink, error) {
	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseSink{
		client:          client,
		customerTopic:   cfg.CustomerTopic,
		restaurantTopic: cfg.RestaurantTopic,
	}, nil
}

// Deliver publishes the intent to the audience's FCM topic
func (s *firebaseSink) Deliver(ctx context.Context, intent entity.NotificationIntent) error {
	topic := s.customerTopic
	if intent.Audience == entity.AudienceRestaurant {
		topic = s.restaurantTopic
	}

	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: fmt.Sprintf("Order #%s", intent.OrderNumber),
			Body:  intent.Message,
		},
		Data: map[string]string{
			"order_id":   intent.OrderID,
			"dedupe_key": intent.DedupeKey,
			"audience":   intent.Audience.String(),
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
