package impl

import (
	"fmt"
	"time"

	"orderbell/internal/domain/entity"
)

// RouteNotifications decides which audiences to notify for a status
// transition. It is stateless; callers must invoke it at most once per
// (order, phase) pair. Intents are ordered customer first, restaurant
// second.
func RouteNotifications(order *entity.Order, status entity.DomainStatus) []entity.NotificationIntent {
	var intents []entity.NotificationIntent
	dedupeKey := order.ID + ":" + status.Phase.String()

	switch status.Phase {
	case entity.PhasePreparing:
		intents = append(intents, entity.NotificationIntent{
			Audience:    entity.AudienceCustomer,
			Channel:     entity.ChannelEmail,
			Message:     fmt.Sprintf("Your order #%s is being prepared in the kitchen. Estimated ready time: %s", order.Number, etaText(status.EstimatedArrival)),
			DedupeKey:   dedupeKey,
			OrderID:     order.ID,
			OrderNumber: order.Number,
			Recipient:   order.CustomerEmail,
		})
	case entity.PhaseReadyForPickup:
		intents = append(intents,
			entity.NotificationIntent{
				Audience:    entity.AudienceCustomer,
				Channel:     entity.ChannelSMS,
				Message:     fmt.Sprintf("Your order #%s is ready! Your driver will be there soon. Track your delivery in real-time.", order.Number),
				DedupeKey:   dedupeKey,
				OrderID:     order.ID,
				OrderNumber: order.Number,
				Recipient:   order.CustomerEmail,
			},
			entity.NotificationIntent{
				Audience:    entity.AudienceRestaurant,
				Channel:     entity.ChannelDashboard,
				Message:     fmt.Sprintf("Order #%s ready for pickup. Driver should be assigned.", order.Number),
				DedupeKey:   dedupeKey,
				OrderID:     order.ID,
				OrderNumber: order.Number,
				Recipient:   order.ChannelSlug,
			},
		)
	case entity.PhaseDelivered:
		intents = append(intents,
			entity.NotificationIntent{
				Audience:    entity.AudienceCustomer,
				Channel:     entity.ChannelEmail,
				Message:     fmt.Sprintf("Your order #%s has been delivered! Enjoy your meal and thank you for choosing us.", order.Number),
				DedupeKey:   dedupeKey,
				OrderID:     order.ID,
				OrderNumber: order.Number,
				Recipient:   order.CustomerEmail,
			},
			entity.NotificationIntent{
				Audience:    entity.AudienceRestaurant,
				Channel:     entity.ChannelDashboard,
				Message:     fmt.Sprintf("Order #%s successfully delivered. Customer satisfaction survey sent.", order.Number),
				DedupeKey:   dedupeKey,
				OrderID:     order.ID,
				OrderNumber: order.Number,
				Recipient:   order.ChannelSlug,
			},
		)
	case entity.PhaseCancelled:
		intents = append(intents, entity.NotificationIntent{
			Audience:    entity.AudienceCustomer,
			Channel:     entity.ChannelEmail,
			Message:     fmt.Sprintf("Your order #%s has been cancelled. If you have any questions, please contact us.", order.Number),
			DedupeKey:   dedupeKey,
			OrderID:     order.ID,
			OrderNumber: order.Number,
			Recipient:   order.CustomerEmail,
		})
	}

	return intents
}

// etaText renders an estimated arrival for message copy, falling back to
// the default preparation window when none is set.
func etaText(eta *time.Time) string {
	if eta == nil {
		return "30 minutes"
	}

	return eta.Local().Format(time.Kitchen)
}
