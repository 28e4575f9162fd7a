package pubsub

import "storefront/internal/domain/service"

const eventTypeOrderPlaced = "order.placed"

// orderAttributes are the message attributes subscribers filter on.
func orderAttributes(event *service.OrderPlacedEvent) map[string]string {
	attributes := map[string]string{
		"event_type": eventTypeOrderPlaced,
		"order_id":   event.OrderID,
		"user_id":    event.UserID,
		"city":       event.City,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// orderingKey keeps a customer's orders in placement order for fulfilment.
func orderingKey(event *service.OrderPlacedEvent) string {
	return "customer:" + event.UserID
}
