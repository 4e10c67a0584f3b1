package domain

import "time"

const EventOrderCreated = "order_created"

// OrderEvent mirrors the message order-svc publishes on the orders topic.
type OrderEvent struct {
	EventID    string           `json:"event_id"`
	Type       string           `json:"type"`
	OrderID    int64            `json:"order_id"`
	TotalPrice string           `json:"total_price"`
	Items      []OrderEventItem `json:"items"`
	Timestamp  time.Time        `json:"timestamp"`
}

type OrderEventItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type ProductDemand struct {
	ProductID int64   `json:"product_id"`
	Score     float64 `json:"score"`
}
