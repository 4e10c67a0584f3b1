package httpapi

import (
	"time"

	"foodcart/order-svc/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Price         string            `json:"price"`
	SpecialStatus bool              `json:"special_status"`
	Description   string            `json:"description"`
	Category      *CategoryResponse `json:"category"`
	Image         string            `json:"image"`
}

type OrderItemResponse struct {
	Product  int64  `json:"product"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type OrderResponse struct {
	ID           int64                `json:"id"`
	Firstname    string               `json:"firstname"`
	Lastname     string               `json:"lastname"`
	PhoneNumber  string               `json:"phonenumber"`
	Address      string               `json:"address"`
	Payment      domain.PaymentMethod `json:"payment"`
	Status       domain.Status        `json:"status"`
	TotalPrice   string               `json:"total_price"`
	Comment      string               `json:"comment"`
	RegisteredAt time.Time            `json:"registered_at"`
	CalledAt     *time.Time           `json:"called_at"`
	DeliveredAt  *time.Time           `json:"delivered_at"`
	RestaurantID *int64               `json:"restaurant_id"`
	Products     []OrderItemResponse  `json:"products"`
}

type ActiveOrderResponse struct {
	OrderResponse
	Candidates []domain.Restaurant `json:"candidates"`
}

type StatusRequest struct {
	Status domain.Status `json:"status"`
}

type PriceRequest struct {
	Price string `json:"price"`
}

type AvailabilityRequest struct {
	Availability *bool `json:"availability"`
}

type ProductRequest struct {
	Name          string `json:"name"`
	CategoryID    *int64 `json:"category_id"`
	Price         string `json:"price"`
	Image         string `json:"image"`
	SpecialStatus bool   `json:"special_status"`
	Description   string `json:"description"`
}

func toProductResponse(p domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price.StringFixed(2),
		SpecialStatus: p.SpecialStatus,
		Description:   p.Description,
		Image:         p.Image,
	}
	if p.Category != nil {
		resp.Category = &CategoryResponse{ID: p.Category.ID, Name: p.Category.Name}
	}
	return resp
}

func toOrderResponse(o domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			Product:  item.ProductID,
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
		}
	}
	return OrderResponse{
		ID:           o.ID,
		Firstname:    o.Firstname,
		Lastname:     o.Lastname,
		PhoneNumber:  o.PhoneNumber,
		Address:      o.Address,
		Payment:      o.Payment,
		Status:       o.Status,
		TotalPrice:   o.TotalPrice.StringFixed(2),
		Comment:      o.Comment,
		RegisteredAt: o.RegisteredAt,
		CalledAt:     o.CalledAt,
		DeliveredAt:  o.DeliveredAt,
		RestaurantID: o.RestaurantID,
		Products:     items,
	}
}

func toActiveOrderResponse(o domain.ActiveOrder) ActiveOrderResponse {
	candidates := o.Candidates
	if candidates == nil {
		candidates = []domain.Restaurant{}
	}
	return ActiveOrderResponse{
		OrderResponse: toOrderResponse(o.Order),
		Candidates:    candidates,
	}
}
