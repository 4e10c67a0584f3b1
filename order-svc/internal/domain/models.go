package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const MaxDescriptionLength = 200

type Restaurant struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactPhone string `json:"contact_phone"`
}

type ProductCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Category      *ProductCategory `json:"category"`
	Price         decimal.Decimal  `json:"price"`
	Image         string           `json:"image"`
	SpecialStatus bool             `json:"special_status"`
	Description   string           `json:"description"`
}

// MenuEntry records whether a restaurant currently sells a product.
type MenuEntry struct {
	RestaurantID int64 `json:"restaurant_id"`
	ProductID    int64 `json:"product_id"`
	Availability bool  `json:"availability"`
}

type Order struct {
	ID           int64           `json:"id"`
	Payment      PaymentMethod   `json:"payment"`
	Status       Status          `json:"status"`
	Firstname    string          `json:"firstname"`
	Lastname     string          `json:"lastname"`
	PhoneNumber  string          `json:"phonenumber"`
	Address      string          `json:"address"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Comment      string          `json:"comment"`
	RegisteredAt time.Time       `json:"registered_at"`
	CalledAt     *time.Time      `json:"called_at"`
	DeliveredAt  *time.Time      `json:"delivered_at"`
	RestaurantID *int64          `json:"restaurant_id"`
	Items        []OrderItem     `json:"products"`
}

// OrderItem is a line of an order. Price is the product price snapshotted
// when the order was created.
type OrderItem struct {
	OrderID   int64           `json:"-"`
	ProductID int64           `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

func (i OrderItem) Cost() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// MaxOrderTotal is the largest total orders.total_price NUMERIC(10, 2) holds.
var MaxOrderTotal = decimal.RequireFromString("99999999.99")

// TotalCost sums unit price times quantity over items.
func TotalCost(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Cost())
	}
	return total.Round(2)
}

// ValidatedOrder is a submission that passed every validation rule.
type ValidatedOrder struct {
	Firstname   string
	Lastname    string
	PhoneNumber string
	Address     string
	Comment     string
	Payment     PaymentMethod
	Lines       []OrderLine
}

type OrderLine struct {
	ProductID int64
	Quantity  int
}

// ActiveOrder is an order annotated with the restaurants able to fulfill it.
type ActiveOrder struct {
	Order
	Candidates []Restaurant `json:"candidates"`
}

// MenuOffer is an available menu entry joined with its restaurant.
type MenuOffer struct {
	Restaurant Restaurant
	ProductID  int64
}
