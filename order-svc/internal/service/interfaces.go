package service

import (
	"context"
	"time"

	"foodcart/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type CatalogRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	CreateCategory(ctx context.Context, category *domain.ProductCategory) error
	DeleteCategory(ctx context.Context, id int64) (int64, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProductPrice(ctx context.Context, id int64, price decimal.Decimal) (int64, error)
	SetMenuAvailability(ctx context.Context, entry domain.MenuEntry) error
	ListAvailableProducts(ctx context.Context) ([]domain.Product, error)
	MissingProducts(ctx context.Context, ids []int64) ([]int64, error)
	AvailableOffers(ctx context.Context) ([]domain.MenuOffer, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.ValidatedOrder) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListActiveOrders(ctx context.Context) ([]domain.Order, error)
	ProductIDsByOrder(ctx context.Context, orderIDs []int64) (map[int64][]int64, error)
	UpdateStatus(ctx context.Context, id int64, change domain.StatusChange) error
}

// ProductChecker reports which of the given product ids do not exist.
type ProductChecker interface {
	MissingProducts(ctx context.Context, ids []int64) ([]int64, error)
}

type MenuReader interface {
	AvailableOffers(ctx context.Context) ([]domain.MenuOffer, error)
}

type OrderItemsReader interface {
	ProductIDsByOrder(ctx context.Context, orderIDs []int64) (map[int64][]int64, error)
}

type CatalogCache interface {
	GetProducts(ctx context.Context) ([]domain.Product, bool, error)
	Generation(ctx context.Context) (int64, error)
	SetProducts(ctx context.Context, gen int64, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type CatalogServiceInterface interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	CreateCategory(ctx context.Context, category *domain.ProductCategory) error
	DeleteCategory(ctx context.Context, id int64) error
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProductPrice(ctx context.Context, id int64, price decimal.Decimal) error
	SetMenuAvailability(ctx context.Context, entry domain.MenuEntry) error
	ListAvailableProducts(ctx context.Context) ([]domain.Product, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, body []byte) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	AdvanceStatus(ctx context.Context, id int64, next domain.Status) (*domain.Order, error)
	CallbackQR(ctx context.Context, id int64) ([]byte, error)
}

type QueryServiceInterface interface {
	ListActiveOrders(ctx context.Context) ([]domain.ActiveOrder, error)
	Candidates(ctx context.Context, orderID int64) ([]domain.Restaurant, error)
}

type clock func() time.Time

var (
	_ ProductChecker   = (CatalogRepository)(nil)
	_ MenuReader       = (CatalogRepository)(nil)
	_ OrderItemsReader = (OrderRepository)(nil)
)
