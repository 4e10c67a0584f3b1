package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"foodcart/order-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const maxNameLength = 50

type CatalogService struct {
	repo   CatalogRepository
	cache  CatalogCache
	images ImageResolver
}

func NewCatalogService(repo CatalogRepository, cache CatalogCache, images ImageResolver) *CatalogService {
	return &CatalogService{repo: repo, cache: cache, images: images}
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	rest.Name = strings.TrimSpace(rest.Name)
	if err := checkName("name", rest.Name); err != nil {
		return err
	}
	if err := s.repo.CreateRestaurant(ctx, rest); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *domain.ProductCategory) error {
	category.Name = strings.TrimSpace(category.Name)
	if err := checkName("name", category.Name); err != nil {
		return err
	}
	return s.repo.CreateCategory(ctx, category)
}

// DeleteCategory detaches its products rather than deleting them.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	rows, err := s.repo.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("category %d: %w", id, domain.ErrNotFound)
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *domain.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	if err := checkName("name", product.Name); err != nil {
		return err
	}
	if err := checkPrice(product.Price); err != nil {
		return err
	}
	if utf8.RuneCountInString(product.Description) > domain.MaxDescriptionLength {
		return &domain.ValidationError{
			Err:    domain.ErrInvalidCatalogEntry,
			Field:  "description",
			Detail: fmt.Sprintf("must be at most %d characters", domain.MaxDescriptionLength),
		}
	}
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// UpdateProductPrice changes the live price. Existing order items keep the
// price they were created with.
func (s *CatalogService) UpdateProductPrice(ctx context.Context, id int64, price decimal.Decimal) error {
	if err := checkPrice(price); err != nil {
		return err
	}
	rows, err := s.repo.UpdateProductPrice(ctx, id, price)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	s.invalidate(ctx)
	return nil
}

func (s *CatalogService) SetMenuAvailability(ctx context.Context, entry domain.MenuEntry) error {
	if err := s.repo.SetMenuAvailability(ctx, entry); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// ListAvailableProducts returns products sold by at least one restaurant,
// with image references resolved to URLs.
func (s *CatalogService) ListAvailableProducts(ctx context.Context) ([]domain.Product, error) {
	cacheable := s.cache != nil
	var gen int64
	if cacheable {
		products, ok, err := s.cache.GetProducts(ctx)
		if err != nil {
			slog.WarnContext(ctx, "catalog cache read failed", "error", err)
		} else if ok {
			return products, nil
		}
		// Read before the database so a concurrent write makes the fill a no-op.
		if gen, err = s.cache.Generation(ctx); err != nil {
			slog.WarnContext(ctx, "catalog cache generation read failed", "error", err)
			cacheable = false
		}
	}

	products, err := s.repo.ListAvailableProducts(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	for i := range products {
		if s.images != nil {
			products[i].Image = s.images.URL(products[i].Image)
		}
	}

	if cacheable {
		if err := s.cache.SetProducts(ctx, gen, products); err != nil {
			slog.WarnContext(ctx, "catalog cache write failed", "error", err)
		}
	}
	return products, nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		slog.WarnContext(ctx, "catalog cache invalidation failed", "error", err)
	}
}

func checkName(field, name string) error {
	if name == "" {
		return &domain.ValidationError{Err: domain.ErrInvalidCatalogEntry, Field: field, Detail: "must not be empty"}
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return &domain.ValidationError{Err: domain.ErrInvalidCatalogEntry, Field: field, Detail: fmt.Sprintf("must be at most %d characters", maxNameLength)}
	}
	return nil
}

func checkPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return &domain.ValidationError{Err: domain.ErrInvalidCatalogEntry, Field: "price", Detail: "must not be negative"}
	}
	if !price.Equal(price.Round(2)) {
		return &domain.ValidationError{Err: domain.ErrInvalidCatalogEntry, Field: "price", Detail: "must have at most 2 decimal places"}
	}
	return nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
