package storage

import (
	"context"
	"database/sql"
	"fmt"

	"foodcart/order-svc/internal/domain"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO restaurants (name, address, contact_phone) VALUES ($1, $2, $3) RETURNING id",
		rest.Name, rest.Address, rest.ContactPhone,
	).Scan(&rest.ID)
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, address, contact_phone
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *domain.ProductCategory) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO product_categories (name) VALUES ($1) RETURNING id",
		category.Name,
	).Scan(&category.ID)
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM product_categories WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	var categoryID sql.NullInt64
	if product.Category != nil {
		categoryID = sql.NullInt64{Int64: product.Category.ID, Valid: true}
	}

	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO products (name, category_id, price, image, special_status, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		product.Name, categoryID, product.Price, product.Image, product.SpecialStatus, product.Description,
	).Scan(&product.ID)
	if err != nil {
		return notFoundOnForeignKey(err, "product category")
	}
	return nil
}

func (r *PostgresRepository) UpdateProductPrice(ctx context.Context, id int64, price decimal.Decimal) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "UPDATE products SET price = $1 WHERE id = $2", price, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) SetMenuAvailability(ctx context.Context, entry domain.MenuEntry) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO menu_entries (restaurant_id, product_id, availability)
		VALUES ($1, $2, $3)
		ON CONFLICT (restaurant_id, product_id) DO UPDATE SET availability = EXCLUDED.availability`,
		entry.RestaurantID, entry.ProductID, entry.Availability)
	if err != nil {
		return notFoundOnForeignKey(err, fmt.Sprintf("restaurant %d or product %d", entry.RestaurantID, entry.ProductID))
	}
	return nil
}

func (r *PostgresRepository) ListAvailableProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT p.id, p.name, p.price, p.image, p.special_status, p.description, c.id, c.name
		FROM products p
		LEFT JOIN product_categories c ON c.id = p.category_id
		WHERE EXISTS (
			SELECT 1 FROM menu_entries m
			WHERE m.product_id = p.id AND m.availability
		)
		ORDER BY p.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var (
			product      domain.Product
			categoryID   sql.NullInt64
			categoryName sql.NullString
		)
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Image,
			&product.SpecialStatus, &product.Description, &categoryID, &categoryName); err != nil {
			return nil, err
		}
		if categoryID.Valid {
			product.Category = &domain.ProductCategory{ID: categoryID.Int64, Name: categoryName.String}
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// MissingProducts returns the ids with no product row, in input order.
func (r *PostgresRepository) MissingProducts(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.DB.QueryContext(ctx, "SELECT id FROM products WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := make(map[int64]struct{}, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var missing []int64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// AvailableOffers is the single bulk read behind candidate matching.
func (r *PostgresRepository) AvailableOffers(ctx context.Context) ([]domain.MenuOffer, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT r.id, r.name, r.address, r.contact_phone, m.product_id
		FROM menu_entries m
		JOIN restaurants r ON r.id = m.restaurant_id
		WHERE m.availability
		ORDER BY r.id, m.product_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []domain.MenuOffer
	for rows.Next() {
		var offer domain.MenuOffer
		if err := rows.Scan(&offer.Restaurant.ID, &offer.Restaurant.Name, &offer.Restaurant.Address,
			&offer.Restaurant.ContactPhone, &offer.ProductID); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}
