package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"foodcart/order-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	repo, mock := setupRepo(t)
	for range schema {
		mock.ExpectExec("CREATE").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_ReportsFailingStatement(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS restaurants").WillReturnError(sql.ErrConnDone)

	err := repo.EnsureSchema(context.Background())

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Contains(t, err.Error(), "CREATE TABLE IF NOT EXISTS restaurants (")
}

func TestNotFoundOnForeignKey(t *testing.T) {
	err := notFoundOnForeignKey(&pq.Error{Code: "23503"}, "product category")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	other := &pq.Error{Code: "23505"}
	assert.Equal(t, error(other), notFoundOnForeignKey(other, "x"))
}

func TestCreateProduct(t *testing.T) {
	tests := []struct {
		name      string
		product   *domain.Product
		setupMock func(sqlmock.Sqlmock)
		wantID    int64
		wantErr   error
	}{
		{
			name:    "with category",
			product: &domain.Product{Name: "Soup", Price: decimal.RequireFromString("4.50"), Category: &domain.ProductCategory{ID: 2}},
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO products").
					WithArgs("Soup", int64(2), decimal.RequireFromString("4.50"), "", false, "").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
			},
			wantID: 11,
		},
		{
			name:    "without category",
			product: &domain.Product{Name: "Tea", Price: decimal.RequireFromString("1")},
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO products").
					WithArgs("Tea", nil, decimal.RequireFromString("1"), "", false, "").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
			},
			wantID: 12,
		},
		{
			name:    "unknown category",
			product: &domain.Product{Name: "Soup", Category: &domain.ProductCategory{ID: 99}},
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("INSERT INTO products").WillReturnError(&pq.Error{Code: "23503"})
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			testCase.setupMock(mock)

			err := repo.CreateProduct(context.Background(), testCase.product)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantID, testCase.product.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteCategory_ReturnsAffectedRows(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectExec("DELETE FROM product_categories").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.DeleteCategory(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestSetMenuAvailability_Upserts(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectExec("ON CONFLICT").
		WithArgs(int64(1), int64(2), false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetMenuAvailability(context.Background(), domain.MenuEntry{RestaurantID: 1, ProductID: 2, Availability: false})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetMenuAvailability_UnknownRestaurant(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectExec("INSERT INTO menu_entries").WillReturnError(&pq.Error{Code: "23503"})

	err := repo.SetMenuAvailability(context.Background(), domain.MenuEntry{RestaurantID: 9, ProductID: 2, Availability: true})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAvailableProducts(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectQuery("FROM products p LEFT JOIN product_categories").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "image", "special_status", "description", "id", "name"}).
			AddRow(1, "Soup", "4.50", "soup.png", true, "hot", 2, "Starters").
			AddRow(2, "Tea", "1.00", "", false, "", nil, nil))

	products, err := repo.ListAvailableProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	require.NotNil(t, products[0].Category)
	assert.Equal(t, "Starters", products[0].Category.Name)
	assert.Nil(t, products[1].Category)
	assert.Equal(t, "1.00", products[1].Price.StringFixed(2))
}

func TestMissingProducts(t *testing.T) {
	tests := []struct {
		name      string
		ids       []int64
		setupMock func(sqlmock.Sqlmock)
		want      []int64
		wantErr   bool
	}{
		{
			name:      "no ids skips the query",
			ids:       nil,
			setupMock: func(sqlmock.Sqlmock) {},
			want:      nil,
		},
		{
			name: "all present",
			ids:  []int64{1, 2},
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id FROM products WHERE id = ANY").
					WithArgs(pq.Array([]int64{1, 2})).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2).AddRow(1))
			},
			want: nil,
		},
		{
			name: "missing keep input order",
			ids:  []int64{42, 1, 7},
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id FROM products WHERE id = ANY").
					WithArgs(pq.Array([]int64{42, 1, 7})).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			},
			want: []int64{42, 7},
		},
		{
			name: "query error",
			ids:  []int64{1},
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT id FROM products").WillReturnError(errors.New("boom"))
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepo(t)
			testCase.setupMock(mock)

			missing, err := repo.MissingProducts(context.Background(), testCase.ids)

			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, missing)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAvailableOffers(t *testing.T) {
	repo, mock := setupRepo(t)
	mock.ExpectQuery("FROM menu_entries m JOIN restaurants r").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "contact_phone", "product_id"}).
			AddRow(1, "R1", "a", "+1", 10).
			AddRow(1, "R1", "a", "+1", 11).
			AddRow(2, "R2", "b", "+2", 10))

	offers, err := repo.AvailableOffers(context.Background())

	require.NoError(t, err)
	require.Len(t, offers, 3)
	assert.Equal(t, "R2", offers[2].Restaurant.Name)
	assert.Equal(t, int64(11), offers[1].ProductID)
}
