package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AdonesMapula/atay/internal/domain/model"
	"github.com/AdonesMapula/atay/internal/services/catalog"
)

var ErrProductNotFound = fmt.Errorf("%w: product", catalog.ErrNotFound)

type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

func (r *ProductRepo) List(ctx context.Context) ([]model.Product, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, name, brand, sizes, price_cents, COALESCE(image_key, ''), created_at
FROM products
ORDER BY created_at, id
`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var product model.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Brand, &product.Sizes, &product.PriceCents, &product.ImageKey, &product.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *ProductRepo) Create(ctx context.Context, product model.Product) (model.Product, error) {
	if r.pool == nil {
		return model.Product{}, fmt.Errorf("postgres pool is nil")
	}

	product.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx, `
INSERT INTO products (id, name, brand, sizes, price_cents, image_key, created_at)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NOW())
RETURNING created_at
`, product.ID, product.Name, product.Brand, product.Sizes, product.PriceCents, product.ImageKey).Scan(&product.CreatedAt)
	if err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (r *ProductRepo) Update(ctx context.Context, product model.Product) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(product.ID) == "" {
		return fmt.Errorf("product id is required")
	}

	tag, err := r.pool.Exec(ctx, `
UPDATE products
SET name = $2, brand = $3, sizes = $4, price_cents = $5, image_key = NULLIF($6, '')
WHERE id = $1
`, product.ID, product.Name, product.Brand, product.Sizes, product.PriceCents, product.ImageKey)
	if err != nil {
		return fmt.Errorf("update product %s: %w", product.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}
