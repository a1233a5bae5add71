package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/storefront-server/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

const productColumns = `p.id, p.name, p.description, p.price_in_cents, p.file_path, p.image_path,
	p.is_available_for_purchase, p.created_at, p.updated_at`

type ProductRepository struct {
	db *Connection
}

func NewProductRepository(db *Connection) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1`

	product, err := scanProduct(r.db.conn(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}

	return product, nil
}

func (r *ProductRepository) ListAvailable(ctx context.Context, order model.ProductOrder, limit int) ([]model.Product, error) {
	var query string
	switch order {
	case model.ProductOrderPopular:
		query = `SELECT ` + productColumns + `
			FROM products p
			LEFT JOIN orders o ON o.product_id = p.id
			WHERE p.is_available_for_purchase
			GROUP BY p.id
			ORDER BY COUNT(o.id) DESC, p.name ASC
			LIMIT $1`
	case model.ProductOrderNewest:
		query = `SELECT ` + productColumns + `
			FROM products p
			WHERE p.is_available_for_purchase
			ORDER BY p.created_at DESC
			LIMIT $1`
	default:
		query = `SELECT ` + productColumns + `
			FROM products p
			WHERE p.is_available_for_purchase
			ORDER BY p.name ASC
			LIMIT $1`
	}

	// LIMIT NULL returns every row.
	var lim any
	if limit > 0 {
		lim = limit
	}

	rows, err := r.db.conn(ctx).Query(ctx, query, lim)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.PriceInCents, &p.FilePath, &p.ImagePath,
		&p.IsAvailableForPurchase, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
