package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/shop"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/database"
)

type postgresRepository struct {
	db *database.PostgresDB
}

func NewPostgresRepository(db *database.PostgresDB) shop.Repository {
	return &postgresRepository{db: db}
}

const productColumns = `id, name, description, price, category, image_url, active, created_at`

func (r *postgresRepository) List(ctx context.Context) ([]shop.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	return r.queryProducts(ctx, query)
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]shop.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE active = true ORDER BY created_at DESC`
	return r.queryProducts(ctx, query)
}

func (r *postgresRepository) Get(ctx context.Context, id uuid.UUID) (*shop.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p shop.Product
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.ImageURL, &p.Active, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shop.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Insert(ctx context.Context, product *shop.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, category, image_url, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Pool.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price,
		product.Category, product.ImageURL, product.Active, product.CreatedAt)
	return err
}

func (r *postgresRepository) Update(ctx context.Context, product *shop.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category = $5, image_url = $6, active = $7
		WHERE id = $1`
	tag, err := r.db.Pool.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price,
		product.Category, product.ImageURL, product.Active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shop.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shop.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) queryProducts(ctx context.Context, query string) ([]shop.Product, error) {
	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []shop.Product
	for rows.Next() {
		var p shop.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
			&p.ImageURL, &p.Active, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
