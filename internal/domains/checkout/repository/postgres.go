package repository

import (
	"context"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/checkout"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/database"
)

type postgresRepository struct {
	db *database.PostgresDB
}

func NewPostgresRepository(db *database.PostgresDB) checkout.SalesRecorder {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) RecordSale(ctx context.Context, sale checkout.Sale) error {
	query := `
		INSERT INTO sales_tracking (id, product_id, product_name, amount, customer_name, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`
	_, err := r.db.Pool.Exec(ctx, query,
		sale.ID, sale.ProductID, sale.ProductName, sale.Amount, sale.CustomerName)
	return err
}
