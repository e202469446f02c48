package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/shazadkhan123456789/SK-Steel-Furniture/internal/domain"
)

// SQLiteRepository persists the catalog in an embedded sqlite database.
// Prices are stored as text to keep them decimal-exact.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// Seed loads the flattened catalog into the products table when it is
// empty. Position keeps the original document order on reads.
func (r *SQLiteRepository) Seed(ctx context.Context, products []domain.Product) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (id, name, description, material, cost_price, retail_price, category_id, category_name, image_url, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	for i, p := range products {
		_, err := tx.ExecContext(ctx, query,
			p.ID,
			p.Name,
			p.Description,
			p.Material,
			p.CostPrice.String(),
			p.RetailPrice.String(),
			p.CategoryID,
			p.CategoryName,
			p.ImageURL,
			i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert product %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, description, material, cost_price, retail_price, category_id, category_name, image_url
		FROM products
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func (r *SQLiteRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, description, material, cost_price, retail_price, category_id, category_name, image_url
		FROM products
		WHERE id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	defer rows.Close()

	var product *domain.Product
	for rows.Next() {
		product, err = scanProduct(rows)
		if err != nil {
			return nil, err
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func scanProduct(rows *sql.Rows) (*domain.Product, error) {
	p := &domain.Product{}
	var costPrice, retailPrice string
	err := rows.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Material,
		&costPrice,
		&retailPrice,
		&p.CategoryID,
		&p.CategoryName,
		&p.ImageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	if p.CostPrice, err = decimal.NewFromString(costPrice); err != nil {
		return nil, fmt.Errorf("failed to parse cost price for product %d: %w", p.ID, err)
	}
	if p.RetailPrice, err = decimal.NewFromString(retailPrice); err != nil {
		return nil, fmt.Errorf("failed to parse retail price for product %d: %w", p.ID, err)
	}
	return p, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
