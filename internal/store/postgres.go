package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/JonMunkholm/onboard/internal/config"
	"github.com/JonMunkholm/onboard/internal/core"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS vendors (
		id          VARCHAR(36) PRIMARY KEY,
		legal_name  VARCHAR(200) NOT NULL,
		email       VARCHAR(200) NOT NULL,
		phone       VARCHAR(50)  NOT NULL DEFAULT '',
		category    VARCHAR(100) NOT NULL DEFAULT '',
		city        VARCHAR(100) NOT NULL DEFAULT '',
		state       VARCHAR(50)  NOT NULL DEFAULT '',
		vendor_type VARCHAR(50)  NOT NULL DEFAULT 'local',
		kybkyc      BOOLEAN NOT NULL DEFAULT FALSE,
		paid        BOOLEAN NOT NULL DEFAULT FALSE,
		score       INTEGER NOT NULL DEFAULT 0,
		verified    BOOLEAN NOT NULL DEFAULT FALSE,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS documents (
		id          VARCHAR(36) PRIMARY KEY,
		vendor_id   VARCHAR(36) NOT NULL,
		kind        VARCHAR(50) NOT NULL,
		path        VARCHAR(500) NOT NULL,
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_documents_vendor ON documents(vendor_id);
`

// Postgres stores records in PostgreSQL through a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects using cfg's URL and pool limits, then migrates.
func NewPostgres(ctx context.Context, cfg config.DatabaseConfig) (*Postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse url: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	p := &Postgres{pool: pool}
	if err := p.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

// Migrate creates the tables if they do not exist.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("postgres: migrate: %w", err)
	}
	return nil
}

func (p *Postgres) CreateVendor(ctx context.Context, v *core.Vendor) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO vendors (id, legal_name, email, phone, category, city, state,
			vendor_type, kybkyc, paid, score, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, v.ID, v.LegalName, v.Email, v.Phone, v.Category, v.City, v.State,
		string(v.VendorType), v.KYBKYC, v.Paid, v.Score, v.Verified, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

func (p *Postgres) GetVendor(ctx context.Context, id string) (*core.Vendor, error) {
	var v core.Vendor
	var vendorType string
	err := p.pool.QueryRow(ctx, `
		SELECT id, legal_name, email, phone, category, city, state,
			vendor_type, kybkyc, paid, score, verified, created_at
		FROM vendors WHERE id = $1
	`, id).Scan(&v.ID, &v.LegalName, &v.Email, &v.Phone, &v.Category, &v.City, &v.State,
		&vendorType, &v.KYBKYC, &v.Paid, &v.Score, &v.Verified, &v.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("vendor %s: %w", id, core.ErrVendorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select vendor: %w", err)
	}
	v.VendorType = core.VendorType(vendorType)
	return &v, nil
}

func (p *Postgres) UpdateVendorScore(ctx context.Context, id string, score int) error {
	tag, err := p.pool.Exec(ctx, `UPDATE vendors SET score = $1 WHERE id = $2`, score, id)
	if err != nil {
		return fmt.Errorf("update score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vendor %s: %w", id, core.ErrVendorNotFound)
	}
	return nil
}

func (p *Postgres) UpdateVendorStatus(ctx context.Context, v *core.Vendor) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE vendors SET paid = $1, score = $2, verified = $3 WHERE id = $4`,
		v.Paid, v.Score, v.Verified, v.ID)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vendor %s: %w", v.ID, core.ErrVendorNotFound)
	}
	return nil
}

func (p *Postgres) CreateDocument(ctx context.Context, d *core.Document) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO documents (id, vendor_id, kind, path, uploaded_at)
		VALUES ($1, $2, $3, $4, $5)
	`, d.ID, d.VendorID, string(d.Kind), d.Path, d.UploadedAt)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (p *Postgres) ListDocuments(ctx context.Context, vendorID string) ([]core.Document, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, vendor_id, kind, path, uploaded_at
		FROM documents WHERE vendor_id = $1
		ORDER BY uploaded_at, id
	`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("select documents: %w", err)
	}
	defer rows.Close()

	var docs []core.Document
	for rows.Next() {
		var d core.Document
		var kind string
		if err := rows.Scan(&d.ID, &d.VendorID, &kind, &d.Path, &d.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.Kind = core.DocumentKind(kind)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
