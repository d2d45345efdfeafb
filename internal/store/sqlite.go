package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JonMunkholm/onboard/internal/core"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS vendors (
		id          TEXT PRIMARY KEY,
		legal_name  TEXT NOT NULL,
		email       TEXT NOT NULL,
		phone       TEXT NOT NULL DEFAULT '',
		category    TEXT NOT NULL DEFAULT '',
		city        TEXT NOT NULL DEFAULT '',
		state       TEXT NOT NULL DEFAULT '',
		vendor_type TEXT NOT NULL DEFAULT 'local',
		kybkyc      INTEGER NOT NULL DEFAULT 0,
		paid        INTEGER NOT NULL DEFAULT 0,
		score       INTEGER NOT NULL DEFAULT 0,
		verified    INTEGER NOT NULL DEFAULT 0,
		created_at  DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS documents (
		id          TEXT PRIMARY KEY,
		vendor_id   TEXT NOT NULL,
		kind        TEXT NOT NULL,
		path        TEXT NOT NULL,
		uploaded_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_documents_vendor ON documents(vendor_id);
`

// SQLite stores records in a local database file.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database file at path and migrates it.
func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("sqlite: path is required")
	}
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, "file:") {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite: create directory: %w", err)
		}
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	db, err := sql.Open("sqlite3", path+sep+"_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// One writer at a time avoids SQLITE_BUSY under the request-per-goroutine model.
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Migrate creates the tables if they do not exist.
func (s *SQLite) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	return nil
}

func (s *SQLite) CreateVendor(ctx context.Context, v *core.Vendor) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vendors (id, legal_name, email, phone, category, city, state,
			vendor_type, kybkyc, paid, score, verified, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, v.ID, v.LegalName, v.Email, v.Phone, v.Category, v.City, v.State,
		string(v.VendorType), v.KYBKYC, v.Paid, v.Score, v.Verified, v.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

func (s *SQLite) GetVendor(ctx context.Context, id string) (*core.Vendor, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, legal_name, email, phone, category, city, state,
			vendor_type, kybkyc, paid, score, verified, created_at
		FROM vendors WHERE id = ?
	`, id)

	var v core.Vendor
	var vendorType string
	err := row.Scan(&v.ID, &v.LegalName, &v.Email, &v.Phone, &v.Category, &v.City, &v.State,
		&vendorType, &v.KYBKYC, &v.Paid, &v.Score, &v.Verified, &v.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vendor %s: %w", id, core.ErrVendorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select vendor: %w", err)
	}
	v.VendorType = core.VendorType(vendorType)
	return &v, nil
}

func (s *SQLite) UpdateVendorScore(ctx context.Context, id string, score int) error {
	res, err := s.db.ExecContext(ctx, `UPDATE vendors SET score = ? WHERE id = ?`, score, id)
	if err != nil {
		return fmt.Errorf("update score: %w", err)
	}
	return requireRow(res, id)
}

func (s *SQLite) UpdateVendorStatus(ctx context.Context, v *core.Vendor) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE vendors SET paid = ?, score = ?, verified = ? WHERE id = ?`,
		v.Paid, v.Score, v.Verified, v.ID)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	return requireRow(res, v.ID)
}

func (s *SQLite) CreateDocument(ctx context.Context, d *core.Document) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, vendor_id, kind, path, uploaded_at)
		VALUES (?, ?, ?, ?, ?)
	`, d.ID, d.VendorID, string(d.Kind), d.Path, d.UploadedAt)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (s *SQLite) ListDocuments(ctx context.Context, vendorID string) ([]core.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, vendor_id, kind, path, uploaded_at
		FROM documents WHERE vendor_id = ?
		ORDER BY uploaded_at, rowid
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

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// requireRow turns a zero-row update into ErrVendorNotFound.
func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("vendor %s: %w", id, core.ErrVendorNotFound)
	}
	return nil
}
