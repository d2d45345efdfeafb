package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/onboard/internal/core"
	"github.com/JonMunkholm/onboard/internal/files"
	"github.com/JonMunkholm/onboard/internal/store"
)

const testAdminKey = "operator-secret"

// setupEnv points the CLI at a fresh SQLite file and returns a vendor with
// all four documents on file.
func setupEnv(t *testing.T) (dir, vendorID string) {
	t.Helper()
	dir = t.TempDir()
	dbPath := filepath.Join(dir, "onboard.db")
	uploads := filepath.Join(dir, "uploads")

	t.Setenv("DATABASE_URL", dbPath)
	t.Setenv("UPLOAD_DIR", uploads)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("ADMIN_API_KEY", testAdminKey)
	t.Setenv(adminKeyEnv, "")

	ctx := context.Background()
	st, err := store.NewSQLite(ctx, dbPath)
	if err != nil {
		t.Fatalf("NewSQLite() error = %v", err)
	}
	defer st.Close()
	disk, err := files.NewDisk(uploads)
	if err != nil {
		t.Fatalf("NewDisk() error = %v", err)
	}
	svc := core.NewService(st, disk)

	v, err := svc.Intake(ctx, core.IntakeRequest{LegalName: "Acme LLC", Email: "ops@acme.test", VendorType: "prime", KYBKYC: "yes"})
	if err != nil {
		t.Fatalf("Intake() error = %v", err)
	}
	var docs []core.UploadedFile
	for _, k := range core.RequiredKinds {
		docs = append(docs, core.UploadedFile{Kind: k, Filename: string(k) + ".pdf", Content: strings.NewReader("x")})
	}
	if _, err := svc.UploadDocuments(ctx, v.ID, docs); err != nil {
		t.Fatalf("UploadDocuments() error = %v", err)
	}
	return dir, v.ID
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATABASE_URL", filepath.Join(dir, "fresh.db"))
	t.Setenv("UPLOAD_DIR", filepath.Join(dir, "uploads"))
	t.Setenv("LOG_LEVEL", "error")

	out, err := run(t, "migrate")
	if err != nil {
		t.Fatalf("migrate error = %v", err)
	}
	if !strings.Contains(out, "sqlite datastore ready") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "fresh.db")); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestScoreMarkPaidCert(t *testing.T) {
	dir, id := setupEnv(t)

	out, err := run(t, "score", id)
	if err != nil {
		t.Fatalf("score error = %v", err)
	}
	for _, want := range []string{"Score:    100/100", "Price:    $1,500", "Prime-Ready (KYC/KYB)", "Verified: false"} {
		if !strings.Contains(out, want) {
			t.Errorf("score output missing %q:\n%s", want, out)
		}
	}

	if _, err := run(t, "cert", id); !errors.Is(err, core.ErrNotVerified) {
		t.Fatalf("cert before payment error = %v, want ErrNotVerified", err)
	}

	out, err = run(t, "mark-paid", id, "--api-key", testAdminKey)
	if err != nil {
		t.Fatalf("mark-paid error = %v", err)
	}
	if !strings.Contains(out, `"verified": true`) {
		t.Errorf("mark-paid output = %s", out)
	}

	pdfPath := filepath.Join(dir, "cert.pdf")
	if _, err := run(t, "cert", id, "-o", pdfPath); err != nil {
		t.Fatalf("cert error = %v", err)
	}
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("certificate is not a PDF")
	}
}

func TestUnknownVendor(t *testing.T) {
	setupEnv(t)

	if _, err := run(t, "mark-paid", "00000000-0000-0000-0000-000000000000", "--api-key", testAdminKey); !errors.Is(err, core.ErrVendorNotFound) {
		t.Errorf("mark-paid error = %v, want ErrVendorNotFound", err)
	}
}

func TestMarkPaid_RequiresAdminKey(t *testing.T) {
	_, id := setupEnv(t)

	for name, args := range map[string][]string{
		"missing": {"mark-paid", id},
		"wrong":   {"mark-paid", id, "--api-key", "guess"},
	} {
		if _, err := run(t, args...); !errors.Is(err, core.ErrUnauthorized) {
			t.Errorf("%s key: mark-paid error = %v, want ErrUnauthorized", name, err)
		}
	}

	out, err := run(t, "score", id)
	if err != nil {
		t.Fatalf("score error = %v", err)
	}
	for _, want := range []string{"Paid:     false", "Verified: false"} {
		if !strings.Contains(out, want) {
			t.Errorf("vendor changed without the admin key, missing %q:\n%s", want, out)
		}
	}
}

func TestMarkPaid_KeyFromEnvironment(t *testing.T) {
	_, id := setupEnv(t)
	t.Setenv(adminKeyEnv, testAdminKey)

	out, err := run(t, "mark-paid", id)
	if err != nil {
		t.Fatalf("mark-paid error = %v", err)
	}
	if !strings.Contains(out, `"paid": true`) {
		t.Errorf("mark-paid output = %s", out)
	}
}
