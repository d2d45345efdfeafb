package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/JonMunkholm/onboard/internal/core"
)

// Memory keeps vendors and documents in maps. Values are copied in and out so
// callers never share state with the store.
type Memory struct {
	mu        sync.RWMutex
	vendors   map[string]core.Vendor
	documents []core.Document
}

// NewMemory creates an empty in-process store.
func NewMemory() *Memory {
	return &Memory{vendors: make(map[string]core.Vendor)}
}

func (m *Memory) CreateVendor(_ context.Context, v *core.Vendor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.vendors[v.ID]; exists {
		return fmt.Errorf("vendor %s: duplicate key", v.ID)
	}
	m.vendors[v.ID] = *v
	return nil
}

func (m *Memory) GetVendor(_ context.Context, id string) (*core.Vendor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vendors[id]
	if !ok {
		return nil, fmt.Errorf("vendor %s: %w", id, core.ErrVendorNotFound)
	}
	return &v, nil
}

func (m *Memory) UpdateVendorScore(_ context.Context, id string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vendors[id]
	if !ok {
		return fmt.Errorf("vendor %s: %w", id, core.ErrVendorNotFound)
	}
	v.Score = score
	m.vendors[id] = v
	return nil
}

func (m *Memory) UpdateVendorStatus(_ context.Context, v *core.Vendor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.vendors[v.ID]
	if !ok {
		return fmt.Errorf("vendor %s: %w", v.ID, core.ErrVendorNotFound)
	}
	cur.Paid, cur.Score, cur.Verified = v.Paid, v.Score, v.Verified
	m.vendors[v.ID] = cur
	return nil
}

func (m *Memory) CreateDocument(_ context.Context, d *core.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents = append(m.documents, *d)
	return nil
}

func (m *Memory) ListDocuments(_ context.Context, vendorID string) ([]core.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []core.Document
	for _, d := range m.documents {
		if d.VendorID == vendorID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() error { return nil }

// VendorCount reports how many vendors are stored.
func (m *Memory) VendorCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.vendors)
}
