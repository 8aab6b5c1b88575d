// Package library persists named palettes to a key-value store.
package library

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/swatches/internal/domain"
	"github.com/emiliopalmerini/swatches/internal/ports"
)

// DefaultKey is the storage key holding the JSON array of saved palettes.
const DefaultKey = "palettes"

// Gateway keeps the session's list of saved palettes and mirrors it to a
// durable store. The durable list is the only source of sequence numbers.
type Gateway struct {
	mu      sync.Mutex
	store   ports.KeyValueStore
	key     string
	log     *zap.Logger
	now     func() time.Time
	records []domain.SavedPalette
}

// NewGateway creates a gateway writing under key (DefaultKey when empty).
func NewGateway(store ports.KeyValueStore, key string, log *zap.Logger) *Gateway {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{store: store, key: key, log: log, now: time.Now}
}

// Save snapshots colors under name. The record is added to the session list
// before the durable write, so a storage failure does not lose it.
func (g *Gateway) Save(ctx context.Context, name string, colors []string) (domain.SavedPalette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.SavedPalette{}, domain.ErrInvalidName
	}

	normalized := make([]string, len(colors))
	for i, c := range colors {
		hex, err := domain.NormalizeHex(c)
		if err != nil {
			return domain.SavedPalette{}, fmt.Errorf("color %d: %w", i, err)
		}
		normalized[i] = hex
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	durable, _, err := g.read(ctx)
	if err != nil {
		return domain.SavedPalette{}, err
	}

	record := domain.SavedPalette{
		ID:             uuid.NewString(),
		Name:           name,
		Colors:         normalized,
		SequenceNumber: len(durable),
		CreatedAt:      g.now().UTC(),
	}

	g.records = append(g.records, record)

	if err := g.write(ctx, append(durable, record)); err != nil {
		g.log.Error("failed to persist palette", zap.String("name", name), zap.Error(err))
		return record, err
	}

	g.log.Debug("palette saved", zap.String("name", name), zap.Int("sequence", record.SequenceNumber))
	return record, nil
}

// LoadAll replaces the session list with the durable one. A missing key
// yields an empty list.
func (g *Gateway) LoadAll(ctx context.Context) ([]domain.SavedPalette, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	records, _, err := g.read(ctx)
	if err != nil {
		return nil, err
	}
	g.records = records
	return clone(records), nil
}

// Records returns the session list.
func (g *Gateway) Records() []domain.SavedPalette {
	g.mu.Lock()
	defer g.mu.Unlock()
	return clone(g.records)
}

// Find returns the session record with the given ID.
func (g *Gateway) Find(id string) (domain.SavedPalette, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, r := range g.records {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.SavedPalette{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
}

// Select applies record.Colors to p positionally. Every color is parsed
// before the first write, so p is unchanged on failure.
func Select(p *domain.Palette, record domain.SavedPalette) error {
	if len(record.Colors) != p.Size() {
		return fmt.Errorf("%w: %q has %d colors, palette has %d slots",
			domain.ErrIndexMismatch, record.Name, len(record.Colors), p.Size())
	}

	parsed := make([]domain.Color, len(record.Colors))
	for i, hex := range record.Colors {
		c, err := domain.ParseHex(hex)
		if err != nil {
			return fmt.Errorf("color %d of %q: %w", i, record.Name, err)
		}
		parsed[i] = c
	}

	for i, c := range parsed {
		if err := p.SetColor(i, c); err != nil {
			return err
		}
	}
	return nil
}

func (g *Gateway) read(ctx context.Context) ([]domain.SavedPalette, bool, error) {
	raw, ok, err := g.store.Get(ctx, g.key)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if !ok {
		return []domain.SavedPalette{}, false, nil
	}

	var records []domain.SavedPalette
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, true, fmt.Errorf("%w: corrupt palette list: %v", domain.ErrStorage, err)
	}
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
	}
	return records, true, nil
}

func (g *Gateway) write(ctx context.Context, records []domain.SavedPalette) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if err := g.store.Set(ctx, g.key, string(data)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

func clone(records []domain.SavedPalette) []domain.SavedPalette {
	out := make([]domain.SavedPalette, len(records))
	copy(out, records)
	return out
}
