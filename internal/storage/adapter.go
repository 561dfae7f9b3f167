package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"arogya360-portal/internal/models"

	"github.com/rs/zerolog"
)

// Collection keys, relative to the adapter namespace
const (
	KeyHospitals    = "hospitals"
	KeyDoctors      = "doctors"
	KeyAppointments = "appointments"
	KeyOrders       = "orders"
	KeyStores       = "stores"
)

// LoadResult tells the caller where a loaded value came from
type LoadResult int

const (
	Loaded LoadResult = iota
	Defaulted
	DecodeError
	AccessError
)

func (r LoadResult) String() string {
	switch r {
	case Loaded:
		return "loaded"
	case Defaulted:
		return "defaulted"
	case DecodeError:
		return "decode_error"
	case AccessError:
		return "access_error"
	}
	return "unknown"
}

// Adapter reads and writes full-collection JSON snapshots under a namespace
type Adapter struct {
	medium    Medium
	namespace string
	logger    zerolog.Logger
}

func NewAdapter(medium Medium, namespace string, logger zerolog.Logger) *Adapter {
	return &Adapter{
		medium:    medium,
		namespace: namespace,
		logger:    logger.With().Str("component", "storage").Logger(),
	}
}

// StorageKey returns the namespaced key a collection is persisted under
func (a *Adapter) StorageKey(key string) string {
	return a.namespace + "_" + key
}

// Load decodes the snapshot stored under key. When the key is missing or the
// blob cannot be read or decoded, def is returned and the result says why.
func Load[T any](ctx context.Context, a *Adapter, key string, def T) (T, LoadResult) {
	blob, ok, err := a.medium.Get(ctx, a.StorageKey(key))
	if err != nil {
		a.logger.Warn().Err(err).Str("key", key).Msg("snapshot read failed, using defaults")
		return def, AccessError
	}
	// a stored null would decode to a nil slice
	if trimmed := bytes.TrimSpace(blob); !ok || len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return def, Defaulted
	}

	var value T
	if err := json.Unmarshal(blob, &value); err != nil {
		a.logger.Warn().Err(err).Str("key", key).Msg("snapshot decode failed, using defaults")
		return def, DecodeError
	}
	return value, Loaded
}

// Save overwrites the snapshot stored under key
func (a *Adapter) Save(ctx context.Context, key string, value any) error {
	blob, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", key, err)
	}
	if err := a.medium.Put(ctx, a.StorageKey(key), blob); err != nil {
		return fmt.Errorf("failed to write %s snapshot: %w", key, err)
	}
	return nil
}

// Reset removes every snapshot in the namespace
func (a *Adapter) Reset(ctx context.Context) error {
	if err := a.medium.Clear(ctx, a.namespace+"_"); err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}

// ExportSnapshot renders all collections as one indented JSON document
func (a *Adapter) ExportSnapshot(snapshot models.PortalSnapshot) ([]byte, error) {
	blob, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return blob, nil
}

// ExportFilename is the download name offered for ExportSnapshot output
func (a *Adapter) ExportFilename() string {
	return a.namespace + "_backup.json"
}
