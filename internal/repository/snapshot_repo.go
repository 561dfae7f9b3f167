package repository

import (
	"context"
	"errors"
	"strings"

	"arogya360-portal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRepository stores collection snapshots in the snapshots table.
// It satisfies storage.Medium.
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepo(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Get retrieves the payload stored under key
func (r *SnapshotRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var snapshot models.Snapshot
	err := r.db.WithContext(ctx).Where("snapshot_key = ?", key).First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(snapshot.Payload), true, nil
}

// Put replaces the payload stored under key
func (r *SnapshotRepository) Put(ctx context.Context, key string, value []byte) error {
	snapshot := &models.Snapshot{
		Key:     key,
		Payload: string(value),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(snapshot).Error
}

// Clear deletes every snapshot whose key starts with prefix
func (r *SnapshotRepository) Clear(ctx context.Context, prefix string) error {
	return r.db.WithContext(ctx).
		Where("snapshot_key LIKE ?", likePrefix(prefix)).
		Delete(&models.Snapshot{}).Error
}

// likePrefix escapes LIKE wildcards so namespaces like "arogya360_" match literally
func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
