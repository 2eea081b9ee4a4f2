package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"wayfare-sync-server/internal/domain"

	"github.com/go-playground/validator/v10"
)

// localBackupRepository is the single-device fallback store: one JSON file
// per sync id under a data directory. It satisfies the same contract as the
// CouchDB store so the rest of the system never knows which one is active.
type localBackupRepository struct {
	dir      string
	mu       sync.Mutex
	validate *validator.Validate
}

func NewLocalBackupRepository(dir string) (BackupRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup dir: %w", err)
	}
	return &localBackupRepository{
		dir:      dir,
		validate: validator.New(),
	}, nil
}

func (r *localBackupRepository) path(syncID string) string {
	return filepath.Join(r.dir, fmt.Sprintf("backup-%s.json", syncID))
}

func (r *localBackupRepository) Save(syncID string, snapshot *domain.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := domain.BackupRecord{
		SyncID:    syncID,
		Snapshot:  *snapshot,
		Timestamp: time.Now(),
	}

	data, err := json.MarshalIndent(&record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	tmp := r.path(syncID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	if err := os.Rename(tmp, r.path(syncID)); err != nil {
		return fmt.Errorf("failed to replace backup: %w", err)
	}

	return nil
}

func (r *localBackupRepository) Load(syncID string) (*domain.BackupRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path(syncID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBackupNotFound
		}
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}

	var record domain.BackupRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBackup, err)
	}

	if err := r.validate.Struct(&record.Snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBackup, err)
	}

	return &record, nil
}
