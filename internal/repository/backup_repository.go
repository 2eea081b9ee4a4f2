package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"wayfare-sync-server/internal/domain"

	"github.com/go-kivik/kivik/v4"
	"github.com/go-playground/validator/v10"
)

// BackupRepository is a dumb key-value upsert keyed by sync id. Save fully
// replaces any prior record; it never merges. Callers wanting merge semantics
// must Load and merge before saving.
type BackupRepository interface {
	Save(syncID string, snapshot *domain.Snapshot) error
	Load(syncID string) (*domain.BackupRecord, error)
}

type backupRepository struct {
	client   *kivik.Client
	dbName   string
	validate *validator.Validate
}

func NewBackupRepository(client *kivik.Client, dbName string) BackupRepository {
	return &backupRepository{
		client:   client,
		dbName:   dbName,
		validate: validator.New(),
	}
}

func (r *backupRepository) Save(syncID string, snapshot *domain.Snapshot) error {
	db := r.client.DB(r.dbName)
	docID := fmt.Sprintf("backup:%s", syncID)

	doc := map[string]interface{}{
		"sync_id":   syncID,
		"snapshot":  snapshot,
		"timestamp": time.Now(),
	}

	// CouchDB requires the current _rev to overwrite an existing doc.
	var existingDoc map[string]interface{}
	row := db.Get(context.Background(), docID)
	if err := row.ScanDoc(&existingDoc); err == nil {
		if rev, ok := existingDoc["_rev"].(string); ok {
			doc["_rev"] = rev
		}
	}

	if _, err := db.Put(context.Background(), docID, doc); err != nil {
		return fmt.Errorf("failed to save backup: %w", err)
	}

	return nil
}

func (r *backupRepository) Load(syncID string) (*domain.BackupRecord, error) {
	db := r.client.DB(r.dbName)
	docID := fmt.Sprintf("backup:%s", syncID)

	row := db.Get(context.Background(), docID)

	var record domain.BackupRecord
	if err := row.ScanDoc(&record); err != nil {
		if kivik.HTTPStatus(err) == http.StatusNotFound {
			return nil, ErrBackupNotFound
		}
		return nil, fmt.Errorf("failed to load backup: %w", err)
	}

	if err := r.validate.Struct(&record.Snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBackup, err)
	}

	return &record, nil
}
