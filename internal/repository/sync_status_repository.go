package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wayfare-sync-server/internal/domain"
)

type SyncStatusRepository interface {
	Get(syncID string) (*domain.SyncStatus, error)
	RecordBackup(syncID, deviceID string, at time.Time) error
}

// syncStatusRepo talks to CouchDB over plain HTTP. The status doc is small
// bookkeeping; losing an update to a concurrent writer is acceptable.
type syncStatusRepo struct {
	baseURL string
	client  *http.Client
}

func NewSyncStatusRepository(baseURL string) SyncStatusRepository {
	return &syncStatusRepo{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *syncStatusRepo) Get(syncID string) (*domain.SyncStatus, error) {
	url := fmt.Sprintf("%s/status:%s", r.baseURL, syncID)

	resp, err := r.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &domain.SyncStatus{SyncID: syncID}, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get sync status: status %d", resp.StatusCode)
	}

	var status domain.SyncStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode sync status: %w", err)
	}

	return &status, nil
}

func (r *syncStatusRepo) RecordBackup(syncID, deviceID string, at time.Time) error {
	status, err := r.Get(syncID)
	if err != nil {
		return err
	}

	docID := fmt.Sprintf("status:%s", syncID)

	createdAt := status.CreatedAt
	if createdAt.IsZero() {
		createdAt = at
	}

	doc := map[string]interface{}{
		"_id":            docID,
		"sync_id":        syncID,
		"created_at":     createdAt,
		"last_backup_at": at,
		"last_device_id": deviceID,
		"backup_count":   status.BackupCount + 1,
	}

	url := fmt.Sprintf("%s/%s", r.baseURL, docID)
	resp, _ := r.client.Get(url)
	if resp != nil && resp.StatusCode == http.StatusOK {
		var existingDoc map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&existingDoc)
		if rev, ok := existingDoc["_rev"].(string); ok {
			doc["_rev"] = rev
		}
		resp.Body.Close()
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	putResp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer putResp.Body.Close()

	if putResp.StatusCode != http.StatusCreated && putResp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to record backup: status %d", putResp.StatusCode)
	}

	return nil
}
