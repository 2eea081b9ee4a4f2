package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"wayfare-sync-server/internal/domain"
	"wayfare-sync-server/internal/merge"
	"wayfare-sync-server/internal/repository"
	"wayfare-sync-server/internal/websocket"
	"wayfare-sync-server/pkg/syncid"
)

type SyncService struct {
	backupRepo repository.BackupRepository
	statusRepo repository.SyncStatusRepository
	deviceRepo repository.DeviceRepository
	wsManager  *websocket.Manager
}

func NewSyncService(
	backupRepo repository.BackupRepository,
	statusRepo repository.SyncStatusRepository,
	deviceRepo repository.DeviceRepository,
	wsManager *websocket.Manager,
) *SyncService {
	return &SyncService{
		backupRepo: backupRepo,
		statusRepo: statusRepo,
		deviceRepo: deviceRepo,
		wsManager:  wsManager,
	}
}

// Backup reconciles the device's snapshot with whatever is already stored
// under syncID and upserts the result. The prior remote record is always
// loaded and merged first, so two devices saving in turn lose nothing: list
// data unions, scalar fields follow the resolution map (local by default).
// The caller's snapshot is never mutated; on any failure the stored record
// is left as it was.
func (s *SyncService) Backup(syncID, deviceID string, local *domain.Snapshot, resolutions map[string]domain.Resolution) (*domain.BackupResponse, error) {
	if !syncid.Valid(syncID) {
		return nil, ErrInvalidSyncID
	}

	merged := *local

	record, err := s.backupRepo.Load(syncID)
	switch {
	case err == nil:
		merged = merge.Snapshot(*local, record.Snapshot, resolutions)
	case errors.Is(err, repository.ErrBackupNotFound):
		// First backup for this sync id: store the snapshot as-is.
	default:
		return nil, fmt.Errorf("failed to load prior backup: %w", err)
	}

	if err := s.backupRepo.Save(syncID, &merged); err != nil {
		return nil, fmt.Errorf("failed to save backup: %w", err)
	}

	now := time.Now()
	s.recordBackup(syncID, deviceID, now)
	s.notifyPeers(syncID, deviceID, now)

	return &domain.BackupResponse{Snapshot: merged, Timestamp: now}, nil
}

// Restore returns the stored snapshot for syncID.
// repository.ErrBackupNotFound propagates untouched so the handler can
// report "no backup found" rather than a failure.
func (s *SyncService) Restore(syncID string) (*domain.BackupRecord, error) {
	if !syncid.Valid(syncID) {
		return nil, ErrInvalidSyncID
	}
	return s.backupRepo.Load(syncID)
}

func (s *SyncService) Status(syncID string) (*domain.SyncStatus, error) {
	if !syncid.Valid(syncID) {
		return nil, ErrInvalidSyncID
	}
	return s.statusRepo.Get(syncID)
}

// Bookkeeping failures never fail a backup that has already been stored.
func (s *SyncService) recordBackup(syncID, deviceID string, at time.Time) {
	if s.statusRepo != nil {
		if err := s.statusRepo.RecordBackup(syncID, deviceID, at); err != nil {
			log.Printf("failed to record sync status for %s: %v", syncID, err)
		}
	}
	if s.deviceRepo != nil && deviceID != "" {
		if err := s.deviceRepo.UpdateLastBackup(deviceID, at); err != nil {
			log.Printf("failed to update device %s: %v", deviceID, err)
		}
	}
}

func (s *SyncService) notifyPeers(syncID, deviceID string, at time.Time) {
	if s.wsManager == nil {
		return
	}

	msg, err := websocket.NewMessage(websocket.TypeBackupUpdate, &websocket.BackupUpdatePayload{
		SyncID:    syncID,
		DeviceID:  deviceID,
		Timestamp: at,
	})
	if err != nil {
		log.Printf("failed to build backup notification: %v", err)
		return
	}

	if err := s.wsManager.BroadcastToSlot(syncID, msg, deviceID); err != nil {
		log.Printf("failed to broadcast backup notification: %v", err)
	}
}
