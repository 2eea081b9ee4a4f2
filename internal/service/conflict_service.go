package service

import (
	"errors"
	"fmt"
	"time"

	"wayfare-sync-server/internal/domain"
	"wayfare-sync-server/internal/repository"
	"wayfare-sync-server/pkg/syncid"
)

// Thresholds are tunable policy, not hard requirements. A remote copy older
// than the staleness window is assumed abandoned relative to the current
// session, so the blocking conflict prompt is skipped and the merge proceeds
// automatically. The description heuristic avoids flagging whitespace-level
// edits as conflicts.
const (
	DefaultStalenessWindow      = 15 * time.Minute
	DefaultDescriptionDiffChars = 5
)

type ConflictService struct {
	backupRepo      repository.BackupRepository
	stalenessWindow time.Duration
	descDiffChars   int
}

func NewConflictService(backupRepo repository.BackupRepository, stalenessWindow time.Duration, descDiffChars int) *ConflictService {
	if stalenessWindow <= 0 {
		stalenessWindow = DefaultStalenessWindow
	}
	if descDiffChars <= 0 {
		descDiffChars = DefaultDescriptionDiffChars
	}
	return &ConflictService{
		backupRepo:      backupRepo,
		stalenessWindow: stalenessWindow,
		descDiffChars:   descDiffChars,
	}
}

// Check fetches the remote backup for syncID and compares it with the local
// snapshot. No remote record means a first-time backup: zero conflicts and no
// remote data. A remote record older than the staleness window also yields
// zero conflicts, but the remote snapshot is still returned so the caller can
// merge list data without a user prompt.
func (s *ConflictService) Check(syncID string, local *domain.Snapshot) (*domain.ConflictCheckResponse, error) {
	if !syncid.Valid(syncID) {
		return nil, ErrInvalidSyncID
	}

	record, err := s.backupRepo.Load(syncID)
	if err != nil {
		if errors.Is(err, repository.ErrBackupNotFound) {
			return &domain.ConflictCheckResponse{Conflicts: []domain.Conflict{}}, nil
		}
		return nil, fmt.Errorf("failed to fetch remote backup: %w", err)
	}

	resp := &domain.ConflictCheckResponse{
		Conflicts:       []domain.Conflict{},
		Remote:          &record.Snapshot,
		RemoteTimestamp: &record.Timestamp,
	}

	if time.Since(record.Timestamp) > s.stalenessWindow {
		return resp, nil
	}

	resp.Conflicts = s.detectTripConflicts(local.Trips, record.Snapshot.Trips)
	return resp, nil
}

// detectTripConflicts scans only trips present locally; a trip that exists
// only remotely has nothing local to conflict with yet.
func (s *ConflictService) detectTripConflicts(local, remote []domain.Trip) []domain.Conflict {
	remoteByID := make(map[string]domain.Trip, len(remote))
	for _, t := range remote {
		remoteByID[t.ID] = t
	}

	conflicts := []domain.Conflict{}
	for _, localTrip := range local {
		remoteTrip, ok := remoteByID[localTrip.ID]
		if !ok {
			continue
		}

		if localTrip.Title != remoteTrip.Title {
			conflicts = append(conflicts, conflict(localTrip, domain.ConflictFieldTitle, localTrip.Title, remoteTrip.Title))
		}
		if localTrip.Location != remoteTrip.Location {
			conflicts = append(conflicts, conflict(localTrip, domain.ConflictFieldLocation, localTrip.Location, remoteTrip.Location))
		}
		if localTrip.StartDate != remoteTrip.StartDate || localTrip.EndDate != remoteTrip.EndDate {
			conflicts = append(conflicts, conflict(localTrip, domain.ConflictFieldDates,
				fmt.Sprintf("%s to %s", localTrip.StartDate, localTrip.EndDate),
				fmt.Sprintf("%s to %s", remoteTrip.StartDate, remoteTrip.EndDate)))
		}
		if diff := len(localTrip.Description) - len(remoteTrip.Description); diff > s.descDiffChars || diff < -s.descDiffChars {
			conflicts = append(conflicts, conflict(localTrip, domain.ConflictFieldDescription,
				fmt.Sprintf("%d characters", len(localTrip.Description)),
				fmt.Sprintf("%d characters", len(remoteTrip.Description))))
		}
	}

	return conflicts
}

func conflict(trip domain.Trip, field, localValue, remoteValue string) domain.Conflict {
	return domain.Conflict{
		TripID:      trip.ID,
		TripTitle:   trip.Title,
		Field:       field,
		LocalValue:  localValue,
		RemoteValue: remoteValue,
	}
}
