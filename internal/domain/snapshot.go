package domain

import "time"

// UserProfile is the profile record carried inside a snapshot. It has no
// per-trip recency concept: during merge the local side always wins
// field-wise, with remote values filling blanks only.
type UserProfile struct {
	DisplayName  string `json:"display_name,omitempty"`
	Email        string `json:"email,omitempty"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	HomeCurrency string `json:"home_currency,omitempty"`
	HomeAirport  string `json:"home_airport,omitempty"`
}

// Snapshot is the unit of synchronization: the complete application state of
// one device at a point in time. A snapshot is always whole-state, never
// partial.
type Snapshot struct {
	UserProfile  UserProfile   `json:"user_profile"`
	CustomEvents []CustomEvent `json:"custom_events,omitempty"`
	Trips        []Trip        `json:"trips" validate:"dive"`
}

// BackupRecord is the persisted form of a snapshot, tagged with the sync id
// it was stored under and its last-write instant. Each save fully replaces
// the prior record for that sync id.
type BackupRecord struct {
	SyncID    string    `json:"sync_id"`
	Snapshot  Snapshot  `json:"snapshot"`
	Timestamp time.Time `json:"timestamp"`
}

type SyncStatus struct {
	SyncID       string    `json:"sync_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastBackupAt time.Time `json:"last_backup_at"`
	LastDeviceID string    `json:"last_device_id,omitempty"`
	BackupCount  int64     `json:"backup_count"`
}

type BackupRequest struct {
	DeviceID    string                `json:"device_id"`
	Snapshot    Snapshot              `json:"snapshot"`
	Resolutions map[string]Resolution `json:"resolutions,omitempty"`
}

type BackupResponse struct {
	Snapshot  Snapshot  `json:"snapshot"`
	Timestamp time.Time `json:"timestamp"`
}

type ConflictCheckRequest struct {
	Snapshot Snapshot `json:"snapshot"`
}

type ConflictCheckResponse struct {
	Conflicts       []Conflict `json:"conflicts"`
	Remote          *Snapshot  `json:"remote,omitempty"`
	RemoteTimestamp *time.Time `json:"remote_timestamp,omitempty"`
}
