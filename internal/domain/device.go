package domain

import "time"

// Device is one installation of the app that has backed up under a user's
// sync id. Devices share no lock: the merge algorithm is what keeps their
// concurrent edits safe.
type Device struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Platform     string    `json:"platform"`
	AppVersion   string    `json:"app_version"`
	LastBackupAt time.Time `json:"last_backup_at"`
	CreatedAt    time.Time `json:"created_at"`
	IsRevoked    bool      `json:"is_revoked"`
}

type RegisterDeviceRequest struct {
	Name       string `json:"name" validate:"required"`
	Platform   string `json:"platform" validate:"required"`
	AppVersion string `json:"app_version" validate:"required"`
}

type DeviceResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Platform     string    `json:"platform"`
	LastBackupAt time.Time `json:"last_backup_at"`
	IsRevoked    bool      `json:"is_revoked"`
}
