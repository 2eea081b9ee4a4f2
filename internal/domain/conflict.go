package domain

// Resolution is the per-trip choice of which side's scalar fields win during
// merge. List data is never discarded by either choice.
type Resolution string

const (
	ResolutionLocal  Resolution = "local"
	ResolutionRemote Resolution = "remote"
)

// Conflict is one differing scalar field between the local and remote copy of
// a trip. Conflicts are ephemeral: they are produced during a check, shown to
// the user to collect a resolution map, and never persisted.
type Conflict struct {
	TripID      string `json:"trip_id"`
	TripTitle   string `json:"trip_title"`
	Field       string `json:"field"`
	LocalValue  string `json:"local_value"`
	RemoteValue string `json:"remote_value"`
}

const (
	ConflictFieldTitle       = "Title"
	ConflictFieldLocation    = "Location"
	ConflictFieldDates       = "Dates"
	ConflictFieldDescription = "Description"
)
