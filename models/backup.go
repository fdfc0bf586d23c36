package models

import "time"

// Backup is the portable snapshot of a single account: the profile, the full
// collection, and the moment the snapshot was taken. Both User and Collection
// must be present for a backup payload to be restorable.
type Backup struct {
	User       UserProfile     `json:"user"`
	Collection []CatalogRecord `json:"collection"`
	Timestamp  time.Time       `json:"timestamp"`
}
