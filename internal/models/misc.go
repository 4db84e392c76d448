package models

import "time"

// Point represents a branch office where cars are picked up and returned.
type Point struct {
	ID          int64     `json:"id"`
	Address     string    `json:"address"`
	FullAddress string    `json:"full_address"`
	Latitude    string    `json:"latitude"`
	Longitude   string    `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPoint carries the fields needed to register a branch.
type NewPoint struct {
	Address     string `json:"address"`
	FullAddress string `json:"full_address"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
}

// PointPatch is a partial update; nil fields are left unchanged.
type PointPatch struct {
	Address     *string `json:"address,omitempty"`
	FullAddress *string `json:"full_address,omitempty"`
	Latitude    *string `json:"latitude,omitempty"`
	Longitude   *string `json:"longitude,omitempty"`
}

// Hijacking represents a theft or accident incident tied to a car and a client.
type Hijacking struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Closed      bool      `json:"closed"`
	UserID      int64     `json:"user_id"`
	CarID       int64     `json:"car_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewHijacking carries the fields needed to open an incident.
type NewHijacking struct {
	Description string `json:"description"`
	Closed      bool   `json:"closed"`
	UserID      int64  `json:"user_id"`
	CarID       int64  `json:"car_id"`
}

// HijackingPatch is a partial update; nil fields are left unchanged.
type HijackingPatch struct {
	Description *string `json:"description,omitempty"`
	Closed      *bool   `json:"closed,omitempty"`
	UserID      *int64  `json:"user_id,omitempty"`
	CarID       *int64  `json:"car_id,omitempty"`
}

// Comment represents a free-form note left about a client.
type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment carries the fields needed to leave a note.
type NewComment struct {
	UserID  int64  `json:"user_id"`
	Comment string `json:"comment"`
}

// CommentPatch is a partial update; nil fields are left unchanged.
type CommentPatch struct {
	UserID  *int64  `json:"user_id,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

// Backup size buckets, in bytes.
const (
	BackupSmallLimit  = 1 << 20   // 1 MiB
	BackupMediumLimit = 100 << 20 // 100 MiB
)

// Backup represents one recorded database backup run.
type Backup struct {
	ID         int64     `json:"id"`
	FileSize   int64     `json:"file_size"`
	SaveFolder string    `json:"save_folder"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewBackup carries the fields needed to record a backup run.
type NewBackup struct {
	FileSize   int64  `json:"file_size"`
	SaveFolder string `json:"save_folder"`
}

// BackupPatch is a partial update; nil fields are left unchanged.
type BackupPatch struct {
	FileSize   *int64  `json:"file_size,omitempty"`
	SaveFolder *string `json:"save_folder,omitempty"`
}

// SizeBucket classifies the backup as "small", "medium" or "large".
func (b Backup) SizeBucket() string {
	switch {
	case b.FileSize < BackupSmallLimit:
		return "small"
	case b.FileSize < BackupMediumLimit:
		return "medium"
	default:
		return "large"
	}
}
