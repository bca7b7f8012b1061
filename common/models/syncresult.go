package models

import "time"

// SyncResult is the per-camera outcome summary for one run. Append-only:
// one row per camera per run.
type SyncResult struct {
	Date       time.Time `json:"date"`
	CameraID   string    `json:"camera_id"`
	CameraName string    `json:"camera_name"`
	Location   string    `json:"location"`
	Uploaded   int64     `json:"uploaded"`
	Skipped    int64     `json:"skipped"`
	Errors     int64     `json:"errors"`
}
