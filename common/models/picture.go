package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wildcat/spartan/common/spypoint"
)

// Picture is the internal photo record, keyed by PhotoID. It is created once
// per photo; the bucket/path fields are set during the upload sequence and
// not mutated afterwards.
type Picture struct {
	ID             uuid.UUID    `json:"id"`
	Date           time.Time    `json:"date"`
	Location       string       `json:"location"`
	Bucket         string       `json:"bucket"`
	Path           string       `json:"path"`
	ThumbPath      string       `json:"thumb_path"`
	CameraID       string       `json:"camera_id"`
	PictureDate    string       `json:"picture_date"`
	IsFavorite     bool         `json:"is_favorite"`
	PhotoID        string       `json:"photo_id"`
	AccountID      string       `json:"account_id"`
	LastUpdated    time.Time    `json:"last_updated"`
	Created        time.Time    `json:"created"`
	PhotoTimestamp string       `json:"photo_time_stamp"`
	PhotoURL       string       `json:"photo_url"`
	WeatherData    *WeatherData `json:"weather_data,omitempty"`
}

// WeatherData is optional enrichment filled in by a separate process,
// never by this pipeline.
type WeatherData struct {
	BarometricPressure float64       `json:"barometric_pressure"`
	SunPhase           string        `json:"sun_phase"`
	Temperature        int64         `json:"temperature"`
	WeatherLabel       string        `json:"weather_label"`
	ObservationTime    string        `json:"observation_time"`
	MoonPhase          string        `json:"moon_phase"`
	WindDirection      WindDirection `json:"wind_direction"`
}

// WindDirection describes wind at observation time.
type WindDirection struct {
	CardinalLabelShort string  `json:"cardinal_label_short"`
	Speed              float64 `json:"speed"`
	Degrees            int64   `json:"degrees"`
	CardinalLabel      string  `json:"cardinal_label"`
}

// PictureFromVendor maps a vendor photo to an unsaved Picture draft.
// Timestamps come from the photo's origin (capture) date; the download URL
// points at the large variant.
func PictureFromVendor(v spypoint.Photo) *Picture {
	picDate := parseVendorTime(v.OriginDate)

	return &Picture{
		Date:           picDate,
		CameraID:       v.Camera,
		PictureDate:    v.Date,
		PhotoID:        v.ID,
		LastUpdated:    picDate,
		Created:        picDate,
		PhotoTimestamp: v.OriginDate,
		PhotoURL:       v.Large.URL(),
	}
}

// StoragePath returns the object path for the full image, derived from the
// camera name and the picture's created timestamp:
// locations/<camera_name>/<month>-<year>/<id>.jpg
func (p *Picture) StoragePath(cameraName string) string {
	return fmt.Sprintf("%s/%s.jpg", p.basePath(cameraName), p.ID)
}

// ThumbStoragePath returns the sibling object path for the thumbnail.
func (p *Picture) ThumbStoragePath(cameraName string) string {
	return fmt.Sprintf("%s/%s-thumb.jpg", p.basePath(cameraName), p.ID)
}

func (p *Picture) basePath(cameraName string) string {
	return fmt.Sprintf("locations/%s/%d-%d", cameraName, int(p.Created.Month()), p.Created.Year())
}
