package models

import (
	"strconv"
	"time"

	"github.com/wildcat/spartan/common/spypoint"
)

// CameraType marks records ingested from the SpyPoint vendor.
const CameraType = "spypoint"

// Camera is the internal camera record, keyed by CameraID. It is refreshed
// (upserted) on every run and never deleted by the pipeline.
type Camera struct {
	CameraID             string       `json:"camera_id"`
	Name                 string       `json:"name"`
	Type                 string       `json:"type"`
	UpdatedBy            string       `json:"updated_by"`
	LastUpdatedTimestamp time.Time    `json:"last_updated_timestamp"`
	RegistrationStatus   string       `json:"registration_status"`
	CreatedTimestamp     string       `json:"created_timestamp"`
	Usage                CameraUsage  `json:"usage"`
	StatusFile           string       `json:"status_file"`
	PhoneCarrier         string       `json:"phone_carrier"`
	AccountID            string       `json:"account_id"`
	ICCID                string       `json:"iccid"`
	HardwareVersion      string       `json:"hardware_version"`
	Location             string       `json:"location"`
	FirmwareVersion      string       `json:"firmware_version"`
	Status               CameraState  `json:"status"`
	PhotoCount           int64        `json:"photo_count"`
	SDCard               string       `json:"sd_card"`
	GPS                  GPS          `json:"gps"`
	Zip                  string       `json:"zip"`
}

// CameraState is the normalized hardware status snapshot.
type CameraState struct {
	LastTransmissionTimestamp int64     `json:"last_transmission_timestamp"`
	LastTransmission          time.Time `json:"last_transmission"`
	Memory                    float64   `json:"memory"`
	Temperature               float64   `json:"temperature"`
	MemoryLimit               float64   `json:"memory_limit"`
	Signal                    int64     `json:"signal"`
	BatteryLevel              int64     `json:"battery_level"`
}

// GPS holds the camera position as decimal-degree strings.
type GPS struct {
	LastUpdatedTimestamp time.Time `json:"last_updated_timestamp"`
	Longitude            string    `json:"longitude"`
	Latitude             string    `json:"latitude"`
}

// CameraUsage tracks photo quota counters.
type CameraUsage struct {
	StoredPhotos int64 `json:"stored_photos"`
	Photos       int64 `json:"photos"`
}

// CameraFromVendor maps the vendor camera detail to the internal record.
// Registration status and photo count come from the first subscription,
// battery level from the first battery tray, and GPS from the first
// coordinate fix (GeoJSON order: longitude, latitude).
func CameraFromVendor(v spypoint.Camera) *Camera {
	lastUpdate := parseVendorTime(v.Status.LastUpdate)

	var regStatus string
	var photoCount int64
	if len(v.Subscriptions) > 0 {
		regStatus = v.Subscriptions[0].PaymentStatus
		photoCount = v.Subscriptions[0].PhotoCount
	}

	var battery int64
	if len(v.Status.Batteries) > 0 {
		battery = v.Status.Batteries[0]
	}

	var lat, lng float64
	if len(v.Status.Coordinates) > 0 && len(v.Status.Coordinates[0].Position.Coordinates) == 2 {
		lng = v.Status.Coordinates[0].Position.Coordinates[0]
		lat = v.Status.Coordinates[0].Position.Coordinates[1]
	}

	return &Camera{
		CameraID:             v.ID,
		Name:                 v.Config.Name,
		Type:                 CameraType,
		LastUpdatedTimestamp: lastUpdate,
		RegistrationStatus:   regStatus,
		CreatedTimestamp:     v.ActivationDate,
		Usage: CameraUsage{
			StoredPhotos: photoCount,
			Photos:       photoCount,
		},
		AccountID:       v.User,
		ICCID:           v.UCID,
		HardwareVersion: v.Status.Version,
		Location:        v.Config.Name,
		FirmwareVersion: v.Status.ModemFirmware,
		Status: CameraState{
			LastTransmission: lastUpdate,
			Memory:           float64(v.Status.Memory.Used),
			Temperature:      float64(v.Status.Temperature.Value),
			MemoryLimit:      float64(v.Status.Memory.Size),
			Signal:           v.Status.Signal.Processed.Bar,
			BatteryLevel:     battery,
		},
		PhotoCount: photoCount,
		GPS: GPS{
			LastUpdatedTimestamp: lastUpdate,
			Latitude:             strconv.FormatFloat(lat, 'f', -1, 64),
			Longitude:            strconv.FormatFloat(lng, 'f', -1, 64),
		},
	}
}

// parseVendorTime parses the vendor's RFC3339 timestamps, falling back to
// the current time when the value is missing or malformed.
func parseVendorTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Now().UTC()
	}
	return t
}
