package models

import (
	"testing"
	"time"

	"github.com/wildcat/spartan/common/spypoint"
)

func TestCameraFromVendor_FullMapping(t *testing.T) {
	v := spypoint.Camera{
		ID:             "cam-1",
		User:           "account-9",
		UCID:           "8944500000000000000",
		ActivationDate: "2023-04-01T00:00:00Z",
		Config:         spypoint.CameraConfig{Name: "creek bend"},
		Status: spypoint.CameraStatus{
			Batteries:  []int64{87, 12},
			LastUpdate: "2024-06-15T08:30:00Z",
			Memory:     spypoint.Memory{Size: 32000, Used: 1200},
			Temperature: spypoint.Temperature{
				Unit:  "F",
				Value: 72,
			},
			ModemFirmware: "MF-2.1",
			Version:       "HW-3",
			Signal: spypoint.Signal{
				Processed: spypoint.ProcessedSignal{Bar: 4},
			},
			Coordinates: []spypoint.Coordinate{
				{Position: spypoint.Position{
					Type:        "Point",
					Coordinates: []float64{-93.2650, 44.9778},
				}},
			},
		},
		Subscriptions: []spypoint.Subscription{
			{PaymentStatus: "active", PhotoCount: 250},
			{PaymentStatus: "expired", PhotoCount: 0},
		},
	}

	c := CameraFromVendor(v)

	if c.CameraID != "cam-1" {
		t.Errorf("CameraID: got %q", c.CameraID)
	}
	if c.Type != CameraType {
		t.Errorf("Type: expected %q, got %q", CameraType, c.Type)
	}
	if c.Name != "creek bend" || c.Location != "creek bend" {
		t.Errorf("Name/Location: got %q / %q", c.Name, c.Location)
	}
	if c.AccountID != "account-9" {
		t.Errorf("AccountID: got %q", c.AccountID)
	}
	if c.ICCID != "8944500000000000000" {
		t.Errorf("ICCID: got %q", c.ICCID)
	}

	// First subscription wins
	if c.RegistrationStatus != "active" {
		t.Errorf("RegistrationStatus: got %q", c.RegistrationStatus)
	}
	if c.PhotoCount != 250 || c.Usage.Photos != 250 || c.Usage.StoredPhotos != 250 {
		t.Errorf("photo counts: got %d / %+v", c.PhotoCount, c.Usage)
	}

	// First battery tray wins
	if c.Status.BatteryLevel != 87 {
		t.Errorf("BatteryLevel: got %d", c.Status.BatteryLevel)
	}
	if c.Status.Signal != 4 {
		t.Errorf("Signal: got %d", c.Status.Signal)
	}
	if c.Status.Memory != 1200 || c.Status.MemoryLimit != 32000 {
		t.Errorf("Memory: got %v / %v", c.Status.Memory, c.Status.MemoryLimit)
	}

	// GeoJSON order is longitude first
	if c.GPS.Longitude != "-93.265" {
		t.Errorf("Longitude: got %q", c.GPS.Longitude)
	}
	if c.GPS.Latitude != "44.9778" {
		t.Errorf("Latitude: got %q", c.GPS.Latitude)
	}

	want := time.Date(2024, 6, 15, 8, 30, 0, 0, time.UTC)
	if !c.LastUpdatedTimestamp.Equal(want) {
		t.Errorf("LastUpdatedTimestamp: got %v", c.LastUpdatedTimestamp)
	}
	if !c.Status.LastTransmission.Equal(want) {
		t.Errorf("LastTransmission: got %v", c.Status.LastTransmission)
	}
}

func TestCameraFromVendor_EmptyCollections(t *testing.T) {
	c := CameraFromVendor(spypoint.Camera{ID: "cam-2"})

	if c.RegistrationStatus != "" {
		t.Errorf("RegistrationStatus: expected empty, got %q", c.RegistrationStatus)
	}
	if c.Status.BatteryLevel != 0 {
		t.Errorf("BatteryLevel: expected 0, got %d", c.Status.BatteryLevel)
	}
	if c.GPS.Latitude != "0" || c.GPS.Longitude != "0" {
		t.Errorf("GPS: expected zero coordinates, got %q / %q", c.GPS.Latitude, c.GPS.Longitude)
	}
}

func TestCameraFromVendor_MalformedTimestampFallsBack(t *testing.T) {
	before := time.Now().UTC()
	c := CameraFromVendor(spypoint.Camera{
		ID:     "cam-3",
		Status: spypoint.CameraStatus{LastUpdate: "garbage"},
	})
	after := time.Now().UTC()

	if c.LastUpdatedTimestamp.Before(before) || c.LastUpdatedTimestamp.After(after) {
		t.Errorf("expected fallback near now, got %v", c.LastUpdatedTimestamp)
	}
}
