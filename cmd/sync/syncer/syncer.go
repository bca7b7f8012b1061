package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wildcat/spartan/common/models"
	"github.com/wildcat/spartan/common/spypoint"
	"github.com/wildcat/spartan/common/storage"
	"github.com/wildcat/spartan/common/thumbnail"
)

const notifyTitle = "Spartan Sync"

// API is the vendor client surface the syncer depends on
type API interface {
	Login(ctx context.Context) (*spypoint.Session, error)
	Cameras(ctx context.Context, s *spypoint.Session) ([]spypoint.Camera, error)
	Camera(ctx context.Context, s *spypoint.Session, cameraID string) (spypoint.Camera, error)
	Photos(ctx context.Context, s *spypoint.Session, cameraID string, limit int) ([]spypoint.Photo, error)
	Download(ctx context.Context, url string) ([]byte, error)
}

// ObjectStore is the storage surface the syncer depends on
type ObjectStore interface {
	Bucket() string
	Put(ctx context.Context, path string, data []byte, contentType string) error
}

// CameraStore persists camera records
type CameraStore interface {
	Upsert(ctx context.Context, camera *models.Camera) error
}

// PictureStore persists picture records
type PictureStore interface {
	Upsert(ctx context.Context, picture *models.Picture) error
	Exists(ctx context.Context, photoID string) (bool, error)
}

// ResultStore appends per-camera run summaries
type ResultStore interface {
	Insert(ctx context.Context, result *models.SyncResult) error
}

// Notifier posts best-effort failure notifications
type Notifier interface {
	Error(ctx context.Context, title, msg string)
	Send(ctx context.Context, msg string)
}

// DedupCache short-circuits the existence check for already-seen photos.
// Implementations must treat their own failures as "not seen".
type DedupCache interface {
	Seen(ctx context.Context, photoID string) bool
	Mark(ctx context.Context, photoID string)
}

// Logger is the logging interface the syncer depends on
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
}

// Config tunes one run of the pipeline
type Config struct {
	Days        int           // recency window in days
	Pace        time.Duration // fixed delay between vendor calls
	PhotoLimit  int           // photos requested per camera
	ThumbWidth  int
	ThumbHeight int
}

// Stats aggregates counters across all cameras in one run
type Stats struct {
	Cameras       int   // cameras processed to completion
	CamerasFailed int   // cameras skipped due to a per-camera failure
	Uploaded      int64
	Skipped       int64
	Errors        int64 // per-photo and per-camera recoverable failures
}

// Syncer runs the ingestion pipeline: one pass over every camera on the
// account, strictly sequential, with fixed pacing between vendor calls.
// It is the only layer that decides continue-vs-abort on failure.
type Syncer struct {
	api      API
	store    ObjectStore
	cameras  CameraStore
	pictures PictureStore
	results  ResultStore
	notifier Notifier
	dedup    DedupCache
	logger   Logger
	cfg      Config

	// Injectable for tests
	sleep func(time.Duration)
	now   func() time.Time
	newID func() uuid.UUID
}

// New creates a syncer. dedup may be nil-backed; it is only an optimization.
func New(api API, store ObjectStore, cameras CameraStore, pictures PictureStore,
	results ResultStore, notifier Notifier, dedup DedupCache, logger Logger, cfg Config) *Syncer {
	return &Syncer{
		api:      api,
		store:    store,
		cameras:  cameras,
		pictures: pictures,
		results:  results,
		notifier: notifier,
		dedup:    dedup,
		logger:   logger,
		cfg:      cfg,
		sleep:    time.Sleep,
		now:      time.Now,
		newID:    uuid.New,
	}
}

// Run executes one full ingestion pass. Only authentication and camera
// enumeration failures abort the run; everything downstream is recoverable
// per camera or per photo.
func (s *Syncer) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	session, err := s.api.Login(ctx)
	if err != nil {
		s.notifier.Error(ctx, notifyTitle, fmt.Sprintf("login failed: %v", err))
		return stats, fmt.Errorf("login: %w", err)
	}
	s.logger.Info("logged into spypoint")

	cameras, err := s.api.Cameras(ctx, session)
	if err != nil {
		s.notifier.Error(ctx, notifyTitle, fmt.Sprintf("camera listing failed: %v", err))
		return stats, fmt.Errorf("list cameras: %w", err)
	}
	s.logger.Info("cameras loaded", "count", len(cameras))

	for i, camera := range cameras {
		if i > 0 {
			s.sleep(s.cfg.Pace)
		}
		s.syncCamera(ctx, session, camera.ID, &stats)
	}

	s.logger.Info("run complete",
		"cameras", stats.Cameras,
		"cameras_failed", stats.CamerasFailed,
		"uploaded", stats.Uploaded,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
	)
	s.notifier.Send(ctx, fmt.Sprintf("sync complete: %d cameras (%d failed), %d uploaded, %d skipped, %d errors",
		stats.Cameras, stats.CamerasFailed, stats.Uploaded, stats.Skipped, stats.Errors))

	return stats, nil
}

// syncCamera processes a single camera. Failures before the photo loop skip
// the camera entirely; its sync result is not recorded in that case.
func (s *Syncer) syncCamera(ctx context.Context, session *spypoint.Session, cameraID string, stats *Stats) {
	detail, err := s.api.Camera(ctx, session, cameraID)
	if err != nil {
		s.cameraFailure(ctx, cameraID, "camera detail fetch failed", err, stats)
		return
	}

	camera := models.CameraFromVendor(detail)

	if err := s.cameras.Upsert(ctx, camera); err != nil {
		s.cameraFailure(ctx, cameraID, "camera upsert failed", err, stats)
		return
	}
	s.logger.Debug("camera saved", "camera_id", camera.CameraID, "name", camera.Name)

	// Fixed pacing before the next vendor call, to stay friendly with the
	// vendor's rate limits.
	s.sleep(s.cfg.Pace)

	photos, err := s.api.Photos(ctx, session, cameraID, s.cfg.PhotoLimit)
	if err != nil {
		s.cameraFailure(ctx, cameraID, "photo listing failed", err, stats)
		return
	}

	result := &models.SyncResult{
		Date:       s.now().UTC(),
		CameraID:   camera.CameraID,
		CameraName: camera.Name,
		Location:   camera.Location,
	}

	for _, photo := range photos {
		s.processPhoto(ctx, camera, photo, result)
	}

	stats.Cameras++
	stats.Uploaded += result.Uploaded
	stats.Skipped += result.Skipped
	stats.Errors += result.Errors

	// A lost sync result only costs reporting, never data.
	if err := s.results.Insert(ctx, result); err != nil {
		s.logger.Error("sync result insert failed", "camera_id", cameraID, "error", err)
		s.notifier.Error(ctx, notifyTitle, fmt.Sprintf("sync result insert failed for camera %s: %v", cameraID, err))
	}

	s.logger.Info("camera synced",
		"camera_id", camera.CameraID,
		"name", camera.Name,
		"uploaded", result.Uploaded,
		"skipped", result.Skipped,
		"errors", result.Errors,
	)
}

// processPhoto applies the skip/upload decision for one photo and runs the
// upload sequence when the photo is new.
func (s *Syncer) processPhoto(ctx context.Context, camera *models.Camera, photo spypoint.Photo, result *models.SyncResult) {
	picture := models.PictureFromVendor(photo)

	// Recency filter: photos older than the trailing window are left for
	// the vendor's archive, not ingested.
	cutoff := s.now().UTC().AddDate(0, 0, -s.cfg.Days)
	if picture.Date.Before(cutoff) {
		result.Skipped++
		return
	}

	if s.dedup != nil && s.dedup.Seen(ctx, picture.PhotoID) {
		result.Skipped++
		return
	}

	// An existence-check failure is treated as "not found": worst case the
	// photo is re-uploaded, and the upsert keeps that idempotent.
	exists, err := s.pictures.Exists(ctx, picture.PhotoID)
	if err != nil {
		s.logger.Warn("existence check failed, assuming new", "photo_id", picture.PhotoID, "error", err)
	}
	if exists {
		result.Skipped++
		if s.dedup != nil {
			s.dedup.Mark(ctx, picture.PhotoID)
		}
		return
	}

	picture.AccountID = camera.AccountID
	picture.Location = camera.Location

	if err := s.upload(ctx, camera, picture); err != nil {
		result.Errors++
		s.logger.Error("photo upload failed", "photo_id", picture.PhotoID, "camera_id", camera.CameraID, "error", err)
		s.notifier.Error(ctx, notifyTitle, fmt.Sprintf("photo %s upload failed: %v", picture.PhotoID, err))
		return
	}

	result.Uploaded++
	if s.dedup != nil {
		s.dedup.Mark(ctx, picture.PhotoID)
	}
}

// upload runs the download -> store full -> thumbnail -> store thumb ->
// persist record sequence. The record write comes last so that a persisted
// picture always has both assets in storage; a failure partway leaves at
// worst orphaned blobs, which a later run overwrites.
func (s *Syncer) upload(ctx context.Context, camera *models.Camera, picture *models.Picture) error {
	data, err := s.api.Download(ctx, picture.PhotoURL)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}

	picture.ID = s.newID()
	picture.Bucket = s.store.Bucket()
	picture.Path = picture.StoragePath(camera.Name)
	picture.ThumbPath = picture.ThumbStoragePath(camera.Name)

	if err := s.store.Put(ctx, picture.Path, data, storage.MimeJPEG); err != nil {
		return fmt.Errorf("store full image: %w", err)
	}

	thumb, err := thumbnail.Make(data, s.cfg.ThumbWidth, s.cfg.ThumbHeight)
	if err != nil {
		return fmt.Errorf("make thumbnail: %w", err)
	}

	if err := s.store.Put(ctx, picture.ThumbPath, thumb, storage.MimeJPEG); err != nil {
		return fmt.Errorf("store thumbnail: %w", err)
	}

	if err := s.pictures.Upsert(ctx, picture); err != nil {
		return fmt.Errorf("persist picture: %w", err)
	}

	return nil
}

// cameraFailure records a per-camera recoverable failure: the camera is
// skipped, the run continues, and no sync result is written for it.
func (s *Syncer) cameraFailure(ctx context.Context, cameraID, msg string, err error, stats *Stats) {
	stats.CamerasFailed++
	stats.Errors++
	s.logger.Error(msg, "camera_id", cameraID, "error", err)
	s.notifier.Error(ctx, notifyTitle, fmt.Sprintf("%s for camera %s: %v", msg, cameraID, err))
}
