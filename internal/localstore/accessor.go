package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/jobboard/internal/logger"
	"github.com/jonathan/jobboard/internal/metrics"
	"github.com/jonathan/jobboard/internal/schemas"
	"github.com/sirupsen/logrus"
)

// Keys of the three persisted collections.
const (
	KeyJobs             = "jobs"
	KeyApplications     = "applications"
	KeyCandidateProfile = "candidateProfile"
)

// Accessor reads and writes JSON values over a Backend.
type Accessor struct {
	backend Backend
	log     logrus.FieldLogger
	metrics *metrics.Recorder
}

// NewAccessor wraps a backend. A nil logger discards output.
func NewAccessor(backend Backend, log logrus.FieldLogger) *Accessor {
	if log == nil {
		log = logger.Discard()
	}
	return &Accessor{backend: backend, log: log}
}

// SetRecorder attaches a metrics recorder counting malformed reads.
func (a *Accessor) SetRecorder(r *metrics.Recorder) {
	a.metrics = r
}

// Backend returns the underlying backend.
func (a *Accessor) Backend() Backend {
	return a.backend
}

// Get decodes the value under key into a fresh T. An absent key, a JSON
// null, or a malformed value all yield def with found=false; only backend
// failures are returned as errors.
func Get[T any](ctx context.Context, a *Accessor, key string, def T) (T, bool, error) {
	raw, ok, err := a.backend.Get(ctx, key)
	if err != nil {
		return def, false, err
	}
	if !ok || strings.TrimSpace(raw) == "null" {
		return def, false, nil
	}

	var v T
	if err := a.decode(key, raw, &v); err != nil {
		a.log.WithFields(logrus.Fields{"key": key, "error": err}).Warn("Ignoring malformed store data")
		a.metrics.MalformedRead(key)
		return def, false, nil
	}
	return v, true, nil
}

func (a *Accessor) decode(key, raw string, dst any) error {
	if schemas.Has(key) {
		if err := schemas.ValidateValue(key, raw); err != nil {
			return &MalformedStoreDataError{Key: key, Cause: err}
		}
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return &MalformedStoreDataError{Key: key, Cause: err}
	}
	return nil
}

// Set encodes value as JSON and replaces the value under key.
func (a *Accessor) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := a.backend.Set(ctx, key, string(data)); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"key": key, "bytes": len(data)}).Debug("Stored value")
	return nil
}

// Remove deletes key.
func (a *Accessor) Remove(ctx context.Context, key string) error {
	if err := a.backend.Remove(ctx, key); err != nil {
		return err
	}
	a.log.WithField("key", key).Debug("Removed value")
	return nil
}
