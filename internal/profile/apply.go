package profile

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aidapov/povctl/internal/camera"
	"github.com/aidapov/povctl/internal/logging"
)

// ErrNotConfirmed is returned when the camera's echo did not match a value
// that was sent.
var ErrNotConfirmed = errors.New("camera did not confirm the new value")

// ApplyOptions configures Apply.
type ApplyOptions struct {
	// NoRollback skips the snapshot and leaves earlier settings in place
	// when a later one fails. Every setting is sent, even unchanged ones.
	NoRollback bool
}

// Result reports what Apply changed.
type Result struct {
	Applied   []Setting
	Unchanged []Setting
	Failed    *Setting
	Err       error

	// Snapshot holds the values read before anything was sent.
	Snapshot *Profile

	// RollbackAttempted is set when a setting failed after a snapshot was
	// taken. RollbackErr holds every restore that failed.
	RollbackAttempted bool
	RollbackSucceeded bool
	RollbackErr       error
}

// Success reports whether every setting was applied.
func (r *Result) Success() bool {
	return r.Err == nil
}

// Apply validates p, snapshots the affected parameters, then sends settings
// in order. The first failure stops the run and restores the snapshot
// values of every setting already sent, newest first.
func Apply(ctx context.Context, s *camera.Session, p *Profile, opts ApplyOptions) *Result {
	result := &Result{}

	if err := p.Validate(); err != nil {
		result.Err = err
		return result
	}

	if !opts.NoRollback {
		snapshot, err := Capture(ctx, s, p.Names()...)
		if err != nil {
			result.Err = fmt.Errorf("failed to snapshot current settings: %w", err)
			return result
		}
		result.Snapshot = snapshot
	}

	for _, setting := range p.Settings {
		if result.Snapshot != nil {
			if current, ok := result.Snapshot.Lookup(setting.Name); ok && current == setting.Value {
				result.Unchanged = append(result.Unchanged, setting)
				continue
			}
		}

		if err := send(ctx, s, setting); err != nil {
			failed := setting
			result.Failed = &failed
			result.Err = fmt.Errorf("%s: %w", setting.Name, err)
			break
		}

		logging.Debug("Profile setting applied",
			zap.String("parameter", setting.Name),
			zap.String("value", setting.Value))
		result.Applied = append(result.Applied, setting)
	}

	if result.Failed == nil || result.Snapshot == nil {
		return result
	}

	logging.Warn("Profile apply failed, restoring previous values",
		zap.String("parameter", result.Failed.Name),
		zap.Error(result.Err))

	result.RollbackAttempted = true
	touched := append(append([]Setting(nil), result.Applied...), *result.Failed)
	result.RollbackErr = restore(ctx, s, result.Snapshot, touched)
	result.RollbackSucceeded = result.RollbackErr == nil

	return result
}

func send(ctx context.Context, s *camera.Session, setting Setting) error {
	param, ok := camera.LookupParameter(setting.Name)
	if !ok {
		return fmt.Errorf("unknown parameter %q", setting.Name)
	}
	applied, err := param.Set(ctx, s, setting.Value)
	if err != nil {
		return err
	}
	if !applied {
		return ErrNotConfirmed
	}
	return nil
}

// restore writes the snapshot value of each touched setting in reverse order.
func restore(ctx context.Context, s *camera.Session, snapshot *Profile, touched []Setting) error {
	var errs []error
	for i := len(touched) - 1; i >= 0; i-- {
		name := touched[i].Name
		previous, ok := snapshot.Lookup(name)
		if !ok {
			continue
		}
		if err := send(ctx, s, Setting{Name: name, Value: previous}); err != nil {
			errs = append(errs, fmt.Errorf("restore %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
