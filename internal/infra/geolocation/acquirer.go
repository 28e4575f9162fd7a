package geolocation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

const defaultTimeout = 10 * time.Second

var _ service.LocationAcquirer = (*Acquirer)(nil)

var (
	errStaleFix           = errors.New("position fix older than the maximum age")
	errInvalidFix         = errors.New("position fix outside valid coordinate range")
	errNoSource           = errors.New("no position source configured")
	errSourceNeverReplied = errors.New("position source returned without a result")
)

// Result is the outcome of one acquisition. Exactly one of Fix or Err is set.
type Result struct {
	Fix *entity.LocationFix
	Err *LocationError
}

// Unpack returns the fix, or the failure as a plain error.
func (r Result) Unpack() (*entity.LocationFix, error) {
	if r.Err != nil {
		return nil, r.Err
	}

	return r.Fix, nil
}

// Point returns the acquired coordinates or nil.
func (r Result) Point() *entity.GeoPoint {
	if r.Fix == nil {
		return nil
	}

	return r.Fix.Point.Ptr()
}

// Acquirer issues single position requests against a PositionSource.
type Acquirer struct {
	source service.PositionSource
	opts   service.PositionOptions
	logger *slog.Logger
	now    func() time.Time
}

// AcquirerParams holds dependencies for Acquirer, injected by Fx
type AcquirerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Source service.PositionSource `optional:"true"`
}

// NewAcquirer builds an Acquirer with high accuracy, a bounded wait and no cached fixes by default.
func NewAcquirer(params AcquirerParams) *Acquirer {
	opts := service.PositionOptions{
		EnableHighAccuracy: true,
		Timeout:            defaultTimeout,
		MaximumAge:         0,
	}
	if cfg := params.Config.Geolocation; cfg != nil {
		if cfg.EnableHighAccuracy != nil {
			opts.EnableHighAccuracy = *cfg.EnableHighAccuracy
		}
		if cfg.Timeout > 0 {
			opts.Timeout = cfg.Timeout
		}
		if cfg.MaximumAge > 0 {
			opts.MaximumAge = cfg.MaximumAge
		}
	}

	return newAcquirer(params.Source, opts, params.Logger)
}

func newAcquirer(source service.PositionSource, opts service.PositionOptions, logger *slog.Logger) *Acquirer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Acquirer{
		source: source,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

// Options returns the options every request is issued with.
func (a *Acquirer) Options() service.PositionOptions {
	return a.opts
}

type outcome struct {
	position *service.Position
	err      *service.PositionError
}

// Acquire issues exactly one position request and waits for the first of: the
// source callback, the request timeout, or ctx being done. It never panics
// and never returns a Go error; failures are logged and carried in Result.Err.
func (a *Acquirer) Acquire(ctx context.Context) Result {
	if a.source == nil {
		return a.fail(ctx, newLocationError(LocationUnavailable, errNoSource))
	}

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	issuedAt := a.now()
	done := make(chan outcome, 1)
	var once sync.Once
	deliver := func(o outcome) {
		once.Do(func() { done <- o })
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				deliver(outcome{err: &service.PositionError{Message: "position source panicked"}})
			}
		}()
		a.source.GetCurrentPosition(reqCtx, a.opts,
			func(p service.Position) { deliver(outcome{position: &p}) },
			func(e *service.PositionError) {
				if e == nil {
					e = &service.PositionError{Message: errSourceNeverReplied.Error()}
				}
				deliver(outcome{err: e})
			},
		)
	}()

	timer := time.NewTimer(a.opts.Timeout)
	defer timer.Stop()

	select {
	case o := <-done:
		if o.err != nil {
			return a.fail(ctx, newLocationError(kindFromCode(o.err.Code), o.err))
		}

		return a.accept(ctx, *o.position, issuedAt)
	case <-timer.C:
		return a.fail(ctx, newLocationError(LocationTimeout, errors.Errorf("no fix within %s", a.opts.Timeout)))
	case <-ctx.Done():
		return a.fail(ctx, newLocationError(LocationOtherFailure, ctx.Err()))
	}
}

// Locate implements service.LocationAcquirer.
func (a *Acquirer) Locate(ctx context.Context) (*entity.LocationFix, error) {
	return a.Acquire(ctx).Unpack()
}

// AcceptReport implements service.LocationAcquirer.
func (a *Acquirer) AcceptReport(ctx context.Context, p service.Position) (*entity.LocationFix, error) {
	return a.FromPosition(ctx, p).Unpack()
}

// RejectReport implements service.LocationAcquirer.
func (a *Acquirer) RejectReport(ctx context.Context, e *service.PositionError) error {
	_, err := a.FromError(ctx, e).Unpack()

	return err
}

// AcquireCurrentLocation returns the current position or nil when none could be obtained.
func (a *Acquirer) AcquireCurrentLocation(ctx context.Context) *entity.GeoPoint {
	return a.Acquire(ctx).Point()
}

// FromPosition validates a position reported outside of Acquire, e.g. by a
// client device. The device's own request may have taken up to the timeout,
// so the freshness window starts that much earlier.
func (a *Acquirer) FromPosition(ctx context.Context, p service.Position) Result {
	return a.accept(ctx, p, a.now().Add(-a.opts.Timeout))
}

// FromError classifies a failure reported outside of Acquire.
func (a *Acquirer) FromError(ctx context.Context, e *service.PositionError) Result {
	if e == nil {
		e = &service.PositionError{Message: errSourceNeverReplied.Error()}
	}

	return a.fail(ctx, newLocationError(kindFromCode(e.Code), e))
}

func (a *Acquirer) accept(ctx context.Context, p service.Position, issuedAt time.Time) Result {
	point, ok := entity.NewGeoPoint(p.Coords.Latitude, p.Coords.Longitude)
	if !ok {
		return a.fail(ctx, newLocationError(LocationOtherFailure, errInvalidFix))
	}

	acquiredAt := p.Timestamp
	if acquiredAt.IsZero() {
		acquiredAt = a.now()
	}
	if acquiredAt.Before(issuedAt.Add(-a.opts.MaximumAge)) {
		return a.fail(ctx, newLocationError(LocationOtherFailure,
			errors.Wrapf(errStaleFix, "fix taken at %s", acquiredAt.Format(time.RFC3339))))
	}

	return Result{Fix: &entity.LocationFix{
		Point:      point,
		AccuracyM:  p.Coords.Accuracy,
		AcquiredAt: acquiredAt,
		Verdict:    entity.VerdictUnknown,
	}}
}

func (a *Acquirer) fail(ctx context.Context, locErr *LocationError) Result {
	a.logger.WarnContext(ctx, "Location acquisition failed",
		slog.String("kind", string(locErr.Kind)),
		slog.String("cause", locErr.Error()),
	)

	return Result{Err: locErr}
}
