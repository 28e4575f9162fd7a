package geolocation

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sourceFunc func(ctx context.Context, opts service.PositionOptions, onSuccess func(service.Position), onError func(*service.PositionError))

func (f sourceFunc) GetCurrentPosition(ctx context.Context, opts service.PositionOptions, onSuccess func(service.Position), onError func(*service.PositionError)) {
	f(ctx, opts, onSuccess, onError)
}

var testOptions = service.PositionOptions{EnableHighAccuracy: true, Timeout: 200 * time.Millisecond}

func newTestAcquirer(t *testing.T, source service.PositionSource) (*Acquirer, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newAcquirer(source, testOptions, logger), &buf
}

func fixAt(lat, lng float64, ts time.Time) sourceFunc {
	return func(_ context.Context, _ service.PositionOptions, onSuccess func(service.Position), _ func(*service.PositionError)) {
		onSuccess(service.Position{Coords: service.Coordinates{Latitude: lat, Longitude: lng, Accuracy: 12}, Timestamp: ts})
	}
}

// freshFix stamps the fix when the source answers, like a real device does.
func freshFix(lat, lng float64) sourceFunc {
	return func(ctx context.Context, opts service.PositionOptions, onSuccess func(service.Position), onError func(*service.PositionError)) {
		fixAt(lat, lng, time.Now())(ctx, opts, onSuccess, onError)
	}
}

func failWith(code service.PositionErrorCode) sourceFunc {
	return func(_ context.Context, _ service.PositionOptions, _ func(service.Position), onError func(*service.PositionError)) {
		onError(&service.PositionError{Code: code, Message: "platform said no"})
	}
}

func TestAcquire_Success(t *testing.T) {
	var seen service.PositionOptions
	source := sourceFunc(func(ctx context.Context, opts service.PositionOptions, onSuccess func(service.Position), onError func(*service.PositionError)) {
		seen = opts
		fixAt(33.9, 35.5, time.Now())(ctx, opts, onSuccess, onError)
	})
	acquirer, _ := newTestAcquirer(t, source)

	result := acquirer.Acquire(context.Background())

	require.Nil(t, result.Err)
	require.NotNil(t, result.Fix)
	assert.Equal(t, entity.GeoPoint{Latitude: 33.9, Longitude: 35.5}, result.Fix.Point)
	assert.InDelta(t, 12.0, result.Fix.AccuracyM, 1e-9)
	assert.True(t, seen.EnableHighAccuracy)
	assert.Zero(t, seen.MaximumAge)
}

func TestAcquire_AsyncCallback(t *testing.T) {
	source := sourceFunc(func(_ context.Context, _ service.PositionOptions, onSuccess func(service.Position), _ func(*service.PositionError)) {
		go func() {
			time.Sleep(10 * time.Millisecond)
			onSuccess(service.Position{Coords: service.Coordinates{Latitude: 34, Longitude: 35.6}, Timestamp: time.Now()})
		}()
	})
	acquirer, _ := newTestAcquirer(t, source)

	point := acquirer.AcquireCurrentLocation(context.Background())

	require.NotNil(t, point)
	assert.InDelta(t, 34.0, point.Latitude, 1e-9)
}

func TestAcquire_PermissionDeniedResolvesToNil(t *testing.T) {
	acquirer, logs := newTestAcquirer(t, failWith(service.PositionPermissionDenied))

	result := acquirer.Acquire(context.Background())

	assert.Nil(t, result.Fix)
	assert.Nil(t, result.Point())
	require.NotNil(t, result.Err)
	assert.Equal(t, LocationPermissionDenied, result.Err.Kind)
	assert.Contains(t, logs.String(), string(LocationPermissionDenied))

	assert.Nil(t, acquirer.AcquireCurrentLocation(context.Background()))
}

func TestAcquire_ErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		source service.PositionSource
		want   Kind
	}{
		{name: "no source", source: nil, want: LocationUnavailable},
		{name: "unsupported platform", source: UnsupportedSource{}, want: LocationUnavailable},
		{name: "platform timeout", source: failWith(service.PositionTimeout), want: LocationTimeout},
		{name: "position unavailable", source: failWith(service.PositionUnavailable), want: LocationOtherFailure},
		{name: "unknown code", source: failWith(service.PositionErrorCode(42)), want: LocationOtherFailure},
		{name: "out of range fix", source: fixAt(123, 35, time.Now()), want: LocationOtherFailure},
		{name: "stale cached fix", source: fixAt(33.9, 35.5, time.Now().Add(-time.Hour)), want: LocationOtherFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acquirer, _ := newTestAcquirer(t, tt.source)

			result := acquirer.Acquire(context.Background())

			assert.Nil(t, result.Fix)
			require.NotNil(t, result.Err)
			assert.Equal(t, tt.want, result.Err.Kind)
		})
	}
}

func TestAcquire_TimesOutWhenSourceNeverAnswers(t *testing.T) {
	released := make(chan struct{})
	source := sourceFunc(func(ctx context.Context, _ service.PositionOptions, _ func(service.Position), _ func(*service.PositionError)) {
		<-ctx.Done()
		close(released)
	})
	acquirer, _ := newTestAcquirer(t, source)
	acquirer.opts.Timeout = 20 * time.Millisecond

	start := time.Now()
	result := acquirer.Acquire(context.Background())

	require.NotNil(t, result.Err)
	assert.Equal(t, LocationTimeout, result.Err.Kind)
	assert.Less(t, time.Since(start), time.Second)

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("source request context was not canceled after timeout")
	}
}

func TestAcquire_CallerCancellation(t *testing.T) {
	source := sourceFunc(func(ctx context.Context, _ service.PositionOptions, _ func(service.Position), _ func(*service.PositionError)) {
		<-ctx.Done()
	})
	acquirer, _ := newTestAcquirer(t, source)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	result := acquirer.Acquire(ctx)

	require.NotNil(t, result.Err)
	assert.Equal(t, LocationOtherFailure, result.Err.Kind)
	assert.True(t, errors.Is(result.Err, context.Canceled))
}

func TestAcquire_OnlyFirstCallbackCounts(t *testing.T) {
	source := sourceFunc(func(_ context.Context, _ service.PositionOptions, onSuccess func(service.Position), onError func(*service.PositionError)) {
		onError(&service.PositionError{Code: service.PositionPermissionDenied})
		onSuccess(service.Position{Coords: service.Coordinates{Latitude: 1, Longitude: 1}, Timestamp: time.Now()})
	})
	acquirer, _ := newTestAcquirer(t, source)

	result := acquirer.Acquire(context.Background())

	require.NotNil(t, result.Err)
	assert.Equal(t, LocationPermissionDenied, result.Err.Kind)
}

func TestAcquire_PanickingSourceIsContained(t *testing.T) {
	source := sourceFunc(func(context.Context, service.PositionOptions, func(service.Position), func(*service.PositionError)) {
		panic("driver crashed")
	})
	acquirer, _ := newTestAcquirer(t, source)

	result := acquirer.Acquire(context.Background())

	require.NotNil(t, result.Err)
	assert.Equal(t, LocationOtherFailure, result.Err.Kind)
}

func TestFromPosition_AcceptsRecentDeviceFix(t *testing.T) {
	acquirer, _ := newTestAcquirer(t, nil)

	result := acquirer.FromPosition(context.Background(), service.Position{
		Coords:    service.Coordinates{Latitude: 33.88, Longitude: 35.49},
		Timestamp: time.Now().Add(-50 * time.Millisecond),
	})

	require.Nil(t, result.Err)
	assert.InDelta(t, 33.88, result.Fix.Point.Latitude, 1e-9)
}

func TestFromError_MapsDeviceCodes(t *testing.T) {
	acquirer, _ := newTestAcquirer(t, nil)

	result := acquirer.FromError(context.Background(), &service.PositionError{Code: service.PositionTimeout})

	require.NotNil(t, result.Err)
	assert.Equal(t, LocationTimeout, result.Err.Kind)
}

func TestLocate_UnpacksResult(t *testing.T) {
	acquirer, _ := newTestAcquirer(t, freshFix(33.9, 35.5))

	fix, err := acquirer.Locate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, fix)
	assert.Equal(t, entity.VerdictUnknown, fix.Verdict)

	acquirer, _ = newTestAcquirer(t, failWith(service.PositionPermissionDenied))
	fix, err = acquirer.Locate(context.Background())
	assert.Nil(t, fix)

	locErr, ok := errors.AsType[*LocationError](err)
	require.True(t, ok)
	assert.Equal(t, LocationPermissionDenied, locErr.Kind)
}

func TestAcceptReport_RejectsStaleFix(t *testing.T) {
	acquirer, _ := newTestAcquirer(t, nil)

	fix, err := acquirer.AcceptReport(context.Background(), service.Position{
		Coords:    service.Coordinates{Latitude: 33.88, Longitude: 35.49},
		Timestamp: time.Now().Add(-time.Hour),
	})

	assert.Nil(t, fix)
	require.Error(t, err)
}

func TestRejectReport_NilError(t *testing.T) {
	acquirer, _ := newTestAcquirer(t, nil)

	err := acquirer.RejectReport(context.Background(), nil)

	locErr, ok := errors.AsType[*LocationError](err)
	require.True(t, ok)
	assert.Equal(t, LocationOtherFailure, locErr.Kind)
}

func TestNewAcquirer_HighAccuracyUnlessDisabled(t *testing.T) {
	partial := NewAcquirer(AcquirerParams{
		Config: &config.Config{Geolocation: &config.GeolocationConfig{Provider: "static", Timeout: time.Second}},
	})
	assert.True(t, partial.opts.EnableHighAccuracy)
	assert.Equal(t, time.Second, partial.opts.Timeout)

	off := false
	disabled := NewAcquirer(AcquirerParams{
		Config: &config.Config{Geolocation: &config.GeolocationConfig{EnableHighAccuracy: &off}},
	})
	assert.False(t, disabled.opts.EnableHighAccuracy)
}
