package identity

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingLoader counts loader invocations.
type countingLoader struct {
	calls atomic.Int32
	delay time.Duration
	p     Provider
	err   error
}

func (l *countingLoader) load(context.Context) (Provider, error) {
	l.calls.Add(1)

	if l.delay > 0 {
		time.Sleep(l.delay)
	}

	return l.p, l.err
}

type stubProvider struct{ NullProvider }

func (stubProvider) Name() string { return "stub" }

func (stubProvider) Enforce(c *fiber.Ctx) error { return fiber.ErrUnauthorized }

func captureLogger() (zerolog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return zerolog.New(buf), buf
}

func warnLines(buf *bytes.Buffer) int {
	return strings.Count(buf.String(), `"level":"warn"`)
}

func TestResolverUnresolvedBeforeFirstCall(t *testing.T) {
	r := NewResolver((&countingLoader{p: stubProvider{}}).load)

	assert.Equal(t, StatusUnresolved, r.Status())
	assert.Nil(t, r.Provider())
	assert.IsType(t, NullProvider{}, r.Effective())
}

func TestResolverLoadAbsentIsSilent(t *testing.T) {
	logger, buf := captureLogger()
	loader := &countingLoader{err: ErrProviderLoadAbsent}
	r := NewResolver(loader.load, WithLogger(logger))

	for i := 0; i < 3; i++ {
		p, status := r.Resolve(context.Background())
		assert.Nil(t, p)
		assert.Equal(t, StatusUnavailable, status)
	}

	assert.EqualValues(t, 1, loader.calls.Load())
	assert.Empty(t, buf.String())
}

func TestResolverActiveIsCached(t *testing.T) {
	logger, buf := captureLogger()
	loader := &countingLoader{p: stubProvider{}}
	r := NewResolver(loader.load, WithLogger(logger))

	for i := 0; i < 10; i++ {
		p, status := r.Resolve(context.Background())
		require.NotNil(t, p)
		assert.Equal(t, "stub", p.Name())
		assert.Equal(t, StatusActive, status)
	}

	assert.EqualValues(t, 1, loader.calls.Load())
	assert.Equal(t, StatusActive, r.Status())
	assert.Equal(t, "stub", r.Effective().Name())
	assert.Empty(t, buf.String())
}

func TestResolverInitFailureWarnsOnce(t *testing.T) {
	tests := []struct {
		name string
		load Loader
	}{
		{
			name: "error",
			load: func(context.Context) (Provider, error) {
				return nil, errors.New("issuer unreachable")
			},
		},
		{
			name: "panic",
			load: func(context.Context) (Provider, error) {
				panic("nil config")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := captureLogger()
			r := NewResolver(tt.load, WithLogger(logger))

			assert.NotPanics(t, func() {
				for i := 0; i < 5; i++ {
					p, status := r.Resolve(context.Background())
					assert.Nil(t, p)
					assert.Equal(t, StatusUnavailable, status)
				}
			})

			assert.Equal(t, 1, warnLines(buf))
			assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
		})
	}
}

func TestResolverSingleFlight(t *testing.T) {
	const callers = 200

	for _, loader := range []*countingLoader{
		{p: stubProvider{}, delay: 20 * time.Millisecond},
		{err: errors.New("boom"), delay: 20 * time.Millisecond},
		{err: ErrProviderLoadAbsent, delay: 20 * time.Millisecond},
	} {
		logger, _ := captureLogger()
		r := NewResolver(loader.load, WithLogger(logger))

		var (
			wg       sync.WaitGroup
			start    = make(chan struct{})
			statuses = make([]Status, callers)
		)

		for i := 0; i < callers; i++ {
			wg.Add(1)

			go func(i int) {
				defer wg.Done()
				<-start

				_, statuses[i] = r.Resolve(context.Background())
			}(i)
		}

		close(start)
		wg.Wait()

		assert.EqualValues(t, 1, loader.calls.Load())

		for _, s := range statuses {
			assert.Equal(t, statuses[0], s)
		}

		assert.NotEqual(t, StatusUnresolved, statuses[0])
	}
}

func TestNewLoader(t *testing.T) {
	inner := errors.New("missing client id")
	factories := Factories{
		"ok":     func(context.Context) (Provider, error) { return stubProvider{}, nil },
		"broken": func(context.Context) (Provider, error) { return nil, inner },
		"empty":  func(context.Context) (Provider, error) { return nil, nil },
	}

	_, err := NewLoader("", factories)(context.Background())
	assert.ErrorIs(t, err, ErrProviderLoadAbsent)

	_, err = NewLoader("saml", factories)(context.Background())
	assert.ErrorIs(t, err, ErrProviderLoadAbsent)

	_, err = NewLoader("broken", factories)(context.Background())
	assert.ErrorIs(t, err, ErrProviderInitFailed)
	assert.ErrorIs(t, err, inner)

	_, err = NewLoader("empty", factories)(context.Background())
	assert.ErrorIs(t, err, ErrProviderInitFailed)

	p, err := NewLoader("ok", factories)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stub", p.Name())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "unresolved", StatusUnresolved.String())
	assert.Equal(t, "active", StatusActive.String())
	assert.Equal(t, "unavailable", StatusUnavailable.String())
}
