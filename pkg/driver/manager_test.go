package driver

import (
	"errors"
	"image"
	"testing"

	"github.com/pion/screencapture/pkg/display"
	"github.com/pion/screencapture/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopBackend struct {
	cfg Config
}

func (b *nopBackend) Platform() platform.Platform            { return platform.Windows }
func (b *nopBackend) Enumerate() (display.Layout, error)     { return display.Layout{}, nil }
func (b *nopBackend) CapturePrimary() (*image.RGBA, error)   { return nil, nil }
func (b *nopBackend) CaptureByID(string) (*image.RGBA, error) { return nil, nil }
func (b *nopBackend) CaptureRegion(display.Geometry) (*image.RGBA, error) {
	return nil, nil
}
func (b *nopBackend) CaptureAll([]display.Geometry) (*image.RGBA, error) {
	return nil, nil
}

func newTestManager() *manager {
	return &manager{factories: make(map[platform.Platform]Factory)}
}

func TestManagerRegisterAndOpen(t *testing.T) {
	m := newTestManager()
	require.NoError(t, m.Register(platform.Windows, func(cfg Config) (Backend, error) {
		return &nopBackend{cfg: cfg}, nil
	}))

	b, err := m.Open(platform.Windows, Config{TempDir: "/tmp/x"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", b.(*nopBackend).cfg.TempDir)
	assert.Equal(t, []platform.Platform{platform.Windows}, m.Platforms())
}

func TestManagerRegisterTwice(t *testing.T) {
	m := newTestManager()
	f := func(Config) (Backend, error) { return &nopBackend{}, nil }
	require.NoError(t, m.Register(platform.Darwin, f))
	assert.Error(t, m.Register(platform.Darwin, f))
}

func TestManagerRegisterUnsupported(t *testing.T) {
	m := newTestManager()
	err := m.Register(platform.Unsupported, func(Config) (Backend, error) { return &nopBackend{}, nil })
	assert.Error(t, err)
}

func TestManagerOpenNotSupported(t *testing.T) {
	m := newTestManager()
	_, err := m.Open(platform.Unsupported, Config{})
	assert.True(t, errors.Is(err, ErrPlatformNotSupported))

	var perr *PlatformError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, platform.Unsupported, perr.Platform)
}

func TestCaptureErrorMessage(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &CaptureError{Platform: platform.Darwin, MonitorID: "2", Stderr: "could not create image\n", Err: cause}
	assert.Equal(t, "capture monitor 2 on darwin: exit status 1: could not create image", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsCaptureError(err))
	assert.False(t, IsCaptureError(cause))

	desktop := &CaptureError{Platform: platform.Windows, Err: cause}
	assert.Equal(t, "capture desktop on windows: exit status 1", desktop.Error())
}

func TestEnumerationErrorMessage(t *testing.T) {
	cause := errors.New("executable file not found in $PATH")
	err := &EnumerationError{Platform: platform.Darwin, Err: cause}
	assert.Equal(t, "enumerate monitors on darwin: executable file not found in $PATH", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestGetManager(t *testing.T) {
	m := GetManager()
	assert.Same(t, m, GetManager())

	_, err := Open(platform.Unsupported, Config{})
	assert.ErrorIs(t, err, ErrPlatformNotSupported)
	assert.Error(t, Register(platform.Unsupported, func(Config) (Backend, error) { return &nopBackend{}, nil }))
	assert.NotContains(t, m.Platforms(), platform.Unsupported)
}
