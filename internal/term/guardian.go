// Package term owns the terminal input device: exclusive raw-mode
// acquisition with idempotent restoration, keystroke decoding, the
// whole-line fallback for non-interactive input, and the interrupt
// listener that restores the device on an external termination signal.
package term

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// ErrNotInteractive is returned by Acquire when the device is not a
// terminal and cannot be switched into unbuffered mode. Callers degrade
// to line mode on this error.
var ErrNotInteractive = errors.New("term: input device is not an interactive terminal")

// Device abstracts the switchable input device so the Guardian can be
// exercised against fakes in tests. No component outside this package
// touches the raw device directly.
type Device interface {
	// Interactive reports whether the device supports unbuffered mode.
	Interactive() bool
	// Raw switches the device into exclusive unbuffered mode.
	Raw() error
	// Restore returns the device to its prior mode.
	Restore() error
}

// ttyDevice is the production Device backed by a file descriptor.
type ttyDevice struct {
	fd   int
	prev *term.State
}

// Stdin returns the Device for the process's standard input.
func Stdin() Device {
	return &ttyDevice{fd: int(os.Stdin.Fd())}
}

func (d *ttyDevice) Interactive() bool {
	return term.IsTerminal(d.fd)
}

func (d *ttyDevice) Raw() error {
	state, err := term.MakeRaw(d.fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	d.prev = state
	return nil
}

func (d *ttyDevice) Restore() error {
	if d.prev == nil {
		return nil
	}
	return term.Restore(d.fd, d.prev)
}

// Guardian owns exclusive acquisition and release of the input device.
//
// Invariant: at most one live, unreleased Handle exists at any time.
type Guardian struct {
	device Device
	logger *zap.Logger

	mu     sync.Mutex
	handle *Handle
}

// NewGuardian creates a Guardian over the given device.
//
// Precondition: device and logger must be non-nil.
func NewGuardian(device Device, logger *zap.Logger) *Guardian {
	if device == nil || logger == nil {
		panic("term: NewGuardian called with nil device or logger")
	}
	return &Guardian{device: device, logger: logger}
}

// Acquire switches the device into unbuffered mode and returns the
// capability for releasing it. Returns ErrNotInteractive when the
// device cannot enter unbuffered mode at all, and an error if a handle
// is already outstanding.
//
// Postcondition: on success the device is in raw mode and the returned
// Handle is the only live one.
func (g *Guardian) Acquire() (*Handle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.handle != nil {
		return nil, errors.New("term: input device already acquired")
	}
	if !g.device.Interactive() {
		return nil, ErrNotInteractive
	}
	if err := g.device.Raw(); err != nil {
		return nil, err
	}

	h := &Handle{guardian: g}
	g.handle = h
	g.logger.Debug("input device acquired")
	return h, nil
}

// Handle is the capability representing exclusive ownership of the
// device's unbuffered mode. Release may be called from any goroutine
// and any number of times; exactly one call performs the restoration.
type Handle struct {
	guardian *Guardian
	release  sync.Once
}

// Release restores the device to its prior mode. Safe to invoke more
// than once: the normal exit path and the interrupt listener may both
// race to call it, and every call after the first is a no-op.
func (h *Handle) Release() {
	h.release.Do(func() {
		g := h.guardian
		if err := g.device.Restore(); err != nil {
			g.logger.Error("restoring input device", zap.Error(err))
		} else {
			g.logger.Debug("input device released")
		}
		g.mu.Lock()
		g.handle = nil
		g.mu.Unlock()
	})
}
