package internal

import (
	"errors"
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PowerButtonConfig describes the firmware's power key and what it triggers.
type PowerButtonConfig struct {
	ButtonCode      uint16        // evdev key code, KEY_POWER is 116
	DevicePath      string        // e.g. /dev/input/event1
	ShortPressMax   time.Duration // Presses shorter than this suspend, longer ones shut down
	CoolDownTime    time.Duration // Events are ignored this long after an action
	SuspendScript   string
	ShutdownCommand string
}

// PowerButtonWatcher reads the power key from an input device on its own goroutine.
type PowerButtonWatcher struct {
	config     PowerButtonConfig
	device     *evdev.InputDevice
	wg         sync.WaitGroup
	stopped    *atomic.Bool
	pressedAt  *atomic.Int64
	lastAction *atomic.Int64
}

// StartPowerButtonWatcher opens the device and starts watching it.
func StartPowerButtonWatcher(config PowerButtonConfig) (*PowerButtonWatcher, error) {
	device, err := evdev.Open(config.DevicePath)
	if err != nil {
		return nil, err
	}

	w := &PowerButtonWatcher{
		config:     config,
		device:     device,
		stopped:    atomic.NewBool(false),
		pressedAt:  atomic.NewInt64(0),
		lastAction: atomic.NewInt64(0),
	}

	w.wg.Add(1)
	go w.run()

	GetInternalLogger().Debug("Watching power button", "device", config.DevicePath, "code", config.ButtonCode)
	return w, nil
}

func (w *PowerButtonWatcher) run() {
	defer w.wg.Done()

	for {
		event, err := w.device.ReadOne()
		if err != nil {
			if !w.stopped.Load() {
				GetInternalLogger().Error("Power button device read failed", "error", err)
			}
			return
		}

		if event.Type != evdev.EV_KEY || uint16(event.Code) != w.config.ButtonCode {
			continue
		}

		w.handle(event.Value, time.Now())
	}
}

func (w *PowerButtonWatcher) handle(value int32, now time.Time) {
	if now.Sub(time.Unix(0, w.lastAction.Load())) < w.config.CoolDownTime {
		return
	}

	switch value {
	case 1:
		w.pressedAt.Store(now.UnixNano())
	case 0:
		pressedAt := w.pressedAt.Swap(0)
		if pressedAt == 0 {
			return
		}
		held := now.Sub(time.Unix(0, pressedAt))
		w.lastAction.Store(now.UnixNano())

		if held < w.config.ShortPressMax {
			w.exec("suspend", w.config.SuspendScript)
		} else {
			w.exec("shutdown", w.config.ShutdownCommand)
		}
	}
}

func (w *PowerButtonWatcher) exec(action, command string) {
	if command == "" {
		return
	}
	GetInternalLogger().Info("Power button action", "action", action, "command", command)
	if err := exec.Command(command).Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			GetInternalLogger().Error("Power button command exited", "action", action, "code", exitErr.ExitCode())
			return
		}
		GetInternalLogger().Error("Power button command failed", "action", action, "error", err)
	}
}

// Stop closes the device, which ends the read loop, and waits for it.
func (w *PowerButtonWatcher) Stop() {
	if !w.stopped.CompareAndSwap(false, true) {
		return
	}
	_ = w.device.Close()
	w.wg.Wait()
}
