package internal

import (
	"time"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/constants"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/view"
)

// DirectionalInput tracks the held d-pad button and handles repeat timing.
// Screens embed it so a held direction keeps moving focus or scrolling.
type DirectionalInput struct {
	held           constants.VirtualButton
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
}

// NewDirectionalInput creates a DirectionalInput with default timing.
func NewDirectionalInput() DirectionalInput {
	return DirectionalInput{
		repeatDelay:    constants.DefaultRepeatDelay,
		repeatInterval: constants.DefaultRepeatInterval,
		lastRepeatTime: time.Now(),
	}
}

// SetHeld updates the held state for a virtual button.
// Returns true if the button was a directional button.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	if !button.IsDirectional() {
		return false
	}

	switch {
	case held:
		d.held = button
		d.hasRepeated = false
		d.lastRepeatTime = time.Now()
	case d.held == button:
		d.held = constants.VirtualButtonUnassigned
		d.hasRepeated = false
	}
	return true
}

// IsHeld returns true if a direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held != constants.VirtualButtonUnassigned
}

// Update checks if a repeat should fire. Call it every frame.
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (d *DirectionalInput) Update() constants.VirtualButton {
	if !d.IsHeld() {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = false
		return constants.VirtualButtonUnassigned
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if time.Since(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = time.Now()
		d.hasRepeated = true
		return d.held
	}

	return constants.VirtualButtonUnassigned
}

// Reset clears the held direction and timing state.
func (d *DirectionalInput) Reset() {
	d.held = constants.VirtualButtonUnassigned
	d.hasRepeated = false
	d.lastRepeatTime = time.Now()
}

// MoveFor maps a d-pad button to a grid focus move.
func MoveFor(button constants.VirtualButton) (view.Move, bool) {
	switch button {
	case constants.VirtualButtonUp:
		return view.MoveUp, true
	case constants.VirtualButtonDown:
		return view.MoveDown, true
	case constants.VirtualButtonLeft:
		return view.MoveLeft, true
	case constants.VirtualButtonRight:
		return view.MoveRight, true
	default:
		return 0, false
	}
}
