// Package constants defines shared constants, types, and configuration values
// used throughout shoppy.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	BaseURLEnvVar      = "SHOPPY_BASE_URL"
	LogLevelEnvVar     = "SHOPPY_LOG_LEVEL"
	LocaleEnvVar       = "SHOPPY_LOCALE"
	PlatformEnvVar     = "PLATFORM"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonMenu
	VirtualButtonPower
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonMenu:
		return "Menu"
	case VirtualButtonPower:
		return "Power"
	default:
		return "Unassigned"
	}
}

// IsDirectional reports whether the button is part of the d-pad.
func (vb VirtualButton) IsDirectional() bool {
	return vb >= VirtualButtonUp && vb <= VirtualButtonRight
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultInputDelay          = 20 * time.Millisecond  // Debounce delay between input events
	DefaultRepeatDelay         = 300 * time.Millisecond // Hold time before a d-pad press repeats
	DefaultRepeatInterval      = 80 * time.Millisecond  // Interval between repeats while held
	DefaultFrameTimeout        = 16                     // Milliseconds to wait for an event per frame
	DefaultTitleSpacing  int32 = 5                      // Vertical spacing below title text
	HeaderHeight         int32 = 60                     // Height of the list screen header bar
	ScrollStep           int32 = 40                     // Pixels scrolled per d-pad press on the detail screen
	DetailImageMaxHeight int32 = 300                    // Tallest the detail image is drawn
)

// HeaderColor is the list screen header background, #2f2f2f.
const HeaderColor uint32 = 0x2f2f2f
