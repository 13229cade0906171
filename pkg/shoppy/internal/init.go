// Package internal contains the SDL side of shoppy: window and renderer
// setup, input processing, fonts, text and shape drawing, image loading and
// the power button watcher.
// Types and functions in this package are not part of the public API.
package internal
