package shoppy

import (
	"context"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/constants"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/internal"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/view"
)

// SplashOptions configures the Splash screen.
type SplashOptions struct {
	Title    string
	Duration time.Duration // Zero uses view.DefaultSplashDuration
}

type splashState struct {
	painter *painter
	title   string
	timer   *view.SplashTimer
	result  *SplashResult
	err     error
}

// Splash shows the title centered on screen until its timer fires.
// Closing the window returns ErrCancelled; a cancelled ctx returns ctx.Err().
func Splash(ctx context.Context, options SplashOptions) (*SplashResult, error) {
	state := &splashState{
		painter: newPainter(nil),
		title:   options.Title,
		timer:   view.NewSplashTimer(options.Duration),
	}
	defer state.cleanup()

	state.timer.Start(time.Now())
	internal.GetInternalLogger().Debug("Splash shown", "title", state.title, "remaining", state.timer.Remaining(time.Now()))

	for state.result == nil && state.err == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		state.handleEvents()
		if state.timer.Fire(time.Now()) {
			state.result = &SplashResult{Elapsed: true}
		}
		state.render()
	}

	if state.err != nil {
		return nil, state.err
	}
	return state.result, nil
}

func (s *splashState) handleEvents() {
	for event := sdl.WaitEventTimeout(constants.DefaultFrameTimeout); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			s.err = ErrCancelled
			return
		}
	}
}

func (s *splashState) render() {
	s.painter.window.Clear()

	font := internal.Fonts.SplashFont
	width := s.painter.window.GetWidth()
	y := (s.painter.window.GetHeight() - internal.LineHeight(font)) / 2
	s.painter.text.Draw(s.title, font, s.painter.theme.AccentColor, 0, y, width, constants.TextAlignCenter)

	s.painter.window.Present()
}

func (s *splashState) cleanup() {
	s.timer.Cancel()
	s.painter.destroy()
}
