package router

import (
	"context"
	"fmt"
)

// Screen identifies a registered screen.
type Screen int

// NameFunc turns a Screen into a readable name for logs and errors.
type NameFunc func(Screen) string

// ScreenFunc runs a screen until it completes.
// It takes an input and returns a screen-specific result.
// The context is cancelled when the router is asked to stop; screens
// must tie their in-flight work to it.
type ScreenFunc func(ctx context.Context, input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the next screen.
// It receives the screen that just completed, its result, and the navigation stack.
//
// Return (screen, input) to navigate to a new screen.
// Return stack.Pop() values to go back.
// Return (ScreenExit, nil) to exit the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// EnterFunc observes every screen the router is about to run.
type EnterFunc func(screen Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

// Router runs one screen at a time. Every screen result goes through a
// single transition function, which owns the history stack.
type Router struct {
	screens    map[Screen]ScreenFunc
	transition TransitionFunc
	enter      EnterFunc
	name       NameFunc
	stack      *Stack
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		name:    func(s Screen) string { return fmt.Sprintf("%d", s) },
		stack:   NewStack(),
	}
}

// Names sets how screens are named in errors.
func (r *Router) Names(fn NameFunc) *Router {
	if fn != nil {
		r.name = fn
	}
	return r
}

// Register adds a screen to the router.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// OnTransition sets the transition function that determines navigation flow.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// OnEnter sets an observer called before each screen runs.
func (r *Router) OnEnter(fn EnterFunc) *Router {
	r.enter = fn
	return r
}

// Run starts at start with input and keeps running screens until the
// transition returns ScreenExit, ctx is done, or a screen fails.
func (r *Router) Run(ctx context.Context, start Screen, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	next, nextInput := start, input
	for next != ScreenExit {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := r.runScreen(ctx, next, nextInput)
		if err != nil {
			return err
		}
		next, nextInput = r.transition(next, result, r.stack)
	}
	return nil
}

func (r *Router) runScreen(ctx context.Context, screen Screen, input any) (any, error) {
	fn, ok := r.screens[screen]
	if !ok {
		return nil, fmt.Errorf("router: screen %s not registered", r.name(screen))
	}

	if r.enter != nil {
		r.enter(screen, input)
	}

	result, err := fn(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("router: screen %s: %w", r.name(screen), err)
	}
	return result, nil
}

// Stack returns the navigation stack for use in transition functions.
func (r *Router) Stack() *Stack {
	return r.stack
}
