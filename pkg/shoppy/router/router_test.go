package router_test

import (
	"context"
	"errors"
	"testing"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithoutTransition(t *testing.T) {
	err := router.New().Run(context.Background(), ScreenProducts, nil)
	assert.Error(t, err)
}

func TestRunUnregisteredScreen(t *testing.T) {
	r := router.New().OnTransition(func(router.Screen, any, *router.Stack) (router.Screen, any) {
		return router.ScreenExit, nil
	})

	err := r.Run(context.Background(), ScreenProduct, nil)
	assert.ErrorContains(t, err, "not registered")
}

func TestErrorsUseScreenNames(t *testing.T) {
	r := router.New().
		Names(func(s router.Screen) string {
			if s == ScreenProduct {
				return "product"
			}
			return "other"
		}).
		OnTransition(func(router.Screen, any, *router.Stack) (router.Screen, any) {
			return router.ScreenExit, nil
		})

	err := r.Run(context.Background(), ScreenProduct, nil)
	assert.EqualError(t, err, "router: screen product not registered")
}

func TestRunWrapsScreenError(t *testing.T) {
	boom := errors.New("boom")
	r := router.New().
		Register(ScreenProducts, func(context.Context, any) (any, error) { return nil, boom }).
		OnTransition(func(router.Screen, any, *router.Stack) (router.Screen, any) {
			t.Fatal("transition must not run after a screen error")
			return router.ScreenExit, nil
		})

	err := r.Run(context.Background(), ScreenProducts, nil)
	assert.ErrorIs(t, err, boom)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	runs := 0

	r := router.New().
		Register(ScreenProducts, func(context.Context, any) (any, error) {
			runs++
			cancel()
			return nil, nil
		}).
		OnTransition(func(router.Screen, any, *router.Stack) (router.Screen, any) {
			return ScreenProducts, nil
		})

	err := r.Run(ctx, ScreenProducts, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, runs)
}

func TestOnEnterSeesEveryScreen(t *testing.T) {
	var entered []router.Screen

	r := router.New().
		Register(ScreenSplash, func(context.Context, any) (any, error) { return nil, nil }).
		Register(ScreenProducts, func(context.Context, any) (any, error) { return nil, nil }).
		OnEnter(func(s router.Screen, _ any) { entered = append(entered, s) }).
		OnTransition(func(from router.Screen, _ any, _ *router.Stack) (router.Screen, any) {
			if from == ScreenSplash {
				return ScreenProducts, nil
			}
			return router.ScreenExit, nil
		})

	require.NoError(t, r.Run(context.Background(), ScreenSplash, nil))
	assert.Equal(t, []router.Screen{ScreenSplash, ScreenProducts}, entered)
}

func TestStackPushPopPeek(t *testing.T) {
	s := router.NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Peek())

	s.Push(ScreenProducts, ProductsInput{}, &ProductsResume{FocusedIndex: 4})
	s.Push(ScreenProduct, ProductInput{ProductID: 7}, nil)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, ScreenProduct, s.Peek().Screen)

	top := s.Pop()
	require.NotNil(t, top)
	assert.Equal(t, ProductInput{ProductID: 7}, top.Input)

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 4, entries[0].Resume.(*ProductsResume).FocusedIndex)

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestStackEntriesIsACopy(t *testing.T) {
	s := router.NewStack()
	s.Push(ScreenProducts, nil, nil)

	entries := s.Entries()
	entries[0].Screen = ScreenSplash

	assert.Equal(t, ScreenProducts, s.Peek().Screen)
}
