package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/catalog"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/router"
	"github.com/BrandonKowalski/shoppy/pkg/shoppy/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScreens struct {
	stack *router.Stack

	splash  []SplashResult
	lists   []ProductListResult
	details []ProductDetailResult

	calls      []string
	listInputs []ProductListInput
	splashSeen []bool
}

func (f *fakeScreens) Splash(_ context.Context, _ SplashInput) (SplashResult, error) {
	f.calls = append(f.calls, "splash")
	if len(f.splash) == 0 {
		return SplashResult{}, errors.New("splash called too often")
	}
	res := f.splash[0]
	f.splash = f.splash[1:]
	return res, nil
}

func (f *fakeScreens) ProductList(_ context.Context, in ProductListInput) (ProductListResult, error) {
	f.calls = append(f.calls, "list")
	f.listInputs = append(f.listInputs, in)
	if f.stack != nil {
		f.splashSeen = append(f.splashSeen, f.stack.Contains(ScreenSplash))
	}
	if len(f.lists) == 0 {
		return ProductListResult{}, errors.New("list called too often")
	}
	res := f.lists[0]
	f.lists = f.lists[1:]
	return res, nil
}

func (f *fakeScreens) ProductDetail(_ context.Context, in ProductDetailInput) (ProductDetailResult, error) {
	f.calls = append(f.calls, fmt.Sprintf("detail:%d", in.ProductID))
	if len(f.details) == 0 {
		return ProductDetailResult{}, errors.New("detail called too often")
	}
	res := f.details[0]
	f.details = f.details[1:]
	return res, nil
}

func TestRunBrowsesAndExits(t *testing.T) {
	resume := &view.ListResume{
		Mode:         view.ViewModeGrid,
		FocusedIndex: 2,
		ScrollY:      40,
		Products:     []catalog.Product{{ID: 1}, {ID: 2}, {ID: 3}},
	}
	screens := &fakeScreens{
		splash: []SplashResult{{Action: SplashActionElapsed}},
		lists: []ProductListResult{
			{Action: ListActionSelected, ProductID: 3, Resume: resume},
			{Action: ListActionBack},
		},
		details: []ProductDetailResult{{Action: DetailActionBack}},
	}

	r := NewRouter(screens, nil)
	screens.stack = r.Stack()

	require.NoError(t, r.Run(context.Background(), ScreenSplash, SplashInput{}))

	assert.Equal(t, []string{"splash", "list", "detail:3", "list"}, screens.calls)
	assert.Equal(t, []bool{false, false}, screens.splashSeen)

	require.Len(t, screens.listInputs, 2)
	assert.Nil(t, screens.listInputs[0].Resume, "fresh mount has nothing to restore")
	assert.Equal(t, resume, screens.listInputs[1].Resume)
	assert.Len(t, screens.listInputs[1].Resume.Products, 3, "loaded collection travels back with the resume")
	assert.True(t, r.Stack().IsEmpty())
}

func TestRunSplashQuitSkipsList(t *testing.T) {
	screens := &fakeScreens{splash: []SplashResult{{Action: SplashActionQuit}}}

	require.NoError(t, Run(context.Background(), screens, nil))
	assert.Equal(t, []string{"splash"}, screens.calls)
}

func TestRunDetailQuitExits(t *testing.T) {
	screens := &fakeScreens{
		splash:  []SplashResult{{Action: SplashActionElapsed}},
		lists:   []ProductListResult{{Action: ListActionSelected, ProductID: 7}},
		details: []ProductDetailResult{{Action: DetailActionQuit}},
	}

	require.NoError(t, Run(context.Background(), screens, nil))
	assert.Equal(t, []string{"splash", "list", "detail:7"}, screens.calls)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, &fakeScreens{}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransitionSplashResetsHistory(t *testing.T) {
	stack := router.NewStack()
	stack.Push(ScreenSplash, SplashInput{}, nil)

	next, input := Transition(ScreenSplash, SplashResult{Action: SplashActionElapsed}, stack)

	assert.Equal(t, ScreenProductList, next)
	assert.Equal(t, ProductListInput{}, input)
	assert.True(t, stack.IsEmpty())
}

func TestTransitionSelectPushesList(t *testing.T) {
	stack := router.NewStack()

	next, input := Transition(ScreenProductList, ProductListResult{Action: ListActionSelected, ProductID: 3}, stack)

	assert.Equal(t, ScreenProductDetail, next)
	assert.Equal(t, ProductDetailInput{ProductID: 3}, input)
	require.Equal(t, 1, stack.Len())
	assert.Equal(t, ScreenProductList, stack.Peek().Screen)

	next, _ = Transition(ScreenProductDetail, ProductDetailResult{Action: DetailActionBack}, stack)
	assert.Equal(t, ScreenProductList, next)

	next, _ = Transition(ScreenProductList, ProductListResult{Action: ListActionBack}, stack)
	assert.Equal(t, router.ScreenExit, next)
}

func TestScreenName(t *testing.T) {
	assert.Equal(t, "product_detail", ScreenName(ScreenProductDetail))
	assert.Equal(t, "exit", ScreenName(router.ScreenExit))
}
