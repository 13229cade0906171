package router_test

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/shoppy/pkg/shoppy/router"
)

const (
	ScreenSplash router.Screen = iota
	ScreenProducts
	ScreenProduct
)

type ProductsAction int

const (
	ProductsActionSelected ProductsAction = iota
	ProductsActionBack
)

type ProductsInput struct {
	Resume *ProductsResume
}

type ProductsResult struct {
	Action    ProductsAction
	ProductID int
	Resume    *ProductsResume
}

type ProductsResume struct {
	FocusedIndex int
}

type ProductInput struct {
	ProductID int
}

type ProductResult struct{}

type SplashResult struct{}

// Example demonstrates screen registration, a history reset and back navigation.
func Example() {
	r := router.New()

	productsCalls := 0

	r.Register(ScreenSplash, func(ctx context.Context, input any) (any, error) {
		fmt.Println("Splash: timer elapsed")
		return SplashResult{}, nil
	})

	r.Register(ScreenProducts, func(ctx context.Context, input any) (any, error) {
		in := input.(ProductsInput)
		productsCalls++

		if productsCalls == 1 {
			fmt.Println("Products: selecting product 3")
			return ProductsResult{
				Action:    ProductsActionSelected,
				ProductID: 3,
				Resume:    &ProductsResume{FocusedIndex: 2},
			}, nil
		}

		fmt.Printf("Products: restored focus %d, going back\n", in.Resume.FocusedIndex)
		return ProductsResult{Action: ProductsActionBack}, nil
	})

	r.Register(ScreenProduct, func(ctx context.Context, input any) (any, error) {
		in := input.(ProductInput)
		fmt.Printf("Product: showing %d, going back\n", in.ProductID)
		return ProductResult{}, nil
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenSplash:
			stack.Reset()
			return ScreenProducts, ProductsInput{}

		case ScreenProducts:
			res := result.(ProductsResult)
			if res.Action == ProductsActionSelected {
				stack.Push(from, ProductsInput{}, res.Resume)
				return ScreenProduct, ProductInput{ProductID: res.ProductID}
			}
			if entry := stack.Pop(); entry != nil {
				return entry.Screen, entry.Input
			}
			fmt.Println("History empty, exiting")
			return router.ScreenExit, nil

		case ScreenProduct:
			if entry := stack.Pop(); entry != nil {
				in := entry.Input.(ProductsInput)
				if entry.Resume != nil {
					in.Resume = entry.Resume.(*ProductsResume)
				}
				return entry.Screen, in
			}
		}
		return router.ScreenExit, nil
	})

	_ = r.Run(context.Background(), ScreenSplash, nil)

	// Output:
	// Splash: timer elapsed
	// Products: selecting product 3
	// Product: showing 3, going back
	// Products: restored focus 2, going back
	// History empty, exiting
}

// ExampleStack_Reset shows that a reset makes earlier screens unreachable.
func ExampleStack_Reset() {
	stack := router.NewStack()
	stack.Push(ScreenSplash, nil, nil)

	stack.Reset(router.StackEntry{Screen: ScreenProducts})

	fmt.Println(stack.Len(), stack.Contains(ScreenSplash))
	fmt.Println(stack.Pop().Screen == ScreenProducts, stack.Pop() == nil)

	// Output:
	// 1 false
	// true true
}
