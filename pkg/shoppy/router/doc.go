// Package router provides screen navigation with explicit data flow.
//
// Each screen has explicit input/output types and a single transition
// function owns all routing logic. This keeps data flow traceable and avoids
// hidden global state.
//
// # Basic Usage
//
//	const (
//	    ScreenList router.Screen = iota
//	    ScreenDetail
//	)
//
//	r := router.New()
//
//	r.Register(ScreenList, func(ctx context.Context, input any) (any, error) {
//	    return listScreen(ctx, input.(ListInput))
//	})
//
//	r.Register(ScreenDetail, func(ctx context.Context, input any) (any, error) {
//	    return detailScreen(ctx, input.(DetailInput))
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenList:
//	        res := result.(ListResult)
//	        if res.Action == ActionSelected {
//	            stack.Push(from, ListInput{}, res.Resume)
//	            return ScreenDetail, DetailInput{ProductID: res.ProductID}
//	        }
//	    case ScreenDetail:
//	        if entry := stack.Pop(); entry != nil {
//	            return entry.Screen, entry.Input
//	        }
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.Run(ctx, ScreenList, ListInput{})
//
// # Resetting History
//
// A transition may replace the entire history with Stack.Reset. Screens that
// were on the stack before the reset can no longer be reached through Pop,
// which is how a splash screen hands over to the first real screen.
//
// # Resume State
//
// Screens can return resume state (like scroll position) that gets stored
// on the stack when navigating forward. When navigating back, this state
// is passed back to the screen via its input, allowing it to restore position.
package router
