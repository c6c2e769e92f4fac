// Package loop drives an effect/event program: a pure Update function
// decides what should happen next and an impure Interpret function makes
// it happen and reports back.
//
// Exactly one effect is in flight at a time. The next effect is never
// issued before the previous one has produced its event or stopped the
// loop, so the model needs no locking.
package loop

import "context"

// Program bundles the three functions that describe an application.
type Program[M, Ev, Ef any] struct {
	// Init returns the starting model and the first effect to perform.
	Init func() (M, Ef)

	// Update is the pure transition function.
	Update func(M, Ev) (M, Ef)

	// Interpret performs the effect. It returns the resulting event and
	// true to continue, or false to stop the loop.
	Interpret func(context.Context, Ef) (Ev, bool)
}

// Run calls Init once, then alternates Interpret and Update until
// Interpret reports no further event. It returns the last model. If ctx is
// cancelled between effects the loop stops with ctx.Err().
func Run[M, Ev, Ef any](ctx context.Context, p Program[M, Ev, Ef]) (M, error) {
	model, effect := p.Init()
	for {
		if err := ctx.Err(); err != nil {
			return model, err
		}
		event, more := p.Interpret(ctx, effect)
		if !more {
			return model, nil
		}
		model, effect = p.Update(model, event)
	}
}
