package loop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter counts up to a target; the effect is the number to echo back.
func counter(target int, trace *[]string) Program[int, int, int] {
	return Program[int, int, int]{
		Init: func() (int, int) { return 0, 1 },
		Update: func(m, ev int) (int, int) {
			*trace = append(*trace, "update")
			return m + ev, ev
		},
		Interpret: func(_ context.Context, ef int) (int, bool) {
			*trace = append(*trace, "interpret")
			if len(*trace) >= target*2+1 {
				return 0, false
			}
			return ef, true
		},
	}
}

func TestRun_AlternatesUntilStop(t *testing.T) {
	var trace []string
	final, err := Run(context.Background(), counter(3, &trace))

	require.NoError(t, err)
	assert.Equal(t, 3, final)
	assert.Equal(t, []string{
		"interpret", "update",
		"interpret", "update",
		"interpret", "update",
		"interpret",
	}, trace)
}

func TestRun_StopsOnFirstEffect(t *testing.T) {
	updates := 0
	final, err := Run(context.Background(), Program[string, string, string]{
		Init:      func() (string, string) { return "init", "report" },
		Update:    func(m, ev string) (string, string) { updates++; return ev, "" },
		Interpret: func(context.Context, string) (string, bool) { return "", false },
	})

	require.NoError(t, err)
	assert.Equal(t, "init", final)
	assert.Zero(t, updates)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := Run(ctx, Program[int, int, int]{
		Init:   func() (int, int) { return 0, 0 },
		Update: func(m, ev int) (int, int) { return m + 1, 0 },
		Interpret: func(context.Context, int) (int, bool) {
			calls++
			if calls == 2 {
				cancel()
			}
			return 1, true
		},
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, calls)
}
