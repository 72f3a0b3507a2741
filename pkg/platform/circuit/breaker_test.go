package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type step struct {
	ok       bool
	wantOpen bool
}

func run(t *testing.T, b *Breaker, steps []step) {
	t.Helper()
	for i, s := range steps {
		if s.ok {
			b.RecordSuccess()
		} else {
			b.RecordFailure()
		}
		require.Equal(t, s.wantOpen, b.IsOpen(), "after step %d", i)
	}
}

func TestBreakerTransitions(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		steps []step
	}{
		{
			name:  "opens on the threshold failure",
			opts:  []Option{WithFailureThreshold(3)},
			steps: []step{{false, false}, {false, false}, {false, true}},
		},
		{
			name:  "success clears the failure run",
			opts:  []Option{WithFailureThreshold(2)},
			steps: []step{{false, false}, {true, false}, {false, false}, {false, true}},
		},
		{
			name:  "closes after enough successes",
			opts:  []Option{WithFailureThreshold(1), WithSuccessThreshold(2)},
			steps: []step{{false, true}, {true, true}, {true, false}},
		},
		{
			name: "failure while open restarts the success run",
			opts: []Option{WithFailureThreshold(1), WithSuccessThreshold(2)},
			steps: []step{
				{false, true}, {true, true}, {false, true},
				{true, true}, {true, false},
			},
		},
		{
			name:  "non-positive thresholds keep defaults",
			opts:  []Option{WithFailureThreshold(0), WithSuccessThreshold(-1)},
			steps: []step{{false, false}, {false, false}, {false, false}, {false, false}, {false, true}, {true, false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("audit-sink", tt.opts...)
			assert.Equal(t, StateClosed, b.State())
			run(t, b, tt.steps)
		})
	}
}

func TestBreakerReportsChanges(t *testing.T) {
	b := New("audit-sink", WithFailureThreshold(1))
	assert.Equal(t, "audit-sink", b.Name())

	useFallback, change := b.RecordFailure()
	assert.True(t, useFallback)
	assert.True(t, change.Opened)
	assert.Equal(t, "open", b.State().String())

	useFallback, change = b.RecordFailure()
	assert.True(t, useFallback)
	assert.False(t, change.Opened, "already open")

	usePrimary, change := b.RecordSuccess()
	assert.True(t, usePrimary)
	assert.True(t, change.Closed)

	usePrimary, change = b.RecordSuccess()
	assert.True(t, usePrimary)
	assert.False(t, change.Closed)
}

func TestBreakerReset(t *testing.T) {
	b := New("audit-sink", WithFailureThreshold(1), WithSuccessThreshold(3))
	b.RecordFailure()
	require.True(t, b.IsOpen())

	b.Reset()
	assert.Equal(t, StateClosed, b.State())

	useFallback, _ := b.RecordFailure()
	assert.True(t, useFallback, "counters cleared, threshold of one reopens")
}
