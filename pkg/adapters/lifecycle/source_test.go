package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fberthelot/akhet/pkg/core"
)

func TestSourceBridgesEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan core.Event, 1)
	source := NewSource(in)
	require.NoError(t, source.Start(ctx))

	in <- core.Event{Type: core.EventModify, Key: "goals", Timestamp: 1}

	select {
	case e := <-source.Events():
		require.Equal(t, "MODIFY goals", e.String())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for bridged event")
	}

	// Closing the input closes the output.
	close(in)
	select {
	case _, ok := <-source.Events():
		require.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("output channel not closed after input close")
	}
}

func TestSourceStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan core.Event)
	source := NewSource(in)
	require.NoError(t, source.Start(ctx))

	cancel()

	select {
	case _, ok := <-source.Events():
		require.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("output channel not closed after cancel")
	}
}
