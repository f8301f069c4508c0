package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_ObserveNoCollision(t *testing.T) {
	tracker := NewTracker()

	require.False(t, tracker.Observe(1, Tuple{Site: 1, Application: 1, Entity: 1}))
	require.False(t, tracker.Observe(1, Tuple{Site: 1, Application: 1, Entity: 1}))
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_ObserveCollision(t *testing.T) {
	tracker := NewTracker()

	require.False(t, tracker.Observe(1, Tuple{Site: 1, Application: 1, Entity: 1}))
	require.True(t, tracker.Observe(1, Tuple{Site: 2, Application: 1, Entity: 1}))
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_ObserveDistinctKeys(t *testing.T) {
	tracker := NewTracker()

	require.False(t, tracker.Observe(1, Tuple{Site: 1, Application: 1, Entity: 1}))
	require.False(t, tracker.Observe(2, Tuple{Site: 2, Application: 2, Entity: 2}))
	require.Equal(t, 0, tracker.Count())
}
