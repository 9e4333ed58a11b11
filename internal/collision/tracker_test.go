package collision

import (
	"testing"

	"github.com/lophi-data/lophi/internal/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
}

func TestTracker_TrackName_Success(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackName("income", 0x1234567890abcdef)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"income"}, tracker.Names())

	err = tracker.TrackName("debt_ratio", 0xfedcba0987654321)
	require.NoError(t, err)
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"income", "debt_ratio"}, tracker.Names())
}

func TestTracker_TrackName_EmptyName(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackName("", 0x1234567890abcdef)

	require.ErrorIs(t, err, errs.ErrEmptyName)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_TrackName_Collision(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackName("income", 0x1234567890abcdef)
	require.NoError(t, err)
	require.False(t, tracker.HasCollision())

	// Same hash, different name: flagged, not an error.
	err = tracker.TrackName("income_2", 0x1234567890abcdef)
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"income", "income_2"}, tracker.Names())
}

func TestTracker_TrackName_Duplicate(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackName("income", 0x1234567890abcdef)
	require.NoError(t, err)

	err = tracker.TrackName("income", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrDuplicateName)
	require.False(t, tracker.HasCollision())
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_TrackHash_Success(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackHash(0x1111111111111111)
	require.NoError(t, err)

	err = tracker.TrackHash(0x2222222222222222)
	require.NoError(t, err)
}

func TestTracker_TrackHash_Collision(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackHash(0x1234567890abcdef)
	require.NoError(t, err)

	err = tracker.TrackHash(0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrHashCollision)
}

func TestTracker_Names_PreservesOrder(t *testing.T) {
	tracker := NewTracker()

	cols := []struct {
		name string
		hash uint64
	}{
		{"income", 0x0001},
		{"debt_ratio", 0x0002},
		{"age", 0x0003},
		{"utilization", 0x0004},
	}

	for _, c := range cols {
		require.NoError(t, tracker.TrackName(c.name, c.hash))
	}

	names := tracker.Names()
	require.Len(t, names, 4)
	require.Equal(t, "income", names[0])
	require.Equal(t, "debt_ratio", names[1])
	require.Equal(t, "age", names[2])
	require.Equal(t, "utilization", names[3])
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	_ = tracker.TrackName("income", 0x1234567890abcdef)
	_ = tracker.TrackName("debt_ratio", 0xfedcba0987654321)
	require.Equal(t, 2, tracker.Count())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())

	err := tracker.TrackName("age", 0x1111111111111111)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.Equal(t, []string{"age"}, tracker.Names())
}

func TestTracker_Reset_PreservesCapacity(t *testing.T) {
	tracker := NewTracker()

	for i := 0; i < 100; i++ {
		_ = tracker.TrackName("feature", uint64(i))
	}

	initialCap := cap(tracker.namesList)

	tracker.Reset()

	require.Empty(t, tracker.namesList)
	require.GreaterOrEqual(t, cap(tracker.namesList), initialCap)
}

func TestTracker_HasCollision_AfterCollision(t *testing.T) {
	tracker := NewTracker()

	_ = tracker.TrackName("income", 0x1234567890abcdef)
	require.False(t, tracker.HasCollision())

	_ = tracker.TrackName("income_2", 0x1234567890abcdef)
	require.True(t, tracker.HasCollision())

	_ = tracker.TrackName("debt_ratio", 0xfedcba0987654321)
	require.True(t, tracker.HasCollision())
}

func TestTracker_MultipleCollisions(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackName("f1", 0x0001)
	require.NoError(t, err)

	err = tracker.TrackName("f2", 0x0001)
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())

	err = tracker.TrackName("f3", 0x0002)
	require.NoError(t, err)
	err = tracker.TrackName("f4", 0x0002)
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())

	require.Equal(t, 4, tracker.Count())
}
