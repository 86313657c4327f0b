package runstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecordAndRecentRoundTrip(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	logp := -12.5
	pathLen := 42
	record := RunRecord{
		ID:             "run-1",
		Kind:           "viterbi",
		ModelName:      "cag-model",
		SequenceLength: 30,
		LogProbability: &logp,
		PathLength:     &pathLen,
		DurationMS:     7,
		CreatedAt:      time.Now(),
	}
	require.NoError(t, store.Record(context.Background(), record))

	recent, err := store.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, record.ID, recent[0].ID)
	require.Equal(t, record.Kind, recent[0].Kind)
	require.Equal(t, record.ModelName, recent[0].ModelName)
	require.Equal(t, record.SequenceLength, recent[0].SequenceLength)
	require.NotNil(t, recent[0].LogProbability)
	require.InDelta(t, logp, *recent[0].LogProbability, 1e-9)
	require.NotNil(t, recent[0].PathLength)
	require.Equal(t, pathLen, *recent[0].PathLength)
}

func TestRecentRespectsLimit(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Record(ctx, RunRecord{
			ID:             string(rune('a' + i)),
			Kind:           "bake",
			ModelName:      "m",
			SequenceLength: 0,
			DurationMS:     1,
			CreatedAt:      time.Now().Add(time.Duration(i) * time.Second),
		}))
	}
	recent, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
}
