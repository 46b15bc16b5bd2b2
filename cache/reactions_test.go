package cache

import (
	"context"
	"testing"

	"Socialnet/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	require.NoError(t, Init(config.RedisConfig{Addr: mr.Addr()}))
	t.Cleanup(func() {
		if Client != nil {
			_ = Client.Close()
		}
		Client = nil
	})
	return mr
}

func TestHelpersAreNoOpsWithoutClient(t *testing.T) {
	require.NoError(t, Init(config.RedisConfig{}))
	require.False(t, Enabled())

	ctx := context.Background()
	key := ReactionCountsKey(ctx, 1)
	assert.Empty(t, key)
	_, ok := GetReactionCounts(ctx, key)
	assert.False(t, ok)

	SetReactionCounts(ctx, key, map[string]int64{"like": 1})
	InvalidateReactionCounts(ctx, 1, 2)
	InvalidateAllReactionCounts(ctx)

	assert.NoError(t, Delete(ctx, "anything"))
	assert.NoError(t, DeleteByPrefix(ctx, "post_reactions:"))
	_, err := Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestInitRejectsMalformedURL(t *testing.T) {
	err := Init(config.RedisConfig{URL: "not-a-redis-url"})
	require.Error(t, err)
	assert.False(t, Enabled())
}

func TestReactionCountsRoundTrip(t *testing.T) {
	mr := newTestRedis(t)
	ctx := context.Background()

	key := ReactionCountsKey(ctx, 42)
	assert.Equal(t, "post_reactions:0:42:0", key)

	_, ok := GetReactionCounts(ctx, key)
	assert.False(t, ok)

	SetReactionCounts(ctx, key, map[string]int64{"like": 2, "sad": 1})
	counts, ok := GetReactionCounts(ctx, key)
	require.True(t, ok)
	assert.Equal(t, map[string]int64{"like": 2, "sad": 1}, counts)
	assert.Equal(t, ReactionCountsTTL, mr.TTL(key))
}

func TestInvalidateMovesPostToNewKey(t *testing.T) {
	mr := newTestRedis(t)
	ctx := context.Background()

	key := ReactionCountsKey(ctx, 42)
	other := ReactionCountsKey(ctx, 7)
	SetReactionCounts(ctx, key, map[string]int64{"like": 1})
	SetReactionCounts(ctx, other, map[string]int64{"wow": 1})

	InvalidateReactionCounts(ctx, 42)

	assert.False(t, mr.Exists(key))
	fresh := ReactionCountsKey(ctx, 42)
	assert.NotEqual(t, key, fresh)
	_, ok := GetReactionCounts(ctx, fresh)
	assert.False(t, ok)

	// Other posts keep their entries.
	assert.Equal(t, other, ReactionCountsKey(ctx, 7))
	_, ok = GetReactionCounts(ctx, other)
	assert.True(t, ok)
}

// A reader that resolved its key before a write and stores after the
// invalidation must not be served to later readers.
func TestLateWriteAfterInvalidateIsNotServed(t *testing.T) {
	newTestRedis(t)
	ctx := context.Background()

	readerKey := ReactionCountsKey(ctx, 42)
	InvalidateReactionCounts(ctx, 42)
	SetReactionCounts(ctx, readerKey, map[string]int64{"like": 1})

	_, ok := GetReactionCounts(ctx, ReactionCountsKey(ctx, 42))
	assert.False(t, ok)
}

func TestInvalidateAllRetiresEveryPost(t *testing.T) {
	mr := newTestRedis(t)
	ctx := context.Background()

	a := ReactionCountsKey(ctx, 1)
	b := ReactionCountsKey(ctx, 2)
	SetReactionCounts(ctx, a, map[string]int64{"like": 1})
	SetReactionCounts(ctx, b, map[string]int64{"like": 1})

	InvalidateAllReactionCounts(ctx)

	assert.False(t, mr.Exists(a))
	assert.False(t, mr.Exists(b))
	for _, id := range []uint{1, 2} {
		_, ok := GetReactionCounts(ctx, ReactionCountsKey(ctx, id))
		assert.False(t, ok)
	}
	assert.Equal(t, "post_reactions:1:1:0", ReactionCountsKey(ctx, 1))
}
