package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

// Counts live under post_reactions:<epoch>:<post>:<generation>. A reaction
// write bumps the post's generation and a user deletion bumps the epoch, so a
// reader that resolved its key before the write can only fill a key that no
// later reader resolves. Orphaned keys expire with the TTL.
const (
	ReactionCountsPrefix = "post_reactions:"
	ReactionCountsTTL    = 5 * time.Minute

	reactionEpochKey = "post_reactions_epoch"
	reactionGenKey   = "post_reactions_gen:"
)

func reactionCountsKey(epoch string, postID uint, gen string) string {
	return fmt.Sprintf("%s%s:%d:%s", ReactionCountsPrefix, epoch, postID, gen)
}

func generationKey(postID uint) string {
	return fmt.Sprintf("%s%d", reactionGenKey, postID)
}

// ReactionCountsKey resolves the key holding postID's counts right now. Call
// it before reading the counts from the database. "" means caching is off.
func ReactionCountsKey(ctx context.Context, postID uint) string {
	if Client == nil {
		return ""
	}
	vals, err := Client.MGet(ctx, reactionEpochKey, generationKey(postID)).Result()
	if err != nil {
		log.Printf("[cache] resolve reaction counts key post=%d: %v", postID, err)
		return ""
	}
	return reactionCountsKey(versionOf(vals[0]), postID, versionOf(vals[1]))
}

func versionOf(v interface{}) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return "0"
}

// GetReactionCounts returns the counts stored under key. ok is false on a
// miss, a decode failure, or when caching is off.
func GetReactionCounts(ctx context.Context, key string) (map[string]int64, bool) {
	if Client == nil || key == "" {
		return nil, false
	}
	raw, err := Get(ctx, key)
	if err != nil {
		log.Printf("[cache] get %s: %v", key, err)
		return nil, false
	}
	if raw == "" {
		return nil, false
	}
	var counts map[string]int64
	if err := json.Unmarshal([]byte(raw), &counts); err != nil {
		return nil, false
	}
	return counts, true
}

func SetReactionCounts(ctx context.Context, key string, counts map[string]int64) {
	if Client == nil || key == "" {
		return
	}
	payload, err := json.Marshal(counts)
	if err != nil {
		return
	}
	if err := Set(ctx, key, payload, ReactionCountsTTL); err != nil {
		log.Printf("[cache] set %s: %v", key, err)
	}
}

// InvalidateReactionCounts moves each post to a new generation and drops the
// entry of the one it left.
func InvalidateReactionCounts(ctx context.Context, postIDs ...uint) {
	if Client == nil || len(postIDs) == 0 {
		return
	}
	epoch, err := Get(ctx, reactionEpochKey)
	if err != nil {
		log.Printf("[cache] invalidate reaction counts: %v", err)
		return
	}
	epoch = versionOf(epoch)

	stale := make([]string, 0, len(postIDs))
	for _, id := range postIDs {
		gen, err := Client.Incr(ctx, generationKey(id)).Result()
		if err != nil {
			log.Printf("[cache] invalidate reaction counts post=%d: %v", id, err)
			continue
		}
		stale = append(stale, reactionCountsKey(epoch, id, versionOf(fmt.Sprint(gen-1))))
	}
	if err := Delete(ctx, stale...); err != nil {
		log.Printf("[cache] drop stale reaction counts: %v", err)
	}
}

// InvalidateAllReactionCounts retires every cached count, used when a user
// deletion cascades through reactions on many posts.
func InvalidateAllReactionCounts(ctx context.Context) {
	if Client == nil {
		return
	}
	epoch, err := Client.Incr(ctx, reactionEpochKey).Result()
	if err != nil {
		log.Printf("[cache] invalidate all reaction counts: %v", err)
		return
	}
	old := fmt.Sprintf("%s%d:", ReactionCountsPrefix, epoch-1)
	if err := DeleteByPrefix(ctx, old); err != nil {
		log.Printf("[cache] drop stale reaction counts: %v", err)
	}
}
