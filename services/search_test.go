package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usernames(summaries []UserSummary) []string {
	out := make([]string, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, s.Username)
	}
	return out
}

// TestSearchUsersOrdering tests exact, then prefix, then substring matches
func TestSearchUsersOrdering(t *testing.T) {
	db := newTestDB(t)
	viewer := createUser(t, db, "viewer", false)
	createUser(t, db, "balice", false)
	createUser(t, db, "alice2", false)
	createUser(t, db, "alice", false)
	createUser(t, db, "bobby", false)

	results, err := SearchUsers(db, viewer.ID, "ALICE", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "alice2", "balice"}, usernames(results))

	results, err = SearchUsers(db, viewer.ID, "alice", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "alice2"}, usernames(results))

	results, err = SearchUsers(db, viewer.ID, "", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "alice2", "balice", "bobby", "viewer"}, usernames(results))
}

func TestSearchUsersEscapesWildcards(t *testing.T) {
	db := newTestDB(t)
	viewer := createUser(t, db, "viewer", false)
	createUser(t, db, "under_score", false)
	createUser(t, db, "underxscore", false)

	results, err := SearchUsers(db, viewer.ID, "r_s", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"under_score"}, usernames(results))

	results, err = SearchUsers(db, viewer.ID, "%", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchUsersAnnotatesRelationship(t *testing.T) {
	db := newTestDB(t)
	viewer := createUser(t, db, "viewer", false)
	alice := createUser(t, db, "alice", false)
	private := createUser(t, db, "alicepriv", true)
	follow(t, db, viewer, alice)
	follow(t, db, viewer, private) // pending

	results, err := SearchUsers(db, viewer.ID, "alice", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].IsFollowing)
	assert.Equal(t, int64(1), results[0].FollowersCount)
	assert.False(t, results[1].IsFollowing)
	assert.Zero(t, results[1].FollowersCount)
}

func TestListFollowersAndFollowing(t *testing.T) {
	db := newTestDB(t)
	target := createUser(t, db, "target", false)
	alice := createUser(t, db, "alice", false)
	balice := createUser(t, db, "balice", false)
	alice2 := createUser(t, db, "alice2", false)
	private := createUser(t, db, "zprivate", true)

	follow(t, db, balice, target)
	follow(t, db, alice2, target)
	follow(t, db, alice, target)
	follow(t, db, target, alice)
	follow(t, db, target, private) // pending, never listed

	followers, err := ListFollowers(db, alice.ID, "target", DefaultPage(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "alice2", "balice"}, usernames(followers))

	followers, err = ListFollowers(db, alice.ID, "target", DefaultPage(), "lice2")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice2"}, usernames(followers))

	page, err := NewPage(1, 1)
	require.NoError(t, err)
	followers, err = ListFollowers(db, alice.ID, "target", page, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice2"}, usernames(followers))

	following, err := ListFollowing(db, alice.ID, "target", DefaultPage(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, usernames(following))

	_, err = ListFollowers(db, alice.ID, "nobody", DefaultPage(), "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
