package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentLifecycle(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice", false)
	bobby := createUser(t, db, "bobby", false)
	post := createPost(t, db, alice)

	comment, err := AddComment(db, bobby.ID, post.ID, "  great post ")
	require.NoError(t, err)
	assert.Equal(t, "great post", comment.Content)

	view, err := GetComment(db, alice.ID, post.ID, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "bobby", view.Owner.Username)

	_, err = UpdateComment(db, alice.ID, post.ID, comment.ID, "hijack")
	assert.ErrorIs(t, err, ErrCommentUserNotAllowed)
	assert.ErrorIs(t, DeleteComment(db, alice.ID, post.ID, comment.ID), ErrCommentUserNotAllowed)

	updated, err := UpdateComment(db, bobby.ID, post.ID, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	require.NoError(t, DeleteComment(db, bobby.ID, post.ID, comment.ID))
	_, err = GetComment(db, alice.ID, post.ID, comment.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

// TestCommentAddressedThroughWrongPost tests that a comment id paired with
// another post is reported missing.
func TestCommentAddressedThroughWrongPost(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice", false)
	first := createPost(t, db, alice)
	second := createPost(t, db, alice)

	comment, err := AddComment(db, alice.ID, first.ID, "on first")
	require.NoError(t, err)

	_, err = GetComment(db, alice.ID, second.ID, comment.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)
	_, err = UpdateComment(db, alice.ID, second.ID, comment.ID, "moved")
	assert.ErrorIs(t, err, ErrCommentNotFound)
	assert.ErrorIs(t, DeleteComment(db, alice.ID, second.ID, comment.ID), ErrCommentNotFound)
}

func TestListComments(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "alice", false)
	bobby := createUser(t, db, "bobby", false)
	post := createPost(t, db, alice)
	follow(t, db, alice, bobby)

	var ids []uint
	for _, author := range []uint{alice.ID, bobby.ID, bobby.ID} {
		c, err := AddComment(db, author, post.ID, "comment")
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	comments, err := ListComments(db, alice.ID, post.ID, DefaultPage())
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, ids[2], comments[0].ID)
	assert.Equal(t, ids[0], comments[2].ID)
	assert.Equal(t, "bobby", comments[0].Owner.Username)
	assert.True(t, comments[0].Owner.IsFollowing)
	assert.Equal(t, int64(1), comments[0].Owner.FollowersCount)
	assert.Equal(t, "alice", comments[2].Owner.Username)

	_, err = ListComments(db, alice.ID, post.ID+5, DefaultPage())
	assert.ErrorIs(t, err, ErrPostNotFound)
}
