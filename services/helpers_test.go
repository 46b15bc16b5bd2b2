package services

import (
	"context"
	"testing"

	"Socialnet/database"
	"Socialnet/models"
	"Socialnet/security"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "Secret1!"

var testCtx = context.Background()

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	security.Cost = bcrypt.MinCost

	db, err := database.OpenSQLite(":memory:?_foreign_keys=on", nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, private bool) *models.User {
	t.Helper()
	user, err := CreateUser(db, &models.User{
		Email:     username + "@example.com",
		Username:  username,
		Password:  testPassword,
		IsPrivate: private,
	})
	require.NoError(t, err)
	return user
}

func createPost(t *testing.T, db *gorm.DB, owner *models.User) *models.Post {
	t.Helper()
	post, err := CreatePost(db, owner.ID, "Hello world", "First post")
	require.NoError(t, err)
	return post
}

func follow(t *testing.T, db *gorm.DB, follower, followee *models.User) {
	t.Helper()
	_, err := Follow(db, follower.ID, followee.ID)
	require.NoError(t, err)
}
