package seed

import (
	"testing"

	"Socialnet/database"
	"Socialnet/models"
	"Socialnet/security"
	"Socialnet/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoadIsIdempotent(t *testing.T) {
	security.Cost = bcrypt.MinCost
	db, err := database.OpenSQLite(":memory:?_foreign_keys=on", nil)
	require.NoError(t, err)

	require.NoError(t, Load(db))
	require.NoError(t, Load(db))

	var usersCount, postsCount, followsCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&usersCount).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&postsCount).Error)
	require.NoError(t, db.Model(&models.Follow{}).Count(&followsCount).Error)
	assert.Equal(t, int64(len(users)), usersCount)
	assert.Equal(t, int64(len(posts)), postsCount)
	assert.Equal(t, int64(3), followsCount)

	steven, err := services.FindUserByUsername(db, "steven")
	require.NoError(t, err)
	martin, err := services.FindUserByUsername(db, "martin")
	require.NoError(t, err)

	pending, err := services.ListRequests(db, martin.ID, services.Incoming)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, steven.ID, pending[0].FollowerID)

	_, err = services.Authenticate(db, "steven@example.com", DemoPassword)
	assert.NoError(t, err)
}
