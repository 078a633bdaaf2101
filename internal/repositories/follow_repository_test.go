package repositories

import (
	"testing"

	"github.com/jcallahan/flock-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func summaryIDs(users []models.UserSummary) []uint {
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestFollowRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	carol := createTestUser(t, db, "carol", "carol@example.com")

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))
	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: carol.ID, FollowingID: bob.ID}))

	followers, err := repo.GetFollowers(bob.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{alice.ID, carol.ID}, summaryIDs(followers))

	following, err := repo.GetFollowing(alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, bob.ID, following[0].ID)
	assert.Equal(t, "bob", following[0].UserName)

	// The projection carries only id and userName; nothing else to assert on.
	isFollowing, err := repo.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, isFollowing)

	isFollowing, err = repo.IsFollowing(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, isFollowing)
}

func TestFollowRepository_DuplicateEdge(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))

	err := repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestFollowRepository_DeleteFollow(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))

	deleted, err := repo.DeleteFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Deleting a missing edge is not an error.
	deleted, err = repo.DeleteFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFollowRepository_DeleteEdgesForUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	carol := createTestUser(t, db, "carol", "carol@example.com")

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))
	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: carol.ID, FollowingID: alice.ID}))
	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: carol.ID, FollowingID: bob.ID}))

	require.NoError(t, repo.DeleteEdgesForUser(alice.ID))

	following, err := repo.GetFollowing(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, following)

	followers, err := repo.GetFollowers(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)

	// Unrelated edges survive.
	followers, err = repo.GetFollowers(bob.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{carol.ID}, summaryIDs(followers))
}
