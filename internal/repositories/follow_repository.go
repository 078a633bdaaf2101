package repositories

import (
	"github.com/jcallahan/flock-backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow-edge data operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	// DeleteFollow removes the edge and reports whether it existed.
	DeleteFollow(followerID, followingID uint) (bool, error)
	IsFollowing(followerID, followingID uint) (bool, error)
	GetFollowers(userID uint) ([]models.UserSummary, error)
	GetFollowing(userID uint) ([]models.UserSummary, error)
	// DeleteEdgesForUser removes every edge the user participates in, on
	// either side. Called when the user is deleted.
	DeleteEdgesForUser(userID uint) error
}

// PostgresFollowRepository implements FollowRepository on GORM
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) CreateFollow(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

func (r *PostgresFollowRepository) DeleteFollow(followerID, followingID uint) (bool, error) {
	res := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND following_id = ?", followerID, followingID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresFollowRepository) GetFollowers(userID uint) ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := r.db.Model(&models.User{}).
		Select("id", "user_name").
		Where("id IN (?)",
			r.db.Table("follows").Select("follower_id").Where("following_id = ?", userID),
		).
		Scan(&users).Error
	return users, err
}

func (r *PostgresFollowRepository) GetFollowing(userID uint) ([]models.UserSummary, error) {
	var users []models.UserSummary
	err := r.db.Model(&models.User{}).
		Select("id", "user_name").
		Where("id IN (?)",
			r.db.Table("follows").Select("following_id").Where("follower_id = ?", userID),
		).
		Scan(&users).Error
	return users, err
}

func (r *PostgresFollowRepository) DeleteEdgesForUser(userID uint) error {
	return r.db.Where("follower_id = ? OR following_id = ?", userID, userID).Delete(&models.Follow{}).Error
}
