package handlers

import (
	"errors"
	"net/http"

	"github.com/jcallahan/flock-backend/internal/httperr"
	"github.com/jcallahan/flock-backend/internal/models"
	"github.com/jcallahan/flock-backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FollowHandler handles the follower/following graph
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// RegisterFollowRoutes registers the relationship routes. Listings are public;
// mutations require the caller to own the path id.
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("/:id/followers", h.ListFollowers)
	g.GET("/:id/following", h.ListFollowing)
	g.POST("/:id/following", h.Follow, auth)
	g.DELETE("/:id/following/:followingId", h.Unfollow, auth)
}

// ListFollowers returns the users following the path user, projected to
// {id, userName}.
func (h *FollowHandler) ListFollowers(c echo.Context) error {
	id, err := parseUserID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.UserNotFound(id)
		}
		return err
	}

	followers, err := h.followRepository.GetFollowers(id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user": echo.Map{
			"id":        user.ID,
			"userName":  user.UserName,
			"followers": followers,
		},
	})
}

// ListFollowing is the mirror of ListFollowers.
func (h *FollowHandler) ListFollowing(c echo.Context) error {
	id, err := parseUserID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.UserNotFound(id)
		}
		return err
	}

	following, err := h.followRepository.GetFollowing(id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user": echo.Map{
			"id":        user.ID,
			"userName":  user.UserName,
			"following": following,
		},
	})
}

// Follow creates an edge from the path user (who must be the caller) to the
// user named in the request body.
func (h *FollowHandler) Follow(c echo.Context) error {
	id, err := parseUserID(c, "id")
	if err != nil {
		return err
	}

	if getUserIDFromContext(c) != id {
		return httperr.Unauthorized("Unauthorized", "You are not authorized to follow on behalf of this user.")
	}

	var req models.FollowRequest
	if err := c.Bind(&req); err != nil {
		return httperr.Validation("Invalid request payload.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.ID == id {
		return httperr.Validation("You cannot follow yourself.")
	}

	if _, err := h.userRepository.GetUserByID(req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.UserNotFound(req.ID)
		}
		return err
	}

	isFollowing, err := h.followRepository.IsFollowing(id, req.ID)
	if err != nil {
		return err
	}
	if isFollowing {
		return httperr.Conflict("Already following.", "You are already following this user.")
	}

	follow := &models.Follow{
		FollowerID:  id,
		FollowingID: req.ID,
	}

	if err := h.followRepository.CreateFollow(follow); err != nil {
		// Racing duplicate inserts hit the unique index instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.Conflict("Already following.", "You are already following this user.")
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"follow": follow})
}

// Unfollow removes the edge from the path user (who must be the caller) to
// :followingId. A missing edge is a soft success, not an error.
func (h *FollowHandler) Unfollow(c echo.Context) error {
	id, err := parseUserID(c, "id")
	if err != nil {
		return err
	}

	if getUserIDFromContext(c) != id {
		return httperr.Unauthorized("Unauthorized", "You are not authorized to unfollow on behalf of this user.")
	}

	followingID, err := parseUserID(c, "followingId")
	if err != nil {
		return err
	}

	deleted, err := h.followRepository.DeleteFollow(id, followingID)
	if err != nil {
		return err
	}
	if !deleted {
		return c.JSON(http.StatusOK, echo.Map{
			"err": []string{"You were not following this person."},
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"following": followingID})
}
