package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jcallahan/flock-backend/internal/httperr"
	"github.com/jcallahan/flock-backend/internal/models"
	"github.com/jcallahan/flock-backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository   repositories.UserRepository
	followRepository repositories.FollowRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, followRepo repositories.FollowRepository) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		followRepository: followRepo,
	}
}

// RegisterUserRoutes registers the authenticated profile routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("/all", h.ListUsers, auth)
	g.GET("/:id", h.GetUser, auth)
	g.PUT("/:id", h.UpdateUser, auth)
	g.DELETE("/:id", h.DeleteUser, auth)
}

// ListUsers returns every user. No pagination.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userRepository.GetUsers()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

func (h *UserHandler) GetUser(c echo.Context) error {
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
	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// UpdateUser applies a partial patch to the caller's own profile. Fields
// omitted from the request are left untouched.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseUserID(c, "id")
	if err != nil {
		return err
	}

	if getUserIDFromContext(c) != id {
		return httperr.Unauthorized("Unauthorized", "You are not authorized to edit this user.")
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return httperr.Validation("Invalid request payload.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.UserNotFound(id)
		}
		return err
	}

	applyUserPatch(user, &req)

	if err := h.userRepository.UpdateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.Conflict("User already exists.", "A user with this email or username is already registered.")
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user})
}

// DeleteUser removes the caller's own account along with every follow edge
// the account participates in.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseUserID(c, "id")
	if err != nil {
		return err
	}

	if getUserIDFromContext(c) != id {
		return httperr.Unauthorized("Unauthorized", "You are not authorized to delete this user.")
	}

	if _, err := h.userRepository.GetUserByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.UserNotFound(id)
		}
		return err
	}

	if err := h.followRepository.DeleteEdgesForUser(id); err != nil {
		return err
	}
	if err := h.userRepository.DeleteUser(id); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("Deleted user with id of %d.", id),
	})
}

func applyUserPatch(user *models.User, req *models.UpdateUserRequest) {
	if req.UserName != "" {
		user.UserName = req.UserName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.ProfilePicPath != "" {
		user.ProfilePicPath = req.ProfilePicPath
	}
	if req.Age != 0 {
		user.Age = req.Age
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
}

func parseUserID(c echo.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, httperr.Validation("Invalid user id.")
	}
	return uint(id), nil
}
