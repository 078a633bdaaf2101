package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jcallahan/flock-backend/internal/httperr"
	"github.com/jcallahan/flock-backend/internal/models"
	"github.com/jcallahan/flock-backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles registration and token issuance
type AuthHandler struct {
	userRepository repositories.UserRepository
	jwtSecret      string
	tokenTTL       time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		jwtSecret:      jwtSecret,
		tokenTTL:       tokenTTL,
	}
}

// RegisterAuthRoutes registers the unauthenticated routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("", h.Register)
	g.POST("/token", h.IssueToken)
}

// Register creates a user and issues a token for it
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return httperr.Validation("Invalid request payload.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Check if a user with this email already exists
	if _, err := h.userRepository.GetUserByEmail(req.Email); err == nil {
		return httperr.Conflict("User already exists.", "A user with this email is already registered.")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		UserName:       req.UserName,
		Email:          req.Email,
		HashedPassword: string(hashedPassword),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Bio:            req.Bio,
		ProfilePicPath: req.ProfilePicPath,
		Age:            req.Age,
		Gender:         req.Gender,
	}

	if err := h.userRepository.CreateUser(user); err != nil {
		// The unique indexes on email and userName backstop the check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.Conflict("User already exists.", "A user with this email or username is already registered.")
		}
		return err
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"user":  echo.Map{"id": user.ID},
		"token": token,
	})
}

// IssueToken authenticates with email and password and returns a token.
// Lookup and password failures produce the same response so the caller cannot
// tell which credential was wrong.
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req models.TokenRequest

	if err := c.Bind(&req); err != nil {
		return httperr.Validation("Invalid request payload.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByEmail(req.Email)
	if err != nil {
		return httperr.Unauthorized("Login failed", "The provided credentials were invalid.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return httperr.Unauthorized("Login failed", "The provided credentials were invalid.")
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  echo.Map{"id": user.ID},
	})
}

// generateJWT generates a signed token for a given user
func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
