package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AbeerUrRahim/invoice-expense-saas/internal/auth"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/models"
	"github.com/AbeerUrRahim/invoice-expense-saas/internal/repository"
)

type AuthHandler struct {
	users  *repository.UserRepository
	tokens *auth.TokenService
	logger *slog.Logger
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{
		users:  repository.NewUserRepository(db),
		tokens: tokens,
		logger: slog.Default().With("component", "auth"),
	}
}

type registerRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register creates the identity record with username=email. The
// requested role is accepted in the payload but not honored; everyone
// registers as a regular user. Store-level validation errors (duplicate
// email included) go back verbatim.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := h.users.EnsureRole(models.RoleUser)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		ID:           uuid.New(),
		Username:     req.Email,
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Roles:        []models.Role{*role},
	}
	if err := h.users.Create(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.logger.Info("user registered", "operation", "register", "email", req.Email)
	c.JSON(http.StatusOK, "User registered successfully")
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues the 60-minute bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.FindByEmail(req.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !auth.CheckPassword(user.PasswordHash, req.Password)) {
		c.JSON(http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		c.JSON(http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	h.logger.Info("user logged in", "operation", "login", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{"token": token})
}
