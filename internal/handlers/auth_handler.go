package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-rental/internal/auth"
	"github.com/BruksfildServices01/studio-rental/internal/httperr"
	"github.com/BruksfildServices01/studio-rental/internal/models"
	"github.com/BruksfildServices01/studio-rental/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.TokenService

	// nil desliga a checagem de DNS do domínio do e-mail
	resolver validators.Resolver
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenService, resolver validators.Resolver) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, resolver: resolver}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if h.resolver != nil && !validators.EmailDomainResolves(c.Request.Context(), h.resolver, email) {
		httperr.Respond(c, httperr.ErrValidation("email", "invalid_email_domain"))
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Respond(c, err)
		return
	}
	if count > 0 {
		httperr.Respond(c, httperr.ErrValidation("email", "email_taken"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not create account.")
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         models.RoleCustomer,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Respond(c, httperr.ErrValidation("email", "email_taken"))
			return
		}
		httperr.Respond(c, err)
		return
	}

	token, err := h.tokens.Generate(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not create session.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.
		Where("email = ?", validators.NormalizeEmail(req.Email)).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.tokens.Generate(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not create session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// Me devolve o usuário autenticado.
func (h *AuthHandler) Me(c *gin.Context) {
	actor := actorFrom(c)

	var user models.User
	if err := h.db.First(&user, actor.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "user_not_found", "Authentication required.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
