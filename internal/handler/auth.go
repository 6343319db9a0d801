package handler

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	DB          *gorm.DB
	JWTSecret   string
	JWTIssuer   string
	TokenTTL    time.Duration
	RememberTTL time.Duration
	BcryptCost  int
}

func NewAuthHandler(db *gorm.DB, jwtSecret, issuer string, ttlHours, rememberTTLHours, bcryptCost int) *AuthHandler {
	if ttlHours <= 0 {
		ttlHours = 24
	}
	if rememberTTLHours <= 0 {
		rememberTTLHours = 24 * 30
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthHandler{
		DB:          db,
		JWTSecret:   jwtSecret,
		JWTIssuer:   issuer,
		TokenTTL:    time.Duration(ttlHours) * time.Hour,
		RememberTTL: time.Duration(rememberTTLHours) * time.Hour,
		BcryptCost:  bcryptCost,
	}
}

type registerReq struct {
	Name            string `json:"name" binding:"required,max=64"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func userResp(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Please fill in all fields!")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)

	if !emailRe.MatchString(req.Email) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Please enter a valid email address!")
		return
	}

	// phone: at least 10 digits, ignoring separators
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, req.Phone)
	if len(digits) < 10 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Please enter a valid phone number!")
		return
	}

	if len(req.Password) < 6 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Password must be at least 6 characters!")
		return
	}
	if req.Password != req.ConfirmPassword {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Passwords do not match!")
		return
	}

	var count int64
	if err := h.DB.Model(&models.User{}).
		Where("LOWER(email) = ?", req.Email).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Registration failed. Please try again.")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Email already registered!")
		return
	}

	if err := h.DB.Model(&models.User{}).
		Where("phone = ?", req.Phone).
		Count(&count).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Registration failed. Please try again.")
		return
	}
	if count > 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Phone number already registered!")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.BcryptCost)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Registration failed. Please try again.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
	}
	if err := h.DB.Create(&user).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Registration failed. Please try again.")
		return
	}

	util.Success(c, util.Response{
		"message": "Registration successful!",
		"user":    userResp(&user),
	})
}

type loginReq struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Please fill in all fields!")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.DB.Where("LOWER(email) = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Invalid email or password!")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Login failed. Please try again.")
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "Invalid email or password!")
		return
	}

	now := time.Now()
	user.LastLoginAt = &now
	user.LastLoginIP = c.ClientIP()
	_ = h.DB.Save(&user).Error

	ttl := h.TokenTTL
	if req.RememberMe {
		ttl = h.RememberTTL
	}
	token, err := util.GenerateToken(h.JWTSecret, h.JWTIssuer, user.ID, ttl)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Login failed. Please try again.")
		return
	}

	util.Success(c, util.Response{
		"message": "Login successful!",
		"token":   token,
		"user":    userResp(&user),
	})
}
