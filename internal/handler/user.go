package handler

import (
	"net/http"
	"strings"

	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GetMe returns the current logged-in user (requires AuthMiddleware).
func GetMe(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not logged in!")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"phone":      user.Phone,
			"created_at": user.CreatedAt,
		},
	})
}

type updateProfileReq struct {
	Name  string `json:"name" binding:"required,max=64"`
	Phone string `json:"phone" binding:"required,max=32"`
}

// UpdateProfile updates the current user's name and phone.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not logged in!")
			return
		}

		var req updateProfileReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Please fill in all fields!")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Phone = strings.TrimSpace(req.Phone)
		if req.Name == "" || req.Phone == "" {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Please fill in all fields!")
			return
		}

		// phone stays unique across users
		var count int64
		if err := db.Model(&models.User{}).
			Where("phone = ? AND id <> ?", req.Phone, user.ID).
			Count(&count).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to update profile. Please try again.")
			return
		}
		if count > 0 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Phone number already registered!")
			return
		}

		if err := db.Model(user).Updates(map[string]interface{}{
			"name":  req.Name,
			"phone": req.Phone,
		}).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to update profile. Please try again.")
			return
		}

		user.Name = req.Name
		user.Phone = req.Phone

		util.Success(c, util.Response{
			"message": "Profile updated successfully!",
			"user": gin.H{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
				"phone": user.Phone,
			},
		})
	}
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=64"`
}

// ChangePassword changes the current user's password.
func ChangePassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "User not logged in!")
			return
		}

		var req changePasswordReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Please fill in all fields!")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Current password is incorrect!")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to change password. Please try again.")
			return
		}

		if err := db.Model(user).Update("password_hash", string(hash)).Error; err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to change password. Please try again.")
			return
		}

		util.Success(c, util.Response{
			"message": "Password changed successfully. Please log in again.",
		})
	}
}
