package handlers

import (
	"errors"
	"net/http"
	"time"

	"clinic-backend/internal/models"
	"clinic-backend/internal/storage"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	doctors  storage.DoctorStore
	secret   string
	tokenTTL time.Duration
}

func NewAuthHandler(doctors storage.DoctorStore, secret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{doctors: doctors, secret: secret, tokenTTL: tokenTTL}
}

// Signup registers a new doctor account.
func (h *AuthHandler) Signup(c *gin.Context) {
	var input models.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to process password", nil)
		return
	}

	doctor := models.Doctor{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
	}

	if err := h.doctors.CreateDoctor(&doctor); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			utils.APIResponse(c, http.StatusBadRequest, false, "Email already registered", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to create doctor", nil)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Doctor created", gin.H{"id": doctor.ID})
}

// Login checks credentials and issues a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", nil)
		return
	}

	doctor, err := h.doctors.GetDoctorByEmail(input.Email)
	if err != nil {
		// Same message for unknown email and wrong password
		utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid credentials", nil)
		return
	}

	if !utils.CheckPassword(input.Password, doctor.PasswordHash) {
		utils.APIResponse(c, http.StatusUnauthorized, false, "Invalid credentials", nil)
		return
	}

	token, err := utils.GenerateToken(h.secret, doctor.ID, h.tokenTTL)
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to generate token", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login successful", gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}
