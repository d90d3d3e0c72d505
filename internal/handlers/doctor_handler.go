package handlers

import (
	"errors"
	"net/http"

	"clinic-backend/internal/storage"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctors storage.DoctorStore
}

func NewDoctorHandler(doctors storage.DoctorStore) *DoctorHandler {
	return &DoctorHandler{doctors: doctors}
}

// List returns every registered doctor with their patients.
func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctors.ListDoctors()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to list doctors", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Doctors", doctors)
}

// Get fetches one doctor by numeric ID.
func (h *DoctorHandler) Get(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))

	doctor, err := h.doctors.GetDoctor(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Doctor not found", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to fetch doctor", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Doctor", doctor)
}

// Delete removes a doctor account.
func (h *DoctorHandler) Delete(c *gin.Context) {
	id := utils.StringToUint64(c.Param("id"))

	if err := h.doctors.DeleteDoctor(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Doctor not found", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to delete doctor", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
