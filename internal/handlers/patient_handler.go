package handlers

import (
	"errors"
	"net/http"

	"clinic-backend/internal/mailer"
	"clinic-backend/internal/middleware"
	"clinic-backend/internal/models"
	"clinic-backend/internal/storage"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patients storage.PatientStore
	doctors  storage.DoctorStore
	mail     *mailer.Mailer
}

func NewPatientHandler(patients storage.PatientStore, doctors storage.DoctorStore, mail *mailer.Mailer) *PatientHandler {
	return &PatientHandler{patients: patients, doctors: doctors, mail: mail}
}

// View lists every patient record.
func (h *PatientHandler) View(c *gin.Context) {
	patients, err := h.patients.ListPatients()
	if err != nil {
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to list patients", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Patients", patients)
}

// Get fetches one patient by external ID (e.g. "P001").
func (h *PatientHandler) Get(c *gin.Context) {
	patient, err := h.patients.GetPatient(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to fetch patient", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Patient", patient)
}

// Sort lists patients ordered by height, weight or bmi.
func (h *PatientHandler) Sort(c *gin.Context) {
	sortBy := c.DefaultQuery("sort_by", "weight")
	order := c.DefaultQuery("order", "asc")

	patients, err := h.patients.ListPatientsSorted(sortBy, order)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			utils.APIResponse(c, http.StatusBadRequest, false, "Invalid sort field or order. Use sort_by=height|weight|bmi and order=asc|desc", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to list patients", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Sorted patients", patients)
}

// Create registers a new patient owned by the authenticated doctor and
// dispatches the notification email in the background.
func (h *PatientHandler) Create(c *gin.Context) {
	var input models.CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid patient data", err.Error())
		return
	}

	doctorID := middleware.DoctorID(c)
	patient := input.ToPatient(doctorID)

	if err := h.patients.CreatePatient(&patient); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			utils.APIResponse(c, http.StatusBadRequest, false, "Patient already exists", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to create patient", nil)
		return
	}

	// Fire-and-forget, the request does not wait for delivery
	if h.mail != nil {
		if doctor, err := h.doctors.GetDoctor(doctorID); err == nil {
			h.mail.NotifyPatientCreated(doctor.Email, patient.ID)
		}
	}

	utils.APIResponse(c, http.StatusCreated, true, "Patient created", patient)
}

// Edit applies a partial update; BMI and verdict are re-derived whenever
// the patch touched height or weight.
func (h *PatientHandler) Edit(c *gin.Context) {
	var input models.UpdatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid patient data", err.Error())
		return
	}

	patient, err := h.patients.UpdatePatient(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to update patient", nil)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Patient updated", patient)
}

// Delete removes a patient record.
func (h *PatientHandler) Delete(c *gin.Context) {
	if err := h.patients.DeletePatient(c.Param("id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.APIResponse(c, http.StatusNotFound, false, "Patient not found", nil)
			return
		}
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to delete patient", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
