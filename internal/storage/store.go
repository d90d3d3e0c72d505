package storage

import (
	"errors"

	"clinic-backend/internal/models"
)

// Sentinel errors every backend maps its own failures onto.
// Handlers translate them to HTTP status codes.
var (
	ErrNotFound        = errors.New("record not found")
	ErrConflict        = errors.New("record already exists")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Sort parameters accepted by ListPatientsSorted.
var sortFields = map[string]bool{
	"height": true,
	"weight": true,
	"bmi":    true,
}

// CheckSort validates a requested sort against the allow-list.
func CheckSort(field, order string) error {
	if !sortFields[field] {
		return ErrInvalidArgument
	}
	if order != "asc" && order != "desc" {
		return ErrInvalidArgument
	}
	return nil
}

// PatientStore is the persistence contract for patient records.
// The relational and flat-file backends are interchangeable behind it.
type PatientStore interface {
	CreatePatient(p *models.Patient) error
	GetPatient(id string) (*models.Patient, error)
	ListPatients() ([]models.Patient, error)
	ListPatientsSorted(field, order string) ([]models.Patient, error)
	UpdatePatient(id string, in models.UpdatePatientInput) (*models.Patient, error)
	DeletePatient(id string) error
}

// DoctorStore is the persistence contract for doctor accounts.
type DoctorStore interface {
	CreateDoctor(d *models.Doctor) error
	GetDoctor(id uint64) (*models.Doctor, error)
	GetDoctorByEmail(email string) (*models.Doctor, error)
	ListDoctors() ([]models.Doctor, error)
	DeleteDoctor(id uint64) error
}
