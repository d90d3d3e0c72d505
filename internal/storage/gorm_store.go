package storage

import (
	"errors"
	"fmt"

	"clinic-backend/internal/models"

	"gorm.io/gorm"
)

// GormStore backs both record types with the relational database.
// Transaction boundaries are commit-per-operation, gorm's default.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates/updates the doctors, patients and departments tables.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&models.Doctor{}, &models.Patient{}, &models.Department{})
}

// --- Patients ---

func (s *GormStore) CreatePatient(p *models.Patient) error {
	var existing models.Patient
	err := s.db.Where("id = ?", p.ID).First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(p).Error
}

func (s *GormStore) GetPatient(id string) (*models.Patient, error) {
	var p models.Patient
	if err := s.db.Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) ListPatients() ([]models.Patient, error) {
	var patients []models.Patient
	if err := s.db.Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (s *GormStore) ListPatientsSorted(field, order string) ([]models.Patient, error) {
	if err := CheckSort(field, order); err != nil {
		return nil, err
	}

	var patients []models.Patient
	// field and order both passed the allow-list, safe to interpolate
	if err := s.db.Order(fmt.Sprintf("%s %s", field, order)).Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (s *GormStore) UpdatePatient(id string, in models.UpdatePatientInput) (*models.Patient, error) {
	p, err := s.GetPatient(id)
	if err != nil {
		return nil, err
	}

	p.ApplyUpdate(in)

	if err := s.db.Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *GormStore) DeletePatient(id string) error {
	p, err := s.GetPatient(id)
	if err != nil {
		return err
	}
	return s.db.Delete(p).Error
}

// --- Doctors ---

func (s *GormStore) CreateDoctor(d *models.Doctor) error {
	var existing models.Doctor
	err := s.db.Where("email = ?", d.Email).First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(d).Error
}

func (s *GormStore) GetDoctor(id uint64) (*models.Doctor, error) {
	var d models.Doctor
	if err := s.db.Preload("Patients").First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *GormStore) GetDoctorByEmail(email string) (*models.Doctor, error) {
	var d models.Doctor
	if err := s.db.Where("email = ?", email).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *GormStore) ListDoctors() ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.db.Preload("Patients").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *GormStore) DeleteDoctor(id uint64) error {
	var d models.Doctor
	if err := s.db.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&d).Error
}
