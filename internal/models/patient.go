package models

import (
	"math"
	"time"
)

// Health verdicts derived from BMI.
const (
	VerdictUnderweight = "Underweight"
	VerdictNormal      = "Normal"
	VerdictObese       = "Obese"
)

type Patient struct {
	ID       string  `gorm:"primaryKey;size:32" json:"id"`
	DoctorID uint64  `gorm:"not null;index" json:"doctor_id"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	City     string  `gorm:"size:100" json:"city"`
	Age      int     `gorm:"not null" json:"age"`
	Gender   string  `gorm:"size:10;not null" json:"gender"` // male, female, other
	Height   float64 `gorm:"not null" json:"height"`         // meters
	Weight   float64 `gorm:"not null" json:"weight"`         // kgs
	BMI      float64 `json:"bmi"`
	Verdict  string  `gorm:"size:20" json:"verdict"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Derive computes BMI (weight/height², 2 decimals) and the matching verdict.
func Derive(height, weight float64) (float64, string) {
	bmi := math.Round(weight/(height*height)*100) / 100
	switch {
	case bmi < 18.5:
		return bmi, VerdictUnderweight
	case bmi < 28:
		return bmi, VerdictNormal
	default:
		return bmi, VerdictObese
	}
}

// Recalculate refreshes BMI and verdict from the current height and weight.
// Must run on create and after any update that touched either input.
func (p *Patient) Recalculate() {
	p.BMI, p.Verdict = Derive(p.Height, p.Weight)
}

type CreatePatientInput struct {
	ID     string  `json:"id" binding:"required"`
	Name   string  `json:"name" binding:"required"`
	City   string  `json:"city" binding:"required"`
	Age    int     `json:"age" binding:"required,gt=0,lt=120"`
	Gender string  `json:"gender" binding:"required,oneof=male female other"`
	Height float64 `json:"height" binding:"required,gt=0"`
	Weight float64 `json:"weight" binding:"required,gt=0"`
}

// ToPatient builds the record owned by the authenticated doctor,
// with BMI and verdict already derived.
func (in CreatePatientInput) ToPatient(doctorID uint64) Patient {
	p := Patient{
		ID:       in.ID,
		DoctorID: doctorID,
		Name:     in.Name,
		City:     in.City,
		Age:      in.Age,
		Gender:   in.Gender,
		Height:   in.Height,
		Weight:   in.Weight,
	}
	p.Recalculate()
	return p
}

// UpdatePatientInput is a partial patch: nil means "leave the field alone".
type UpdatePatientInput struct {
	Name   *string  `json:"name"`
	City   *string  `json:"city"`
	Age    *int     `json:"age" binding:"omitempty,gt=0,lt=120"`
	Gender *string  `json:"gender" binding:"omitempty,oneof=male female other"`
	Height *float64 `json:"height" binding:"omitempty,gt=0"`
	Weight *float64 `json:"weight" binding:"omitempty,gt=0"`
}

// ApplyUpdate merges the supplied fields into the record. Each field is
// copied explicitly, no reflection. BMI/verdict are re-derived only when
// the patch touched height or weight, using the post-update values.
func (p *Patient) ApplyUpdate(in UpdatePatientInput) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.City != nil {
		p.City = *in.City
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.Height != nil {
		p.Height = *in.Height
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.Height != nil || in.Weight != nil {
		p.Recalculate()
	}
}
