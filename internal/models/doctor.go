package models

import "time"

type Doctor struct {
	ID           uint64 `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// A doctor owns zero-or-more patients
	Patients []Patient `gorm:"foreignKey:DoctorID" json:"patients,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type SignupInput struct {
	Name     string `json:"name" binding:"required,nodigits"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
