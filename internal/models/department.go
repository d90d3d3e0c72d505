package models

type Department struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Location  string `gorm:"size:100" json:"location"`
	NoDoctors int    `gorm:"not null" json:"no_of_doctors"`
}
