package models

import "time"

type Reclamation struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nom              string    `gorm:"not null" json:"nom"`
	ClientEmail      string    `gorm:"not null" json:"client_email"`
	Sujet            string    `gorm:"not null" json:"sujet"`
	Message          string    `gorm:"type:text;not null" json:"message"`
	IsRead           *bool     `json:"is_read"`
	DateCreation     time.Time `gorm:"column:date_creation;autoCreateTime" json:"date_creation"`
	DateModification time.Time `gorm:"column:date_modification;autoUpdateTime" json:"date_modification"`
}

func (Reclamation) TableName() string {
	return "reclamations"
}
