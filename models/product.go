package models

import (
	"time"
)

type Produit struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Nom              string    `gorm:"not null" json:"nom"`
	Description      *string   `json:"description"`
	CategoryID       uint      `gorm:"index" json:"category_id"`
	Prix             float64   `gorm:"not null" json:"prix"`
	Stock            *int      `json:"stock"`
	ImagePrincipale  *string   `json:"image_principale"`
	ImageSecondaire  *string   `json:"image_secondaire"`
	EstNouveau       bool      `gorm:"default:false" json:"est_nouveau"`
	Dimensions       *string   `json:"dimensions"`
	Matiere          *string   `json:"matiere"`
	Couleur          *string   `json:"couleur"`
	Poids            *float64  `json:"poids"`
	Origine          *string   `json:"origine"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Produit) TableName() string {
	return "produits"
}
