package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type StatutCommande string
type StatutPaiement string

const (
	// Order statuses (checkout to delivery)
	StatutCommandeEnAttente     StatutCommande = "en_attente"
	StatutCommandePayee         StatutCommande = "payee"
	StatutCommandeEnPreparation StatutCommande = "en_preparation"
	StatutCommandeExpediee      StatutCommande = "expediee"
	StatutCommandeLivree        StatutCommande = "livree"
	StatutCommandeAnnulee       StatutCommande = "annulee"
	StatutCommandeRemboursee    StatutCommande = "remboursee"

	// Payment statuses
	StatutPaiementEnAttente StatutPaiement = "en_attente"
	StatutPaiementPaye      StatutPaiement = "paye"
	StatutPaiementEchoue    StatutPaiement = "echoue"
	StatutPaiementRembourse StatutPaiement = "rembourse"
	StatutPaiementPartiel   StatutPaiement = "partiel"
)

type Commande struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	NumeroCommande string          `gorm:"column:numero_commande;index;not null" json:"numero_commande"`
	ClientName     string          `gorm:"not null" json:"client_name"`
	ClientEmail    string          `gorm:"not null" json:"client_email"`
	ClientPhone    string          `gorm:"not null" json:"client_phone"`
	ClientAddress  string          `gorm:"not null" json:"client_address"`
	ClientCity     *string         `json:"client_city"`
	ClientZipcode  *string         `json:"client_zipcode"`
	ClientCountry  *string         `json:"client_country"`
	SousTotal      decimal.Decimal `gorm:"type:numeric(12,2)" json:"sous_total"`
	FraisLivraison decimal.Decimal `gorm:"type:numeric(12,2)" json:"frais_livraison"`
	TotalCommande  decimal.Decimal `gorm:"type:numeric(12,2)" json:"total_commande"`
	// Items is a frozen snapshot taken at submission time. Catalog edits
	// after the fact never rewrite it.
	Items          JSONB          `gorm:"type:jsonb" json:"items"`
	StatutCommande StatutCommande `gorm:"type:VARCHAR(30);default:'en_attente'" json:"statut_commande"`
	StatutPaiement StatutPaiement `gorm:"type:VARCHAR(30);default:'en_attente'" json:"statut_paiement"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (Commande) TableName() string {
	return "commandes"
}

// SnapshotItem is one line of the Items payload as written by the current
// checkout pipeline. Older rows may carry other shapes; see the order
// reconstruction code for how those are read back.
type SnapshotItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       string  `json:"price"`
	PriceNumber float64 `json:"price_number"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
}
