package entity

import "time"

// Tipos de encuesta soportados.
const (
	SurveyTypeNPS  = "nps"
	SurveyTypeCSAT = "csat"
)

// Survey encuesta asociada a un Seller; CreatedBy referencia al User que la creó.
type Survey struct {
	ID        int64
	SellerID  int64
	Name      string
	Type      string // nps, csat
	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// SurveyResponse respuesta individual de una encuesta (score 0..10).
type SurveyResponse struct {
	ID        int64
	SurveyID  int64
	Score     int
	Comment   *string
	CreatedAt time.Time
}
