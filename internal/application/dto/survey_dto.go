package dto

import "time"

// CreateSurveyRequest entrada para crear una encuesta sobre un vendedor.
type CreateSurveyRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Type     string `json:"type" validate:"required,oneof=nps csat"`
	SellerID int64  `json:"seller_id" validate:"required"`
}

// AddSurveyResponseRequest registra una respuesta con score 0..10.
type AddSurveyResponseRequest struct {
	Score   int     `json:"score" validate:"min=0,max=10"`
	Comment *string `json:"comment" validate:"omitempty,max=500"`
}

// SurveyResponse salida de una encuesta.
type SurveyResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	SellerID  int64      `json:"seller_id"`
	CreatedBy int64      `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// SurveyStatsResponse agregado de respuestas: conteo y promedio de score.
type SurveyStatsResponse struct {
	SurveyID     int64  `json:"survey_id"`
	Responses    int64  `json:"responses"`
	AverageScore string `json:"average_score"` // decimal con dos posiciones
}
