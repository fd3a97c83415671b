package repository

import (
	"github.com/shopspring/decimal"

	"github.com/voxly/voxly-api/internal/domain/entity"
)

// SurveyStats agregado de respuestas de una encuesta.
type SurveyStats struct {
	Responses    int64
	AverageScore decimal.Decimal
}

// SurveyRepository define el puerto de persistencia para Survey y sus respuestas.
type SurveyRepository interface {
	Create(s *entity.Survey) error
	GetByID(id int64) (*entity.Survey, error)
	ListBySeller(sellerID int64) ([]*entity.Survey, error)
	AddResponse(r *entity.SurveyResponse) error
	Stats(surveyID int64) (*SurveyStats, error)
}
