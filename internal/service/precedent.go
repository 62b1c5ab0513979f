package service

import (
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/rs/zerolog"
)

type precedentService struct {
	*crud[model.PrecedentCase]
}

func NewPrecedentService(store repository.Store[model.PrecedentCase], logger zerolog.Logger) PrecedentService {
	return &precedentService{newCRUD(store, crudOptions[model.PrecedentCase]{
		name:         "precedent case",
		searchFields: []string{"caseReference", "address", "relevanceSummary", "inspectorReasoningSummary"},
	}, logger)}
}
