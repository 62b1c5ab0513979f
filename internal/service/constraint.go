package service

import (
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/rs/zerolog"
)

type constraintService struct {
	*crud[model.Constraint]
}

func NewConstraintService(store repository.Store[model.Constraint], logger zerolog.Logger) ConstraintService {
	return &constraintService{newCRUD(store, crudOptions[model.Constraint]{
		name:         "constraint",
		searchFields: []string{"name", "description", "sourceDocument"},
	}, logger)}
}
