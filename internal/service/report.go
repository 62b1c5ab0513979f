package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/rs/zerolog"
)

type reportService struct {
	*crud[model.OfficerReport]
	apps repository.Store[model.PlanningApplication]
}

func NewReportService(store repository.Store[model.OfficerReport], apps repository.Store[model.PlanningApplication], logger zerolog.Logger) ReportService {
	s := &reportService{apps: apps}
	s.crud = newCRUD(store, crudOptions[model.OfficerReport]{
		name:         "officer report",
		searchFields: []string{"conflictSummary", "recommendation"},
		readOnly:     []string{"applicationId", fieldLastModified},
		stampFields:  []string{fieldLastModified},
		beforeCreate: s.prepare,
		beforeUpdate: assignSectionIDs,
	}, logger)
	return s
}

// prepare enforces one report per existing application.
func (s *reportService) prepare(ctx context.Context, r model.OfficerReport, now time.Time) (model.OfficerReport, error) {
	if r.ApplicationID == uuid.Nil {
		return r, InvalidField("applicationId", "is required")
	}
	if _, err := s.apps.Get(ctx, r.ApplicationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return r, InvalidField("applicationId", "application does not exist")
		}
		return r, err
	}
	existing, err := s.ForApplication(ctx, r.ApplicationID)
	if err != nil {
		return r, err
	}
	if existing != nil {
		return r, fmt.Errorf("officer report for application %s %w", r.ApplicationID, repository.ErrAlreadyExists)
	}
	if r.Sections == nil {
		r.Sections = []model.OfficerReportSection{}
	}
	r.Sections = model.AssignIDs(r.Sections)
	r.LastModified = now
	return r, nil
}

func assignSectionIDs(_ context.Context, merged model.OfficerReport, patch repository.Patch, _ time.Time) error {
	if _, ok := patch["sections"]; !ok {
		return nil
	}
	return patch.Set("sections", model.AssignIDs(merged.Sections))
}

// ForApplication returns nil when the application has no report.
func (s *reportService) ForApplication(ctx context.Context, appID uuid.UUID) (*model.OfficerReport, error) {
	return s.scanOne(ctx, repository.Filters{"applicationId": appID.String()})
}
