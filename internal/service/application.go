package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/rs/zerolog"
)

// ApplicationReasoning is the planning balance view of an application.
type ApplicationReasoning struct {
	RelevantPolicies []model.Policy          `json:"relevantPolicies"`
	ReasoningSteps   []model.ReasoningStep   `json:"reasoningSteps"`
	TradeOffAnalysis *model.TradeOffAnalysis `json:"tradeOffAnalysis"`
}

type applicationService struct {
	*crud[model.PlanningApplication]
	precedents repository.Store[model.PrecedentCase]
	reports    ReportService
}

func NewApplicationService(
	store repository.Store[model.PlanningApplication],
	precedents repository.Store[model.PrecedentCase],
	reports ReportService,
	logger zerolog.Logger,
) ApplicationService {
	s := &applicationService{precedents: precedents, reports: reports}
	s.crud = newCRUD(store, crudOptions[model.PlanningApplication]{
		name:         "planning application",
		searchFields: []string{"referenceNumber", "address", "proposalDetails"},
		beforeCreate: func(_ context.Context, a model.PlanningApplication, _ time.Time) (model.PlanningApplication, error) {
			a.Constraints = model.AssignIDs(a.Constraints)
			a.RelevantPolicies = model.AssignIDs(a.RelevantPolicies)
			a.ReasoningSteps = model.AssignIDs(a.ReasoningSteps)
			return a, nil
		},
		beforeDelete: s.deleteReport,
	}, logger)
	return s
}

func (s *applicationService) deleteReport(ctx context.Context, a model.PlanningApplication) error {
	r, err := s.reports.ForApplication(ctx, a.ID)
	if err != nil || r == nil {
		return err
	}
	if err := s.reports.Delete(ctx, r.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

func (s *applicationService) CreateReport(ctx context.Context, appID uuid.UUID, report model.OfficerReport) (model.OfficerReport, error) {
	if _, err := s.Get(ctx, appID); err != nil {
		return model.OfficerReport{}, err
	}
	report.ApplicationID = appID
	return s.reports.Create(ctx, report)
}

func (s *applicationService) GetReport(ctx context.Context, appID uuid.UUID) (*model.OfficerReport, error) {
	if _, err := s.Get(ctx, appID); err != nil {
		return nil, err
	}
	return s.reports.ForApplication(ctx, appID)
}

// report is GetReport for operations that need the report to exist.
func (s *applicationService) report(ctx context.Context, appID uuid.UUID) (model.OfficerReport, error) {
	r, err := s.GetReport(ctx, appID)
	if err != nil {
		return model.OfficerReport{}, err
	}
	if r == nil {
		return model.OfficerReport{}, notFound("officer report")
	}
	return *r, nil
}

func (s *applicationService) UpdateReport(ctx context.Context, appID uuid.UUID, patch repository.Patch) (model.OfficerReport, error) {
	r, err := s.report(ctx, appID)
	if err != nil {
		return model.OfficerReport{}, err
	}
	return s.reports.Update(ctx, r.ID, patch)
}

func (s *applicationService) DeleteReport(ctx context.Context, appID uuid.UUID) error {
	r, err := s.report(ctx, appID)
	if err != nil {
		return err
	}
	return s.reports.Delete(ctx, r.ID)
}

func (s *applicationService) AddReportSection(ctx context.Context, appID uuid.UUID, section model.OfficerReportSection) (model.OfficerReportSection, error) {
	r, err := s.report(ctx, appID)
	if err != nil {
		return model.OfficerReportSection{}, err
	}
	section.ID = uuid.New()
	if err := validateRecord(section); err != nil {
		return model.OfficerReportSection{}, err
	}
	patch := repository.Patch{}
	if err := patch.Set("sections", append(r.Sections, section)); err != nil {
		return model.OfficerReportSection{}, err
	}
	if _, err := s.reports.Update(ctx, r.ID, patch); err != nil {
		return model.OfficerReportSection{}, err
	}
	return section, nil
}

func (s *applicationService) ListReportSections(ctx context.Context, appID uuid.UUID) ([]model.OfficerReportSection, error) {
	r, err := s.report(ctx, appID)
	if err != nil {
		return nil, err
	}
	out := append([]model.OfficerReportSection{}, r.Sections...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *applicationService) SiteAssessment(ctx context.Context, id uuid.UUID) (Message, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return Message{}, err
	}
	return Message{Message: fmt.Sprintf("Site assessment data for application %s (stub)", id)}, nil
}

func (s *applicationService) Reasoning(ctx context.Context, id uuid.UUID) (ApplicationReasoning, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return ApplicationReasoning{}, err
	}
	out := ApplicationReasoning{
		RelevantPolicies: a.RelevantPolicies,
		ReasoningSteps:   a.ReasoningSteps,
		TradeOffAnalysis: a.TradeOffAnalysis,
	}
	if out.RelevantPolicies == nil {
		out.RelevantPolicies = []model.Policy{}
	}
	if out.ReasoningSteps == nil {
		out.ReasoningSteps = []model.ReasoningStep{}
	}
	return out, nil
}

func (s *applicationService) AddReasoningStep(ctx context.Context, id uuid.UUID, step model.ReasoningStep) (model.ReasoningStep, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return model.ReasoningStep{}, err
	}
	step.ID = uuid.New()
	if err := validateRecord(step); err != nil {
		return model.ReasoningStep{}, err
	}
	patch := repository.Patch{}
	if err := patch.Set("reasoningSteps", append(a.ReasoningSteps, step)); err != nil {
		return model.ReasoningStep{}, err
	}
	if _, err := s.Update(ctx, id, patch); err != nil {
		return model.ReasoningStep{}, err
	}
	return step, nil
}

// LinkPrecedent copies the precedent into the application. Linking the same case twice is a no-op.
func (s *applicationService) LinkPrecedent(ctx context.Context, id, precedentID uuid.UUID) (model.PlanningApplication, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return model.PlanningApplication{}, err
	}
	p, err := s.precedents.Get(ctx, precedentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.PlanningApplication{}, notFound("precedent case")
		}
		return model.PlanningApplication{}, err
	}
	for _, lp := range a.LinkedPrecedents {
		if lp.ID == precedentID {
			return a, nil
		}
	}
	patch := repository.Patch{}
	if err := patch.Set("linkedPrecedents", append(a.LinkedPrecedents, p)); err != nil {
		return model.PlanningApplication{}, err
	}
	return s.Update(ctx, id, patch)
}
