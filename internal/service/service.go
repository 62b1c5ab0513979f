// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// InvalidField is a single-field validation error, for callers outside the package (query parsing).
func InvalidField(field, message string) error {
	return newInvalidInput([]FieldError{{Field: field, Message: message}})
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// notFound names the missing resource while keeping repository.ErrNotFound matchable.
func notFound(name string) error {
	return fmt.Errorf("%s %w", name, repository.ErrNotFound)
}

// Message is the body of placeholder endpoints that only describe what they would return.
type Message struct {
	Message string `json:"message"`
}

// ListQuery describes one list request: window, exact-match filters, free-text search and ordering.
type ListQuery struct {
	Page    repository.Page
	Filters repository.Filters
	Search  string
	SortBy  string
	Order   string
}

// Resource is the uniform CRUD surface every planning resource exposes.
type Resource[T any] interface {
	Create(ctx context.Context, rec T) (T, error)
	Get(ctx context.Context, id uuid.UUID) (T, error)
	List(ctx context.Context, q ListQuery) (repository.PageResult[T], error)
	Update(ctx context.Context, id uuid.UUID, patch repository.Patch) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PolicyService defines policy use cases.
type PolicyService interface {
	Resource[model.Policy]
	LinkedPolicies(ctx context.Context, id uuid.UUID) ([]model.LinkedPolicy, error)
	GoalAlignments(ctx context.Context, id uuid.UUID) ([]model.GoalAlignment, error)
	SiteImpacts(ctx context.Context, id uuid.UUID) (Message, error)
}

// SiteService defines site use cases, including the assessment views.
type SiteService interface {
	Resource[model.Site]
	ApplicablePolicies(ctx context.Context, id uuid.UUID) ([]SitePolicyRequirement, error)
	Constraints(ctx context.Context, id uuid.UUID) ([]SiteConstraint, error)
	GoalContributions(ctx context.Context, id uuid.UUID) ([]SiteGoalContribution, error)
	DeliverabilitySoundness(ctx context.Context, id uuid.UUID) (DeliverabilitySoundness, error)
}

type ConstraintService interface {
	Resource[model.Constraint]
}

// DocumentService defines plan document use cases and the nodes stored under a document.
type DocumentService interface {
	Resource[model.PlanDocument]
	AddNode(ctx context.Context, docID uuid.UUID, node model.DocumentNode) (model.DocumentNode, error)
	ListNodes(ctx context.Context, docID uuid.UUID, page repository.Page) (repository.PageResult[model.DocumentNode], error)
	GetNode(ctx context.Context, docID, nodeID uuid.UUID) (model.DocumentNode, error)
	UpdateNode(ctx context.Context, docID, nodeID uuid.UUID, patch repository.Patch) (model.DocumentNode, error)
	DeleteNode(ctx context.Context, docID, nodeID uuid.UUID) error
}

type ScenarioService interface {
	Resource[model.Scenario]
	Duplicate(ctx context.Context, id uuid.UUID) (model.Scenario, error)
	Compare(ctx context.Context, id, baselineID uuid.UUID) (Message, error)
}

type GoalService interface {
	Resource[model.Goal]
	PerformanceSummary(ctx context.Context, id uuid.UUID) (GoalPerformanceSummary, error)
}

// ApplicationService defines planning application use cases, including the application's officer report.
type ApplicationService interface {
	Resource[model.PlanningApplication]
	CreateReport(ctx context.Context, appID uuid.UUID, report model.OfficerReport) (model.OfficerReport, error)
	// GetReport returns nil when the application has no report yet.
	GetReport(ctx context.Context, appID uuid.UUID) (*model.OfficerReport, error)
	UpdateReport(ctx context.Context, appID uuid.UUID, patch repository.Patch) (model.OfficerReport, error)
	DeleteReport(ctx context.Context, appID uuid.UUID) error
	AddReportSection(ctx context.Context, appID uuid.UUID, section model.OfficerReportSection) (model.OfficerReportSection, error)
	ListReportSections(ctx context.Context, appID uuid.UUID) ([]model.OfficerReportSection, error)
	SiteAssessment(ctx context.Context, id uuid.UUID) (Message, error)
	Reasoning(ctx context.Context, id uuid.UUID) (ApplicationReasoning, error)
	AddReasoningStep(ctx context.Context, id uuid.UUID, step model.ReasoningStep) (model.ReasoningStep, error)
	LinkPrecedent(ctx context.Context, id, precedentID uuid.UUID) (model.PlanningApplication, error)
}

type PrecedentService interface {
	Resource[model.PrecedentCase]
}

// ReportService manages officer reports directly. Each report belongs to exactly one application.
type ReportService interface {
	Resource[model.OfficerReport]
	ForApplication(ctx context.Context, appID uuid.UUID) (*model.OfficerReport, error)
}

// AssistantService produces placeholder drafting text. No model is invoked.
type AssistantService interface {
	PolicyGuidance(ctx context.Context, policyText string, context map[string]any) []model.AIGuidance
	SiteJustification(ctx context.Context, siteID uuid.UUID, policyIDs []uuid.UUID) string
	ScenarioCommentary(ctx context.Context, scenarioID uuid.UUID) string
	GoalRisks(ctx context.Context, goalID uuid.UUID, policyIDs, siteIDs []uuid.UUID) []string
	ReasoningSteps(ctx context.Context, appID uuid.UUID) []model.ReasoningStep
	TradeOffNarrative(ctx context.Context, appID uuid.UUID, goals []model.CompetingGoal) string
	ReportDraft(ctx context.Context, appID uuid.UUID) model.OfficerReport
}

// Services bundles every use-case service the HTTP layer needs.
type Services struct {
	Policies     PolicyService
	Sites        SiteService
	Constraints  ConstraintService
	Documents    DocumentService
	Scenarios    ScenarioService
	Goals        GoalService
	Applications ApplicationService
	Precedents   PrecedentService
	Reports      ReportService
	Assistant    AssistantService
}
