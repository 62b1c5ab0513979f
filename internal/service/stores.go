package service

import (
	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/storage"
	"github.com/rs/zerolog"
)

// Resource names; they key each resource's records in the shared backends.
const (
	ResourcePolicies      = "policies"
	ResourceSites         = "sites"
	ResourceConstraints   = "constraints"
	ResourceDocuments     = "plan-documents"
	ResourceDocumentNodes = "document-nodes"
	ResourceScenarios     = "scenarios"
	ResourceGoals         = "goals"
	ResourceApplications  = "planning-applications"
	ResourcePrecedents    = "precedent-cases"
	ResourceReports       = "officer-reports"
)

// Stores holds one record store per resource.
type Stores struct {
	Policies      repository.Store[model.Policy]
	Sites         repository.Store[model.Site]
	Constraints   repository.Store[model.Constraint]
	Documents     repository.Store[model.PlanDocument]
	DocumentNodes repository.Store[model.DocumentNode]
	Scenarios     repository.Store[model.Scenario]
	Goals         repository.Store[model.Goal]
	Applications  repository.Store[model.PlanningApplication]
	Precedents    repository.Store[model.PrecedentCase]
	Reports       repository.Store[model.OfficerReport]
}

// OpenStores opens every resource store on the backend.
func OpenStores(b *storage.Backend) Stores {
	return Stores{
		Policies:      storage.For[model.Policy](b, ResourcePolicies),
		Sites:         storage.For[model.Site](b, ResourceSites),
		Constraints:   storage.For[model.Constraint](b, ResourceConstraints),
		Documents:     storage.For[model.PlanDocument](b, ResourceDocuments),
		DocumentNodes: storage.For[model.DocumentNode](b, ResourceDocumentNodes),
		Scenarios:     storage.For[model.Scenario](b, ResourceScenarios),
		Goals:         storage.For[model.Goal](b, ResourceGoals),
		Applications:  storage.For[model.PlanningApplication](b, ResourceApplications),
		Precedents:    storage.For[model.PrecedentCase](b, ResourcePrecedents),
		Reports:       storage.For[model.OfficerReport](b, ResourceReports),
	}
}

// New wires every service over the stores.
func New(st Stores, logger zerolog.Logger) Services {
	reports := NewReportService(st.Reports, st.Applications, logger)
	return Services{
		Policies:     NewPolicyService(st.Policies, logger),
		Sites:        NewSiteService(st.Sites, logger),
		Constraints:  NewConstraintService(st.Constraints, logger),
		Documents:    NewDocumentService(st.Documents, st.DocumentNodes, logger),
		Scenarios:    NewScenarioService(st.Scenarios, logger),
		Goals:        NewGoalService(st.Goals, logger),
		Applications: NewApplicationService(st.Applications, st.Precedents, reports, logger),
		Precedents:   NewPrecedentService(st.Precedents, logger),
		Reports:      reports,
		Assistant:    NewAssistantService(logger),
	}
}
