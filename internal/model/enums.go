package model

// Enum is implemented by every closed string set in this package.
// The service validator checks it through the "enum" struct tag.
type Enum interface {
	Valid() bool
}

type PolicyStatus string

const (
	PolicyStatusDraft        PolicyStatus = "Draft"
	PolicyStatusAdopted      PolicyStatus = "Adopted"
	PolicyStatusConsultation PolicyStatus = "Consultation"
	PolicyStatusUnderReview  PolicyStatus = "Under Review"
	PolicyStatusArchived     PolicyStatus = "Archived"
)

func (s PolicyStatus) Valid() bool {
	switch s {
	case PolicyStatusDraft, PolicyStatusAdopted, PolicyStatusConsultation, PolicyStatusUnderReview, PolicyStatusArchived:
		return true
	}
	return false
}

type PolicyType string

const (
	PolicyTypeStrategic    PolicyType = "Strategic"
	PolicyTypeDM           PolicyType = "Development Management (DM)"
	PolicyTypeSPD          PolicyType = "Supplementary Planning Document (SPD)"
	PolicyTypeNational     PolicyType = "National (NPPF)"
	PolicyTypeGuidanceNote PolicyType = "Guidance Note"
)

func (t PolicyType) Valid() bool {
	switch t {
	case PolicyTypeStrategic, PolicyTypeDM, PolicyTypeSPD, PolicyTypeNational, PolicyTypeGuidanceNote:
		return true
	}
	return false
}

type RelationshipType string

const (
	RelationshipSupports      RelationshipType = "SUPPORTS"
	RelationshipConflictsWith RelationshipType = "CONFLICTS_WITH"
	RelationshipReferences    RelationshipType = "REFERENCES"
	RelationshipReferencedBy  RelationshipType = "REFERENCED_BY"
	RelationshipOverlapsWith  RelationshipType = "OVERLAPS_WITH"
	RelationshipSupersedes    RelationshipType = "SUPERSEDES"
)

func (r RelationshipType) Valid() bool {
	switch r {
	case RelationshipSupports, RelationshipConflictsWith, RelationshipReferences,
		RelationshipReferencedBy, RelationshipOverlapsWith, RelationshipSupersedes:
		return true
	}
	return false
}

// ImpactType describes how a policy bears on a site category.
type ImpactType string

const (
	ImpactEnables               ImpactType = "Enables"
	ImpactRestricts             ImpactType = "Restricts"
	ImpactConditionsDevelopment ImpactType = "Conditions Development"
	ImpactNoDirectImpact        ImpactType = "No Direct Impact"
)

func (i ImpactType) Valid() bool {
	switch i {
	case ImpactEnables, ImpactRestricts, ImpactConditionsDevelopment, ImpactNoDirectImpact:
		return true
	}
	return false
}

type GoalStatus string

const (
	GoalStatusOnTrack    GoalStatus = "On Track"
	GoalStatusPartial    GoalStatus = "Partial"
	GoalStatusFailing    GoalStatus = "Failing"
	GoalStatusNotStarted GoalStatus = "Not Started"
	GoalStatusAchieved   GoalStatus = "Achieved"
	GoalStatusSuperseded GoalStatus = "Superseded"
)

func (s GoalStatus) Valid() bool {
	switch s {
	case GoalStatusOnTrack, GoalStatusPartial, GoalStatusFailing, GoalStatusNotStarted,
		GoalStatusAchieved, GoalStatusSuperseded:
		return true
	}
	return false
}

type GoalType string

const (
	GoalTypeLegal        GoalType = "Legal"
	GoalTypePolicy       GoalType = "Policy"
	GoalTypeMonitoring   GoalType = "Monitoring"
	GoalTypePolitical    GoalType = "Political"
	GoalTypeAspirational GoalType = "Aspirational"
)

func (t GoalType) Valid() bool {
	switch t {
	case GoalTypeLegal, GoalTypePolicy, GoalTypeMonitoring, GoalTypePolitical, GoalTypeAspirational:
		return true
	}
	return false
}

type SoundnessStatus string

const (
	SoundnessSound       SoundnessStatus = "🟢 Sound"
	SoundnessMinorIssues SoundnessStatus = "🟡 Minor Issues"
	SoundnessMajorIssues SoundnessStatus = "🔴 Major Issues"
	SoundnessNotAssessed SoundnessStatus = "⚪ Not Assessed"
)

func (s SoundnessStatus) Valid() bool {
	switch s {
	case SoundnessSound, SoundnessMinorIssues, SoundnessMajorIssues, SoundnessNotAssessed:
		return true
	}
	return false
}

type DocumentNodeType string

const (
	NodeDocumentRoot  DocumentNodeType = "DocumentRoot"
	NodeChapter       DocumentNodeType = "Chapter"
	NodeSubChapter    DocumentNodeType = "SubChapter"
	NodePolicySection DocumentNodeType = "PolicySection"
	NodeMapSection    DocumentNodeType = "MapSection"
	NodeAppendix      DocumentNodeType = "Appendix"
	NodeGlossaryItem  DocumentNodeType = "GlossaryItem"
	NodeReportSection DocumentNodeType = "ReportSection"
)

func (t DocumentNodeType) Valid() bool {
	switch t {
	case NodeDocumentRoot, NodeChapter, NodeSubChapter, NodePolicySection, NodeMapSection,
		NodeAppendix, NodeGlossaryItem, NodeReportSection:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationReceived        ApplicationStatus = "Received"
	ApplicationValidated       ApplicationStatus = "Validated"
	ApplicationUnderAssessment ApplicationStatus = "Under Assessment"
	ApplicationPendingDecision ApplicationStatus = "Pending Decision"
	ApplicationApproved        ApplicationStatus = "Approved"
	ApplicationRefused         ApplicationStatus = "Refused"
	ApplicationWithdrawn       ApplicationStatus = "Withdrawn"
	ApplicationAppealed        ApplicationStatus = "Appealed"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationReceived, ApplicationValidated, ApplicationUnderAssessment, ApplicationPendingDecision,
		ApplicationApproved, ApplicationRefused, ApplicationWithdrawn, ApplicationAppealed:
		return true
	}
	return false
}

type ApplicationType string

const (
	ApplicationFull                  ApplicationType = "Full"
	ApplicationOutline               ApplicationType = "Outline"
	ApplicationReservedMatters       ApplicationType = "Reserved Matters"
	ApplicationListedBuildingConsent ApplicationType = "Listed Building Consent"
	ApplicationAdvertisementConsent  ApplicationType = "Advertisement Consent"
	ApplicationLawfulDevelopmentCert ApplicationType = "Lawful Development Certificate"
	ApplicationPriorApproval         ApplicationType = "Prior Approval"
)

func (t ApplicationType) Valid() bool {
	switch t {
	case ApplicationFull, ApplicationOutline, ApplicationReservedMatters, ApplicationListedBuildingConsent,
		ApplicationAdvertisementConsent, ApplicationLawfulDevelopmentCert, ApplicationPriorApproval:
		return true
	}
	return false
}

type PrecedentOutcome string

const (
	OutcomeAllowed       PrecedentOutcome = "Allowed"
	OutcomeDismissed     PrecedentOutcome = "Dismissed"
	OutcomeSplitDecision PrecedentOutcome = "Split Decision"
	OutcomeWithdrawn     PrecedentOutcome = "Withdrawn"
)

func (o PrecedentOutcome) Valid() bool {
	switch o {
	case OutcomeAllowed, OutcomeDismissed, OutcomeSplitDecision, OutcomeWithdrawn:
		return true
	}
	return false
}

type ConstraintSeverity string

const (
	SeverityHigh          ConstraintSeverity = "High"
	SeverityMedium        ConstraintSeverity = "Medium"
	SeverityLow           ConstraintSeverity = "Low"
	SeverityInformational ConstraintSeverity = "Informational"
)

func (s ConstraintSeverity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow, SeverityInformational:
		return true
	}
	return false
}

type PlanMakingStatus string

const (
	PlanMakingConsidered          PlanMakingStatus = "Considered"
	PlanMakingDraftAllocation     PlanMakingStatus = "Draft Allocation"
	PlanMakingAdoptedAllocation   PlanMakingStatus = "Adopted Allocation"
	PlanMakingRejected            PlanMakingStatus = "Rejected"
	PlanMakingPromoted            PlanMakingStatus = "Promoted"
	PlanMakingPreviouslyAllocated PlanMakingStatus = "Previously Allocated"
)

func (s PlanMakingStatus) Valid() bool {
	switch s {
	case PlanMakingConsidered, PlanMakingDraftAllocation, PlanMakingAdoptedAllocation,
		PlanMakingRejected, PlanMakingPromoted, PlanMakingPreviouslyAllocated:
		return true
	}
	return false
}

type SiteSource string

const (
	SourceSHLAA               SiteSource = "SHLAA"
	SourceCallForSites        SiteSource = "Call For Sites"
	SourceStrategicProposal   SiteSource = "Strategic Proposal"
	SourceOfficerGenerated    SiteSource = "Officer Generated"
	SourcePlanningApplication SiteSource = "Planning Application"
)

func (s SiteSource) Valid() bool {
	switch s {
	case SourceSHLAA, SourceCallForSites, SourceStrategicProposal, SourceOfficerGenerated, SourcePlanningApplication:
		return true
	}
	return false
}

type PlanDocumentType string

const (
	DocumentLocalPlan               PlanDocumentType = "Local Plan"
	DocumentSustainabilityAppraisal PlanDocumentType = "Sustainability Appraisal"
	DocumentDesignCode              PlanDocumentType = "Design Code"
	DocumentProposalsMap            PlanDocumentType = "Proposals Map"
	DocumentSPD                     PlanDocumentType = "SPD"
	DocumentEvidenceBase            PlanDocumentType = "Evidence Base Document"
)

func (t PlanDocumentType) Valid() bool {
	switch t {
	case DocumentLocalPlan, DocumentSustainabilityAppraisal, DocumentDesignCode, DocumentProposalsMap,
		DocumentSPD, DocumentEvidenceBase:
		return true
	}
	return false
}

type PlanDocumentStatus string

const (
	DocumentStatusDraft        PlanDocumentStatus = "Draft"
	DocumentStatusConsultation PlanDocumentStatus = "Consultation"
	DocumentStatusSubmitted    PlanDocumentStatus = "Submitted"
	DocumentStatusAdopted      PlanDocumentStatus = "Adopted"
)

func (s PlanDocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusConsultation, DocumentStatusSubmitted, DocumentStatusAdopted:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportDraft  ReportStatus = "Draft"
	ReportReview ReportStatus = "Review"
	ReportFinal  ReportStatus = "Final"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportDraft, ReportReview, ReportFinal:
		return true
	}
	return false
}
