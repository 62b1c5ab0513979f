package model

import (
	"time"

	"github.com/google/uuid"
)

// OfficerReport is the delegated or committee report for a planning application.
// An application has at most one report.
type OfficerReport struct {
	ID                      uuid.UUID              `json:"id,omitzero"`
	ApplicationID           uuid.UUID              `json:"applicationId" validate:"required"`
	Version                 string                 `json:"version" validate:"required"`
	Sections                []OfficerReportSection `json:"sections" validate:"dive"`
	Recommendation          string                 `json:"recommendation,omitempty"`
	SupportingEvidenceLinks []EvidenceLink         `json:"supportingEvidenceLinks,omitempty" validate:"dive"`
	ConflictSummary         string                 `json:"conflictSummary,omitempty"`
	ComplianceFlags         []ComplianceFlag       `json:"complianceFlags,omitempty" validate:"dive"`
	Status                  ReportStatus           `json:"status" validate:"required,enum"`
	LastModified            time.Time              `json:"lastModified,omitzero"`
}

func (r OfficerReport) RecordID() uuid.UUID { return r.ID }

func (r OfficerReport) WithRecordID(id uuid.UUID) OfficerReport {
	r.ID = id
	return r
}

type OfficerReportSection struct {
	ID      uuid.UUID `json:"id,omitzero"`
	Title   string    `json:"title" validate:"required"`
	Content string    `json:"content" validate:"required"`
	Order   int       `json:"order" validate:"gte=0"`
}

func (s OfficerReportSection) RecordID() uuid.UUID { return s.ID }

func (s OfficerReportSection) WithRecordID(id uuid.UUID) OfficerReportSection {
	s.ID = id
	return s
}

type EvidenceLink struct {
	Name    string `json:"name" validate:"required"`
	URLOrID string `json:"url_or_id" validate:"required"`
}

type ComplianceFlag struct {
	Flag string `json:"flag" validate:"required"`
	Met  bool   `json:"met"`
}
