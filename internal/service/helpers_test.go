package service_test

import (
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/service"
	"github.com/maxviazov/planning-api/internal/storage"
)

func newServices(t *testing.T) service.Services {
	t.Helper()
	return service.New(service.OpenStores(storage.Memory()), zerolog.New(io.Discard))
}

func patchOf(t *testing.T, body string) repository.Patch {
	t.Helper()
	var p repository.Patch
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return p
}

func hasField(err error, field string) bool {
	for _, fe := range service.FieldErrors(err) {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func newPolicy(ref, title string) model.Policy {
	return model.Policy{
		Reference:  ref,
		Title:      title,
		Wording:    "Development should provide a mix of housing types.",
		Status:     model.PolicyStatusAdopted,
		Type:       model.PolicyTypeDM,
		DocumentID: uuid.New(),
	}
}

func newApplication(ref string) model.PlanningApplication {
	return model.PlanningApplication{
		ReferenceNumber: ref,
		Address:         "1 High Street",
		ProposalDetails: "Erection of 12 dwellings",
		ApplicationType: model.ApplicationFull,
		Status:          model.ApplicationReceived,
		ReceivedDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newPrecedent(ref string) model.PrecedentCase {
	return model.PrecedentCase{
		CaseReference: ref,
		Address:       "Land north of Mill Lane",
		DecisionType:  "Appeal",
		DecisionDate:  time.Date(2023, 6, 12, 0, 0, 0, 0, time.UTC),
		Outcome:       model.OutcomeDismissed,
	}
}
