// Package seed loads a YAML fixture of planning records into the services at startup.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/maxviazov/planning-api/internal/model"
	"github.com/maxviazov/planning-api/internal/repository"
	"github.com/maxviazov/planning-api/internal/service"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Fixture is the on-disk seed format. Each entry uses the same field names as the JSON API,
// and may carry an explicit id so later sections can reference it.
type Fixture struct {
	Policies     []map[string]any `yaml:"policies"`
	Sites        []map[string]any `yaml:"sites"`
	Constraints  []map[string]any `yaml:"constraints"`
	Goals        []map[string]any `yaml:"goals"`
	Scenarios    []map[string]any `yaml:"scenarios"`
	Documents    []map[string]any `yaml:"planDocuments"`
	Precedents   []map[string]any `yaml:"precedentCases"`
	Applications []map[string]any `yaml:"planningApplications"`
	Reports      []map[string]any `yaml:"officerReports"`
}

// Result counts what one run created and skipped per resource.
type Result struct {
	Created map[string]int
	Skipped map[string]int
}

// Load reads a fixture file.
func Load(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a fixture. Unknown top-level sections are rejected.
func Parse(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return &fx, nil
		}
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	return &fx, nil
}

// Apply creates every fixture record through the services, referenced resources first.
// Records whose id already exists are skipped, so a restart over persistent storage re-runs cleanly.
func Apply(ctx context.Context, svcs service.Services, fx *Fixture, logger zerolog.Logger) (Result, error) {
	log := logger.With().Str("module", "seed").Logger()
	res := Result{Created: map[string]int{}, Skipped: map[string]int{}}

	steps := []func() error{
		func() error { return load[model.Policy](ctx, &res, svcs.Policies, service.ResourcePolicies, fx.Policies) },
		func() error { return load[model.Site](ctx, &res, svcs.Sites, service.ResourceSites, fx.Sites) },
		func() error { return load[model.Constraint](ctx, &res, svcs.Constraints, service.ResourceConstraints, fx.Constraints) },
		func() error { return load[model.Goal](ctx, &res, svcs.Goals, service.ResourceGoals, fx.Goals) },
		func() error { return load[model.Scenario](ctx, &res, svcs.Scenarios, service.ResourceScenarios, fx.Scenarios) },
		func() error { return load[model.PlanDocument](ctx, &res, svcs.Documents, service.ResourceDocuments, fx.Documents) },
		func() error { return load[model.PrecedentCase](ctx, &res, svcs.Precedents, service.ResourcePrecedents, fx.Precedents) },
		func() error {
			return load[model.PlanningApplication](ctx, &res, svcs.Applications, service.ResourceApplications, fx.Applications)
		},
		func() error { return load[model.OfficerReport](ctx, &res, svcs.Reports, service.ResourceReports, fx.Reports) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			log.Error().Err(err).Msg("seeding stopped")
			return res, err
		}
	}
	for name, n := range res.Created {
		log.Info().Str("resource", name).Int("created", n).Int("skipped", res.Skipped[name]).Msg("seeded")
	}
	return res, nil
}

func load[T any](ctx context.Context, res *Result, svc service.Resource[T], name string, docs []map[string]any) error {
	for i, doc := range docs {
		rec, err := decode[T](doc)
		if err != nil {
			return fmt.Errorf("seed %s[%d]: %w", name, i, err)
		}
		if _, err := svc.Create(ctx, rec); err != nil {
			if errors.Is(err, repository.ErrAlreadyExists) {
				res.Skipped[name]++
				continue
			}
			return fmt.Errorf("seed %s[%d]: %w", name, i, err)
		}
		res.Created[name]++
	}
	return nil
}

// decode round-trips a YAML mapping through JSON so the model's JSON tags and types apply.
func decode[T any](doc map[string]any) (T, error) {
	var rec T
	raw, err := json.Marshal(doc)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, err
	}
	return rec, nil
}
