package repository_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/planning-api/internal/repository"
)

type sample struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Count int       `json:"count"`
	Flag  bool      `json:"flag"`
	Notes *string   `json:"notes,omitempty"`
	Tags  []string  `json:"tags,omitempty"`
}

func TestApplyPatch_MergesTopLevelFields(t *testing.T) {
	notes := "keep"
	base := sample{ID: uuid.New(), Name: "before", Count: 1, Notes: &notes, Tags: []string{"a"}}

	p := repository.Patch{}
	require.NoError(t, p.Set("name", "after"))
	require.NoError(t, p.Set("tags", []string{"b", "c"}))
	require.NoError(t, p.Set("id", uuid.New()))

	got, err := repository.ApplyPatch(base, p)
	require.NoError(t, err)
	assert.Equal(t, base.ID, got.ID)
	assert.Equal(t, "after", got.Name)
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, []string{"b", "c"}, got.Tags)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "keep", *got.Notes)
}

func TestApplyPatch_NullClears(t *testing.T) {
	notes := "drop"
	got, err := repository.ApplyPatch(sample{Name: "n", Notes: &notes}, repository.Patch{"notes": json.RawMessage("null")})
	require.NoError(t, err)
	assert.Nil(t, got.Notes)
	assert.Equal(t, "n", got.Name)
}

func TestApplyPatch_TypeMismatch(t *testing.T) {
	_, err := repository.ApplyPatch(sample{}, repository.Patch{"count": json.RawMessage(`"many"`)})
	assert.Error(t, err)
}

func TestPatch_WithoutAndOnly(t *testing.T) {
	p := repository.Patch{"a": json.RawMessage("1"), "b": json.RawMessage("2"), "c": json.RawMessage("3")}

	w := p.Without("a", "z")
	assert.Len(t, w, 2)
	assert.Len(t, p, 3)

	o := p.Only(map[string]struct{}{"b": {}, "x": {}})
	assert.Equal(t, repository.Patch{"b": json.RawMessage("2")}, o)
}

func TestMatchDocument(t *testing.T) {
	doc, err := repository.Encode(sample{Name: "Site A", Count: 3, Flag: true})
	require.NoError(t, err)

	tests := []struct {
		filters repository.Filters
		want    bool
	}{
		{nil, true},
		{repository.Filters{"name": "Site A"}, true},
		{repository.Filters{"name": "site a"}, false},
		{repository.Filters{"count": "3"}, true},
		{repository.Filters{"count": "3", "flag": "true"}, true},
		{repository.Filters{"count": "3", "flag": "false"}, false},
		{repository.Filters{"notes": ""}, false},
	}
	for _, tt := range tests {
		got, err := repository.MatchDocument(doc, tt.filters)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "filters=%v", tt.filters)
	}
}

func TestFieldText(t *testing.T) {
	s, ok := repository.FieldText(json.RawMessage(`"x\"y"`))
	assert.True(t, ok)
	assert.Equal(t, `x"y`, s)

	s, ok = repository.FieldText(json.RawMessage(` 2.5 `))
	assert.True(t, ok)
	assert.Equal(t, "2.5", s)

	_, ok = repository.FieldText(json.RawMessage(`null`))
	assert.False(t, ok)
	_, ok = repository.FieldText(nil)
	assert.False(t, ok)
}

func TestFilters_ValidateAndKeys(t *testing.T) {
	assert.NoError(t, repository.Filters{"status": "x", "document_id": "y"}.Validate())
	assert.Error(t, repository.Filters{"a.b": "x"}.Validate())
	assert.Error(t, repository.Filters{"": "x"}.Validate())
	assert.Equal(t, []string{"a", "b", "c"}, repository.Filters{"c": "", "a": "", "b": ""}.Keys())
}
