package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/planning-api/internal/repository"
)

func TestMapError(t *testing.T) {
	other := errors.New("boom")
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), repository.ErrNotFound},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, repository.ErrAlreadyExists},
		{"serialization", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, repository.ErrConflict},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, repository.ErrConflict},
		{"other pg code", &pgconn.PgError{Code: pgerrcode.UndefinedTable}, nil},
		{"plain", other, other},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.in)
			switch {
			case tc.in == nil:
				assert.NoError(t, got)
			case tc.want == nil:
				assert.Equal(t, tc.in, got)
			default:
				assert.ErrorIs(t, got, tc.want)
			}
		})
	}
}
