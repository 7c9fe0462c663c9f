package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPool_InvalidDSN(t *testing.T) {
	_, err := NewPool(context.Background(), "postgres://%zz")
	require.ErrorContains(t, err, "database: parse DSN")
}

func TestRunMigrations_MissingDirectory(t *testing.T) {
	err := RunMigrations("postgres://localhost:5432/tscat", filepath.Join(t.TempDir(), "missing"))
	require.ErrorContains(t, err, "migration init")
}
