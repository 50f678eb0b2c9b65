package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExportTemplate(t *testing.T) {
	store := &mockStore{employees: testEmployees()}
	var buf bytes.Buffer

	count, err := ExportTemplate(context.Background(), store, testConfig(), zap.NewNop(), &buf)
	require.NoError(t, err)

	assert.Equal(t, 4, count)
	expected := "\ufeffEmployee,Mon_Day,Mon_Night,Tue_Day,Tue_Night\n" +
		"Alice,,,,\n" +
		"bob,,,,\n" +
		"Carol,,,,\n" +
		"Dan,,,,\n"
	assert.Equal(t, expected, buf.String())
}

func TestExportTemplate_NoEmployees(t *testing.T) {
	var buf bytes.Buffer

	_, err := ExportTemplate(context.Background(), &mockStore{}, testConfig(), zap.NewNop(), &buf)
	assert.ErrorIs(t, err, ErrNoEmployees)
	assert.Zero(t, buf.Len())
}
