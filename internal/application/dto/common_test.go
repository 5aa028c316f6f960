package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
)

func TestParseDate(t *testing.T) {
	fallback := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)

	got, err := dto.ParseDate("", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)

	got, err = dto.ParseDate("2024-01-31", fallback)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), got)

	got, err = dto.ParseDate("2024-01-31T10:00:00Z", fallback)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())

	_, err = dto.ParseDate("31/01/2024", fallback)
	assert.Error(t, err)
}

func TestPageRequest_DefaultPage(t *testing.T) {
	p := dto.PageRequest{Limit: 0, Offset: -3}
	p.DefaultPage()
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = dto.PageRequest{Limit: 500}
	p.DefaultPage()
	assert.Equal(t, 100, p.Limit)
}
