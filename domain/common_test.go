package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 6, 20)

	assert.Equal(t, int64(4), p.TotalPages)
	require.NotNil(t, p.Next)
	assert.Equal(t, 3, *p.Next)
	require.NotNil(t, p.Previous)
	assert.Equal(t, 1, *p.Previous)
}

func TestNewPaginationFirstPage(t *testing.T) {
	p := NewPagination(1, 6, 7)

	assert.Equal(t, int64(2), p.TotalPages)
	require.NotNil(t, p.Next)
	assert.Equal(t, 2, *p.Next)
	assert.Nil(t, p.Previous)
}

func TestNewPaginationLastPage(t *testing.T) {
	p := NewPagination(2, 6, 7)

	assert.Nil(t, p.Next)
	require.NotNil(t, p.Previous)
	assert.Equal(t, 1, *p.Previous)
}

func TestNewPaginationEmpty(t *testing.T) {
	p := NewPagination(1, 6, 0)

	assert.Equal(t, int64(0), p.TotalPages)
	assert.Nil(t, p.Next)
	assert.Nil(t, p.Previous)
}
