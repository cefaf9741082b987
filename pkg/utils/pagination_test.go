package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, query string) Pagination {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/products"+query, nil)
	return ParsePagination(c)
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", DefaultPage, DefaultLimit},
		{"explicit values", "?page=3&limit=10", 3, 10},
		{"limit capped", "?limit=500", DefaultPage, MaxLimit},
		{"zero page falls back", "?page=0", DefaultPage, DefaultLimit},
		{"negative limit falls back", "?limit=-5", DefaultPage, DefaultLimit},
		{"non-numeric falls back", "?page=abc&limit=xyz", DefaultPage, DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paginationFor(t, tt.query)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, Pagination{Page: 3, Limit: 20}.Offset())
}
