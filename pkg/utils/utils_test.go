package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, first, 26)

	second, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"5 Digital Marketing Strategies", "5-digital-marketing-strategies"},
		{"  Leading & trailing!  ", "leading-trailing"},
		{"Already-a-slug", "already-a-slug"},
		{"UPPER Case Title", "upper-case-title"},
		{"émoji & symbols #1", "moji-symbols-1"},
	}

	u := New()
	for _, tt := range tests {
		assert.Equal(t, tt.want, u.Slugify(tt.title), "title: %q", tt.title)
	}
}

func TestEstimateReadingTime(t *testing.T) {
	u := New()

	assert.Equal(t, "1 min read", u.EstimateReadingTime("short body"))
	assert.Equal(t, "1 min read", u.EstimateReadingTime(""))

	long := strings.Repeat("word ", 600)
	assert.Equal(t, "3 min read", u.EstimateReadingTime(long))
}
