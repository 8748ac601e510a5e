package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonth_Label(t *testing.T) {
	assert.Equal(t, "Jan/24", Month(1).Label("24"))
	assert.Equal(t, "Sep/24", Month(9).Label("24"))
	assert.Equal(t, "Dec/25", Month(12).Label("25"))
	assert.Equal(t, "13/24", Month(13).Label("24"))
}

func TestMonth_Valid(t *testing.T) {
	assert.True(t, Month(1).Valid())
	assert.True(t, Month(12).Valid())
	assert.False(t, Month(0).Valid())
	assert.False(t, Month(13).Valid())
}

func TestRecord_Month(t *testing.T) {
	r := Record{DocumentDate: time.Date(2024, time.October, 31, 23, 0, 0, 0, time.UTC)}
	assert.Equal(t, Month(10), r.Month())
}
