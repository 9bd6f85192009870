package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ostrenko/circulation-service/internal/model"
)

func TestNewBarcode(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		bc := model.NewBarcode()
		assert.Regexp(t, `^BC-[0-9A-F]{8}$`, bc)
		assert.False(t, seen[bc], "barcode collision: %s", bc)
		seen[bc] = true
	}
}

func TestFineIntervalUnit_Days(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, model.IntervalDaily.Days(0))
	assert.Equal(t, 7, model.IntervalWeekly.Days(0))
	assert.Equal(t, 30, model.IntervalMonthly.Days(0))
	assert.Equal(t, 3, model.IntervalCustom.Days(3))
	assert.Equal(t, 1, model.IntervalCustom.Days(0))
}
