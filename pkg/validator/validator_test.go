package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `validate:"notblank"`
	Stock int    `validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	assert.Empty(t, ValidateStruct(&sample{Name: "Kopi", Stock: 0}))

	errs := ValidateStruct(&sample{Name: "   ", Stock: -1})
	if assert.Len(t, errs, 2) {
		assert.Equal(t, "sample.Name", errs[0].FailedField)
		assert.Equal(t, "notblank", errs[0].Tag)
		assert.Equal(t, "gte", errs[1].Tag)
		assert.Equal(t, "0", errs[1].Value)
	}
}

func TestFirstError(t *testing.T) {
	assert.Equal(t, "", FirstError(&sample{Name: "Teh"}))
	assert.Equal(t, "Field 'sample.Stock' failed on tag 'gte'", FirstError(&sample{Name: "Teh", Stock: -3}))
}
