package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.Nil(t, Required("name", "Acme"))

	e := Required("name", "   ")
	if assert.NotNil(t, e) {
		assert.Equal(t, "name", e.Field)
	}
}

func TestErrsMessage(t *testing.T) {
	errs := Errs{
		{Field: "address", Msg: "required"},
		{Field: "tel", Msg: "required"},
	}
	assert.Equal(t, "address: required; tel: required", errs.Error())
}
