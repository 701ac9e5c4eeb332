package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Port int `validate:"min=1,max=65535"`
}

type outer struct {
	Name  string `validate:"required"`
	Mode  string `validate:"oneof=a b"`
	Inner inner
}

func TestValidate(t *testing.T) {
	t.Run("valid struct", func(t *testing.T) {
		err := Validate(outer{Name: "x", Mode: "a", Inner: inner{Port: 3000}})
		assert.NoError(t, err)
	})

	t.Run("collects nested field errors", func(t *testing.T) {
		err := Validate(outer{Mode: "c", Inner: inner{Port: 70000}})
		require.Error(t, err)
		require.True(t, IsValidationError(err))

		errs := err.(ValidationErrors)
		require.Len(t, errs, 3)
		assert.Equal(t, ValidationError{Field: "name", Message: "is required"}, errs[0])
		assert.Equal(t, ValidationError{Field: "mode", Message: "must be one of: a b"}, errs[1])
		assert.Equal(t, ValidationError{Field: "inner.port", Message: "must be at most 65535"}, errs[2])
	})

	t.Run("error string joins messages", func(t *testing.T) {
		err := Validate(outer{Name: "x", Mode: "a"})
		require.Error(t, err)
		assert.Equal(t, "inner.port: must be at least 1", err.Error())
	})
}
