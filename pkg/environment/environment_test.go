package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/textkit/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected environment.Environment
	}{
		{input: "production", expected: environment.Production},
		{input: "prod", expected: environment.Production},
		{input: " PROD ", expected: environment.Production},
		{input: "staging", expected: environment.Staging},
		{input: "stage", expected: environment.Staging},
		{input: "development", expected: environment.Development},
		{input: "dev", expected: environment.Development},
		{input: "", expected: environment.Development},
		{input: "qa", expected: environment.Development},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			env := environment.Parse(tt.input)
			assert.Equal(t, tt.expected, env)
			assert.Equal(t, string(tt.expected), env.String())
		})
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Staging.IsProduction())
	assert.True(t, environment.Development.IsDevelopment())
	assert.False(t, environment.Production.IsDevelopment())
}
