package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePointsDropsBlanks(t *testing.T) {
	e := Experience{
		Points: []string{"Shipped the redesign", "", "   ", "Led the migration", "\t"},
	}
	e.SanitizePoints()

	assert.Equal(t, []string{"Shipped the redesign", "Led the migration"}, e.Points)
}

func TestSanitizePointsKeepsAllWhenClean(t *testing.T) {
	e := Experience{Points: []string{"a", "b"}}
	e.SanitizePoints()

	assert.Equal(t, []string{"a", "b"}, e.Points)
}

func TestSanitizePointsEmptyInput(t *testing.T) {
	e := Experience{}
	e.SanitizePoints()

	assert.NotNil(t, e.Points)
	assert.Empty(t, e.Points)
}
