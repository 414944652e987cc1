package ini

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_Found(t *testing.T) {
	cfg := &Config{Sections: map[string]map[string]string{"A": {"secretField": "s"}}}

	value, err := cfg.Resolve("A", "secretField")

	require.NoError(t, err)
	assert.Equal(t, "s", value)
}

func TestResolve_SectionNotFound(t *testing.T) {
	cfg := &Config{Sections: map[string]map[string]string{"A": {}}}

	value, err := cfg.Resolve("B", "secretField")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSectionNotFound)
	assert.False(t, errors.Is(err, ErrFieldNotFound))
	assert.Empty(t, value)
}

func TestResolve_FieldNotFound(t *testing.T) {
	cfg := &Config{Sections: map[string]map[string]string{"A": {"other": "x"}}}

	value, err := cfg.Resolve("A", "secretField")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFieldNotFound)
	assert.False(t, errors.Is(err, ErrSectionNotFound))
	assert.Empty(t, value)
}

func TestResolve_EmptyValueIsFound(t *testing.T) {
	cfg := Parse("[A]\nsecretField=\n")

	value, err := cfg.Resolve("A", "secretField")

	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestResolve_IndentedEmptyLineInsideSection(t *testing.T) {
	cfg := Parse("[ABC]\nother=1\n   \nx1E02_Manuf=hunter2\n")

	value, err := cfg.Resolve("ABC", "x1E02_Manuf")

	require.NoError(t, err)
	assert.Equal(t, "hunter2", value)
	assert.Empty(t, cfg.Globals)
}

func TestResolve_IgnoresGlobals(t *testing.T) {
	cfg := Parse("A=not a section\n")

	_, err := cfg.Resolve("A", "secretField")

	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestResolve_NilMaps(t *testing.T) {
	var cfg Config

	_, err := cfg.Resolve("A", "k")

	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestSectionAndGlobal(t *testing.T) {
	cfg := Parse("g=1\n[S]\nk=v\n")

	fields, ok := cfg.Section("S")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"k": "v"}, fields)

	_, ok = cfg.Section("missing")
	assert.False(t, ok)

	value, ok := cfg.Global("g")
	require.True(t, ok)
	assert.Equal(t, "1", value)

	_, ok = cfg.Global("k")
	assert.False(t, ok)
}
