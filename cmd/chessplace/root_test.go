package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCountFlagPrintsOnlyTheSolutionCount(t *testing.T) {
	out, err := execute(t, "", "3", "3", "-k", "2", "-c")
	require.NoError(t, err)
	assert.Contains(t, out, "solutions = 16")
	assert.NotContains(t, out, "-----") // no board grid printed
}

func TestPrintsEachBoardWhenNotCounting(t *testing.T) {
	out, err := execute(t, "", "3", "3", "-k", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "solutions = 16")
	assert.Contains(t, out, "-----") // at least one board grid rendered
}

func TestCompareFlagReportsAgreement(t *testing.T) {
	out, err := execute(t, "", "4", "4", "-k", "2", "-q", "1", "--compare")
	require.NoError(t, err)
	assert.Contains(t, out, "all strategies agree")
}

func TestInvalidDimensionsSurfacesAsError(t *testing.T) {
	_, err := execute(t, "", "1", "4", "-k", "1")
	require.Error(t, err)
}

func TestUnparsablePositionalArgIsAnError(t *testing.T) {
	_, err := execute(t, "", "abc", "4")
	require.Error(t, err)
}

func TestNoArgsFallsBackToInteractivePrompt(t *testing.T) {
	out, err := execute(t, "3\n3\n2\n0\n0\n0\n0\n")
	require.NoError(t, err)
	assert.Contains(t, out, "solutions = 16")
}
