package nbformat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notebook-ci/nbcheck/internal/core/domain"
)

const sampleNotebook = `{
  "nbformat": 4,
  "nbformat_minor": 5,
  "metadata": {"kernelspec": {"name": "python3"}},
  "cells": [
    {
      "cell_type": "markdown",
      "metadata": {},
      "source": ["# Title\n", "Some [link](images/a.png) text."]
    },
    {
      "cell_type": "code",
      "metadata": {"expected-error-marker": "Division by zero"},
      "source": "1/0",
      "outputs": [
        {"output_type": "error", "ename": "ZeroDivisionError", "evalue": "Division by zero attempted"}
      ]
    },
    {
      "cell_type": "code",
      "metadata": {},
      "source": "x = 1",
      "outputs": []
    },
    {
      "cell_type": "code",
      "metadata": {},
      "source": "y = 2"
    }
  ]
}`

func TestParse(t *testing.T) {
	nb, err := Parse([]byte(sampleNotebook), "/nb/sample.ipynb")
	require.NoError(t, err)
	assert.Equal(t, "/nb/sample.ipynb", nb.Path)
	require.Len(t, nb.Cells, 4)

	md := nb.Cells[0]
	assert.Equal(t, domain.CellTypeMarkdown, md.Type)
	assert.Equal(t, "# Title\nSome [link](images/a.png) text.", md.Source)
	assert.False(t, md.HasOutputs)

	code := nb.Cells[1]
	assert.Equal(t, domain.CellTypeCode, code.Type)
	assert.Equal(t, "1/0", code.Source)
	assert.True(t, code.HasOutputs)
	require.Len(t, code.Outputs, 1)
	assert.Equal(t, domain.OutputTypeError, code.Outputs[0].Type)
	assert.Equal(t, "Division by zero attempted", code.Outputs[0].EValue)

	ann := domain.ClassifyCell(code)
	assert.Equal(t, domain.AnnotationExpected, ann.Kind)
	assert.Equal(t, "Division by zero", ann.Marker)
}

func TestParse_EmptyOutputsDistinctFromAbsent(t *testing.T) {
	nb, err := Parse([]byte(sampleNotebook), "")
	require.NoError(t, err)

	withEmpty := nb.Cells[2]
	assert.True(t, withEmpty.HasOutputs)
	assert.Empty(t, withEmpty.Outputs)

	without := nb.Cells[3]
	assert.False(t, without.HasOutputs)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidNotebook)
}

func TestReader_Read(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.ipynb")
	require.NoError(t, os.WriteFile(path, []byte(sampleNotebook), 0600))

	nb, err := NewReader().Read(path)
	require.NoError(t, err)
	assert.Equal(t, path, nb.Path)
	assert.Len(t, nb.Cells, 4)
}

func TestReader_ReadMissingFile(t *testing.T) {
	_, err := NewReader().Read(filepath.Join(t.TempDir(), "missing.ipynb"))
	assert.Error(t, err)
}
