package cli

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:body>` +
	`<w:p><w:r><w:rPr><w:highlight w:val="yellow"/></w:rPr><w:t>Marked</w:t></w:r></w:p>` +
	`<w:p><w:r><w:t>Plain</w:t></w:r></w:p>` +
	`</w:body></w:document>`

func writeFixtureDocx(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	fw, err := writer.Create("word/document.xml")
	require.NoError(t, err)
	_, err = fw.Write([]byte(fixtureDocumentXML))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	path := filepath.Join(t.TempDir(), "fixture.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestExtractToJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	input := writeFixtureDocx(t)
	output := filepath.Join(t.TempDir(), "out.json")

	cmd := NewRootCommand("test", "none", "today")
	cmd.SetArgs([]string{"--format", "json", "-o", output, input})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var decoded struct {
		Paragraphs []struct {
			Text        string `json:"paragraph"`
			Highlighted []struct {
				Text  string `json:"text"`
				Color string `json:"color"`
			} `json:"highlighted"`
		} `json:"paragraphs"`
		AllImages []interface{} `json:"allImages"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Paragraphs, 2)
	assert.Equal(t, "Marked", decoded.Paragraphs[0].Text)
	require.Len(t, decoded.Paragraphs[0].Highlighted, 1)
	assert.Equal(t, "yellow", decoded.Paragraphs[0].Highlighted[0].Color)
	assert.Empty(t, decoded.AllImages)
}

func TestExtractParagraphsOnly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	input := writeFixtureDocx(t)
	output := filepath.Join(t.TempDir(), "out.json")

	cmd := NewRootCommand("test", "none", "today")
	cmd.SetArgs([]string{"--format", "json", "--paragraphs-only", "-o", output, input})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded), "paragraphs-only output must be a bare array")
	assert.Len(t, decoded, 2)
}

func TestExtractToXLSX(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	input := writeFixtureDocx(t)
	output := filepath.Join(t.TempDir(), "out.xlsx")

	cmd := NewRootCommand("test", "none", "today")
	cmd.SetArgs([]string{"--format", "xlsx", "-o", output, input})
	require.NoError(t, cmd.Execute())

	info, err := os.Stat(output)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRejectsUnknownFormatBeforeReadingInput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCommand("test", "none", "today")
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{"--format", "yaml", "does-not-exist.docx"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestXLSXRequiresOutputPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCommand("test", "none", "today")
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{"--format", "xlsx", "does-not-exist.docx"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires --output")
}

func TestMalformedInputFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	input := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(input, []byte("not a zip"), 0o644))

	cmd := NewRootCommand("test", "none", "today")
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{input})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed document")
}
