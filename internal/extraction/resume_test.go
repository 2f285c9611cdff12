package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-coach/internal/taxonomy"
)

const sampleResume = `Jane Doe
Backend engineer with 6 years of experience in python, go and postgresql.

Experience
Built payment services at Acme Systems using docker and aws.
Scaled ingestion pipelines at Globex Data Platform.

Projects
• Implemented a rate limiter for a public api gateway in production use
• Wrote an open source terraform module adopted by several internal teams

Education
BSc Computer Science.`

func newTestResumeParser(t *testing.T) *ResumeParser {
	t.Helper()
	tax, err := taxonomy.LoadSkillTaxonomy()
	require.NoError(t, err)
	parser, err := NewResumeParser(tax)
	require.NoError(t, err)
	return parser
}

func TestResumeParser_Parse(t *testing.T) {
	parser := newTestResumeParser(t)
	profile := parser.Parse(sampleResume)

	assert.Equal(t, []string{"Python", "Go"}, profile.Skills["languages"])
	assert.Equal(t, []string{"Postgresql"}, profile.Skills["databases"])
	assert.ElementsMatch(t, []string{"Aws", "Docker", "Terraform"}, profile.Skills["cloud"])
	assert.Equal(t, profile.Skills.TotalSkills(), profile.TotalSkills)

	assert.Equal(t, 6, profile.Experience.Years)
	assert.Contains(t, profile.Experience.Companies, "Acme Systems")

	require.Len(t, profile.Projects, 2)
	assert.Contains(t, profile.Projects[0], "rate limiter")
}

func TestResumeParser_ParseEmptyText(t *testing.T) {
	parser := newTestResumeParser(t)
	profile := parser.Parse("")

	assert.Empty(t, profile.Skills)
	assert.Zero(t, profile.TotalSkills)
	assert.Zero(t, profile.Experience.Years)
	assert.Empty(t, profile.Projects)
}

func TestResumeParser_RawExcerptTruncated(t *testing.T) {
	parser := newTestResumeParser(t)
	profile := parser.Parse(strings.Repeat("x", 2500))
	assert.Len(t, profile.RawExcerpt, 1000)
}

func TestPlainTextExtractor(t *testing.T) {
	ext := PlainTextExtractor{}

	text, err := ext.ExtractText([]byte("plain resume text"), FormatPlainText)
	require.NoError(t, err)
	assert.Equal(t, "plain resume text", text)
}

func TestPlainTextExtractor_RejectsPDF(t *testing.T) {
	ext := PlainTextExtractor{}

	_, err := ext.ExtractText([]byte("%PDF-1.4"), FormatPDF)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestPlainTextExtractor_RejectsInvalidUTF8(t *testing.T) {
	ext := PlainTextExtractor{}

	_, err := ext.ExtractText([]byte{0xff, 0xfe, 0xfd}, FormatPlainText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}
