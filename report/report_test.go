package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clems4ever/spacy-inspect/model"
)

var update = flag.Bool("update", false, "update golden files")

const fixtureSitePackages = "../model/testdata/site-packages"

type fakeProcessor struct {
	doc *model.Doc
	err error
}

func (p fakeProcessor) Process(_ context.Context, _, _ string) (*model.Doc, error) {
	return p.doc, p.err
}

type fakeSubword struct{}

func (fakeSubword) Name() string          { return "fake_base" }
func (fakeSubword) Count(text string) int { return len(strings.Fields(text)) }

func sampleDoc(t *testing.T) *model.Doc {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "sample_doc.json"))
	require.NoError(t, err)
	var doc model.Doc
	require.NoError(t, json.Unmarshal(data, &doc))
	return &doc
}

func loadFixture(t *testing.T, p model.Processor) *model.Model {
	t.Helper()
	m, err := model.NewLoader([]string{fixtureSitePackages}, p, nil).Load(context.Background(), "en_test_sm")
	require.NoError(t, err)
	return m
}

func TestBuild_Fixture(t *testing.T) {
	m := loadFixture(t, fakeProcessor{doc: sampleDoc(t)})

	rep, err := Build(context.Background(), m, Options{TagLimit: 10})
	require.NoError(t, err)

	assert.Equal(t, "en_test_sm", rep.Model)
	assert.Equal(t, m.Path, rep.Location)
	assert.Equal(t, "English", rep.Metadata.LanguageName)
	assert.Empty(t, rep.Metadata.Author, "author is verbose only")
	assert.Equal(t, []Label{
		{Code: "GPE", Description: "Countries, cities, states"},
		{Code: "MONEY", Description: "Monetary values, including unit"},
		{Code: "ORG", Description: "Companies, agencies, institutions, etc."},
		{Code: "ZZZ"},
	}, rep.Entities)
	assert.Equal(t, 5, rep.Tags.Total)
	assert.Len(t, rep.Tags.Labels, 5)
	assert.Nil(t, rep.Dependencies)
	assert.Nil(t, rep.Test.Subword)

	assert.Equal(t, SampleText, rep.Test.Input)
	assert.Len(t, rep.Test.Entities, 3)

	names := make([]string, len(rep.Files))
	for i, f := range rep.Files {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"config.cfg", "meta.json", "ner", "parser", "tagger", "tokenizer", "vocab"}, names)

	assert.Equal(t, int64(1114), rep.Storage.TotalBytes)
	require.Len(t, rep.Storage.Largest, 5)
	assert.Equal(t, FileSize{Name: "meta.json", Path: "meta.json", Bytes: 794}, rep.Storage.Largest[0])
	assert.Equal(t, "vocab/strings.json", rep.Storage.Largest[3].Path)

	assert.True(t, rep.MetaExcerpt.Present)
	assert.True(t, rep.MetaExcerpt.Truncated)
	assert.Equal(t, "lang: en", rep.MetaExcerpt.Lines[0])
	assert.Len(t, rep.ConfigExcerpt.Lines, 10)
}

func TestBuild_SymlinkedModel(t *testing.T) {
	target, err := filepath.Abs(filepath.Join(fixtureSitePackages, "en_test_sm", "en_test_sm-0.1.0"))
	require.NoError(t, err)
	link := filepath.Join(t.TempDir(), "linked")
	require.NoError(t, os.Symlink(target, link))

	m, err := model.NewLoader(nil, fakeProcessor{doc: sampleDoc(t)}, nil).Load(context.Background(), link)
	require.NoError(t, err)
	rep, err := Build(context.Background(), m, Options{TagLimit: 10})
	require.NoError(t, err)

	assert.Equal(t, link, rep.Location)
	assert.Len(t, rep.Files, 7)
	assert.Equal(t, int64(1114), rep.Storage.TotalBytes)
	assert.Len(t, rep.Storage.Largest, 5)
}

func TestBuild_TagSample(t *testing.T) {
	m := loadFixture(t, fakeProcessor{doc: sampleDoc(t)})

	rep, err := Build(context.Background(), m, Options{TagLimit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Tags.Hidden())
	assert.Equal(t, "$", rep.Tags.Labels[0].Code)

	rep, err = Build(context.Background(), m, Options{TagLimit: 2, Verbose: true})
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Tags.Hidden())
	assert.Len(t, rep.Tags.Labels, 5)
}

func TestBuild_Verbose(t *testing.T) {
	m := loadFixture(t, fakeProcessor{doc: sampleDoc(t)})

	rep, err := Build(context.Background(), m, Options{Verbose: true, Subword: fakeSubword{}})
	require.NoError(t, err)

	assert.Equal(t, "spacy-inspect", rep.Metadata.Author)
	assert.Equal(t, "MIT", rep.Metadata.License)
	assert.Equal(t, []model.Score{{Name: "ents_f", Value: 0.84}, {Name: "tag_acc", Value: 0.97}}, rep.Metadata.Scores)
	assert.Equal(t, []Label{
		{Code: "ROOT", Description: "root"},
		{Code: "nsubj", Description: "nominal subject"},
		{Code: "dobj", Description: "direct object"},
	}, rep.Dependencies)

	require.NotNil(t, rep.Test.Subword)
	assert.Equal(t, SubwordRun{Encoding: "fake_base", Count: 14, ModelTokens: 16}, *rep.Test.Subword)
}

func TestBuild_ProcessFailure(t *testing.T) {
	m := loadFixture(t, fakeProcessor{err: errors.New("boom")})

	_, err := Build(context.Background(), m, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrLoadFailure))
}

func TestRender_TextGolden(t *testing.T) {
	m := loadFixture(t, fakeProcessor{doc: sampleDoc(t)})
	rep, err := Build(context.Background(), m, Options{TagLimit: 3})
	require.NoError(t, err)
	rep.Location = "<model-path>"

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep, FormatText, PlainStyles()))

	golden := filepath.Join("testdata", "report_text.golden")
	if *update {
		require.NoError(t, os.WriteFile(golden, buf.Bytes(), 0644))
	}
	expected, err := os.ReadFile(golden)
	require.NoError(t, err, "golden file missing, run with -update to generate")
	assert.Equal(t, string(expected), buf.String(), "Run with -update to fix.")
}

func TestRender_TextIsStable(t *testing.T) {
	m := loadFixture(t, fakeProcessor{doc: sampleDoc(t)})

	render := func() string {
		rep, err := Build(context.Background(), m, Options{TagLimit: 10, Verbose: true})
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, rep, FormatText, PlainStyles()))
		return buf.String()
	}
	first := render()
	assert.Equal(t, first, render())
	assert.NotContains(t, first, "\x1b[")
}

func TestRender_TextVerbose(t *testing.T) {
	m := loadFixture(t, fakeProcessor{doc: sampleDoc(t)})
	rep, err := Build(context.Background(), m, Options{Verbose: true, Subword: fakeSubword{}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep, FormatText, PlainStyles()))
	out := buf.String()

	assert.Contains(t, out, "📝 POS Tags:\n")
	assert.Contains(t, out, "   - XYZ\n")
	assert.Contains(t, out, "🔗 Dependency Labels:\n   - ROOT: root\n")
	assert.Contains(t, out, "   License: MIT\n")
	assert.Contains(t, out, "     ents_f: 0.840\n")
	assert.Contains(t, out, "LEMMA")
	assert.Contains(t, out, "Subword tokens (fake_base): 14 vs 16 model tokens")
	assert.NotContains(t, out, "... and")
}

func TestRender_EmptyModel(t *testing.T) {
	rep := &Report{Model: "blank", Location: "/tmp/blank", Tags: LabelSample{}}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep, FormatText, PlainStyles()))
	out := buf.String()

	assert.Contains(t, out, "   (empty pipeline)\n")
	assert.Contains(t, out, "   (no entity labels declared)\n")
	assert.Contains(t, out, "   Entities found: none\n")
	assert.Contains(t, out, "   (empty)\n")
	assert.NotContains(t, out, "Sample File Contents")
	assert.Contains(t, out, "   Total model size: 0 B\n")
}

func TestRender_JSON(t *testing.T) {
	m := loadFixture(t, fakeProcessor{doc: sampleDoc(t)})
	rep, err := Build(context.Background(), m, Options{TagLimit: 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep, FormatJSON, PlainStyles()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "en_test_sm", decoded["model"])
	assert.Equal(t, m.Path, decoded["location"])
	assert.NotContains(t, decoded, "dependency_labels")
	assert.NotContains(t, buf.String(), "Verbose")
}

func TestRender_YAML(t *testing.T) {
	m := loadFixture(t, fakeProcessor{doc: sampleDoc(t)})
	rep, err := Build(context.Background(), m, Options{TagLimit: 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, rep, FormatYAML, PlainStyles()))
	assert.Contains(t, buf.String(), "model: en_test_sm\n")
	assert.Contains(t, buf.String(), "total_bytes: 1114\n")
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "json", "yaml"} {
		f, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, Format(s), f)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "German", LanguageName("de"))
	assert.Equal(t, "Multi-language", LanguageName("xx"))
	assert.Equal(t, "", LanguageName(""))
}
