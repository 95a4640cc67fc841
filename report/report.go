// Package report assembles and renders the inspection report of a loaded model.
package report

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/clems4ever/spacy-inspect/glossary"
	"github.com/clems4ever/spacy-inspect/model"
)

// SampleText is the sentence every model is tested on.
const SampleText = "Apple Inc. is looking at buying a startup in San Francisco for $1 billion."

// Subword counts tokens with a reference subword encoding.
type Subword interface {
	Name() string
	Count(text string) int
}

// Options tunes which details Build collects.
type Options struct {
	Verbose  bool
	TagLimit int
	Subword  Subword
}

// Report is everything printed about one model, in print order.
type Report struct {
	Model         string            `json:"model" yaml:"model"`
	Location      string            `json:"location" yaml:"location"`
	Metadata      Metadata          `json:"metadata" yaml:"metadata"`
	Pipeline      []model.Component `json:"pipeline" yaml:"pipeline"`
	Vocabulary    model.Vocab       `json:"vocabulary" yaml:"vocabulary"`
	Entities      []Label           `json:"entity_labels" yaml:"entity_labels"`
	Tags          LabelSample       `json:"tag_labels" yaml:"tag_labels"`
	Dependencies  []Label           `json:"dependency_labels,omitempty" yaml:"dependency_labels,omitempty"`
	Test          TestRun           `json:"test" yaml:"test"`
	Files         []FileNode        `json:"files" yaml:"files"`
	MetaExcerpt   Excerpt           `json:"meta_excerpt" yaml:"meta_excerpt"`
	ConfigExcerpt Excerpt           `json:"config_excerpt" yaml:"config_excerpt"`
	Storage       Storage           `json:"storage" yaml:"storage"`

	Verbose bool `json:"-" yaml:"-"`
}

type Metadata struct {
	Name         string        `json:"name" yaml:"name"`
	Version      string        `json:"version" yaml:"version"`
	Description  string        `json:"description" yaml:"description"`
	Language     string        `json:"language" yaml:"language"`
	LanguageName string        `json:"language_name,omitempty" yaml:"language_name,omitempty"`
	Pipeline     []string      `json:"pipeline" yaml:"pipeline"`
	Size         string        `json:"size,omitempty" yaml:"size,omitempty"`
	SpacyVersion string        `json:"spacy_version,omitempty" yaml:"spacy_version,omitempty"`
	Author       string        `json:"author,omitempty" yaml:"author,omitempty"`
	License      string        `json:"license,omitempty" yaml:"license,omitempty"`
	URL          string        `json:"url,omitempty" yaml:"url,omitempty"`
	Scores       []model.Score `json:"scores,omitempty" yaml:"scores,omitempty"`
}

// Label is a label code and its description; Description is empty for
// codes the glossary does not know.
type Label struct {
	Code        string `json:"code" yaml:"code"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// LabelSample is a possibly truncated label list.
type LabelSample struct {
	Labels []Label `json:"labels" yaml:"labels"`
	Total  int     `json:"total" yaml:"total"`
}

// Hidden is the number of labels left out of the sample.
func (s LabelSample) Hidden() int {
	return s.Total - len(s.Labels)
}

type TestRun struct {
	Input    string         `json:"input" yaml:"input"`
	Tokens   []model.Token  `json:"tokens" yaml:"tokens"`
	Entities []model.Entity `json:"entities" yaml:"entities"`
	Subword  *SubwordRun    `json:"subword,omitempty" yaml:"subword,omitempty"`
}

// SubwordRun compares the model's token count with a subword encoding.
type SubwordRun struct {
	Encoding    string `json:"encoding" yaml:"encoding"`
	Count       int    `json:"count" yaml:"count"`
	ModelTokens int    `json:"model_tokens" yaml:"model_tokens"`
}

// Build processes the sample sentence and inspects the install directory.
// Nothing is rendered until every section is collected.
func Build(ctx context.Context, m *model.Model, opts Options) (*Report, error) {
	doc, err := m.Process(ctx, SampleText)
	if err != nil {
		return nil, err
	}

	files, err := fileTree(m.Path, treeDepth)
	if err != nil {
		return nil, fmt.Errorf("failed to list model files: %w", err)
	}
	storage, err := measure(m.Path, largestCount)
	if err != nil {
		return nil, fmt.Errorf("failed to measure model files: %w", err)
	}

	rep := &Report{
		Model:         m.Name,
		Location:      m.Path,
		Metadata:      metadata(m.Meta, opts.Verbose),
		Pipeline:      m.Components,
		Vocabulary:    m.Vocab,
		Entities:      labels(m.EntityLabels, glossary.Entity),
		Tags:          sample(labels(m.TagLabels, glossary.Tag), opts.TagLimit, opts.Verbose),
		Files:         files,
		MetaExcerpt:   metaExcerpt(filepath.Join(m.Path, "meta.json"), metaExcerptKeys),
		ConfigExcerpt: lineExcerpt(filepath.Join(m.Path, "config.cfg"), configExcerptLines),
		Storage:       storage,
		Verbose:       opts.Verbose,
		Test: TestRun{
			Input:    doc.Text,
			Tokens:   doc.Tokens,
			Entities: doc.Entities,
		},
	}

	if opts.Verbose {
		rep.Dependencies = labels(m.DependencyLabels, glossary.Dependency)
		if opts.Subword != nil {
			rep.Test.Subword = &SubwordRun{
				Encoding:    opts.Subword.Name(),
				Count:       opts.Subword.Count(doc.Text),
				ModelTokens: len(doc.Tokens),
			}
		}
	}
	return rep, nil
}

func metadata(meta model.Meta, verbose bool) Metadata {
	md := Metadata{
		Name:         meta.Name,
		Version:      meta.Version,
		Description:  meta.Description,
		Language:     meta.Lang,
		LanguageName: LanguageName(meta.Lang),
		Pipeline:     meta.Pipeline,
		Size:         meta.Size,
	}
	if verbose {
		md.SpacyVersion = meta.SpacyVersion
		md.Author = meta.Author
		md.License = meta.License
		md.URL = meta.URL
		md.Scores = meta.Scores()
	}
	return md
}

func labels(codes []string, explain func(string) (string, bool)) []Label {
	out := make([]Label, 0, len(codes))
	for _, code := range codes {
		d, _ := explain(code)
		out = append(out, Label{Code: code, Description: d})
	}
	return out
}

func sample(all []Label, limit int, verbose bool) LabelSample {
	s := LabelSample{Labels: all, Total: len(all)}
	if !verbose && limit < len(all) {
		s.Labels = all[:limit]
	}
	return s
}

// LanguageName returns the English name of a language code. The multi-language
// code "xx" used by language-neutral pipelines has no ISO name.
func LanguageName(code string) string {
	if code == "" {
		return ""
	}
	if code == "xx" {
		return "Multi-language"
	}
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	return display.English.Languages().Name(tag)
}
