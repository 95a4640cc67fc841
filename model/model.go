// Package model reads installed spaCy pipeline packages into a read-only view.
//
// Package metadata is read straight from disk. Running the pipeline on text
// is delegated to a Processor, which in practice is the spaCy library itself
// reached through the Python interpreter (see package pyexec).
package model

import (
	"context"
	"encoding/json"
	"sort"
)

// Meta mirrors the fields of a package meta.json the inspector reports on.
type Meta struct {
	Lang         string                     `json:"lang"`
	Name         string                     `json:"name"`
	Version      string                     `json:"version"`
	Description  string                     `json:"description"`
	Author       string                     `json:"author"`
	Email        string                     `json:"email"`
	URL          string                     `json:"url"`
	License      string                     `json:"license"`
	SpacyVersion string                     `json:"spacy_version"`
	Size         string                     `json:"size"`
	Pipeline     []string                   `json:"pipeline"`
	Components   []string                   `json:"components"`
	Disabled     []string                   `json:"disabled"`
	Labels       map[string][]string        `json:"labels"`
	Vectors      VectorsMeta                `json:"vectors"`
	Performance  map[string]json.RawMessage `json:"performance"`
}

// VectorsMeta is the "vectors" block of meta.json.
type VectorsMeta struct {
	Width   int    `json:"width"`
	Vectors int    `json:"vectors"`
	Keys    int    `json:"keys"`
	Name    string `json:"name"`
}

// Scores returns the numeric top-level performance scores sorted by key.
// Nested breakdowns such as ents_per_type are skipped.
func (m Meta) Scores() []Score {
	var scores []Score
	for k, raw := range m.Performance {
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		scores = append(scores, Score{Name: k, Value: v})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].Name < scores[j].Name })
	return scores
}

// Score is one named evaluation metric.
type Score struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Component is a named pipeline stage.
type Component struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Vocab holds the vocabulary counts of the model. Size is the number of
// lexemes when the live pipeline reported it, else the string store count.
type Vocab struct {
	Size    int `json:"size" yaml:"size"`
	Vectors int `json:"vectors" yaml:"vectors"`
	Width   int `json:"width" yaml:"width"`
	Keys    int `json:"keys" yaml:"keys"`
}

// Token is one token of a processed document.
type Token struct {
	Text  string `json:"text" yaml:"text"`
	POS   string `json:"pos" yaml:"pos"`
	Tag   string `json:"tag" yaml:"tag"`
	Dep   string `json:"dep" yaml:"dep"`
	Lemma string `json:"lemma" yaml:"lemma"`
}

// Entity is a labeled character span of a processed document.
type Entity struct {
	Text  string `json:"text" yaml:"text"`
	Label string `json:"label" yaml:"label"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// Doc is the result of running a model on a piece of text.
type Doc struct {
	Text     string   `json:"text" yaml:"text"`
	Tokens   []Token  `json:"tokens" yaml:"tokens"`
	Entities []Entity `json:"ents" yaml:"ents"`

	// Pipeline is what the loaded pipeline reported about itself, if anything.
	Pipeline *PipelineInfo `json:"pipeline,omitempty" yaml:"-"`
}

// PipelineInfo describes a pipeline as loaded in memory.
type PipelineInfo struct {
	VocabSize    *int                `json:"vocab_size,omitempty"`
	VectorsShape []int               `json:"vectors_shape,omitempty"`
	Components   []Component         `json:"components,omitempty"`
	Labels       map[string][]string `json:"labels,omitempty"`
}

// Processor runs the pipeline stored at modelPath on text.
type Processor interface {
	Process(ctx context.Context, modelPath, text string) (*Doc, error)
}

// Model is the validated view of a loaded package.
type Model struct {
	Name             string
	Path             string
	Meta             Meta
	Components       []Component
	Vocab            Vocab
	EntityLabels     []string
	TagLabels        []string
	DependencyLabels []string

	processor Processor
}

// Process runs the model on text. Failures are reported as ErrLoadFailure.
// Whatever the pipeline reports about itself replaces the values read from
// disk.
func (m *Model) Process(ctx context.Context, text string) (*Doc, error) {
	if m.processor == nil {
		return nil, loadFailure(m.Name, errNoProcessor)
	}
	doc, err := m.processor.Process(ctx, m.Path, text)
	if err != nil {
		return nil, loadFailure(m.Name, err)
	}
	if doc == nil {
		doc = &Doc{}
	}
	if doc.Text == "" {
		doc.Text = text
	}
	m.refresh(doc.Pipeline)
	return doc, nil
}

func (m *Model) refresh(info *PipelineInfo) {
	if info == nil {
		return
	}
	if info.VocabSize != nil {
		m.Vocab.Size = *info.VocabSize
	}
	if len(info.VectorsShape) == 2 {
		m.Vocab.Vectors, m.Vocab.Width = info.VectorsShape[0], info.VectorsShape[1]
	}

	for _, live := range info.Components {
		if live.Type == "" {
			continue
		}
		found := false
		for i := range m.Components {
			if m.Components[i].Name == live.Name {
				m.Components[i].Type = live.Type
				found = true
			}
		}
		if !found {
			m.Components = append(m.Components, live)
		}
	}

	if l, ok := info.Labels["ner"]; ok {
		m.EntityLabels = l
	}
	if l, ok := info.Labels["tagger"]; ok && len(l) > 0 {
		m.TagLabels = l
	} else if l, ok := info.Labels["morphologizer"]; ok && len(l) > 0 {
		m.TagLabels = l
	}
	if l, ok := info.Labels["parser"]; ok {
		m.DependencyLabels = l
	}
}
