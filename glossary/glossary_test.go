package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntity(t *testing.T) {
	d, ok := Entity("ORG")
	assert.True(t, ok)
	assert.Equal(t, "Companies, agencies, institutions, etc.", d)

	_, ok = Entity("NN")
	assert.False(t, ok, "tags are not entity labels")

	_, ok = Entity("ZZZ")
	assert.False(t, ok)
}

func TestTag(t *testing.T) {
	for label, want := range map[string]string{
		"PROPN": "proper noun",
		"NNP":   "noun, proper singular",
		"$":     "symbol, currency",
		"PRP$":  "pronoun, possessive",
	} {
		d, ok := Tag(label)
		assert.True(t, ok, label)
		assert.Equal(t, want, d, label)
	}

	_, ok := Tag("XYZ")
	assert.False(t, ok)
}

func TestDependency(t *testing.T) {
	d, ok := Dependency("nsubj")
	assert.True(t, ok)
	assert.Equal(t, "nominal subject", d)

	_, ok = Dependency("ORG")
	assert.False(t, ok)
}
