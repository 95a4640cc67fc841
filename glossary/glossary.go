// Package glossary maps the label codes models emit to human descriptions.
//
// The tables carry the descriptions spaCy ships for its English and
// multi-language pipelines. Models may declare labels that are missing here;
// those explain to nothing and are shown by code alone.
package glossary

// Entity describes a named-entity label.
func Entity(label string) (string, bool) {
	d, ok := entities[label]
	return d, ok
}

// Tag describes a part-of-speech label, coarse or fine-grained.
func Tag(label string) (string, bool) {
	if d, ok := posTags[label]; ok {
		return d, true
	}
	d, ok := fineTags[label]
	return d, ok
}

// Dependency describes a syntactic dependency label.
func Dependency(label string) (string, bool) {
	d, ok := dependencies[label]
	return d, ok
}
