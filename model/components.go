package model

// componentTypes maps built-in factory names to the class that implements them.
var componentTypes = map[string]string{
	"attribute_ruler":      "AttributeRuler",
	"beam_ner":             "EntityRecognizer",
	"beam_parser":          "DependencyParser",
	"curated_transformer":  "CuratedTransformer",
	"doc_cleaner":          "DocCleaner",
	"entity_linker":        "EntityLinker",
	"entity_ruler":         "EntityRuler",
	"future_entity_ruler":  "SpanRuler",
	"lemmatizer":           "Lemmatizer",
	"merge_entities":       "merge_entities",
	"merge_noun_chunks":    "merge_noun_chunks",
	"merge_subtokens":      "merge_subtokens",
	"morphologizer":        "Morphologizer",
	"ner":                  "EntityRecognizer",
	"parser":               "DependencyParser",
	"senter":               "SentenceRecognizer",
	"sentencizer":          "Sentencizer",
	"span_finder":          "SpanFinder",
	"span_ruler":           "SpanRuler",
	"spancat":              "SpanCategorizer",
	"spancat_singlelabel":  "SpanCategorizer",
	"tagger":               "Tagger",
	"textcat":              "TextCategorizer",
	"textcat_multilabel":   "MultiLabel_TextCategorizer",
	"tok2vec":              "Tok2Vec",
	"token_splitter":       "TokenSplitter",
	"trainable_lemmatizer": "EditTreeLemmatizer",
	"transformer":          "Transformer",
}

// UnknownComponentType is reported for components with a custom factory.
const UnknownComponentType = "custom component"

// ComponentType returns the class name of a pipeline component by name.
func ComponentType(name string) string {
	if t, ok := componentTypes[name]; ok {
		return t
	}
	return UnknownComponentType
}
