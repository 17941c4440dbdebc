// Package classify owns language detection for the two buffers: the fixed
// catalog of selectable languages, the chroma-backed classifier, and the
// debounce pipeline that decides when classification runs.
package classify

// Language pairs a display label with the concrete tag used by the classifier
// and the highlighter. Tags are chroma lexer aliases.
type Language struct {
	Label string
	Tag   string
}

// TagPlainText is the universal fallback tag. It is a catalog member but is
// excluded from the tag set offered to the classifier.
const TagPlainText = "plaintext"

// SelectionAuto is the selection value meaning "follow detection". It is a
// valid stored selection but never a catalog tag.
const SelectionAuto = "auto"

// catalog is the fixed, ordered set of selectable languages. Plain text
// first, then alphabetical by label.
var catalog = []Language{
	{"Plain text", TagPlainText},
	{"Bash", "bash"},
	{"C", "c"},
	{"C++", "cpp"},
	{"CSS", "css"},
	{"Go", "go"},
	{"HTML", "html"},
	{"Java", "java"},
	{"JavaScript", "javascript"},
	{"JSON", "json"},
	{"Markdown", "markdown"},
	{"PHP", "php"},
	{"Python", "python"},
	{"Ruby", "ruby"},
	{"Rust", "rust"},
	{"SQL", "sql"},
	{"TOML", "toml"},
	{"TypeScript", "typescript"},
	{"XML", "xml"},
	{"YAML", "yaml"},
}

// Catalog returns the ordered language catalog.
func Catalog() []Language {
	return append([]Language(nil), catalog...)
}

// ClassifierTags returns the tags the classifier may choose from: every
// catalog entry except the plain-text fallback.
func ClassifierTags() []string {
	tags := make([]string, 0, len(catalog)-1)
	for _, l := range catalog {
		if l.Tag == TagPlainText {
			continue
		}
		tags = append(tags, l.Tag)
	}
	return tags
}

// IsCatalogTag reports whether tag is a catalog member.
func IsCatalogTag(tag string) bool {
	for _, l := range catalog {
		if l.Tag == tag {
			return true
		}
	}
	return false
}

// IsConcrete reports whether v names an actual language rather than the
// automatic sentinel.
func IsConcrete(v string) bool {
	return v != SelectionAuto && IsCatalogTag(v)
}

// ValidSelection reports whether v is storable as the language preference.
func ValidSelection(v string) bool {
	return v == SelectionAuto || IsCatalogTag(v)
}

// LabelFor returns the display label for tag, or tag itself when it is not
// in the catalog.
func LabelFor(tag string) string {
	for _, l := range catalog {
		if l.Tag == tag {
			return l.Label
		}
	}
	return tag
}
