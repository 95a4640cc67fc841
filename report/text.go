package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/clems4ever/spacy-inspect/model"
)

const indent = "   "

// textWriter keeps the first write error so sections can print unchecked.
type textWriter struct {
	w   io.Writer
	st  Styles
	err error
}

func (t *textWriter) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) line(format string, args ...interface{}) {
	t.printf(indent+format+"\n", args...)
}

func (t *textWriter) section(title string) {
	t.printf("\n%s\n", t.st.Header.Render(title))
}

func renderText(w io.Writer, rep *Report, st Styles) error {
	t := &textWriter{w: w, st: st}

	t.printf("%s\n", st.Banner.Render("✅ Model '"+rep.Model+"' loaded successfully!"))

	t.section("📍 Model Location:")
	t.line("%s", rep.Location)

	t.metadata(rep)
	t.pipeline(rep.Pipeline)
	t.vocabulary(rep.Vocabulary, rep.Verbose)

	t.section("🏷️  Named Entity Types:")
	t.labels(rep.Entities, "no entity labels declared")

	if rep.Verbose {
		t.section("📝 POS Tags:")
	} else {
		t.section("📝 POS Tags (sample):")
	}
	t.labels(rep.Tags.Labels, "no tag labels declared")
	if n := rep.Tags.Hidden(); n > 0 {
		t.line("... and %d more", n)
	}

	if rep.Verbose {
		t.section("🔗 Dependency Labels:")
		t.labels(rep.Dependencies, "no dependency labels declared")
	}

	t.test(rep.Test, rep.Verbose)

	t.section("📁 Model File Structure:")
	if len(rep.Files) == 0 {
		t.line("(empty)")
	}
	t.tree(rep.Files, "")

	if rep.MetaExcerpt.Present || rep.ConfigExcerpt.Present {
		t.section("📄 Sample File Contents:")
		t.excerpt(rep.MetaExcerpt, "keys")
		t.excerpt(rep.ConfigExcerpt, "lines")
	}

	t.section("💾 Storage Information:")
	t.line("Total model size: %s", humanize.IBytes(uint64(rep.Storage.TotalBytes)))
	if len(rep.Storage.Largest) > 0 {
		t.printf("\n")
		t.line("Largest files:")
		for _, f := range rep.Storage.Largest {
			t.line("- %s: %s", f.Path, humanize.IBytes(uint64(f.Bytes)))
		}
	}
	return t.err
}

func (t *textWriter) metadata(rep *Report) {
	md := rep.Metadata
	t.section("📊 Model Metadata:")
	t.line("Name: %s", md.Name)
	t.line("Version: %s", md.Version)
	t.line("Description: %s", orUnknown(md.Description))
	if md.LanguageName != "" {
		t.line("Language: %s (%s)", md.Language, md.LanguageName)
	} else {
		t.line("Language: %s", md.Language)
	}
	t.line("Pipeline: %s", strings.Join(md.Pipeline, ", "))
	t.line("Size: %s", orUnknown(md.Size))

	if !rep.Verbose {
		return
	}
	for _, kv := range [][2]string{
		{"spaCy version", md.SpacyVersion},
		{"Author", md.Author},
		{"License", md.License},
		{"URL", md.URL},
	} {
		if kv[1] != "" {
			t.line("%s: %s", kv[0], kv[1])
		}
	}
	if len(md.Scores) > 0 {
		t.line("Scores:")
		for _, s := range md.Scores {
			t.line("  %s: %.3f", s.Name, s.Value)
		}
	}
}

func (t *textWriter) pipeline(components []model.Component) {
	t.section("🔧 Pipeline Components:")
	if len(components) == 0 {
		t.line("(empty pipeline)")
		return
	}
	for _, c := range components {
		if c.Disabled {
			t.line("- %s: %s %s", c.Name, c.Type, t.st.Muted.Render("(disabled)"))
			continue
		}
		t.line("- %s: %s", c.Name, c.Type)
	}
}

func (t *textWriter) vocabulary(v model.Vocab, verbose bool) {
	t.section("📚 Vocabulary Info:")
	t.line("Vocabulary size: %s", humanize.Comma(int64(v.Size)))
	if v.Vectors > 0 {
		t.line("Vector dimensions: %d", v.Width)
	} else {
		t.line("Vector dimensions: No vectors")
	}
	t.line("Vectors available: %s", humanize.Comma(int64(v.Vectors)))
	if verbose && v.Keys > 0 {
		t.line("Vector keys: %s", humanize.Comma(int64(v.Keys)))
	}
}

func (t *textWriter) labels(labels []Label, empty string) {
	if len(labels) == 0 {
		t.line("(%s)", empty)
		return
	}
	for _, l := range labels {
		if l.Description == "" {
			t.line("- %s", l.Code)
			continue
		}
		t.line("- %s: %s", l.Code, l.Description)
	}
}

func (t *textWriter) test(run TestRun, verbose bool) {
	t.section("🧪 Model Test:")
	t.line("Input: %q", run.Input)

	words := make([]string, len(run.Tokens))
	pairs := make([]string, len(run.Tokens))
	for i, tok := range run.Tokens {
		words[i] = tok.Text
		pairs[i] = "(" + tok.Text + ", " + tok.POS + ")"
	}
	t.line("Tokens (%d): %s", len(words), strings.Join(words, " | "))
	if len(pairs) > 0 {
		t.line("Token POS: %s", strings.Join(pairs, ", "))
	}

	if len(run.Entities) == 0 {
		t.line("Entities found: none")
	} else {
		t.line("Entities found:")
		for _, e := range run.Entities {
			t.line("- (%q, %s)", e.Text, e.Label)
		}
	}

	if !verbose {
		return
	}
	if len(run.Tokens) > 0 {
		tbl := table.NewWriter()
		tbl.SetStyle(table.StyleLight)
		tbl.AppendHeader(table.Row{"Token", "POS", "Tag", "Dep", "Lemma"})
		for _, tok := range run.Tokens {
			tbl.AppendRow(table.Row{tok.Text, tok.POS, tok.Tag, tok.Dep, tok.Lemma})
		}
		t.printf("\n")
		for _, l := range strings.Split(tbl.Render(), "\n") {
			t.line("%s", l)
		}
	}
	if run.Subword != nil {
		t.line("Subword tokens (%s): %d vs %d model tokens",
			run.Subword.Encoding, run.Subword.Count, run.Subword.ModelTokens)
	}
}

func (t *textWriter) tree(nodes []FileNode, prefix string) {
	for i, n := range nodes {
		branch, next := "├── ", "│   "
		if i == len(nodes)-1 {
			branch, next = "└── ", "    "
		}
		name := n.Name
		if n.Dir {
			name += "/"
		}
		t.printf("%s%s%s\n", prefix, branch, name)
		if n.Dir {
			t.tree(n.Children, prefix+next)
		}
	}
}

func (t *textWriter) excerpt(ex Excerpt, unit string) {
	if !ex.Present {
		return
	}
	t.printf("\n")
	t.line("%s (first %d %s):", ex.File, len(ex.Lines), unit)
	for _, l := range ex.Lines {
		if l == "" {
			t.printf("\n")
			continue
		}
		t.line("     %s", l)
	}
	if ex.Truncated {
		t.line("     ...")
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
