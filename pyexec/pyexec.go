// Package pyexec runs small programs on the Python interpreter spaCy is
// installed into.
package pyexec

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/clems4ever/spacy-inspect/config"
	"github.com/clems4ever/spacy-inspect/model"
)

// processProgram loads a pipeline from a path and prints the processed
// document as JSON, along with what the loaded pipeline reports about its
// vocabulary and components. argv: model path, text.
const processProgram = `import json, sys
import spacy

def labels(pipe):
    try:
        return [str(l) for l in pipe.labels]
    except Exception:
        return None

nlp = spacy.load(sys.argv[1])
doc = nlp(sys.argv[2])
components = []
pipe_labels = {}
for name in nlp.component_names:
    pipe = nlp.get_pipe(name)
    components.append({"name": name, "type": type(pipe).__name__, "disabled": name in nlp.disabled})
    found = labels(pipe)
    if found is not None:
        pipe_labels[name] = found
json.dump({
    "text": doc.text,
    "tokens": [{"text": t.text, "pos": t.pos_, "tag": t.tag_, "dep": t.dep_, "lemma": t.lemma_} for t in doc],
    "ents": [{"text": e.text, "label": e.label_, "start": e.start_char, "end": e.end_char} for e in doc.ents],
    "pipeline": {
        "vocab_size": len(nlp.vocab),
        "vectors_shape": list(nlp.vocab.vectors.shape),
        "components": components,
        "labels": pipe_labels,
    },
}, sys.stdout)
`

const sysPathProgram = `import json, sys
json.dump(sys.path, sys.stdout)
`

// Runner executes programs on one interpreter.
type Runner struct {
	python string
	logger *slog.Logger
}

// New creates a Runner. An empty python selects config.DefaultPython.
func New(python string, logger *slog.Logger) *Runner {
	if python == "" {
		python = config.DefaultPython
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{python: python, logger: logger}
}

// Python returns the interpreter command.
func (r *Runner) Python() string {
	return r.python
}

// Process implements model.Processor.
func (r *Runner) Process(ctx context.Context, modelPath, text string) (*model.Doc, error) {
	out, err := r.run(ctx, processProgram, modelPath, text)
	if err != nil {
		return nil, err
	}

	var doc model.Doc
	if err := json.Unmarshal(out, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode processed document: %w", err)
	}
	return &doc, nil
}

// SysPath returns the interpreter module search path, keeping only entries
// that are existing directories.
func (r *Runner) SysPath(ctx context.Context) ([]string, error) {
	out, err := r.run(ctx, sysPathProgram)
	if err != nil {
		return nil, err
	}

	var entries []string
	if err := json.Unmarshal(out, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode sys.path: %w", err)
	}

	dirs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e == "" {
			continue
		}
		if info, err := os.Stat(e); err == nil && info.IsDir() {
			dirs = append(dirs, e)
		}
	}
	return dirs, nil
}

func (r *Runner) run(ctx context.Context, program string, args ...string) ([]byte, error) {
	argv := append([]string{"-c", program}, args...)
	cmd := exec.CommandContext(ctx, r.python, argv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("pyexec.run", "python", r.python, "args", args)
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if msg := lastLine(stderr.String()); msg != "" {
				return nil, fmt.Errorf("%s exited with status %d: %s", r.python, exitErr.ExitCode(), msg)
			}
			return nil, fmt.Errorf("%s exited with status %d", r.python, exitErr.ExitCode())
		}
		return nil, fmt.Errorf("failed to run %s: %w", r.python, err)
	}
	return stdout.Bytes(), nil
}

// lastLine returns the last non-blank line, which for a Python traceback is
// the exception message.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}
