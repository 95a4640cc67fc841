package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/clems4ever/spacy-inspect/config"
	"github.com/clems4ever/spacy-inspect/model"
	"github.com/clems4ever/spacy-inspect/pyexec"
	"github.com/clems4ever/spacy-inspect/report"
	"github.com/clems4ever/spacy-inspect/tokenizer"
)

// newSource searches --site-packages, or the interpreter's sys.path when
// none were given. An unusable interpreter leaves the search path empty so
// that lookups by name report the model as not installed.
func newSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Source, error) {
	runner := pyexec.New(cfg.Python, logger)

	paths := cfg.SitePackages
	if len(paths) == 0 {
		sysPath, err := runner.SysPath(ctx)
		if err != nil {
			logger.Warn("could not read interpreter search path", "python", runner.Python(), "error", err)
		}
		paths = sysPath
	}
	logger.Debug("resolved model search path", "python", runner.Python(), "paths", paths)

	return model.NewLoader(paths, runner, logger), nil
}

func newSubword(cfg *config.Config) (report.Subword, error) {
	tok, err := tokenizer.NewTokenizer(cfg.BPECache)
	if err != nil {
		return nil, err
	}
	return tok, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
