package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/clems4ever/spacy-inspect/config"
	"github.com/clems4ever/spacy-inspect/model"
	"github.com/clems4ever/spacy-inspect/report"
)

// runList prints the installed models. Discovery errors are logged and the
// listing continues with whatever was found.
func runList(cmd *cobra.Command, src Source, cfg *config.Config, logger *slog.Logger) error {
	out := cmd.OutOrStdout()

	var models []model.Installed
	if src != nil {
		found, err := src.List(cmd.Context())
		if err != nil {
			logger.Warn("model discovery failed", "error", err)
		}
		models = found
	}
	if models == nil {
		models = []model.Installed{}
	}

	switch report.Format(cfg.Output) {
	case report.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(models)
	case report.FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(models); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(models) == 0 {
		fmt.Fprintln(out, "No models installed.")
		fmt.Fprintf(out, "Download one with: python -m spacy download %s\n", DefaultModel)
		return nil
	}

	fmt.Fprintf(out, "📦 Installed models (%d):\n", len(models))
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Version", "Location"})
	for _, m := range models {
		t.AppendRow(table.Row{m.Name, m.Version, m.Path})
	}
	t.Render()
	return nil
}
