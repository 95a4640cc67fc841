package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/clems4ever/spacy-inspect/model"
	"github.com/clems4ever/spacy-inspect/report"
)

// docProcessor answers every request with a recorded document.
type docProcessor struct {
	doc *model.Doc
}

func (p docProcessor) Process(context.Context, string, string) (*model.Doc, error) {
	return p.doc, nil
}

func main() {
	// Paths are relative to the repository root
	sitePackages := "model/testdata/site-packages"
	docFile := "report/testdata/sample_doc.json"
	outputFile := "report/testdata/report_text.golden"

	if _, err := os.Stat(sitePackages); os.IsNotExist(err) {
		log.Fatalf("Fixture not found: %s. Please run this command from the repository root.", sitePackages)
	}

	fmt.Printf("Reading %s...\n", docFile)
	data, err := os.ReadFile(docFile)
	if err != nil {
		log.Fatalf("Failed to read recorded document: %v", err)
	}
	var doc model.Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Fatalf("Failed to decode recorded document: %v", err)
	}

	ctx := context.Background()
	m, err := model.NewLoader([]string{sitePackages}, docProcessor{doc: &doc}, nil).Load(ctx, "en_test_sm")
	if err != nil {
		log.Fatalf("Failed to load fixture model: %v", err)
	}

	fmt.Println("Rendering report...")
	rep, err := report.Build(ctx, m, report.Options{TagLimit: 3})
	if err != nil {
		log.Fatalf("Failed to build report: %v", err)
	}
	rep.Location = "<model-path>"

	var buf bytes.Buffer
	if err := report.Render(&buf, rep, report.FormatText, report.PlainStyles()); err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}

	fmt.Printf("Writing to %s...\n", outputFile)
	if err := os.WriteFile(outputFile, buf.Bytes(), 0644); err != nil {
		log.Fatalf("Failed to write output file: %v", err)
	}

	fmt.Println("Done. Golden file updated.")
}
