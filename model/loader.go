package model

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const (
	metaFile    = "meta.json"
	configFile  = "config.cfg"
	stringsFile = "strings.json"
	vocabDir    = "vocab"
)

var errNoProcessor = errors.New("no processor configured")

// Loader resolves identifiers against a list of search paths.
type Loader struct {
	searchPaths []string
	processor   Processor
	logger      *slog.Logger
}

// NewLoader creates a loader. A nil logger discards log output.
func NewLoader(searchPaths []string, processor Processor, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		searchPaths: searchPaths,
		processor:   processor,
		logger:      logger,
	}
}

// Load resolves and reads the model named id.
func (l *Loader) Load(ctx context.Context, id string) (*Model, error) {
	if id == "" {
		return nil, notFound(id, errors.New("empty model identifier"))
	}

	dir, err := l.resolve(id)
	if err != nil {
		return nil, err
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	l.logger.Debug("model.resolved", "model", id, "path", dir)

	meta, err := readMeta(filepath.Join(dir, metaFile))
	if err != nil {
		return nil, loadFailure(id, err)
	}
	if err := validateMeta(meta); err != nil {
		return nil, loadFailure(id, err)
	}

	strs, err := countStrings(filepath.Join(dir, vocabDir, stringsFile))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, loadFailure(id, err)
		}
		l.logger.Debug("model.no_string_store", "model", id)
	}

	return newModel(id, dir, meta, strs, l.processor), nil
}

func newModel(id, dir string, meta *Meta, strs int, p Processor) *Model {
	disabled := make(map[string]bool, len(meta.Disabled))
	for _, name := range meta.Disabled {
		disabled[name] = true
	}

	components := make([]Component, 0, len(meta.Pipeline)+len(meta.Disabled))
	for _, name := range meta.Pipeline {
		components = append(components, Component{Name: name, Type: ComponentType(name)})
	}
	for _, name := range meta.Disabled {
		components = append(components, Component{Name: name, Type: ComponentType(name), Disabled: true})
	}

	tags := meta.Labels["tagger"]
	if len(tags) == 0 {
		tags = meta.Labels["morphologizer"]
	}

	return &Model{
		Name:       id,
		Path:       dir,
		Meta:       *meta,
		Components: components,
		Vocab: Vocab{
			Size:    strs,
			Vectors: meta.Vectors.Vectors,
			Width:   meta.Vectors.Width,
			Keys:    meta.Vectors.Keys,
		},
		EntityLabels:     meta.Labels["ner"],
		TagLabels:        tags,
		DependencyLabels: meta.Labels["parser"],
		processor:        p,
	}
}

// resolve returns the data directory holding meta.json for id.
func (l *Loader) resolve(id string) (string, error) {
	if isPath(id) {
		dir, err := filepath.Abs(id)
		if err != nil {
			return "", notFound(id, err)
		}
		if !fileExists(filepath.Join(dir, metaFile)) {
			return "", notFound(id, fmt.Errorf("no %s in %s", metaFile, dir))
		}
		return dir, nil
	}

	for _, root := range l.searchPaths {
		l.logger.Debug("model.search", "model", id, "root", root)
		if dir, ok := resolvePackage(root, id); ok {
			return dir, nil
		}
	}
	return "", notFound(id, fmt.Errorf("searched %d path(s)", len(l.searchPaths)))
}

// resolvePackage finds the data directory of package pkg under root.
// The versioned layout <pkg>/<pkg>-<version>/ wins over a flat package.
func resolvePackage(root, pkg string) (string, bool) {
	pkgDir := filepath.Join(root, pkg)
	entries, err := os.ReadDir(pkgDir)
	if err != nil {
		return "", false
	}

	var versioned []string
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), pkg+"-") {
			continue
		}
		if fileExists(filepath.Join(pkgDir, e.Name(), metaFile)) {
			versioned = append(versioned, e.Name())
		}
	}
	if len(versioned) > 0 {
		sort.Slice(versioned, func(i, j int) bool {
			return compareVersions(versioned[i][len(pkg)+1:], versioned[j][len(pkg)+1:]) < 0
		})
		return filepath.Join(pkgDir, versioned[len(versioned)-1]), true
	}

	if fileExists(filepath.Join(pkgDir, metaFile)) && fileExists(filepath.Join(pkgDir, configFile)) {
		return pkgDir, true
	}
	return "", false
}

// compareVersions orders dotted versions segment by segment. Numeric
// segments compare as numbers, anything else as text.
func compareVersions(a, b string) int {
	split := func(v string) []string {
		return strings.FieldsFunc(v, func(r rune) bool { return r == '.' || r == '-' || r == '+' })
	}
	as, bs := split(a), split(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		x, xerr := strconv.Atoi(as[i])
		y, yerr := strconv.Atoi(bs[i])
		switch {
		case xerr == nil && yerr == nil:
			if c := cmp.Compare(x, y); c != 0 {
				return c
			}
		case xerr == nil:
			return 1
		case yerr == nil:
			return -1
		default:
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c
			}
		}
	}
	return cmp.Compare(len(as), len(bs))
}

func readMeta(path string) (*Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open meta file: %w", err)
	}
	defer f.Close()

	var meta Meta
	if err := json.NewDecoder(f).Decode(&meta); err != nil {
		return nil, fmt.Errorf("failed to decode meta file: %w", err)
	}
	return &meta, nil
}

func validateMeta(meta *Meta) error {
	switch {
	case meta.Lang == "":
		return errors.New("meta.json is missing \"lang\"")
	case meta.Name == "":
		return errors.New("meta.json is missing \"name\"")
	case meta.Version == "":
		return errors.New("meta.json is missing \"version\"")
	}

	seen := make(map[string]bool, len(meta.Pipeline))
	for _, name := range meta.Pipeline {
		if seen[name] {
			return fmt.Errorf("pipeline lists component %q twice", name)
		}
		seen[name] = true
	}
	return nil
}

// countStrings counts the entries of a string store without holding it in memory.
func countStrings(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return 0, fmt.Errorf("failed to read string store: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return 0, fmt.Errorf("string store is not a JSON array")
	}

	n := 0
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("failed to read string store: %w", err)
		}
		n++
	}
	return n, nil
}

func isPath(id string) bool {
	return filepath.IsAbs(id) || strings.ContainsRune(id, os.PathSeparator) || strings.HasPrefix(id, ".")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
