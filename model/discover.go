package model

import (
	"bufio"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// entryPointGroup is the entry point group spaCy packages register under.
const entryPointGroup = "spacy_models"

// Installed describes a model package found on a search path.
type Installed struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	Path    string `json:"path" yaml:"path"`
}

// List returns every model package on the search paths, sorted by name.
// A package found on an earlier search path shadows later ones.
func (l *Loader) List(ctx context.Context) ([]Installed, error) {
	seen := make(map[string]bool)
	var out []Installed

	for _, root := range l.searchPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, pkg := range l.candidates(root) {
			if seen[pkg] {
				continue
			}
			dir, ok := resolvePackage(root, pkg)
			if !ok {
				l.logger.Debug("model.list.unresolved", "package", pkg, "root", root)
				continue
			}
			meta, err := readMeta(filepath.Join(dir, metaFile))
			if err != nil {
				l.logger.Warn("model.list.bad_meta", "package", pkg, "error", err)
				continue
			}
			seen[pkg] = true
			out = append(out, Installed{Name: pkg, Version: meta.Version, Path: dir})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// candidates returns the package names under root that may be models:
// declared spacy_models entry points first, then directories that look like
// a versioned model package.
func (l *Loader) candidates(root string) []string {
	var names []string

	infos, _ := filepath.Glob(filepath.Join(root, "*.dist-info", "entry_points.txt"))
	sort.Strings(infos)
	for _, path := range infos {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		names = append(names, parseEntryPoints(f, entryPointGroup)...)
		f.Close()
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		l.logger.Debug("model.list.unreadable", "root", root, "error", err)
		return names
	}
	for _, e := range entries {
		if e.IsDir() && !strings.Contains(e.Name(), ".") && !strings.HasPrefix(e.Name(), "_") {
			names = append(names, e.Name())
		}
	}
	return names
}

// parseEntryPoints returns the entry point names declared under group in an
// entry_points.txt file.
func parseEntryPoints(r io.Reader, group string) []string {
	var names []string
	inGroup := false

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inGroup = strings.TrimSpace(line[1:len(line)-1]) == group
			continue
		}
		if !inGroup {
			continue
		}
		name, _, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}
