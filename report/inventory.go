package report

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	treeDepth          = 3
	largestCount       = 5
	metaExcerptKeys    = 5
	configExcerptLines = 10
)

// FileNode is an entry of the install directory listing.
type FileNode struct {
	Name     string     `json:"name" yaml:"name"`
	Dir      bool       `json:"dir,omitempty" yaml:"dir,omitempty"`
	Size     int64      `json:"size,omitempty" yaml:"size,omitempty"`
	Children []FileNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Excerpt is the head of a bundled file.
type Excerpt struct {
	File      string   `json:"file" yaml:"file"`
	Present   bool     `json:"present" yaml:"present"`
	Lines     []string `json:"lines,omitempty" yaml:"lines,omitempty"`
	Truncated bool     `json:"truncated,omitempty" yaml:"truncated,omitempty"`
}

type Storage struct {
	TotalBytes int64      `json:"total_bytes" yaml:"total_bytes"`
	Largest    []FileSize `json:"largest" yaml:"largest"`
}

type FileSize struct {
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
	Bytes int64  `json:"bytes" yaml:"bytes"`
}

// fileTree lists dir depth levels deep, entries sorted by name.
func fileTree(dir string, depth int) ([]FileNode, error) {
	if depth <= 0 {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	nodes := make([]FileNode, 0, len(entries))
	for _, e := range entries {
		node := FileNode{Name: e.Name(), Dir: e.IsDir()}
		if e.IsDir() {
			children, err := fileTree(filepath.Join(dir, e.Name()), depth-1)
			if err != nil {
				return nil, err
			}
			node.Children = children
		} else if info, err := e.Info(); err == nil {
			node.Size = info.Size()
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// measure sums regular file sizes under dir and keeps the n largest files.
// A symlinked dir is measured at its target.
func measure(dir string, n int) (Storage, error) {
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	var st Storage
	var files []FileSize

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		st.TotalBytes += info.Size()
		files = append(files, FileSize{Name: d.Name(), Path: filepath.ToSlash(rel), Bytes: info.Size()})
		return nil
	})
	if err != nil {
		return Storage{}, err
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Bytes != files[j].Bytes {
			return files[i].Bytes > files[j].Bytes
		}
		return files[i].Path < files[j].Path
	})
	if len(files) > n {
		files = files[:n]
	}
	st.Largest = files
	return st, nil
}

// metaExcerpt renders the first n top-level keys of a JSON object in file
// order. Best effort: a decoding error ends the excerpt.
func metaExcerpt(path string, n int) Excerpt {
	ex := Excerpt{File: filepath.Base(path)}
	f, err := os.Open(path)
	if err != nil {
		return ex
	}
	defer f.Close()
	ex.Present = true

	dec := json.NewDecoder(f)
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return ex
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return ex
		}
		key, ok := tok.(string)
		if !ok {
			return ex
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return ex
		}
		if len(ex.Lines) == n {
			ex.Truncated = true
			return ex
		}
		ex.Lines = append(ex.Lines, key+": "+formatJSONValue(raw))
	}
	return ex
}

func formatJSONValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// lineExcerpt returns the first n lines of a text file.
func lineExcerpt(path string, n int) Excerpt {
	ex := Excerpt{File: filepath.Base(path)}
	f, err := os.Open(path)
	if err != nil {
		return ex
	}
	defer f.Close()
	ex.Present = true

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if len(ex.Lines) == n {
			ex.Truncated = true
			break
		}
		ex.Lines = append(ex.Lines, strings.TrimRight(sc.Text(), " \t\r"))
	}
	return ex
}
