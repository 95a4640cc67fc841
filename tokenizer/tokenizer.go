// Package tokenizer counts cl100k_base subword tokens for comparison with a
// model's own tokenization. The encoding is read from a local cache
// directory; nothing is fetched over the network.
package tokenizer

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Encoding is the BPE encoding used for comparisons.
const Encoding = "cl100k_base"

type Tokenizer struct {
	contentTokenizer *tiktoken.Tiktoken
}

// localLoader resolves tiktoken encoding files inside a directory, keyed by
// the base name of the URL tiktoken asks for.
type localLoader struct {
	dir string
}

func (l localLoader) LoadTiktokenBpe(tiktokenBpeFile string) (map[string]int, error) {
	name := path.Base(tiktokenBpeFile)
	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open bpe file: %w", err)
	}
	defer f.Close()
	return parseBpe(f)
}

// NewTokenizer loads the cl100k_base encoding from cacheDir, which must hold
// cl100k_base.tiktoken.
func NewTokenizer(cacheDir string) (*Tokenizer, error) {
	if cacheDir == "" {
		return nil, fmt.Errorf("no bpe cache directory configured")
	}
	if _, err := os.Stat(filepath.Join(cacheDir, Encoding+".tiktoken")); err != nil {
		return nil, fmt.Errorf("failed to find bpe file: %w", err)
	}

	tiktoken.SetBpeLoader(localLoader{dir: cacheDir})
	tke, err := tiktoken.GetEncoding(Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to get tiktoken encoding: %w", err)
	}

	return &Tokenizer{contentTokenizer: tke}, nil
}

// Name returns the encoding name.
func (t *Tokenizer) Name() string {
	return Encoding
}

// Count returns the number of subword tokens in text.
func (t *Tokenizer) Count(text string) int {
	return len(t.contentTokenizer.Encode(text, nil, nil))
}

// parseBpe reads the tiktoken file format: one "<base64 token> <rank>" per line.
func parseBpe(r io.Reader) (map[string]int, error) {
	ranks := make(map[string]int)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		encoded, rankStr, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("line %d: expected token and rank", lineNo)
		}
		token, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad token: %w", lineNo, err)
		}
		rank, err := strconv.Atoi(strings.TrimSpace(rankStr))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad rank: %w", lineNo, err)
		}
		ranks[string(token)] = rank
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ranks, nil
}
