package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFileTree_Depth(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "b", "c", "deep.bin"), "x")
	writeFile(t, filepath.Join(dir, "z.txt"), "hello")

	nodes, err := fileTree(dir, 3)
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, "a", nodes[0].Name)
	assert.True(t, nodes[0].Dir)
	c := nodes[0].Children[0].Children[0]
	assert.Equal(t, "c", c.Name)
	assert.Empty(t, c.Children, "entries below the third level are not listed")

	assert.Equal(t, FileNode{Name: "z.txt", Size: 5}, nodes[1])
}

func TestMeasure_OrdersBySizeThenPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.bin"), "1234")
	writeFile(t, filepath.Join(dir, "a.bin"), "1234")
	writeFile(t, filepath.Join(dir, "sub", "big.bin"), "123456789")
	writeFile(t, filepath.Join(dir, "small"), "1")

	st, err := measure(dir, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(18), st.TotalBytes)
	assert.Equal(t, []FileSize{
		{Name: "big.bin", Path: "sub/big.bin", Bytes: 9},
		{Name: "a.bin", Path: "a.bin", Bytes: 4},
		{Name: "b.bin", Path: "b.bin", Bytes: 4},
	}, st.Largest)
}

func TestMeasure_SymlinkedDir(t *testing.T) {
	target := t.TempDir()
	writeFile(t, filepath.Join(target, "model.bin"), "123456")
	writeFile(t, filepath.Join(target, "vocab", "strings.json"), "[]")
	link := filepath.Join(t.TempDir(), "linked")
	require.NoError(t, os.Symlink(target, link))

	st, err := measure(link, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(8), st.TotalBytes)
	assert.Equal(t, []FileSize{
		{Name: "model.bin", Path: "model.bin", Bytes: 6},
		{Name: "strings.json", Path: "vocab/strings.json", Bytes: 2},
	}, st.Largest)
}

func TestMeasure_MissingDir(t *testing.T) {
	_, err := measure(filepath.Join(t.TempDir(), "gone"), 5)
	assert.Error(t, err)
}

func TestMetaExcerpt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "meta.json")
	writeFile(t, path, `{"z": "last-first", "n": 3, "list": [1, 2], "obj": {"k": true}}`)

	ex := metaExcerpt(path, 3)
	assert.True(t, ex.Present)
	assert.True(t, ex.Truncated)
	assert.Equal(t, []string{"z: last-first", "n: 3", "list: [1,2]"}, ex.Lines)

	ex = metaExcerpt(path, 10)
	assert.False(t, ex.Truncated)
	assert.Equal(t, `obj: {"k":true}`, ex.Lines[3])
}

func TestMetaExcerpt_BestEffort(t *testing.T) {
	dir := t.TempDir()

	missing := metaExcerpt(filepath.Join(dir, "meta.json"), 5)
	assert.False(t, missing.Present)

	path := filepath.Join(dir, "broken.json")
	writeFile(t, path, `{"lang": "en", "name": `)
	ex := metaExcerpt(path, 5)
	assert.True(t, ex.Present)
	assert.Equal(t, []string{"lang: en"}, ex.Lines)

	writeFile(t, path, `["not", "an", "object"]`)
	ex = metaExcerpt(path, 5)
	assert.True(t, ex.Present)
	assert.Empty(t, ex.Lines)
}

func TestLineExcerpt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.cfg")
	writeFile(t, path, "[nlp]  \r\nlang = \"en\"\n")

	ex := lineExcerpt(path, 10)
	assert.True(t, ex.Present)
	assert.False(t, ex.Truncated)
	assert.Equal(t, []string{"[nlp]", `lang = "en"`}, ex.Lines)

	ex = lineExcerpt(path, 1)
	assert.True(t, ex.Truncated)

	assert.False(t, lineExcerpt(filepath.Join(dir, "none.cfg"), 10).Present)
}
