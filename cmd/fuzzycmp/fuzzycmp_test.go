package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestScoreCommand(t *testing.T) {
	out, err := run(t, "score", "the quick fox", "the quick dog")
	require.NoError(t, err)
	assert.Equal(t, "0.666667\n", out)

	out, err = run(t, "score", "--mode", "blocks", "--json", "ab", "ba")
	require.NoError(t, err)
	var resp map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 0.5, resp["score"])
}

func TestCompareCommand(t *testing.T) {
	out, err := run(t, "compare", "--json", "-t", "0.6", "ecd", "ckdp")
	require.NoError(t, err)

	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.False(t, rep.Similar)
	assert.Equal(t, "metric", rep.Path)
	require.NotNil(t, rep.Score)
	assert.Equal(t, 4.0/7.0, *rep.Score)

	out, err = run(t, "compare", "same", "same")
	require.NoError(t, err)
	assert.Contains(t, out, "similar:     true")
	assert.Contains(t, out, "path:        identical")

	_, err = run(t, "compare", "--mode", "nope", "a", "b")
	assert.Error(t, err)
}

func TestFilesCommand(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.html")
	b := filepath.Join(dir, "b.html")
	require.NoError(t, os.WriteFile(a, []byte(strings.Repeat("a", 2000)), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(strings.Repeat("a", 2500)), 0o600))

	out, err := run(t, "files", "--json", "--threshold", "0.9", a, b)
	require.NoError(t, err)
	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.False(t, rep.Similar)
	assert.True(t, rep.MetricSkipped)
	assert.Nil(t, rep.Score)

	_, err = run(t, "files", a, filepath.Join(dir, "missing"))
	assert.Error(t, err)

	_, err = run(t, "files", "--max-size", "2100", a, b)
	assert.Error(t, err)
}

func TestFilesFromStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b.txt")
	require.NoError(t, os.WriteFile(path, []byte("the quick dog"), 0o600))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("the quick fox"))
	cmd.SetArgs([]string{"files", "--json", "-", path})
	require.NoError(t, cmd.Execute())

	var rep report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.True(t, rep.Similar)
	require.NotNil(t, rep.Score)
	assert.InDelta(t, 2.0/3.0, *rep.Score, 1e-12)
}

func TestURLsCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("id")
		if strings.Contains(id, "'") {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, "You have an error in your SQL syntax")
			return
		}
		fmt.Fprintf(w, "<html><body>item %s price 10 in stock</body></html>", id)
	}))
	defer srv.Close()

	out, err := run(t, "urls", "--json", srv.URL+"/?id=1", srv.URL+"/?id=2")
	require.NoError(t, err)
	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.True(t, rep.Similar)
	assert.Equal(t, http.StatusOK, rep.StatusA)
	assert.Equal(t, http.StatusOK, rep.StatusB)

	out, err = run(t, "urls", "--json", srv.URL+"/?id=1", srv.URL+"/?id=1'")
	require.NoError(t, err)
	rep = report{}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.False(t, rep.Similar)
	assert.Equal(t, http.StatusInternalServerError, rep.StatusB)
}

func TestURLsCommandHonoursMaxSize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, strings.Repeat("x", 4096))
	}))
	defer srv.Close()

	_, err := run(t, "urls", "--max-size", "1024", srv.URL+"/a", srv.URL+"/b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size limit")

	out, err := run(t, "urls", "--json", "--max-size", "4096", srv.URL+"/a", srv.URL+"/b")
	require.NoError(t, err)
	var rep report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.True(t, rep.Similar)
	assert.Equal(t, 4096, rep.LongLength)
}

func TestBoundsCommand(t *testing.T) {
	out, err := run(t, "bounds")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 677)
	assert.Equal(t, []string{"1", "1"}, strings.Fields(lines[0]))
}
