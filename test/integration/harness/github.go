package harness

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"slices"
	"strings"
	"testing"
)

// FakeGitHub serves the repository contents API for a single repository
// from an in-memory file map, mounted where GitHub Enterprise expects it.
type FakeGitHub struct {
	Server *httptest.Server
	files  map[string]string
	prefix string
}

// NewFakeGitHub starts a fake API for owner/repo holding files (path -> content).
func NewFakeGitHub(tb testing.TB, owner, repo string, files map[string]string) *FakeGitHub {
	tb.Helper()

	f := &FakeGitHub{
		files:  files,
		prefix: "/api/v3/repos/" + owner + "/" + repo + "/contents/",
	}

	mux := http.NewServeMux()
	mux.HandleFunc(f.prefix, f.serveContents)
	f.Server = httptest.NewServer(mux)
	tb.Cleanup(f.Server.Close)

	return f
}

// BaseURL returns the value for --base-url
func (f *FakeGitHub) BaseURL() string {
	return f.Server.URL + "/"
}

func (f *FakeGitHub) serveContents(w http.ResponseWriter, r *http.Request) {
	p := strings.TrimPrefix(r.URL.Path, f.prefix)

	if content, ok := f.files[p]; ok {
		writeJSON(w, map[string]any{
			"type":     "file",
			"name":     path.Base(p),
			"path":     p,
			"size":     len(content),
			"encoding": "base64",
			"content":  base64.StdEncoding.EncodeToString([]byte(content)),
		})
		return
	}

	entries := f.list(p)
	if entries == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		return
	}
	writeJSON(w, entries)
}

// list derives the directory entries under dir, or nil when dir does not exist
func (f *FakeGitHub) list(dir string) []map[string]any {
	seen := make(map[string]string)
	for p := range f.files {
		rest := p
		if dir != "" {
			if !strings.HasPrefix(p, dir+"/") {
				continue
			}
			rest = strings.TrimPrefix(p, dir+"/")
		}
		name, _, nested := strings.Cut(rest, "/")
		if nested {
			seen[name] = "dir"
		} else {
			seen[name] = "file"
		}
	}
	if len(seen) == 0 && dir != "" {
		return nil
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	slices.Sort(names)

	entries := make([]map[string]any, 0, len(names))
	for _, name := range names {
		full := name
		if dir != "" {
			full = dir + "/" + name
		}
		entries = append(entries, map[string]any{
			"type": seen[name],
			"name": name,
			"path": full,
			"size": len(f.files[full]),
		})
	}
	return entries
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
