package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestLocalResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	res, err := NewResource(thisFile, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()
}

func TestHttpResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	thisDir := filepath.Dir(thisFile)

	server := httptest.NewServer(http.FileServer(http.Dir(thisDir)))
	defer server.Close()

	fetchUrl := server.URL + "/" + filepath.Base(thisFile)
	res, err := NewResource(fetchUrl, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	fetchUrl = server.URL + "/file-not-found.foo"
	expError := fmt.Sprintf("resource: could not fetch '%s': status %d", fetchUrl, 404)
	_, err = NewResource(fetchUrl, nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestRelativeResources(t *testing.T) {
	serverHits := 0
	serverFn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverHits++
		if r.URL.Path == "/foo/file1.go" {
			w.Write([]byte("OK"))
		} else if r.URL.Path == "/foo/file2.go" {
			w.Write([]byte("OK"))
		} else {
			http.NotFound(w, r)
		}
	})
	server := httptest.NewServer(serverFn)
	defer server.Close()

	res1, err := NewResource(server.URL+"/foo/file1.go", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res1.Close()
	res2, err := NewResource("file2.go", res1)
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Close()

	if serverHits != 2 {
		t.Fatalf("expected server to receive 2 requests; got %d", serverHits)
	}

	data, err := io.ReadAll(res2)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "OK" {
		t.Fatalf("expected relative resource payload to be OK; got %q", string(data))
	}
}

func TestRelativeLocalResource(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "models", "mats"), 0755); err != nil {
		t.Fatal(err)
	}
	objPath := filepath.Join(dir, "models", "cube.obj")
	mtlPath := filepath.Join(dir, "models", "mats", "cube.mtl")
	if err := os.WriteFile(objPath, []byte("v 0 0 0"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(mtlPath, []byte("newmtl foo"), 0644); err != nil {
		t.Fatal(err)
	}

	objRes, err := NewResource(objPath, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer objRes.Close()

	mtlRes, err := NewResource("mats/cube.mtl", objRes)
	if err != nil {
		t.Fatal(err)
	}
	defer mtlRes.Close()

	if mtlRes.Path() != mtlPath {
		t.Fatalf("expected resolved path to be %s; got %s", mtlPath, mtlRes.Path())
	}

	texPath, err := ResolvePath("../tex/wood.png", mtlRes)
	if err != nil {
		t.Fatal(err)
	}
	expTexPath := filepath.Join(dir, "models", "tex", "wood.png")
	if texPath != expTexPath {
		t.Fatalf("expected texture path to be %s; got %s", expTexPath, texPath)
	}
}

func TestResolveRemotePath(t *testing.T) {
	res := NewResourceFromStream("http://example.com/models/mats/lib.mtl", strings.NewReader(""))

	texPath, err := ResolvePath("wood.png", res)
	if err != nil {
		t.Fatal(err)
	}

	expPath := "http://example.com/models/mats/wood.png"
	if texPath != expPath {
		t.Fatalf("expected texture path to be %s; got %s", expPath, texPath)
	}
}

func TestExt(t *testing.T) {
	type spec struct {
		in  string
		out string
	}
	specs := []spec{
		{"model.obj", "obj"},
		{"/a/b/MODEL.OBJ", "obj"},
		{`c:\models\compiled.Zip`, "zip"},
		{"http://example.com/foo/bar.obj?rev=2", "obj"},
		{"noext", ""},
		{".hidden", ""},
		{"dir.d/noext", ""},
	}

	for idx, s := range specs {
		if got := Ext(s.in); got != s.out {
			t.Fatalf("[spec %d] expected extension of %q to be %q; got %q", idx, s.in, s.out, got)
		}
	}
}

func TestUnsupportedResourceScheme(t *testing.T) {
	expError := "resource: unsupported scheme 'gopher'"
	_, err := NewResource("gopher://digging.go", nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestResourceConnectionRefusedError(t *testing.T) {
	_, err := NewResource("http://localhost:12345/foo.go", nil)
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("expected to get 'connection refused error'; got %v", err)
	}
}
