package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// The Resource class wraps a streamable file or remote Resource.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	if r.url.Scheme == "" {
		return r.url.Path
	}
	return r.url.String()
}

// Return the remote path to this resource. If this is a remote resource then
// this method returns the base path (without leading /) of the remote URL.
// Otherwise, this method returns the same value as Path().
func (r *Resource) RemotePath() string {
	if r.IsRemote() {
		return filepath.Base(r.url.Path)
	}
	return r.Path()
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Returns the lower-cased extension (without the dot) of the resource path
// or an empty string if the path has no extension.
func (r *Resource) Ext() string {
	return Ext(r.url.Path)
}

// Returns the lower-cased extension (without the dot) of a path or URL. An
// empty string is returned when the last path element has no dot or when
// the dot is its first character.
func Ext(pathToResource string) string {
	if u, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1)); err == nil {
		pathToResource = u.Path
	}
	base := path.Base(strings.Replace(pathToResource, `\`, `/`, -1))
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 {
		return ""
	}
	return strings.ToLower(base[dot+1:])
}

// Resolve the location of pathToResource without opening it. If relTo is
// specified and pathToResource does not define a scheme, then the returned
// location is generated by concatenating the base path of relTo and
// pathToResource.
func ResolvePath(pathToResource string, relTo *Resource) (string, error) {
	u, err := resolveURL(pathToResource, relTo)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" {
		return filepath.Clean(u.Path), nil
	}
	return u.String(), nil
}

func resolveURL(pathToResource string, relTo *Resource) (*url.URL, error) {
	// Replace backslashes with forward slashes and try parsing as a URL
	u, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	// If this is a relative url, clone parent url and adjust its path
	if u.Scheme == "" && relTo != nil && !filepath.IsAbs(u.Path) {
		relPath := u.Path
		parent := *relTo.url
		if parent.Scheme == "" {
			prefix, err := filepath.Abs(parent.Path)
			if err != nil {
				return nil, fmt.Errorf("resource: could not detect abs path for %s; %s", parent.Path, err.Error())
			}
			parent.Path = filepath.Join(filepath.Dir(prefix), relPath)
		} else {
			parent.Path = path.Join(path.Dir(parent.Path), relPath)
		}
		parent.RawPath = ""
		parent.RawQuery = u.RawQuery
		parent.Fragment = ""
		u = &parent
	}

	return u, nil
}

// Create a new Resource data stream. If relTo is specified and pathToResource
// does not define a scheme, then the path to the new Resource will be generated
// by concatenating the base path of relTo and pathToResource.
//
// This function can handle http/https URLs by delegating to the net/http package.
// The caller must make sure to close the returned io.ReadCloser to prevent mem leaks.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	u, err := resolveURL(pathToResource, relTo)
	if err != nil {
		return nil, err
	}

	var reader io.ReadCloser
	switch u.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(u.Path))
		if err != nil {
			return nil, err
		}
	case "http", "https":
		resp, err := http.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("resource: could not fetch '%s': %s", u.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("resource: could not fetch '%s': status %d", u.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", u.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        u,
	}, nil
}

// Create a resource from a reader.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	u, err := url.Parse(strings.Replace(name, `\`, `/`, -1))
	if err != nil {
		u = &url.URL{Path: name}
	}
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        u,
	}
}
