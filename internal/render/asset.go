package render

import (
	"encoding/base64"
	"html/template"
	"io/fs"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/pkg/errors"

	"github.com/soil-insights/soilboard/internal/model"
)

// AssetMode decides how gallery images reach the browser.
type AssetMode string

const (
	// AssetInline embeds image bytes into the page as data URIs.
	AssetInline AssetMode = "inline"
	// AssetLink links images under a static URL prefix served by the HTTP shell.
	AssetLink AssetMode = "link"
)

func ParseAssetMode(s string) (AssetMode, error) {
	switch AssetMode(strings.ToLower(s)) {
	case AssetInline:
		return AssetInline, nil
	case AssetLink:
		return AssetLink, nil
	}
	return "", errors.Errorf("unknown asset mode %q", s)
}

// Asset is a loaded gallery image ready to be placed in an <img> tag.
type Asset struct {
	Ref model.ImageRef
	// Path is the file path relative to the image root.
	Path string
	Src  template.URL
}

// MissingAssetError is the only error a gallery ever sees. It is rendered inline as a warning.
type MissingAssetError struct {
	Path string
	File string
	Err  error
}

func (e *MissingAssetError) Error() string {
	return "missing asset " + e.Path + ": " + e.Err.Error()
}

func (e *MissingAssetError) Unwrap() error {
	return e.Err
}

// Warning is the user facing message shown in place of the image.
func (e *MissingAssetError) Warning() string {
	if errors.Is(e.Err, fs.ErrNotExist) {
		return "Image not found: " + e.File
	}
	return "Image could not be loaded: " + e.File
}

// AssetStore resolves image references against an image root.
type AssetStore struct {
	fsys      fs.FS
	mode      AssetMode
	urlPrefix string
}

func NewAssetStore(fsys fs.FS, mode AssetMode, urlPrefix string) *AssetStore {
	return &AssetStore{
		fsys:      fsys,
		mode:      mode,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}
}

func (s *AssetStore) Mode() AssetMode {
	return s.mode
}

// Load performs exactly one attempt at reaching the image: a read in inline mode and a
// stat in link mode. Any failure is returned as a *MissingAssetError.
func (s *AssetStore) Load(topic model.Topic, ref model.ImageRef) (Asset, error) {
	p := topic.AssetPath(ref)
	missing := func(err error) (Asset, error) {
		return Asset{}, &MissingAssetError{Path: p, File: ref.Path, Err: err}
	}

	if !fs.ValidPath(p) {
		return missing(fs.ErrInvalid)
	}

	asset := Asset{Ref: ref, Path: p}
	switch s.mode {
	case AssetLink:
		info, err := fs.Stat(s.fsys, p)
		if err != nil {
			return missing(err)
		}
		if info.IsDir() {
			return missing(errors.Errorf("%s is a directory", p))
		}
		asset.Src = template.URL(s.urlPrefix + "/" + (&url.URL{Path: p}).EscapedPath())
	default:
		b, err := fs.ReadFile(s.fsys, p)
		if err != nil {
			return missing(err)
		}
		asset.Src = template.URL("data:" + contentType(p, b) + ";base64," + base64.StdEncoding.EncodeToString(b))
	}
	return asset, nil
}

// Probe reports whether ref resolves, without loading it.
func (s *AssetStore) Probe(topic model.Topic, ref model.ImageRef) error {
	p := topic.AssetPath(ref)
	info, err := fs.Stat(s.fsys, p)
	if err == nil && info.IsDir() {
		err = errors.Errorf("%s is a directory", p)
	}
	if err != nil {
		return &MissingAssetError{Path: p, File: ref.Path, Err: err}
	}
	return nil
}

func contentType(name string, b []byte) string {
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return http.DetectContentType(b)
}
