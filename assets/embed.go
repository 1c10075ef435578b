package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed sprites maps
var assetsFS embed.FS

// DiskDir is checked before the embedded files so edited assets win during
// development.
const DiskDir = "assets"

// FS returns the asset file system. Files present under DiskDir shadow the
// embedded copies.
func FS() fs.FS {
	if info, err := os.Stat(DiskDir); err == nil && info.IsDir() {
		return overlayFS{top: os.DirFS(DiskDir), base: assetsFS}
	}
	return assetsFS
}

type overlayFS struct {
	top  fs.FS
	base fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	if f, err := o.top.Open(name); err == nil {
		return f, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.base.Open(name)
}

// LoadImage decodes an image asset from fsys.
func LoadImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	b, err := fs.ReadFile(fsys, CleanPath(path))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func loadTexture(fsys fs.FS, path string) (any, error) {
	return LoadImage(fsys, path)
}

// CleanPath turns absolute or assets-prefixed paths into fs-relative ones.
func CleanPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/"+DiskDir+"/"); idx >= 0 {
			return s[idx+len(DiskDir)+2:]
		}
		return filepath.Base(path)
	}
	s = strings.TrimPrefix(s, "./")
	if after, ok := strings.CutPrefix(s, DiskDir+"/"); ok {
		return after
	}
	return s
}
