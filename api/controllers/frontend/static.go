package frontend

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/angelmondragon/inventory-insights/api/responses"
	"github.com/angelmondragon/inventory-insights/pkg/config"
	pkgerrors "github.com/angelmondragon/inventory-insights/pkg/errors"
	"github.com/angelmondragon/inventory-insights/pkg/logger"
)

// Static serves files below a fixed root directory.
type Static struct {
	root  string
	index string
	logg  *logger.Logger
}

func NewStatic(cfg config.StaticConfig, logg *logger.Logger) (*Static, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve static root: %w", err)
	}
	index := cfg.Index
	if index == "" {
		index = "index.html"
	}
	return &Static{root: filepath.Clean(root), index: index, logg: logg}, nil
}

// Index serves the index document for "/".
func (s *Static) Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.serve(w, r, s.index)
	}
}

// File serves the request path relative to the root.
func (s *Static) File() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.serve(w, r, r.URL.Path)
	}
}

func (s *Static) serve(w http.ResponseWriter, r *http.Request, requested string) {
	ctx := r.Context()

	full, ok := s.resolve(requested)
	if !ok {
		responses.WriteError(ctx, s.logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "access denied"))
		return
	}

	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			responses.WriteError(ctx, s.logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "file not found"))
			return
		}
		responses.WriteError(ctx, s.logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "open static file"))
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		responses.WriteError(ctx, s.logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "file not found"))
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

// resolve joins requested onto the root and reports whether the cleaned result stays inside it.
func (s *Static) resolve(requested string) (string, bool) {
	rel := filepath.FromSlash(strings.TrimPrefix(requested, "/"))
	full := filepath.Clean(filepath.Join(s.root, rel))
	if full == s.root {
		return full, true
	}
	if !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}
