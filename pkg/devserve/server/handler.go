/*
Copyright 2026 The Skaffold Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"context"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/speedhockey/devserve/pkg/devserve/output/log"
)

// fileHandler serves the files of fs. fs is expected to be rooted at the
// served directory, so "/" is the top of the tree.
type fileHandler struct {
	fs   afero.Fs
	dirs http.Handler
}

func newFileHandler(fs afero.Fs) *fileHandler {
	return &fileHandler{
		fs:   fs,
		dirs: http.FileServer(afero.NewHttpFs(fs).Dir("/")),
	}
}

func (h *fileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	// Clean against "/" so that ".." can never climb above the root.
	name := path.Clean("/" + r.URL.Path)

	f, err := h.fs.Open(name)
	if err != nil {
		serveError(r.Context(), w, name, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		serveError(r.Context(), w, name, err)
		return
	}

	// Directories get index.html or a listing, and the trailing slash redirects.
	if info.IsDir() || strings.HasSuffix(r.URL.Path, "/") {
		h.dirs.ServeHTTP(w, r)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func serveError(ctx context.Context, w http.ResponseWriter, name string, err error) {
	switch {
	case errors.Is(err, os.ErrNotExist):
		http.Error(w, "404 page not found", http.StatusNotFound)
	case errors.Is(err, os.ErrPermission):
		http.Error(w, "403 Forbidden", http.StatusForbidden)
	default:
		log.Entry(ctx).Errorf("opening %s: %v", name, err)
		http.Error(w, "500 Internal Server Error", http.StatusInternalServerError)
	}
}
