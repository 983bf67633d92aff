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

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TempDir offers a temporary directory and a set of utilities to work on it.
type TempDir struct {
	t    *testing.T
	root string
}

// NewTempDir creates a temporary directory which is removed at the end of the test.
func (t *T) NewTempDir() *TempDir {
	return &TempDir{
		t:    t.T,
		root: t.TempDir(),
	}
}

// Root returns the temporary directory.
func (h *TempDir) Root() string {
	return h.root
}

// Path returns the absolute path to a file in the temporary directory.
func (h *TempDir) Path(file string) string {
	elem := []string{h.root}
	elem = append(elem, strings.Split(file, "/")...)
	return filepath.Join(elem...)
}

// Mkdir makes a sub-directory in the temporary directory.
func (h *TempDir) Mkdir(dir string) *TempDir {
	if err := os.MkdirAll(h.Path(dir), os.ModePerm); err != nil {
		h.t.Fatal(err)
	}
	return h
}

// Write writes a file in the temporary directory, creating parent directories.
func (h *TempDir) Write(file, content string) *TempDir {
	return h.WriteBytes(file, []byte(content))
}

// WriteBytes is Write for binary content.
func (h *TempDir) WriteBytes(file string, content []byte) *TempDir {
	path := h.Path(file)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		h.t.Fatal(err)
	}
	if err := os.WriteFile(path, content, os.ModePerm); err != nil {
		h.t.Fatal(err)
	}
	return h
}

// Remove deletes a file from the temporary directory.
func (h *TempDir) Remove(file string) *TempDir {
	if err := os.Remove(h.Path(file)); err != nil {
		h.t.Fatal(err)
	}
	return h
}
