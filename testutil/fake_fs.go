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
	"testing"

	"github.com/spf13/afero"
)

// NewFakeFileSystem returns an in-memory filesystem holding the given files.
// Keys are absolute slash separated paths.
func NewFakeFileSystem(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		name = filepath.FromSlash(name)
		if err := fs.MkdirAll(filepath.Dir(name), os.ModePerm); err != nil {
			t.Fatal(err)
		}
		if err := afero.WriteFile(fs, name, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return fs
}
