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

package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Fs is the underlying filesystem to use for reading certificates and served files.  OS FS by default
var Fs = afero.NewOsFs()

// ExpandPath expands a leading `~` and turns p into a clean absolute path.
func ExpandPath(p string) (string, error) {
	if p == "" {
		return "", errors.New("path not specified")
	}
	if strings.HasPrefix(p, "~") {
		expanded, err := homedir.Expand(p)
		if err != nil {
			return "", errors.Wrapf(err, "expanding %q", p)
		}
		p = expanded
	}
	if !filepath.IsAbs(p) {
		dir, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "getting working directory")
		}
		p = filepath.Join(dir, p)
	}
	return filepath.Clean(p), nil
}

// ReadFile reads filename through Fs, resolving it with ExpandPath first.
func ReadFile(filename string) ([]byte, error) {
	path, err := ExpandPath(filename)
	if err != nil {
		return nil, err
	}
	return afero.ReadFile(Fs, path)
}

// IsDir reports whether path exists on Fs and is a directory.
func IsDir(path string) (bool, error) {
	return afero.IsDir(Fs, path)
}
