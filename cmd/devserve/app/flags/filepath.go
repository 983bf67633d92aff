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

package flags

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/speedhockey/devserve/pkg/devserve/util"
)

type filepathFlag struct {
	path        string
	shouldExist bool
}

func (f *filepathFlag) SetIfValid(value string) error {
	if f.shouldExist {
		path, err := util.ExpandPath(value)
		if err != nil {
			return err
		}
		exists, err := afero.Exists(util.Fs, path)
		if err != nil {
			return errors.Wrapf(err, "checking %s", value)
		}
		if !exists {
			return errors.Errorf("%s does not exist", value)
		}
	}
	f.path = value
	return nil
}
