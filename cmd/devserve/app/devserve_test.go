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

package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/speedhockey/devserve/testutil"
)

func TestMainHelp(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.Override(&os.Args, []string{"devserve", "help"})

		var (
			output    bytes.Buffer
			errOutput bytes.Buffer
		)
		err := Run(&output, &errOutput)

		t.CheckNoError(err)
		t.CheckContains("Serve the current directory over HTTPS", output.String())
		t.CheckContains("serve", output.String())
		t.CheckContains("version", output.String())
		t.CheckEmpty(errOutput.String())
	})
}

func TestMainServeHelp(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.Override(&os.Args, []string{"devserve", "serve", "--help"})

		var output bytes.Buffer
		err := Run(&output, io.Discard)

		t.CheckNoError(err)
		t.CheckContains("--hostname", output.String())
		t.CheckContains("speedhockey.development", output.String())
		t.CheckContains("--tls-min-version", output.String())
	})
}

func TestMainUnknownCommand(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.Override(&os.Args, []string{"devserve", "unknown"})

		err := Run(io.Discard, io.Discard)

		t.CheckError(true, err)
		t.CheckDeepEqual(1, ExitCode(err))
	})
}

func TestMainMissingCertificate(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		t.Chdir(t.NewTempDir().Mkdir("site").Path("site"))
		t.Override(&os.Args, []string{"devserve", "--hostname", "127.0.0.1", "--port", "0"})
		t.Cleanup(func() { logrus.SetOutput(io.Discard) })

		var errOutput bytes.Buffer
		err := Run(io.Discard, &errOutput)

		t.CheckErrorContains("reading certificate", err)
		t.CheckContains("reading certificate", errOutput.String())
		t.CheckDeepEqual(1, ExitCode(err))
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		description string
		err         error
		expected    int
	}{
		{description: "success", expected: 0},
		{description: "cancelled", err: errors.Wrap(context.Canceled, "serving"), expected: 0},
		{description: "startup failure", err: errors.New("listening on :443: permission denied"), expected: 1},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			t.CheckDeepEqual(test.expected, ExitCode(test.err))
		})
	}
}
