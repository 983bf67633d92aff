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

package cmd

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/speedhockey/devserve/testutil"
)

func TestSetUpLogs(t *testing.T) {
	tests := []struct {
		description string
		level       string
		expected    logrus.Level
		shouldErr   bool
	}{
		{description: "debug", level: "debug", expected: logrus.DebugLevel},
		{description: "warn", level: "warn", expected: logrus.WarnLevel},
		{description: "invalid", level: "loud", shouldErr: true},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			prev := logrus.GetLevel()
			t.Cleanup(func() {
				logrus.SetLevel(prev)
				logrus.SetOutput(&bytes.Buffer{})
			})

			err := SetUpLogs(&bytes.Buffer{}, test.level)

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.expected, logrus.GetLevel())
		})
	}
}

func TestVerbosityFlag(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		prev := logrus.GetLevel()
		t.Cleanup(func() { logrus.SetLevel(prev) })

		var errOut bytes.Buffer
		cmd := NewDevserveCommand(&bytes.Buffer{}, &errOut)
		cmd.SetArgs([]string{"version", "-v", "debug"})

		t.CheckNoError(cmd.Execute())
		t.CheckDeepEqual(logrus.DebugLevel, logrus.GetLevel())
		t.CheckContains("devserve", errOut.String())
	})
}

func TestUnknownCommand(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		cmd := NewDevserveCommand(&bytes.Buffer{}, &bytes.Buffer{})
		cmd.SetArgs([]string{"unknown"})

		t.CheckErrorContains(`unknown command "unknown"`, cmd.Execute())
	})
}
