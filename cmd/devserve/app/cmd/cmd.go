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
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/speedhockey/devserve/pkg/devserve/config"
	"github.com/speedhockey/devserve/pkg/devserve/constants"
	"github.com/speedhockey/devserve/pkg/devserve/output/log"
	"github.com/speedhockey/devserve/pkg/devserve/version"
)

var (
	opts config.ServeOptions
	v    string
)

// NewDevserveCommand returns the root command. Without a subcommand it serves.
func NewDevserveCommand(out, errOut io.Writer) *cobra.Command {
	opts = config.ServeOptions{}
	resetFlags()

	serveCmd := NewCmdServe()

	rootCmd := &cobra.Command{
		Use:   "devserve",
		Short: "Serve a directory over HTTPS for local development.",
		Long: `Serve the current directory over HTTPS, using a pre-generated certificate
for a development hostname. Browsers only expose WebTransport and other
secure context APIs to pages served this way.`,
		RunE:          serveCmd.RunE,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := SetUpLogs(errOut, v); err != nil {
			return err
		}
		log.Entry(cmd.Context()).Debugf("devserve %+v", version.Get())
		return nil
	}

	AddFlags(rootCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(NewCmdVersion())

	rootCmd.PersistentFlags().StringVarP(&v, "verbosity", "v", constants.DefaultLogLevel.String(), "Log level (debug, info, warn, error, fatal, panic)")
	return rootCmd
}

func SetUpLogs(out io.Writer, level string) error {
	logrus.SetOutput(out)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "parsing log level")
	}
	logrus.SetLevel(lvl)
	return nil
}
