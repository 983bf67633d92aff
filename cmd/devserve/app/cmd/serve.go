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
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/speedhockey/devserve/pkg/devserve/config"
	"github.com/speedhockey/devserve/pkg/devserve/server"
)

// for tests
var runServer = func(ctx context.Context, opts config.ServeOptions) error {
	s, err := server.NewServer(ctx, opts)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

// NewCmdServe describes the CLI command to serve a directory over HTTPS.
func NewCmdServe() *cobra.Command {
	return NewCmd("serve").
		WithDescription("Serve a directory over HTTPS").
		WithLongDescription("Serve the files of a directory over HTTPS until interrupted. Directories without an index.html get a listing.").
		WithExample("Serve the current directory on https://speedhockey.development/", "serve").
		WithExample("Serve a build output on a high port", "serve --root dist --hostname localhost --port 8443 --cert localhost.pem --key localhost-key.pem").
		WithCommonFlags().
		NoArgs(doServe)
}

func doServe(ctx context.Context, _ io.Writer) error {
	opts.CertFile = certFile.String()
	opts.KeyFile = keyFile.String()
	opts.Root = rootDir.String()

	return runServer(ctx, opts)
}
