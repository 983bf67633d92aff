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
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/speedhockey/devserve/cmd/devserve/app/flags"
	"github.com/speedhockey/devserve/pkg/devserve/constants"
)

var (
	certFile *flags.InputFilepath
	keyFile  *flags.InputFilepath
	rootDir  *flags.InputFilepath

	allFlags []*flag.FlagSet
)

// resetFlags rebuilds every flag set with its defaults. Flags bind to the
// package level opts, so a fresh command needs fresh flags.
func resetFlags() {
	certFile = flags.NewInputFilepath(constants.DefaultCertFile, "Path to the PEM encoded TLS certificate")
	keyFile = flags.NewInputFilepath(constants.DefaultKeyFile, "Path to the PEM encoded private key of the certificate")
	rootDir = flags.NewInputFilepath(constants.DefaultRoot, "Directory to serve")

	allFlags = []*flag.FlagSet{
		listenFlagSet("listen"),
		tlsFlagSet("tls"),
		contentFlagSet("content"),
	}
}

func listenFlagSet(name string) *flag.FlagSet {
	listenFlags := flag.NewFlagSet(name, flag.ContinueOnError)
	listenFlags.StringVar(&opts.Hostname, "hostname", constants.DefaultHostname, "Hostname to bind to. The certificate should be issued for it")
	listenFlags.IntVar(&opts.Port, "port", constants.DefaultPort, "TCP port to listen on")
	listenFlags.VisitAll(func(flag *flag.Flag) {
		listenFlags.SetAnnotation(flag.Name, "cmds", []string{"devserve", "serve"})
	})
	return listenFlags
}

func tlsFlagSet(name string) *flag.FlagSet {
	tlsFlags := flag.NewFlagSet(name, flag.ContinueOnError)
	tlsFlags.Var(certFile, "cert", certFile.Usage())
	tlsFlags.Var(keyFile, "key", keyFile.Usage())
	tlsFlags.StringVar(&opts.MinTLSVersion, "tls-min-version", constants.DefaultMinTLSVersion, "Minimum TLS version to accept (1.0, 1.1, 1.2 or 1.3)")
	tlsFlags.VisitAll(func(flag *flag.Flag) {
		tlsFlags.SetAnnotation(flag.Name, "cmds", []string{"devserve", "serve"})
	})
	return tlsFlags
}

func contentFlagSet(name string) *flag.FlagSet {
	contentFlags := flag.NewFlagSet(name, flag.ContinueOnError)
	contentFlags.Var(rootDir, "root", rootDir.Usage())
	contentFlags.VisitAll(func(flag *flag.Flag) {
		contentFlags.SetAnnotation(flag.Name, "cmds", []string{"devserve", "serve"})
	})
	return contentFlags
}

// AddFlags adds to cmd every flag annotated with its name.
func AddFlags(cmd *cobra.Command) {
	for _, flagSet := range allFlags {
		flagSet.VisitAll(func(flag *flag.Flag) {
			if hasCmdAnnotation(cmd.Use, flag.Annotations["cmds"]) {
				cmd.Flags().AddFlag(flag)
			}
		})
	}
}

func hasCmdAnnotation(cmdName string, annotations []string) bool {
	for _, a := range annotations {
		if cmdName == a || a == "all" {
			return true
		}
	}
	return false
}
