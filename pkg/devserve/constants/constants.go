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

package constants

import (
	"github.com/sirupsen/logrus"
)

const (
	// DefaultLogLevel is the default global verbosity
	DefaultLogLevel = logrus.InfoLevel

	// DefaultHostname is the development hostname the certificate is issued for
	DefaultHostname = "speedhockey.development"
	DefaultPort     = 443

	DefaultCertFile = "../speedhockey.development.pem"
	DefaultKeyFile  = "../speedhockey.development-key.pem"

	// DefaultRoot is served relative to the working directory
	DefaultRoot = "."

	DefaultMinTLSVersion = "1.2"

	IndexFile = "index.html"
)

type Phase string

var (
	Startup = Phase("Startup")
	Serve   = Phase("Serve")
)

const SubtaskIDNone = "-1"
