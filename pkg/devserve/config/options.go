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

package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/pkg/errors"
)

// ServeOptions are options that are set by command line arguments
type ServeOptions struct {
	Hostname      string
	Port          int
	CertFile      string
	KeyFile       string
	Root          string
	MinTLSVersion string
}

// Addr returns the host:port pair the server binds to.
func (opts ServeOptions) Addr() string {
	return net.JoinHostPort(opts.Hostname, strconv.Itoa(opts.Port))
}

// URL returns the address browsers should open, omitting the default HTTPS port.
func (opts ServeOptions) URL() string {
	if opts.Port == 443 {
		return fmt.Sprintf("https://%s/", opts.Hostname)
	}
	return fmt.Sprintf("https://%s/", opts.Addr())
}

// Validate checks the options that can be checked without touching the network or filesystem.
func (opts ServeOptions) Validate() error {
	if opts.Hostname == "" {
		return errors.New("hostname must not be empty")
	}
	// 0 lets the kernel pick a port.
	if opts.Port < 0 || opts.Port > 65535 {
		return errors.Errorf("port %d out of range", opts.Port)
	}
	if opts.CertFile == "" {
		return errors.New("certificate file not specified")
	}
	if opts.KeyFile == "" {
		return errors.New("key file not specified")
	}
	if opts.Root == "" {
		return errors.New("root directory not specified")
	}
	return nil
}
