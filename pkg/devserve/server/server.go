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

package server

import (
	"context"
	"crypto/tls"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/speedhockey/devserve/pkg/devserve/certs"
	"github.com/speedhockey/devserve/pkg/devserve/config"
	"github.com/speedhockey/devserve/pkg/devserve/output/log"
	"github.com/speedhockey/devserve/pkg/devserve/util"
)

var (
	// guards against clients that open a connection and never send headers
	readHeaderTimeout = 10 * time.Second

	now = time.Now
)

// Server serves a directory over HTTPS.
type Server struct {
	opts      config.ServeOptions
	root      string
	cert      tls.Certificate
	tlsConfig *tls.Config
	handler   http.Handler
}

// NewServer checks the options, resolves the served directory and loads the
// certificate. It does not bind anything: a Server that failed to build
// leaves the address untouched.
func NewServer(ctx context.Context, opts config.ServeOptions) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}

	minVersion, err := certs.ParseVersion(opts.MinTLSVersion)
	if err != nil {
		return nil, err
	}

	root, err := util.ExpandPath(opts.Root)
	if err != nil {
		return nil, errors.Wrap(err, "resolving root directory")
	}
	isDir, err := util.IsDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "reading root directory %q", root)
	}
	if !isDir {
		return nil, errors.Errorf("root %q is not a directory", root)
	}

	cert, err := certs.LoadKeyPair(opts.CertFile, opts.KeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "loading certificate")
	}
	for _, warning := range certs.CheckLeaf(cert.Leaf, opts.Hostname, now()) {
		log.Entry(ctx).Warn(warning)
	}

	return &Server{
		opts:      opts,
		root:      root,
		cert:      cert,
		tlsConfig: certs.NewConfig(cert, minVersion),
		handler:   logRequests(newFileHandler(afero.NewBasePathFs(util.Fs, root))),
	}, nil
}

// Handler returns the plain HTTP handler, without TLS.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Root is the absolute path of the served directory.
func (s *Server) Root() string {
	return s.root
}

// Fingerprint is the SHA-256 digest of the served certificate.
func (s *Server) Fingerprint() string {
	return certs.Fingerprint(s.cert)
}

// Listen binds the configured address and wraps the socket for TLS termination.
func (s *Server) Listen() (net.Listener, error) {
	l, err := net.Listen("tcp", s.opts.Addr())
	if err != nil {
		return nil, errors.Wrapf(err, "listening on %s", s.opts.Addr())
	}
	return tls.NewListener(l, s.tlsConfig), nil
}

// Serve accepts connections on l until l fails or ctx is cancelled.
// Cancellation closes every connection at once; in-flight requests are not drained.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	errorLog := log.Entry(ctx).WriterLevel(logrus.DebugLevel)
	defer errorLog.Close()

	srv := &http.Server{
		Handler:           s.handler,
		TLSConfig:         s.tlsConfig,
		ReadHeaderTimeout: readHeaderTimeout,
		// TLS handshake failures from browsers distrusting the certificate end up here.
		ErrorLog: stdlog.New(errorLog, "", 0),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "serving")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return srv.Close()
	})
	return g.Wait()
}

// Run binds the listener and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	l, err := s.Listen()
	if err != nil {
		return err
	}

	log.Entry(ctx).WithFields(logrus.Fields{
		"root":        s.root,
		"address":     l.Addr().String(),
		"fingerprint": s.Fingerprint(),
	}).Infof("Serving HTTPS on %s", s.opts.URL())

	return s.Serve(ctx, l)
}
