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

package certs

import (
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/speedhockey/devserve/pkg/devserve/util"
)

var versions = map[string]uint16{
	"1.0": tls.VersionTLS10,
	"1.1": tls.VersionTLS11,
	"1.2": tls.VersionTLS12,
	"1.3": tls.VersionTLS13,
}

// LoadKeyPair reads and parses a PEM encoded certificate and private key.
// The returned certificate always has its Leaf populated.
func LoadKeyPair(certFile, keyFile string) (tls.Certificate, error) {
	certPEM, err := util.ReadFile(certFile)
	if err != nil {
		return tls.Certificate{}, errors.Wrapf(err, "reading certificate %q", certFile)
	}
	keyPEM, err := util.ReadFile(keyFile)
	if err != nil {
		return tls.Certificate{}, errors.Wrapf(err, "reading private key %q", keyFile)
	}

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return tls.Certificate{}, errors.Wrapf(err, "parsing key pair %q and %q", certFile, keyFile)
	}

	if cert.Leaf == nil {
		leaf, err := x509.ParseCertificate(cert.Certificate[0])
		if err != nil {
			return tls.Certificate{}, errors.Wrapf(err, "parsing certificate %q", certFile)
		}
		cert.Leaf = leaf
	}
	return cert, nil
}

// ParseVersion maps a protocol version like "1.2" or "TLS1.2" to its crypto/tls constant.
func ParseVersion(s string) (uint16, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "tls")
	v = strings.TrimPrefix(v, "v")
	if version, found := versions[v]; found {
		return version, nil
	}
	return 0, errors.Errorf("unknown TLS version %q, expected one of 1.0, 1.1, 1.2, 1.3", s)
}

// NewConfig returns a server side TLS configuration presenting cert.
func NewConfig(cert tls.Certificate, minVersion uint16) *tls.Config {
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   minVersion,
		NextProtos:   []string{"h2", "http/1.1"},
	}
}

// Fingerprint returns the SHA-256 digest of the leaf certificate as colon separated hex.
// WebTransport clients pin self-signed certificates by this value.
func Fingerprint(cert tls.Certificate) string {
	if len(cert.Certificate) == 0 {
		return ""
	}
	sum := sha256.Sum256(cert.Certificate[0])

	parts := make([]string, len(sum))
	for i, b := range sum {
		parts[i] = hex.EncodeToString([]byte{b})
	}
	return strings.Join(parts, ":")
}

// CheckLeaf returns human readable problems a browser would complain about:
// an expired or not yet valid certificate, or one not issued for hostname.
func CheckLeaf(leaf *x509.Certificate, hostname string, now time.Time) []string {
	if leaf == nil {
		return nil
	}

	var warnings []string
	if now.After(leaf.NotAfter) {
		warnings = append(warnings, fmt.Sprintf("certificate expired on %s", leaf.NotAfter.Format(time.RFC3339)))
	}
	if now.Before(leaf.NotBefore) {
		warnings = append(warnings, fmt.Sprintf("certificate is not valid before %s", leaf.NotBefore.Format(time.RFC3339)))
	}
	if err := leaf.VerifyHostname(hostname); err != nil {
		warnings = append(warnings, fmt.Sprintf("certificate does not cover %q: %s", hostname, err))
	}
	return warnings
}
