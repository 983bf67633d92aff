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
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/speedhockey/devserve/pkg/devserve/util"
	"github.com/speedhockey/devserve/testutil"
)

func TestLoadKeyPair(t *testing.T) {
	tests := []struct {
		description string
		files       func(c, other testutil.Certificate) map[string]string
		expectedErr string
	}{
		{
			description: "valid pair",
			files: func(c, _ testutil.Certificate) map[string]string {
				return map[string]string{"/certs/cert.pem": string(c.CertPEM), "/certs/key.pem": string(c.KeyPEM)}
			},
		},
		{
			description: "missing certificate",
			files: func(c, _ testutil.Certificate) map[string]string {
				return map[string]string{"/certs/key.pem": string(c.KeyPEM)}
			},
			expectedErr: "reading certificate",
		},
		{
			description: "missing key",
			files: func(c, _ testutil.Certificate) map[string]string {
				return map[string]string{"/certs/cert.pem": string(c.CertPEM)}
			},
			expectedErr: "reading private key",
		},
		{
			description: "garbage certificate",
			files: func(c, _ testutil.Certificate) map[string]string {
				return map[string]string{"/certs/cert.pem": "not a certificate", "/certs/key.pem": string(c.KeyPEM)}
			},
			expectedErr: "parsing key pair",
		},
		{
			description: "key does not match certificate",
			files: func(c, other testutil.Certificate) map[string]string {
				return map[string]string{"/certs/cert.pem": string(c.CertPEM), "/certs/key.pem": string(other.KeyPEM)}
			},
			expectedErr: "parsing key pair",
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			c := t.NewCertificate("speedhockey.development")
			other := t.NewCertificate("other.development")
			t.Override(&util.Fs, testutil.NewFakeFileSystem(t.T, test.files(c, other)))

			cert, err := LoadKeyPair(filepath.FromSlash("/certs/cert.pem"), filepath.FromSlash("/certs/key.pem"))

			if test.expectedErr != "" {
				t.CheckErrorContains(test.expectedErr, err)
				return
			}
			t.CheckNoError(err)
			t.CheckDeepEqual([][]byte{c.DER}, cert.Certificate)
			t.CheckDeepEqual([]string{"speedhockey.development"}, cert.Leaf.DNSNames)
		})
	}
}

func TestLoadKeyPairFromDisk(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		c := t.NewCertificate("speedhockey.development")
		tmp := t.NewTempDir().
			WriteBytes("speedhockey.development.pem", c.CertPEM).
			WriteBytes("speedhockey.development-key.pem", c.KeyPEM).
			Mkdir("testsite")
		t.Chdir(tmp.Path("testsite"))

		cert, err := LoadKeyPair("../speedhockey.development.pem", "../speedhockey.development-key.pem")

		t.CheckNoError(err)
		t.CheckDeepEqual(c.DER, cert.Leaf.Raw)
	})
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		description string
		in          string
		expected    uint16
		shouldErr   bool
	}{
		{description: "1.0", in: "1.0", expected: tls.VersionTLS10},
		{description: "1.1", in: "1.1", expected: tls.VersionTLS11},
		{description: "1.2", in: "1.2", expected: tls.VersionTLS12},
		{description: "1.3", in: "1.3", expected: tls.VersionTLS13},
		{description: "prefixed", in: "TLS1.3", expected: tls.VersionTLS13},
		{description: "prefixed with v", in: "tlsv1.2", expected: tls.VersionTLS12},
		{description: "surrounding spaces", in: " 1.2 ", expected: tls.VersionTLS12},
		{description: "ssl", in: "3.0", shouldErr: true},
		{description: "empty", in: "", shouldErr: true},
		{description: "garbage", in: "latest", shouldErr: true},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			actual, err := ParseVersion(test.in)

			t.CheckErrorAndDeepEqual(test.shouldErr, err, test.expected, actual)
		})
	}
}

func TestNewConfig(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		cert := tls.Certificate{Certificate: [][]byte{[]byte("leaf")}}

		cfg := NewConfig(cert, tls.VersionTLS13)

		t.CheckDeepEqual(uint16(tls.VersionTLS13), cfg.MinVersion)
		t.CheckDeepEqual([]string{"h2", "http/1.1"}, cfg.NextProtos)
		t.CheckDeepEqual(1, len(cfg.Certificates))
	})
}

func TestFingerprint(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		c := t.NewCertificate("speedhockey.development")
		cert, err := tls.X509KeyPair(c.CertPEM, c.KeyPEM)
		t.CheckNoError(err)

		sum := sha256.Sum256(c.DER)
		var expected []string
		for _, b := range sum {
			expected = append(expected, fmt.Sprintf("%02x", b))
		}

		t.CheckDeepEqual(strings.Join(expected, ":"), Fingerprint(cert))
		t.CheckDeepEqual(Fingerprint(cert), Fingerprint(cert))
		t.CheckDeepEqual("", Fingerprint(tls.Certificate{}))
	})
}

func TestCheckLeaf(t *testing.T) {
	now := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		description string
		hosts       []string
		notBefore   time.Time
		notAfter    time.Time
		hostname    string
		expected    []string
	}{
		{
			description: "valid",
			hosts:       []string{"speedhockey.development"},
			notBefore:   now.Add(-time.Hour),
			notAfter:    now.Add(time.Hour),
			hostname:    "speedhockey.development",
		},
		{
			description: "ip address",
			hosts:       []string{"127.0.0.1"},
			notBefore:   now.Add(-time.Hour),
			notAfter:    now.Add(time.Hour),
			hostname:    "127.0.0.1",
		},
		{
			description: "expired",
			hosts:       []string{"speedhockey.development"},
			notBefore:   now.Add(-2 * time.Hour),
			notAfter:    now.Add(-time.Hour),
			hostname:    "speedhockey.development",
			expected:    []string{"certificate expired on 2026-10-19T11:00:00Z"},
		},
		{
			description: "not yet valid",
			hosts:       []string{"speedhockey.development"},
			notBefore:   now.Add(time.Hour),
			notAfter:    now.Add(2 * time.Hour),
			hostname:    "speedhockey.development",
			expected:    []string{"certificate is not valid before 2026-10-19T13:00:00Z"},
		},
	}
	for _, test := range tests {
		testutil.Run(t, test.description, func(t *testutil.T) {
			c := testutil.NewCertificate(t.T, test.hosts, test.notBefore, test.notAfter)
			leaf, err := x509.ParseCertificate(c.DER)
			t.CheckNoError(err)

			t.CheckDeepEqual(test.expected, CheckLeaf(leaf, test.hostname, now))
		})
	}
}

func TestCheckLeafWrongHost(t *testing.T) {
	testutil.Run(t, "", func(t *testutil.T) {
		now := time.Now()
		c := testutil.NewCertificate(t.T, []string{"localhost"}, now.Add(-time.Hour), now.Add(time.Hour))
		leaf, err := x509.ParseCertificate(c.DER)
		t.CheckNoError(err)

		warnings := CheckLeaf(leaf, "speedhockey.development", now)

		t.CheckDeepEqual(1, len(warnings))
		t.CheckContains(`does not cover "speedhockey.development"`, warnings[0])
		t.CheckDeepEqual([]string(nil), CheckLeaf(nil, "speedhockey.development", now))
	})
}
