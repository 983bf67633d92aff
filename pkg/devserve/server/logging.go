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
	"fmt"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/speedhockey/devserve/pkg/devserve/constants"
	"github.com/speedhockey/devserve/pkg/devserve/output/log"
)

type responseRecorder struct {
	http.ResponseWriter
	status int
	size   uint64
}

func (r *responseRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += uint64(n)
	return n, err
}

// logRequests logs one line per request, tagging the request context with a
// fresh id so that anything the handler logs can be correlated.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := log.WithTask(r.Context(), constants.Serve, uuid.New().String())
		rec := &responseRecorder{ResponseWriter: w}

		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		entry := log.Entry(ctx).WithFields(logrus.Fields{
			"remote":   r.RemoteAddr,
			"size":     humanize.Bytes(rec.size),
			"duration": time.Since(start),
		})
		msg := fmt.Sprintf("%s %s %d", r.Method, r.URL.RequestURI(), status)
		if status >= http.StatusBadRequest {
			entry.Warn(msg)
		} else {
			entry.Info(msg)
		}
	})
}
