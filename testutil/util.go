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

package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// T wraps a *testing.T with assertion helpers.
type T struct {
	*testing.T
}

// Run runs f as a subtest of t called name. An empty name runs f inline.
func Run(t *testing.T, name string, f func(t *T)) {
	if name == "" {
		f(&T{T: t})
		return
	}

	t.Run(name, func(tt *testing.T) {
		f(&T{T: tt})
	})
}

// Override sets the value pointed to by dest to tmp for the duration of the test.
func (t *T) Override(dest, tmp interface{}) {
	t.Helper()

	dValue := reflect.ValueOf(dest).Elem()

	curValue := reflect.New(dValue.Type()).Elem()
	curValue.Set(dValue)

	var tmpValue reflect.Value
	if tmp == nil {
		tmpValue = reflect.Zero(dValue.Type())
	} else {
		tmpValue = reflect.ValueOf(tmp)
	}
	dValue.Set(tmpValue)

	t.Cleanup(func() { dValue.Set(curValue) })
}

func (t *T) CheckNoError(err error) {
	t.Helper()
	CheckError(t.T, false, err)
}

func (t *T) CheckError(shouldErr bool, err error) {
	t.Helper()
	CheckError(t.T, shouldErr, err)
}

func (t *T) CheckErrorContains(message string, err error) {
	t.Helper()
	CheckErrorContains(t.T, message, err)
}

func (t *T) CheckErrorAndDeepEqual(shouldErr bool, err error, expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	CheckErrorAndDeepEqual(t.T, shouldErr, err, expected, actual, opts...)
}

func (t *T) CheckDeepEqual(expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	CheckDeepEqual(t.T, expected, actual, opts...)
}

func (t *T) CheckContains(contains, actual string) {
	t.Helper()
	if !strings.Contains(actual, contains) {
		t.Errorf("expected output %q to contain %q", actual, contains)
	}
}

func (t *T) CheckNotContains(excluded, actual string) {
	t.Helper()
	if strings.Contains(actual, excluded) {
		t.Errorf("expected output %q not to contain %q", actual, excluded)
	}
}

func (t *T) CheckEmpty(actual string) {
	t.Helper()
	if actual != "" {
		t.Errorf("expected empty output, got %q", actual)
	}
}

func (t *T) CheckTrue(actual bool) {
	t.Helper()
	if !actual {
		t.Error("expected true, got false")
	}
}

func (t *T) CheckFalse(actual bool) {
	t.Helper()
	if actual {
		t.Error("expected false, got true")
	}
}

func CheckDeepEqual(t *testing.T, expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Errorf("%T differ (-want, +got): %s", expected, diff)
	}
}

func CheckErrorAndDeepEqual(t *testing.T, shouldErr bool, err error, expected, actual interface{}, opts ...cmp.Option) {
	t.Helper()
	if err := checkErr(shouldErr, err); err != nil {
		t.Error(err)
		return
	}
	if !shouldErr {
		CheckDeepEqual(t, expected, actual, opts...)
	}
}

func CheckError(t *testing.T, shouldErr bool, err error) {
	t.Helper()
	if err := checkErr(shouldErr, err); err != nil {
		t.Error(err)
	}
}

func CheckErrorContains(t *testing.T, message string, err error) {
	t.Helper()
	if err == nil {
		t.Errorf("expected error containing %q, but returned none", message)
		return
	}
	if !strings.Contains(err.Error(), message) {
		t.Errorf("expected error %q to contain %q", err.Error(), message)
	}
}

func checkErr(shouldErr bool, err error) error {
	if err == nil && shouldErr {
		return errors.New("expected error, but returned none")
	}
	if err != nil && !shouldErr {
		return fmt.Errorf("unexpected error: %s", err)
	}
	return nil
}
