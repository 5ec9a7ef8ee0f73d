// Copyright 2024
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package repository

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrAmbiguousResult = errors.New("expected exactly one result")
)

// ValidationError is returned when a caller supplied parameter is malformed
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %q %s", ErrInvalidInput, e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// LookupError is returned when a lookup that must identify exactly one row
// matched none or several
type LookupError struct {
	What  string
	Key   string
	Count int
}

func (e *LookupError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("%s: no %s found for %s", ErrAmbiguousResult, e.What, e.Key)
	}
	return fmt.Sprintf("%s: %d %s rows found for %s", ErrAmbiguousResult, e.Count, e.What, e.Key)
}

func (e *LookupError) Unwrap() error {
	return ErrAmbiguousResult
}
