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

// Package healthcheck reports the outcome of scheduled exports to a
// healthchecks.io compatible ping endpoint.
package healthcheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/penny-vault/ciqdata/pkginfo"
	"github.com/spf13/viper"
)

var (
	ErrStatus = errors.New("status code is invalid")
)

// Check pings a single health check. A Check with an empty ping URL is
// disabled and every call is a no-op.
type Check struct {
	pingURL string
	client  *resty.Client
}

// New returns a check that pings pingURL, for example
// https://hc-ping.com/<uuid>
func New(pingURL string) *Check {
	return &Check{
		pingURL: strings.TrimRight(pingURL, "/"),
		client:  resty.New().SetHeader("User-Agent", pkginfo.UserAgent()),
	}
}

// FromViper returns the check configured under healthchecks.ping_url
func FromViper() *Check {
	return New(viper.GetString("healthchecks.ping_url"))
}

// Enabled reports whether a ping URL is configured
func (check *Check) Enabled() bool {
	return check.pingURL != ""
}

// Start signals that a job has started
func (check *Check) Start() error {
	return check.ping("/start", "")
}

// Success signals that a job finished; msg is attached to the ping
func (check *Check) Success(msg string) error {
	return check.ping("", msg)
}

// Fail signals that a job failed with cause
func (check *Check) Fail(cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return check.ping("/fail", msg)
}

func (check *Check) ping(suffix, body string) error {
	if !check.Enabled() {
		return nil
	}

	resp, err := check.client.R().
		SetHeader("Content-Type", "text/plain").
		SetBody(body).
		Post(check.pingURL + suffix)
	if err != nil {
		return err
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	return nil
}
