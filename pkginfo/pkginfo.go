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
package pkginfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sort"

	"github.com/rs/zerolog/log"
)

const Name = "ciqdata"

var (
	BuildDate  string
	CommitHash string
	Version    string
)

// VersionOrDev returns the release version, or "dev" for local builds
func VersionOrDev() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// UserAgent identifies ciqdata in outbound HTTP requests
func UserAgent() string {
	return fmt.Sprintf("%s/%s (%s)", Name, VersionOrDev(), runtime.GOOS)
}

// BuildVersionString returns a version info string suitable for printing on the command line
func BuildVersionString() string {
	return fmt.Sprintf(`%s %s %s/%s

Build Date: %s
Commit: %s
Built with: %s`, Name, VersionOrDev(), runtime.GOOS, runtime.GOARCH, BuildDate, CommitHash, runtime.Version())
}

// GetDependencyList returns every module linked into the binary as
// `path="version"`, sorted by path
func GetDependencyList() []string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		log.Error().Msg("could not get package build info")
		return nil
	}

	deps := make([]string, 0, len(buildInfo.Deps))
	for _, dep := range buildInfo.Deps {
		deps = append(deps, fmt.Sprintf("%s=%q", dep.Path, dep.Version))
	}

	sort.Strings(deps)
	return deps
}
