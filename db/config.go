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
package db

import (
	"net"
	"net/url"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds the settings needed to reach the Xpressfeed database. When URL
// is set it takes precedence over the individual parts.
type Config struct {
	URL      string `toml:"url,omitempty"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Name     string `toml:"name"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	SSLMode  string `toml:"sslmode,omitempty"`

	TranscriptSchema string `toml:"transcript_schema,omitempty"`
}

// environment variables honored for each configuration key
var envBindings = map[string]string{
	"db.host":     "POSTGRES_HOST",
	"db.port":     "POSTGRES_PORT",
	"db.name":     "POSTGRES_DB",
	"db.user":     "POSTGRES_USER",
	"db.password": "POSTGRES_PASSWORD",
	"db.url":      "DATABASE_URL",
}

// BindEnv maps the conventional POSTGRES_* environment variables onto the
// db.* configuration keys
func BindEnv() error {
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", 5432)

	return nil
}

// ConfigFromViper reads the db.* keys of the active configuration
func ConfigFromViper() Config {
	return Config{
		URL:              viper.GetString("db.url"),
		Host:             viper.GetString("db.host"),
		Port:             viper.GetInt("db.port"),
		Name:             viper.GetString("db.name"),
		User:             viper.GetString("db.user"),
		Password:         viper.GetString("db.password"),
		SSLMode:          viper.GetString("db.sslmode"),
		TranscriptSchema: viper.GetString("db.transcript_schema"),
	}
}

// ConnString returns a postgres:// URL for the configuration
func (conf Config) ConnString() string {
	if conf.URL != "" {
		return conf.URL
	}

	return conf.connURL().String()
}

// Redacted returns the connection string with the password masked
func (conf Config) Redacted() string {
	if conf.URL != "" {
		parsed, err := url.Parse(conf.URL)
		if err != nil {
			return "<invalid url>"
		}
		return parsed.Redacted()
	}

	return conf.connURL().Redacted()
}

func (conf Config) connURL() *url.URL {
	connURL := &url.URL{
		Scheme: "postgres",
		Host:   conf.Host,
		Path:   "/" + conf.Name,
	}

	if conf.Port != 0 {
		connURL.Host = net.JoinHostPort(conf.Host, strconv.Itoa(conf.Port))
	}

	switch {
	case conf.User != "" && conf.Password != "":
		connURL.User = url.UserPassword(conf.User, conf.Password)
	case conf.User != "":
		connURL.User = url.User(conf.User)
	}

	if conf.SSLMode != "" {
		connURL.RawQuery = url.Values{"sslmode": []string{conf.SSLMode}}.Encode()
	}

	return connURL
}
