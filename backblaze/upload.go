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
package backblaze

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kothar/go-backblaze"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	ErrBucketNotFound = errors.New("bucket not found")
)

// Config holds the B2 credentials and destination bucket for exported files
type Config struct {
	ApplicationID  string
	ApplicationKey string
	Bucket         string
}

// ConfigFromViper reads the backblaze.* configuration keys
func ConfigFromViper() Config {
	return Config{
		ApplicationID:  viper.GetString("backblaze.application_id"),
		ApplicationKey: viper.GetString("backblaze.application_key"),
		Bucket:         viper.GetString("backblaze.bucket"),
	}
}

// Enabled reports whether enough configuration is present to upload
func (conf Config) Enabled() bool {
	return conf.ApplicationID != "" && conf.ApplicationKey != "" && conf.Bucket != ""
}

// ObjectName is the name a file is stored under in the bucket
func ObjectName(dirname, fn string) string {
	return fmt.Sprintf("%s/%s", dirname, filepath.Base(fn))
}

// Upload copies fn into the configured bucket under dirname
func Upload(conf Config, fn, dirname string) error {
	b2, err := backblaze.NewB2(backblaze.Credentials{
		KeyID:          conf.ApplicationID,
		ApplicationKey: conf.ApplicationKey,
	})
	if err != nil {
		log.Error().Err(err).Str("BucketName", conf.Bucket).Msg("authorize backblaze failed")
		return err
	}

	bucket, err := b2.Bucket(conf.Bucket)
	if err != nil {
		log.Error().Err(err).Str("BucketName", conf.Bucket).Msg("lookup bucket failed")
		return err
	}
	if bucket == nil {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, conf.Bucket)
	}

	reader, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer reader.Close()

	outName := ObjectName(dirname, fn)
	file, err := bucket.UploadFile(outName, map[string]string{}, reader)
	if err != nil {
		log.Error().Err(err).Str("FileName", outName).Str("BucketName", conf.Bucket).Msg("save file to backblaze failed")
		return err
	}

	log.Info().Str("FileName", file.Name).Int64("Size", file.ContentLength).Str("ID", file.ID).Msg("uploaded file to backblaze")
	return nil
}
