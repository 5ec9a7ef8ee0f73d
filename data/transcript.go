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
package data

import (
	"fmt"
	"strings"
	"time"
)

// Transcript is the metadata of one earnings call transcript
type Transcript struct {
	TranscriptID               int64      `db:"transcriptid" json:"transcriptId" csv:"transcriptid"`
	TranscriptCreationDateUTC  time.Time  `db:"transcriptcreationdateutc" json:"transcriptCreationDateUtc" csv:"transcriptcreationdateutc"`
	CompanyID                  int64      `db:"companyid" json:"companyId" csv:"companyid"`
	KeyDevID                   int64      `db:"keydevid" json:"keyDevId" csv:"keydevid"`
	TranscriptCollectionTypeID int64      `db:"transcriptcollectiontypeid" json:"transcriptCollectionTypeId" csv:"transcriptcollectiontypeid"`
	EarningsCallDateUTC        time.Time  `db:"earningscalldateutc" json:"earningsCallDateUtc" csv:"earningscalldateutc"`
	AnnouncedDateUTC           *time.Time `db:"announceddateutc" json:"announcedDateUtc" csv:"announceddateutc"`
	FiscalYear                 *int       `db:"fiscalyear" json:"fiscalYear" csv:"fiscalyear"`
	FiscalQuarter              *int       `db:"fiscalquarter" json:"fiscalQuarter" csv:"fiscalquarter"`
}

// TranscriptComponent is one ordered section of a transcript together with
// the speaker that delivered it
type TranscriptComponent struct {
	TranscriptComponentID       int64   `db:"transcriptcomponentid" json:"transcriptComponentId" csv:"transcriptcomponentid"`
	TranscriptID                int64   `db:"transcriptid" json:"transcriptId" csv:"transcriptid"`
	ComponentOrder              int     `db:"componentorder" json:"componentOrder" csv:"componentorder"`
	TranscriptComponentTypeID   int64   `db:"transcriptcomponenttypeid" json:"transcriptComponentTypeId" csv:"transcriptcomponenttypeid"`
	TranscriptPersonID          *int64  `db:"transcriptpersonid" json:"transcriptPersonId" csv:"transcriptpersonid"`
	ComponentText               string  `db:"componenttext" json:"componentText" csv:"componenttext"`
	TranscriptComponentTypeName *string `db:"transcriptcomponenttypename" json:"transcriptComponentTypeName" csv:"transcriptcomponenttypename"`
	TranscriptPersonName        *string `db:"transcriptpersonname" json:"transcriptPersonName" csv:"transcriptpersonname"`
	SpeakerTypeName             *string `db:"speakertypename" json:"speakerTypeName" csv:"speakertypename"`
	Title                       *string `db:"title" json:"title" csv:"title"`
}

// Speaker returns a display label for the person delivering the component
func (component *TranscriptComponent) Speaker() string {
	name := deref(component.TranscriptPersonName)
	if name == "" {
		name = deref(component.TranscriptComponentTypeName)
	}

	var details []string
	if title := deref(component.Title); title != "" {
		details = append(details, title)
	}
	if speakerType := deref(component.SpeakerTypeName); speakerType != "" {
		details = append(details, speakerType)
	}

	if len(details) == 0 {
		return name
	}

	return fmt.Sprintf("%s (%s)", name, strings.Join(details, ", "))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
