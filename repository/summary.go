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
	"fmt"
	"strings"
	"time"

	"github.com/penny-vault/ciqdata/data"
	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SummaryMarkdown describes the database in markdown
func SummaryMarkdown(name string, summary *data.Summary, companies []*data.Company, now time.Time) string {
	p := message.NewPrinter(language.English)
	builder := strings.Builder{}

	builder.WriteString("# Capital IQ Xpressfeed\n")
	builder.WriteString("## Details\n\n")
	builder.WriteString(fmt.Sprintf("Database: %s\n\n", name))
	builder.WriteString(fmt.Sprintf("Server: %s\n\n", summary.ServerVersion))
	builder.WriteString(p.Sprintf("  * Companies: %d\n", summary.CompanyCount))
	builder.WriteString(p.Sprintf("  * Data Items: %d\n\n", summary.DataItemCount))

	if summary.LatestPricingDate == nil {
		builder.WriteString("Latest Market Cap: Never\n\n")
	} else {
		config := timeago.English
		config.Max = 100 * 365 * 24 * time.Hour
		age := config.FormatReference(*summary.LatestPricingDate, now)
		builder.WriteString(fmt.Sprintf("Latest Market Cap: %s (%s)\n\n", age, summary.LatestPricingDate.Format("01/02/2006")))
	}

	if len(companies) == 0 {
		return builder.String()
	}

	builder.WriteString("## Sample Companies\n\n")
	builder.WriteString("| Company ID | Name |\n")
	builder.WriteString("|---:|:---|\n")
	for _, company := range companies {
		builder.WriteString(fmt.Sprintf("| %d | %s |\n", company.CompanyID, company.CompanyName))
	}

	return builder.String()
}
