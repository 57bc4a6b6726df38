/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tabular

import (
	"fmt"
	"strings"

	"github.com/mikeb26/leaguerank/league"
)

// BuildStandingsOutput formats standings into aligned columns.
func BuildStandingsOutput(standings []*league.Standing) string {
	rows := standingsRows(standings)

	// Compute column widths
	widths := make([]int, len(rows[0]))
	for _, r := range rows {
		for i, cell := range r {
			if l := len(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}

	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %s\n", widths[0], r[0],
			widths[1], r[1], r[2]))
	}

	return sb.String()
}
