/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import "time"

const (
	UserAgent          = "leaguerank/0.3.0 (+https://github.com/mikeb26/leaguerank)"
	DefaultCacheMaxAge = 1 * time.Hour
	DefaultConfigFile  = "leaguerank.yaml"
)
