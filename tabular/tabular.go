/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package tabular moves league data between tabular documents (CSV, XLSX,
// HTML tables, aligned text) and the league package.
package tabular

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

var (
	ErrMalformedRow        = errors.New("malformed row")
	ErrInputNotFound       = errors.New("input not found")
	ErrNotRegularFile      = errors.New("input is not a regular file")
	ErrUnsupportedFormat   = errors.New("unsupported format")
	ErrUnsupportedLocation = errors.New("unsupported location")
)

// StdoutLocation writes the text board to standard output.
const StdoutLocation = "-"

type Format int

const (
	FormatUnknown Format = iota
	FormatCSV
	FormatXLSX
	FormatHTML
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatXLSX:
		return "xlsx"
	case FormatHTML:
		return "html"
	case FormatText:
		return "text"
	default:
		return "?"
	}
}

func (f Format) contentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatHTML:
		return "text/html"
	default:
		return "text/plain"
	}
}

// FormatFromName picks a format from the extension of a path, S3 key or URL.
func FormatFromName(name string) Format {
	if u, err := url.Parse(name); err == nil && u.Scheme != "" && u.Path != "" {
		name = u.Path
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	case ".html", ".htm":
		return FormatHTML
	case ".txt":
		return FormatText
	default:
		return FormatUnknown
	}
}

// formatFromContentType is consulted for URLs without a useful extension.
func formatFromContentType(ct string) Format {
	ct = strings.ToLower(ct)
	switch {
	case strings.HasPrefix(ct, "text/csv"):
		return FormatCSV
	case strings.HasPrefix(ct, "text/html"):
		return FormatHTML
	case strings.Contains(ct, "spreadsheetml"):
		return FormatXLSX
	default:
		return FormatUnknown
	}
}

func unsupported(name string, f Format) error {
	return fmt.Errorf("%w: %v (%v)", ErrUnsupportedFormat, name, f)
}
