// Package archive encodes discharge records and writes them to object storage.
package archive

import (
	"fmt"
	"io"
	"strings"

	"carehome/pkg/domain"
)

// Format names an archive encoding.
type Format string

// Supported archive formats.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Encoder serialises one archive record.
type Encoder interface {
	Encode(w io.Writer, rec domain.ArchiveRecord) error
	Extension() string
	ContentType() string
}

// EncoderFor returns the encoder for format.
func EncoderFor(format Format) (Encoder, error) {
	switch Format(strings.ToLower(string(format))) {
	case "", FormatCSV:
		return CSVEncoder{}, nil
	case FormatXLSX:
		return XLSXEncoder{}, nil
	default:
		return nil, &domain.InvalidArgumentError{Field: "archive format", Reason: fmt.Sprintf("unsupported format %q", format)}
	}
}
