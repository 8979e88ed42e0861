package document

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto InputFormat = "auto"
	FormatXML  InputFormat = "xml"
	FormatYAML InputFormat = "yaml"
	FormatJSON InputFormat = "json"
)

var (
	// ErrMalformed — тело документа не разбирается как дерево.
	ErrMalformed = errors.New("malformed document")
	// ErrUnsupportedFormat — неизвестное значение InputFormat.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Resolve — для auto выбирает формат по расширению файла (по умолчанию XML).
// Значение формата нормализуется: " XML " и "xml" равнозначны.
func Resolve(path string, format InputFormat) InputFormat {
	format = InputFormat(strings.ToLower(strings.TrimSpace(string(format))))
	if format != FormatAuto && format != "" {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatXML
	}
}

// Decode — читает документ целиком и строит дерево. Ошибки разбора оборачивают ErrMalformed.
func Decode(r io.Reader, format InputFormat) (*Node, error) {
	switch format {
	case FormatXML:
		return decodeXML(r)
	case FormatYAML:
		return decodeYAML(r)
	case FormatJSON:
		return decodeJSON(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
