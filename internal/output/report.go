package output

import (
	"github.com/naijatax/paye-calculator/internal/domain"
)

// GenerateReport writes the report to a timestamped file in dir using the
// named formatter, or every file formatter for "all". Returns the paths written.
func GenerateReport(report *domain.TaxReport, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVBandsExporter{}, HTMLFormatter{}, JSONFormatter{}} {
			path, err := WriteFormatted(f, report, dir, extensionFor(f.Name()))
			if err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	path, err := WriteFormatted(f, report, dir, extensionFor(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

func extensionFor(name string) string {
	switch name {
	case "console", "console-lite":
		return "txt"
	case "csv", "detailed-csv":
		return "csv"
	default:
		return name
	}
}
