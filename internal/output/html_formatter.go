package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/naijatax/paye-calculator/internal/currency"
	"github.com/naijatax/paye-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
	"pct":  FormatPercentage,
	"rate": FormatRate,
	"foreign": func(amount decimal.Decimal, code string) string {
		s, err := currency.FormatForeign(amount, code)
		if err != nil {
			return code + " " + amount.StringFixed(2)
		}
		return s
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	var buf bytes.Buffer

	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}

	data := struct {
		*domain.TaxReport
		Comparison  LawComparison
		Assumptions []string
	}{report, CompareLaws(report.Result), assumptions}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
