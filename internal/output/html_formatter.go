package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a static snapshot report suitable for printing to
// PDF from a browser.
type HTMLFormatter struct{}

func (HTMLFormatter) Name() string { return "html" }

//go:embed templates/snapshot.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("snapshot").Funcs(template.FuncMap{
	"gbp":     FormatGBP,
	"kwh":     FormatKWh,
	"tonnes":  FormatTonnes,
	"payback": FormatPayback,
	"size":    func(d decimal.Decimal) string { return d.StringFixed(1) },
}).Parse(htmlTemplateSource))

func (HTMLFormatter) Format(rs *ResultSet) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, rs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
