package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nexyra/energy-advisor/internal/compare"
	"github.com/nexyra/energy-advisor/internal/domain"
	"github.com/shopspring/decimal"
)

// ResultSet is the serialization-ready view of one calculator run. The
// residential flow fills Baseline and Recommendations; the commercial and
// community flows leave Baseline nil and carry the generic column subset.
type ResultSet struct {
	Title           string              `json:"title"`
	Segment         domain.Segment      `json:"segment"`
	Baseline        *decimal.Decimal    `json:"baseline_bill,omitempty"`
	Tiers           []domain.TierResult `json:"tiers"`
	Recommendations []string            `json:"recommendations,omitempty"`
	GeneratedAt     time.Time           `json:"generated_at"`
}

// Residential reports whether the set carries baseline-relative fields.
func (rs *ResultSet) Residential() bool { return rs.Baseline != nil }

// BaselineValue returns the baseline bill, or zero for generic sets.
func (rs *ResultSet) BaselineValue() decimal.Decimal {
	if rs.Baseline == nil {
		return decimal.Zero
	}
	return *rs.Baseline
}

// NewResidentialResultSet adapts a comparison set for the formatters.
func NewResidentialResultSet(cs *compare.ComparisonSet) *ResultSet {
	baseline := cs.BaselineBill
	return &ResultSet{
		Title:           "NEXYRA – Residential",
		Segment:         domain.SegmentResidential,
		Baseline:        &baseline,
		Tiers:           cs.Tiers,
		Recommendations: cs.Recommendations,
		GeneratedAt:     time.Now(),
	}
}

// NewGenericResultSet adapts commercial/community tier results for the
// formatters.
func NewGenericResultSet(segment domain.Segment, tiers []domain.TierResult) *ResultSet {
	title := "NEXYRA – Commercial"
	if segment == domain.SegmentCommunity {
		title = "NEXYRA – Community"
	}
	return &ResultSet{
		Title:       title,
		Segment:     segment,
		Tiers:       tiers,
		GeneratedAt: time.Now(),
	}
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(rs *ResultSet) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	HTMLFormatter{},
	JSONFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table":       "console",
	"text":        "console",
	"csv-export":  "csv",
	"html-report": "html",
	"snapshot":    "html",
	"json-pretty": "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	return names
}

// WriteFormatted runs a formatter and writes its output to a timestamped
// file, returning the filename.
func WriteFormatted(f Formatter, rs *ResultSet, ext string) (string, error) {
	data, err := f.Format(rs)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("nexyra_%s_%s.%s", rs.Segment, rs.GeneratedAt.Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
