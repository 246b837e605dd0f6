package output

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nexyra/energy-advisor/internal/calculation"
	"github.com/nexyra/energy-advisor/internal/compare"
	"github.com/nexyra/energy-advisor/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func residentialResultSet(t *testing.T) *ResultSet {
	t.Helper()
	engine := calculation.NewEngine()
	result := engine.EvaluateResidential(domain.DefaultProfile(), domain.DefaultEnvironment(), domain.DefaultResidentialPresets())
	return NewResidentialResultSet(compare.NewComparisonSet(result))
}

func genericResultSet(t *testing.T) *ResultSet {
	t.Helper()
	engine := calculation.NewEngine()
	tiers := []domain.TierPreset{
		{Name: "Bronze", PVKWp: decimal.NewFromInt(25), SelfConsumption: decimal.NewFromFloat(0.70), InstalledCost: decimal.NewFromInt(30000)},
		{Name: "Silver", PVKWp: decimal.NewFromInt(50), BatteryKWh: decimal.NewFromInt(50), SelfConsumption: decimal.NewFromFloat(0.80), InstalledCost: decimal.NewFromInt(60000)},
	}
	results := make([]domain.TierResult, 0, len(tiers))
	for _, tier := range tiers {
		results = append(results, engine.EvaluateTier(tier, decimal.NewFromInt(1000), decimal.NewFromFloat(0.30), decimal.NewFromFloat(0.15)))
	}
	return NewGenericResultSet(domain.SegmentCommercial, results)
}

func TestCSVFormatter_Residential(t *testing.T) {
	data, err := CSVFormatter{}.Format(residentialResultSet(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4) // header + three tiers

	assert.Equal(t, "Tier", records[0][0])
	assert.Contains(t, records[0], "Savings_vs_Baseline_GBP")
	assert.Contains(t, records[0], "CO2_Savings_t_per_yr")

	assert.Equal(t, "Bronze", records[1][0])
	assert.Equal(t, "3600", records[1][3]) // generation
	assert.Equal(t, "891.00", records[1][8])
}

func TestCSVFormatter_Generic(t *testing.T) {
	data, err := CSVFormatter{}.Format(genericResultSet(t))
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Contains(t, records[0], "Bill_Reduction_GBP")
	assert.NotContains(t, records[0], "Annual_Bill_GBP")
	assert.Equal(t, "25000", records[1][3])
}

func TestCSVFormatter_UndefinedPaybackIsBlank(t *testing.T) {
	rs := NewGenericResultSet(domain.SegmentCommunity, []domain.TierResult{
		{Tier: "Bronze", InstalledCost: decimal.NewFromInt(10000)},
	})

	data, err := CSVFormatter{}.Format(rs)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "", records[1][len(records[1])-1])
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(residentialResultSet(t))
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "Baseline annual bill (no PV): £1460.75")
	assert.Contains(t, text, "Bronze")
	assert.Contains(t, text, "Gold")
	assert.Contains(t, text, "RECOMMENDATIONS")
}

func TestConsoleFormatter_Generic(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(genericResultSet(t))
	require.NoError(t, err)

	text := string(data)
	assert.NotContains(t, text, "Baseline")
	assert.Contains(t, text, "Bill Redn.")
}

func TestHTMLFormatter(t *testing.T) {
	rs := residentialResultSet(t)
	rs.GeneratedAt = time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	data, err := HTMLFormatter{}.Format(rs)
	require.NoError(t, err)

	html := string(data)
	assert.Contains(t, html, "NEXYRA – Residential Snapshot")
	assert.Contains(t, html, "Generated 2025-06-01 12:30.")
	assert.Contains(t, html, "£1460.75")
	assert.Contains(t, html, "<td>Bronze</td>")
}

func TestHTMLFormatter_GenericHasNoBaseline(t *testing.T) {
	data, err := HTMLFormatter{}.Format(genericResultSet(t))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Baseline annual bill")
	assert.Contains(t, string(data), "Bill Reduction")
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(residentialResultSet(t))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "residential", decoded["segment"])
	assert.Len(t, decoded["tiers"], 3)
}

func TestGetFormatterByName(t *testing.T) {
	require.NotNil(t, GetFormatterByName("csv"))
	assert.Equal(t, "csv", GetFormatterByName("csv").Name())

	// Aliases resolve to canonical formatters.
	require.NotNil(t, GetFormatterByName("snapshot"))
	assert.Equal(t, "html", GetFormatterByName("snapshot").Name())
	assert.Equal(t, "console", GetFormatterByName(" TABLE ").Name())

	assert.Nil(t, GetFormatterByName("docx"))
}

func TestAvailableFormatterNames(t *testing.T) {
	names := AvailableFormatterNames()
	assert.ElementsMatch(t, []string{"console", "csv", "html", "json"}, names)
}

func TestWriteFormatted(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	rs := residentialResultSet(t)
	filename, err := WriteFormatted(CSVFormatter{}, rs, "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "nexyra_residential_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Savings_vs_Baseline_GBP")
}
