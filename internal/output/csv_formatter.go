package output

import (
	"bytes"
	"encoding/csv"

	"github.com/nexyra/energy-advisor/internal/domain"
)

// CSVFormatter writes one row per tier. The residential column set carries
// the baseline-relative fields; the generic set carries bill reduction
// instead.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(rs *ResultSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	var header []string
	if rs.Residential() {
		header = []string{"Tier", "PV_kWp", "Battery_kWh", "PV_Generation_kWh", "Self_Consumed_kWh", "Exported_kWh",
			"Post_Import_kWh", "Annual_Bill_GBP", "Savings_vs_Baseline_GBP", "Export_Income_GBP",
			"CO2_Savings_t_per_yr", "Installed_Cost_GBP", "Simple_Payback_years"}
	} else {
		header = []string{"Tier", "PV_kWp", "Battery_kWh", "PV_Generation_kWh", "Self_Consumed_kWh", "Exported_kWh",
			"Bill_Reduction_GBP", "Export_Income_GBP", "Installed_Cost_GBP", "Simple_Payback_years"}
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, tier := range rs.Tiers {
		if err := w.Write(c.row(rs, tier)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (CSVFormatter) row(rs *ResultSet, tier domain.TierResult) []string {
	payback := ""
	if tier.HasPayback() {
		payback = tier.SimplePayback.StringFixed(2)
	}
	common := []string{
		tier.Tier,
		tier.PVKWp.StringFixed(1),
		tier.BatteryKWh.StringFixed(1),
		tier.GenerationKWh.StringFixed(0),
		tier.SelfUsedKWh.StringFixed(0),
		tier.ExportedKWh.StringFixed(0),
	}
	if rs.Residential() {
		return append(common,
			tier.PostImportKWh.StringFixed(0),
			tier.AnnualBill.StringFixed(2),
			tier.Savings.StringFixed(2),
			tier.ExportIncome.StringFixed(2),
			tier.CO2Tonnes.StringFixed(2),
			tier.InstalledCost.StringFixed(2),
			payback,
		)
	}
	return append(common,
		tier.BillReduction.StringFixed(2),
		tier.ExportIncome.StringFixed(2),
		tier.InstalledCost.StringFixed(2),
		payback,
	)
}
