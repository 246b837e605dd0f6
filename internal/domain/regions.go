package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// RegionCustom selects direct numeric irradiance entry instead of a preset.
const RegionCustom = "custom"

// regionIrradiance maps named UK regions to annual irradiance in kWh per
// kWp of installed PV. Values are typical unshaded south-facing yields.
var regionIrradiance = map[string]decimal.Decimal{
	"south-west-england": decimal.NewFromInt(1100),
	"southern-england":   decimal.NewFromInt(1050),
	"midlands":           decimal.NewFromInt(1000),
	"wales":              decimal.NewFromInt(1000),
	"northern-england":   decimal.NewFromInt(950),
	"northern-ireland":   decimal.NewFromInt(950),
	"scotland":           decimal.NewFromInt(900),
}

// RegionIrradiance resolves a named region preset to its irradiance value.
// The RegionCustom name is not resolvable here: callers supplying "custom"
// must provide an explicit irradiance instead.
func RegionIrradiance(region string) (decimal.Decimal, error) {
	if region == RegionCustom {
		return decimal.Zero, fmt.Errorf("region %q requires an explicit irradiance value", region)
	}
	v, ok := regionIrradiance[region]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown region %q (known: %v or %q)", region, RegionNames(), RegionCustom)
	}
	return v, nil
}

// RegionNames returns the known region preset names, sorted.
func RegionNames() []string {
	names := make([]string, 0, len(regionIrradiance))
	for name := range regionIrradiance {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
