// Package units provides the small unit transforms that sit between user
// input and the calculation engine. Everything here is pure arithmetic.
package units

import "github.com/shopspring/decimal"

// DefaultKWhPerMile is the stock EV efficiency used when converting annual
// mileage into annual electricity demand.
var DefaultKWhPerMile = decimal.NewFromFloat(0.30)

// EVMilesToKWh converts annual EV mileage to annual consumption at the
// default efficiency.
func EVMilesToKWh(milesPerYear decimal.Decimal) decimal.Decimal {
	return EVMilesToKWhAt(milesPerYear, DefaultKWhPerMile)
}

// EVMilesToKWhAt converts annual EV mileage to annual consumption at a
// caller-supplied efficiency in kWh per mile.
func EVMilesToKWhAt(milesPerYear, kwhPerMile decimal.Decimal) decimal.Decimal {
	return milesPerYear.Mul(kwhPerMile)
}

// KgToTonnes converts a mass in kilograms to tonnes.
func KgToTonnes(kg decimal.Decimal) decimal.Decimal {
	return kg.Div(decimal.NewFromInt(1000))
}
