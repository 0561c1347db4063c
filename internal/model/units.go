package model

// Conversions between the human units used in configs and the base units
// (currency/Wh, hours) used by the cost formulas.

const HoursPerYear = 365 * 24

func CtPerKWhToPerWh(ctPerKWh float64) float64 { return ctPerKWh * 1e-5 }

func PerKWhToPerWh(perKWh float64) float64 { return perKWh * 1e-3 }

func YearsToHours(years float64) float64 { return years * HoursPerYear }

func HoursToDays(hours float64) float64 { return hours / 24 }
