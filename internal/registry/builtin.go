package registry

import "github.com/doeshing/unitconv/internal/domain"

func builtinCategories() []domain.Category {
	return []domain.Category{
		domain.CategoryLength,
		domain.CategoryTemperature,
		domain.CategoryStorage,
		domain.CategoryMass,
		domain.CategoryTime,
		domain.CategoryVolume,
		domain.CategoryArea,
		domain.CategorySpeed,
		domain.CategoryEnergy,
		domain.CategoryPower,
		domain.CategoryPressure,
	}
}

func factor(cat domain.Category, name, symbol string, f float64, desc string, aliases ...string) domain.Unit {
	return domain.Unit{
		Name:        name,
		Symbol:      symbol,
		Category:    cat,
		Scale:       domain.FactorScale{Factor: f},
		Aliases:     aliases,
		Description: desc,
	}
}

func temperature(name, symbol string, toC, fromC func(float64) float64, desc string, aliases ...string) domain.Unit {
	return domain.Unit{
		Name:        name,
		Symbol:      symbol,
		Category:    domain.CategoryTemperature,
		Scale:       domain.AffineScale{ToCelsius: toC, FromCelsius: fromC},
		Aliases:     aliases,
		Description: desc,
	}
}

func identity(v float64) float64 { return v }

// builtinUnits lists every built-in unit. Factors are relative to the
// category's factor-1 unit: m, B, g, s, L, m², m/s, J, W, Pa.
func builtinUnits() []domain.Unit {
	const (
		length   = domain.CategoryLength
		storage  = domain.CategoryStorage
		mass     = domain.CategoryMass
		timeCat  = domain.CategoryTime
		volume   = domain.CategoryVolume
		area     = domain.CategoryArea
		speed    = domain.CategorySpeed
		energy   = domain.CategoryEnergy
		power    = domain.CategoryPower
		pressure = domain.CategoryPressure
	)

	return []domain.Unit{
		factor(length, "Meter", "m", 1, "Base unit of length in the metric system", "METER", "METRE", "METERS", "METRES"),
		factor(length, "Kilometer", "km", 1000, "1000 meters, commonly used for long distances", "KM", "KILOMETER", "KILOMETRE", "KILOMETERS"),
		factor(length, "Centimeter", "cm", 0.01, "One hundredth of a meter", "CM", "CENTIMETER", "CENTIMETRE"),
		factor(length, "Millimeter", "mm", 0.001, "One thousandth of a meter", "MM", "MILLIMETER", "MILLIMETRE"),
		factor(length, "Inch", "in", 0.0254, "Imperial unit of length, 1/12 of a foot", "IN", "INCH", "INCHES"),
		factor(length, "Foot", "ft", 0.3048, "Imperial unit of length, 12 inches", "FT", "FOOT", "FEET"),
		factor(length, "Yard", "yd", 0.9144, "Imperial unit of length, 3 feet", "YD", "YARD", "YARDS"),
		factor(length, "Mile", "mi", 1609.344, "Imperial unit of length, 5280 feet", "MI", "MILE", "MILES"),
		factor(length, "Light Year", "ly", 9.461e15, "Distance light travels in one year", "LIGHTYEAR", "LIGHTYEARS"),

		temperature("Celsius", "C", identity, identity,
			"Water freezes at 0 and boils at 100 at sea level", "CELSIUS", "°C"),
		temperature("Fahrenheit", "F",
			func(v float64) float64 { return (v - 32) * 5 / 9 },
			func(c float64) float64 { return c*9/5 + 32 },
			"Water freezes at 32 and boils at 212 at sea level", "FAHRENHEIT", "°F"),
		temperature("Kelvin", "K",
			func(v float64) float64 { return v - 273.15 },
			func(c float64) float64 { return c + 273.15 },
			"Absolute temperature scale, 0 K is absolute zero", "KELVIN"),

		factor(storage, "Byte", "B", 1, "8 bits, basic unit of digital storage", "BYTE", "BYTES"),
		factor(storage, "Kilobyte", "KB", 1024, "1024 bytes", "KILOBYTE", "KILOBYTES", "KIB"),
		factor(storage, "Megabyte", "MB", 1048576, "1024 kilobytes", "MEGABYTE", "MEGABYTES", "MIB"),
		factor(storage, "Gigabyte", "GB", 1073741824, "1024 megabytes", "GIGABYTE", "GIGABYTES", "GIB"),
		factor(storage, "Terabyte", "TB", 1099511627776, "1024 gigabytes", "TERABYTE", "TERABYTES", "TIB"),

		factor(mass, "Gram", "g", 1, "Base unit of mass in the metric system", "GRAM", "GRAMS"),
		factor(mass, "Kilogram", "kg", 1000, "1000 grams, SI base unit of mass", "KILOGRAM", "KILOGRAMS", "KILO"),
		factor(mass, "Milligram", "mg", 0.001, "One thousandth of a gram", "MILLIGRAM", "MILLIGRAMS"),
		factor(mass, "Pound", "lb", 453.59237, "Avoirdupois pound, 16 ounces", "POUND", "POUNDS", "LBS"),
		factor(mass, "Ounce", "oz", 28.349523125, "Avoirdupois ounce, 1/16 of a pound", "OUNCE", "OUNCES"),

		factor(timeCat, "Second", "s", 1, "SI base unit of time", "SEC", "SECOND", "SECONDS"),
		factor(timeCat, "Minute", "min", 60, "60 seconds", "MIN", "MINUTE", "MINUTES"),
		factor(timeCat, "Hour", "hr", 3600, "60 minutes", "h", "HR", "HOUR", "HOURS"),
		factor(timeCat, "Day", "day", 86400, "24 hours", "d", "DAY", "DAYS"),
		factor(timeCat, "Week", "week", 604800, "7 days", "w", "WEEK", "WEEKS"),

		factor(volume, "Liter", "L", 1, "Metric unit of volume, 1 cubic decimeter", "LITER", "LITRE", "LITERS", "LITRES"),
		factor(volume, "Milliliter", "mL", 0.001, "One thousandth of a liter", "ML", "MILLILITER", "MILLILITRE"),
		factor(volume, "Gallon", "gal", 3.785411784, "US liquid gallon", "GALLON", "GALLONS"),
		factor(volume, "Quart", "qt", 0.946352946, "US liquid quart, 1/4 gallon", "QUART", "QUARTS"),
		factor(volume, "Pint", "pt", 0.473176473, "US liquid pint, 1/8 gallon", "PINT", "PINTS"),

		factor(area, "Square Meter", "m²", 1, "Area of a square with 1 meter sides", "M2", "SQM"),
		factor(area, "Square Kilometer", "km²", 1e6, "Area of a square with 1 kilometer sides", "KM2", "SQKM"),
		factor(area, "Square Foot", "ft²", 0.09290304, "Area of a square with 1 foot sides", "FT2", "SQFT"),
		factor(area, "Square Mile", "mi²", 2589988.110336, "Area of a square with 1 mile sides", "MI2", "SQMI"),
		factor(area, "Acre", "ac", 4046.8564224, "Imperial unit of land area, 43560 square feet", "ACRE", "ACRES"),

		factor(speed, "Meter per Second", "m/s", 1, "SI unit of speed", "MPS"),
		factor(speed, "Kilometer per Hour", "km/h", 0.277777778, "Common road speed unit in metric countries", "KPH", "KMH"),
		factor(speed, "Mile per Hour", "mph", 0.44704, "Common road speed unit in the US and UK", "MILESPERHOUR"),
		factor(speed, "Knot", "kt", 0.514444444, "One nautical mile per hour", "KNOT", "KNOTS", "KN"),

		factor(energy, "Joule", "J", 1, "SI unit of energy", "JOULE", "JOULES"),
		factor(energy, "Calorie", "cal", 4.184, "Energy needed to raise 1 g of water by 1 degree Celsius", "CALORIE", "CALORIES"),
		factor(energy, "Kilowatt Hour", "kWh", 3.6e6, "1 kilowatt of power sustained for 1 hour", "KILOWATTHOUR"),
		factor(energy, "Electron Volt", "eV", 1.602e-19, "Energy gained by an electron moving through 1 volt", "ELECTRONVOLT"),

		factor(power, "Watt", "W", 1, "SI unit of power", "WATT", "WATTS"),
		factor(power, "Kilowatt", "kW", 1000, "1000 watts", "KW", "KILOWATT", "KILOWATTS"),
		factor(power, "Megawatt", "MW", 1e6, "One million watts", "MEGAWATT", "MEGAWATTS"),
		factor(power, "Horsepower", "hp", 745.7, "Mechanical horsepower, 550 foot-pounds per second", "HP", "HORSEPOWER"),

		factor(pressure, "Pascal", "Pa", 1, "SI unit of pressure", "PA", "PASCAL", "PASCALS"),
		factor(pressure, "Kilopascal", "kPa", 1000, "1000 pascals", "KPA", "KILOPASCAL"),
		factor(pressure, "Bar", "bar", 1e5, "Unit of pressure equal to 100,000 pascals", "BAR", "BARS"),
		factor(pressure, "Atmosphere", "atm", 101325, "Standard atmospheric pressure", "ATM", "ATMOSPHERE"),
		factor(pressure, "PSI", "psi", 6894.76, "Pounds per square inch", "PSI"),
	}
}
