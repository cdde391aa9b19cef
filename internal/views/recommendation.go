package views

// Recommendation is packing advice derived from a weather observation.
type Recommendation struct {
	Clothing []string
	Advice   string
}

// Condition code ranges follow the OpenWeatherMap convention: 2xx
// thunderstorm, 3xx-5xx rain/drizzle, 6xx snow, 800 clear, 80x cloudy.
const (
	codeThunderMin = 200
	codeRainMax    = 600
	codeSnowMin    = 600
	codeSnowMax    = 700
)

// Recommend derives a clothing list and advice sentence from temperature,
// condition code, and humidity. A base temperature band is selected first,
// then a precipitation or snow clause is appended, then a humidity clause.
func Recommend(tempC float64, conditionCode, humidityPercent int) Recommendation {
	var rec Recommendation

	switch {
	case tempC <= 0:
		rec.Clothing = []string{"Heavy winter coat", "Thermal layers", "Winter boots", "Gloves", "Scarf", "Winter hat"}
		rec.Advice = "Very cold conditions. Layer up well and protect extremities."
	case tempC <= 10:
		rec.Clothing = []string{"Warm coat", "Sweater", "Long pants", "Closed shoes", "Light gloves"}
		rec.Advice = "Cool weather. Bring warm layers that you can remove if needed."
	case tempC <= 20:
		rec.Clothing = []string{"Light jacket", "Long sleeve shirts", "Pants", "Comfortable shoes"}
		rec.Advice = "Mild temperatures. Pack versatile clothing that can be layered."
	case tempC <= 30:
		rec.Clothing = []string{"T-shirts", "Shorts", "Light clothing", "Sun hat", "Sunglasses"}
		rec.Advice = "Warm weather. Pack light, breathable clothing and sun protection."
	default:
		rec.Clothing = []string{"Very light clothing", "Breathable fabrics", "Sun hat", "Sunglasses"}
		rec.Advice = "Hot weather. Focus on sun protection and staying cool."
	}

	if conditionCode >= codeThunderMin && conditionCode < codeRainMax {
		rec.Clothing = append(rec.Clothing, "Rain jacket", "Waterproof shoes")
		rec.Advice += " Prepare for rain with waterproof gear."
	} else if conditionCode >= codeSnowMin && conditionCode < codeSnowMax {
		rec.Clothing = append(rec.Clothing, "Waterproof boots", "Snow gear")
		rec.Advice += " Expect snow conditions."
	}

	if humidityPercent > 80 {
		rec.Advice += " High humidity, pack moisture-wicking clothing."
	}

	return rec
}
