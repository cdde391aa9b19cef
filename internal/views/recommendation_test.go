package views

import (
	"slices"
	"strings"
	"testing"
)

func TestRecommend_TemperatureBands(t *testing.T) {
	cases := []struct {
		name     string
		tempC    float64
		first    string
		advice   string
		clothing int
	}{
		{"freezing", -5, "Heavy winter coat", "Very cold conditions. Layer up well and protect extremities.", 6},
		{"zero boundary", 0, "Heavy winter coat", "Very cold conditions. Layer up well and protect extremities.", 6},
		{"cool", 5, "Warm coat", "Cool weather. Bring warm layers that you can remove if needed.", 5},
		{"mild", 15, "Light jacket", "Mild temperatures. Pack versatile clothing that can be layered.", 4},
		{"warm", 25, "T-shirts", "Warm weather. Pack light, breathable clothing and sun protection.", 5},
		{"hot", 35, "Very light clothing", "Hot weather. Focus on sun protection and staying cool.", 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := Recommend(tc.tempC, 800, 50)
			if len(rec.Clothing) != tc.clothing || rec.Clothing[0] != tc.first {
				t.Errorf("clothing = %v", rec.Clothing)
			}
			if rec.Advice != tc.advice {
				t.Errorf("advice = %q, want %q", rec.Advice, tc.advice)
			}
		})
	}
}

func TestRecommend_RainAppendsGear(t *testing.T) {
	// 5C, light rain, high humidity: the advice accumulates all three clauses.
	rec := Recommend(5, 500, 90)

	if !slices.Contains(rec.Clothing, "Rain jacket") || !slices.Contains(rec.Clothing, "Waterproof shoes") {
		t.Errorf("rain gear missing: %v", rec.Clothing)
	}
	want := "Cool weather. Bring warm layers that you can remove if needed." +
		" Prepare for rain with waterproof gear." +
		" High humidity, pack moisture-wicking clothing."
	if rec.Advice != want {
		t.Errorf("advice = %q, want %q", rec.Advice, want)
	}
}

func TestRecommend_ThunderstormCountsAsRain(t *testing.T) {
	rec := Recommend(15, 211, 50)
	if !slices.Contains(rec.Clothing, "Rain jacket") {
		t.Errorf("thunderstorm codes must add rain gear: %v", rec.Clothing)
	}
}

func TestRecommend_SnowAppendsGear(t *testing.T) {
	rec := Recommend(-2, 601, 50)

	if !slices.Contains(rec.Clothing, "Waterproof boots") || !slices.Contains(rec.Clothing, "Snow gear") {
		t.Errorf("snow gear missing: %v", rec.Clothing)
	}
	if !strings.HasSuffix(rec.Advice, " Expect snow conditions.") {
		t.Errorf("advice = %q", rec.Advice)
	}
	if slices.Contains(rec.Clothing, "Rain jacket") {
		t.Error("snow must not also add rain gear")
	}
}

func TestRecommend_ClearSkyAddsNothing(t *testing.T) {
	rec := Recommend(15, 800, 80)

	if len(rec.Clothing) != 4 {
		t.Errorf("clear sky must not add gear: %v", rec.Clothing)
	}
	if strings.Contains(rec.Advice, "humidity") {
		t.Error("humidity clause must require humidity above 80")
	}
}
