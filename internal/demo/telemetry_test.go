package demo

import (
	"testing"
)

func TestGenerateTelemetryRanges(t *testing.T) {
	for range 1000 {
		r := GenerateTelemetry()
		if r.PH < 6.0 || r.PH > 7.5 {
			t.Fatalf("ph out of range: %v", r.PH)
		}
		if r.PH != roundPH(r.PH) {
			t.Fatalf("ph has more than one decimal: %v", r.PH)
		}
		if r.Moisture < 50 || r.Moisture >= 80 {
			t.Fatalf("moisture out of range: %d", r.Moisture)
		}
		if r.Temperature < 20 || r.Temperature >= 35 {
			t.Fatalf("temperature out of range: %d", r.Temperature)
		}
		if r.Humidity < 60 || r.Humidity >= 90 {
			t.Fatalf("humidity out of range: %d", r.Humidity)
		}
	}
}

func TestTelemetryBounds(t *testing.T) {
	low := telemetryFrom(func() float64 { return 0 })
	if low != (Reading{PH: 6.0, Moisture: 50, Temperature: 20, Humidity: 60}) {
		t.Fatalf("unexpected low reading: %+v", low)
	}
	high := telemetryFrom(func() float64 { return 0.99999 })
	if high != (Reading{PH: 7.5, Moisture: 79, Temperature: 34, Humidity: 89}) {
		t.Fatalf("unexpected high reading: %+v", high)
	}
}

func TestReadingText(t *testing.T) {
	r := Reading{PH: 6.8, Moisture: 63, Temperature: 27, Humidity: 71}
	if r.PHText() != "6.8" || r.MoistureText() != "63%" || r.TemperatureText() != "27°C" || r.HumidityText() != "71%" {
		t.Fatalf("unexpected text: %s %s %s %s", r.PHText(), r.MoistureText(), r.TemperatureText(), r.HumidityText())
	}
	if (Reading{PH: 7}).PHText() != "7.0" {
		t.Fatalf("expected one decimal for whole pH")
	}
}
