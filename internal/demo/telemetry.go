// Package demo produces the placeholder data the dashboards show in place of
// real sensors and a real user directory.
package demo

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Reading is one set of soil and climate values.
type Reading struct {
	PH          float64 `json:"ph"          doc:"Soil pH, one decimal, 6.0 to 7.5"`
	Moisture    int     `json:"moisture"    doc:"Soil moisture percent, 50 to 79"`
	Temperature int     `json:"temperature" doc:"Air temperature in Celsius, 20 to 34"`
	Humidity    int     `json:"humidity"    doc:"Relative humidity percent, 60 to 89"`
}

// PHText formats the pH the way the dashboard shows it.
func (r Reading) PHText() string { return fmt.Sprintf("%.1f", r.PH) }

// MoistureText formats moisture as a percentage.
func (r Reading) MoistureText() string { return fmt.Sprintf("%d%%", r.Moisture) }

// TemperatureText formats temperature in degrees Celsius.
func (r Reading) TemperatureText() string { return fmt.Sprintf("%d°C", r.Temperature) }

// HumidityText formats humidity as a percentage.
func (r Reading) HumidityText() string { return fmt.Sprintf("%d%%", r.Humidity) }

// GenerateTelemetry returns an independent random reading.
func GenerateTelemetry() Reading {
	return telemetryFrom(rand.Float64)
}

// telemetryFrom draws every value from uniform, which yields [0, 1).
func telemetryFrom(uniform func() float64) Reading {
	return Reading{
		PH:          roundPH(6.0 + uniform()*1.5),
		Moisture:    int(math.Floor(50 + uniform()*30)),
		Temperature: int(math.Floor(20 + uniform()*15)),
		Humidity:    int(math.Floor(60 + uniform()*30)),
	}
}

func roundPH(v float64) float64 {
	return math.Round(v*10) / 10
}
