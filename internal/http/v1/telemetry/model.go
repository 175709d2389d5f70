package telemetry

import "github.com/agric-empower/portal/internal/demo"

// Telemetry is one demo reading with the strings the dashboard shows.
type Telemetry struct {
	demo.Reading
	Display Display `json:"display" doc:"Values formatted for display"`
}

// Display holds the formatted values.
type Display struct {
	PH          string `json:"ph"          example:"6.8"`
	Moisture    string `json:"moisture"    example:"63%"`
	Temperature string `json:"temperature" example:"27°C"`
	Humidity    string `json:"humidity"    example:"71%"`
}

func fromReading(r demo.Reading) Telemetry {
	return Telemetry{
		Reading: r,
		Display: Display{
			PH:          r.PHText(),
			Moisture:    r.MoistureText(),
			Temperature: r.TemperatureText(),
			Humidity:    r.HumidityText(),
		},
	}
}
