package demo

import (
	"math/rand/v2"
	"time"
)

const (
	green     = "#388E3C"
	greenFill = "rgba(56, 142, 60, 0.1)"
	orange    = "#EF6C00"
	orangeFil = "rgba(239, 108, 0, 0.1)"
)

// Chart is chart data handed to the page's charting library.
type Chart struct {
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	Axes     []Axis    `json:"axes,omitempty"`
	Legend   string    `json:"legend,omitempty"`
}

// Dataset is one series.
type Dataset struct {
	Label  string       `json:"label,omitempty"`
	Values []float64    `json:"values"`
	Style  DatasetStyle `json:"style"`
}

// DatasetStyle carries the presentation hints of a series.
type DatasetStyle struct {
	BorderColor     string   `json:"borderColor,omitempty"`
	BackgroundColor []string `json:"backgroundColor,omitempty"`
	BorderWidth     int      `json:"borderWidth,omitempty"`
	Tension         float64  `json:"tension,omitempty"`
	Fill            bool     `json:"fill,omitempty"`
	AxisID          string   `json:"yAxisID,omitempty"`
}

// Axis describes a value axis.
type Axis struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Position    string `json:"position,omitempty"`
	BeginAtZero bool   `json:"beginAtZero,omitempty"`
}

// LastSevenDays returns short weekday labels ending with now's day.
func LastSevenDays(now time.Time) []string {
	labels := make([]string, 0, 7)
	for i := 6; i >= 0; i-- {
		labels = append(labels, now.AddDate(0, 0, -i).Format("Mon"))
	}
	return labels
}

// SoilHealthChart is the user dashboard's pH and moisture trend.
func SoilHealthChart(now time.Time) Chart {
	ph := make([]float64, 7)
	moisture := make([]float64, 7)
	for i := range 7 {
		r := GenerateTelemetry()
		ph[i] = r.PH
		moisture[i] = float64(r.Moisture)
	}
	return Chart{
		Type:   "line",
		Title:  "Soil Health Trends (Last 7 Days)",
		Labels: LastSevenDays(now),
		Datasets: []Dataset{
			{
				Label:  "Soil pH",
				Values: ph,
				Style:  DatasetStyle{BorderColor: green, BackgroundColor: []string{greenFill}, Tension: 0.4},
			},
			{
				Label:  "Soil Moisture (%)",
				Values: moisture,
				Style:  DatasetStyle{BorderColor: orange, BackgroundColor: []string{orangeFil}, Tension: 0.4, AxisID: "y1"},
			},
		},
		Axes: []Axis{
			{ID: "y", Title: "pH Level", Position: "left"},
			{ID: "y1", Title: "Moisture (%)", Position: "right"},
		},
	}
}

// UserActivityChart is the admin dashboard's daily signup count, 1 to 10 per day.
func UserActivityChart(now time.Time) Chart {
	signups := make([]float64, 7)
	for i := range signups {
		signups[i] = float64(rand.IntN(10) + 1)
	}
	return Chart{
		Type:   "line",
		Title:  "User Signups (Last 7 Days)",
		Labels: LastSevenDays(now),
		Datasets: []Dataset{{
			Label:  "New Signups",
			Values: signups,
			Style:  DatasetStyle{BorderColor: green, BackgroundColor: []string{greenFill}, Tension: 0.4, Fill: true},
		}},
		Axes: []Axis{{ID: "y", Title: "Number of Signups", BeginAtZero: true}},
	}
}

// UserRolesChart splits users into farmers and admins.
func UserRolesChart(users []User) Chart {
	farmers, admins := CountRoles(users)
	return Chart{
		Type:   "doughnut",
		Title:  "User Distribution by Role",
		Labels: []string{"Farmers", "Admins"},
		Datasets: []Dataset{{
			Values: []float64{float64(farmers), float64(admins)},
			Style:  DatasetStyle{BorderColor: "#fff", BackgroundColor: []string{green, orange}, BorderWidth: 2},
		}},
		Legend: "bottom",
	}
}
