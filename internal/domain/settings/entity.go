package settings

import "time"

// CompanySettings is a singleton row holding the office geofence and
// workday parameters.
type CompanySettings struct {
	ID              string    `json:"id"`
	OfficeName      string    `json:"office_name"`
	OfficeLatitude  float64   `json:"office_latitude"`
	OfficeLongitude float64   `json:"office_longitude"`
	RadiusMeters    float64   `json:"radius_meters"`
	WorkdayStart    string    `json:"workday_start"`
	WorkdayEnd      string    `json:"workday_end"`
	UpdatedBy       *string   `json:"updated_by"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Default returns the hardcoded fallback used when no settings row exists
// yet. Reads never fail for lack of configuration.
func Default() CompanySettings {
	return CompanySettings{
		ID:              "company",
		OfficeName:      "Logix Cyber Park (Default)",
		OfficeLatitude:  28.6273928,
		OfficeLongitude: 77.3725545,
		RadiusMeters:    300,
		WorkdayStart:    "09:00",
		WorkdayEnd:      "18:00",
	}
}
