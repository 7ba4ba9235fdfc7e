package settings

import (
	"testing"

	"github.com/Rahul-Sharma5/teamtimetracker/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	d := Default()

	assert.Equal(t, "Logix Cyber Park (Default)", d.OfficeName)
	assert.Equal(t, 28.6273928, d.OfficeLatitude)
	assert.Equal(t, 77.3725545, d.OfficeLongitude)
	assert.Equal(t, 300.0, d.RadiusMeters)
	assert.Nil(t, d.UpdatedBy)
}

func TestUpdateSettingsRequestValidate(t *testing.T) {
	valid := UpdateSettingsRequest{
		OfficeName:      "HQ",
		OfficeLatitude:  28.6273928,
		OfficeLongitude: 77.3725545,
		RadiusMeters:    300,
		WorkdayStart:    "09:00",
		WorkdayEnd:      "18:00",
	}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*UpdateSettingsRequest)
		field  string
	}{
		{"blank name", func(r *UpdateSettingsRequest) { r.OfficeName = " " }, "office_name"},
		{"latitude out of range", func(r *UpdateSettingsRequest) { r.OfficeLatitude = 91 }, "office_latitude"},
		{"longitude out of range", func(r *UpdateSettingsRequest) { r.OfficeLongitude = -181 }, "office_longitude"},
		{"zero radius", func(r *UpdateSettingsRequest) { r.RadiusMeters = 0 }, "radius_meters"},
		{"bad workday start", func(r *UpdateSettingsRequest) { r.WorkdayStart = "9am" }, "workday_start"},
		{"bad workday end", func(r *UpdateSettingsRequest) { r.WorkdayEnd = "25:00" }, "workday_end"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := valid
			c.mutate(&req)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, req.Validate(), &verrs)
			assert.Contains(t, verrs.ToMap(), c.field)
		})
	}
}
