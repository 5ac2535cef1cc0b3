package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pocketfin/pocket/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateUnmarshalJSON(t *testing.T) {
	var target struct {
		Date types.Date
	}
	err := json.Unmarshal([]byte(`{ "date": "2024-01-10" }`), &target)

	require.Nil(t, err)
	assert.True(t, types.NewDate(2024, 1, 10).Equal(target.Date))
}

func TestDateUnmarshalJSON_RFC3339(t *testing.T) {
	var target struct {
		Date types.Date
	}
	err := json.Unmarshal([]byte(`{ "date": "2024-05-12T17:59:23+02:00" }`), &target)

	require.Nil(t, err)
	assert.True(t, types.NewDate(2024, 5, 12).Equal(target.Date))
}

func TestDateUnmarshalJSON_Invalid(t *testing.T) {
	var d types.Date
	err := json.Unmarshal([]byte(`"not-a-date"`), &d)
	assert.NotNil(t, err)
}

func TestDateRoundTrip(t *testing.T) {
	d := types.NewDate(2024, 12, 31)

	data, err := json.Marshal(d)
	require.Nil(t, err)
	assert.Equal(t, `"2024-12-31"`, string(data))

	var back types.Date
	require.Nil(t, json.Unmarshal(data, &back))
	assert.True(t, d.Equal(back))
}

func TestDateAddDays(t *testing.T) {
	d := types.NewDate(2024, 2, 28)
	assert.Equal(t, "2024-02-29", d.AddDays(1).String()) // leap year
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
}

func TestDateOfKeepsCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	d := types.DateOf(time.Date(2024, 6, 1, 23, 30, 0, 0, loc))
	assert.Equal(t, "2024-06-01", d.String())
}
