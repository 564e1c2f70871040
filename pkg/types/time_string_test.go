package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_On(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	day := time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC) // в Калькутте уже 16 января
	got, err := TimeString("9:00").On(day, loc)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 1, 16, 9, 0, 0, 0, loc).Equal(got))

	end, err := TimeString("24:00").On(day, loc)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 1, 17, 0, 0, 0, 0, loc).Equal(end))
}

func TestTimeString_OnRejectsInvalid(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	for _, valid := range []string{"9:00", "09:00", "17:30", "0:00", "24:00"} {
		_, err := TimeString(valid).On(day, time.UTC)
		assert.NoError(t, err, valid)
	}
	for _, invalid := range []string{"", "9", "9:0", "25:00", "24:15", "12:60", "ab:cd", "123:00"} {
		_, err := TimeString(invalid).On(day, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidTimeString, invalid)
	}
}
