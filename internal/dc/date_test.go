package dc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate_Valid(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"01/02/2023", "1 February 2023"},
		{"31/04/2024", "31 April 2024"},
		{"31/02/2023", "31 February 2023"},
		{"5/1/1999", "5 January 1999"},
		{"25/12/2020", "25 December 2020"},
		{" 10/10/10 ", "10 October 10"},
		{"1/7/0001", "1 July 1"},
	}
	for _, tt := range tests {
		got, err := FormatDate(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestFormatDate_Invalid(t *testing.T) {
	tests := []struct {
		raw  string
		want error
	}{
		{"32/04/2024", ErrDayRange},
		{"0/04/2024", ErrDayRange},
		{"10/13/2024", ErrMonthRange},
		{"10/0/2024", ErrMonthRange},
		{"10/10/0", ErrYearRange},
		{"10-10-2024", ErrDateFormat},
		{"10/10", ErrDateFormat},
		{"10/10/2024/1", ErrDateFormat},
		{"aa/10/2024", ErrDateFormat},
		{"+1/10/2024", ErrDateFormat},
		{"10//2024", ErrDateFormat},
		{"", ErrDateFormat},
	}
	for _, tt := range tests {
		_, err := FormatDate(tt.raw)
		assert.ErrorIs(t, err, tt.want, tt.raw)
	}
}
