package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "24-hour afternoon", input: "14:30", want: 870, wantOK: true},
		{name: "24-hour morning", input: "9:05", want: 545, wantOK: true},
		{name: "24-hour midnight", input: "0:00", want: 0, wantOK: true},
		{name: "pm hour only", input: "2pm", want: 840, wantOK: true},
		{name: "pm with minutes discards them", input: "2:15pm", want: 840, wantOK: true},
		{name: "pm half hour discards minutes", input: "2:30pm", want: 840, wantOK: true},
		{name: "pm with space", input: "2 pm", want: 840, wantOK: true},
		{name: "uppercase meridiem", input: "2 PM", want: 840, wantOK: true},
		{name: "noon stays noon", input: "12pm", want: 720, wantOK: true},
		{name: "midnight in 12-hour form", input: "12am", want: 0, wantOK: true},
		{name: "bare hour", input: "10", want: 600, wantOK: true},
		{name: "surrounding whitespace", input: " 14:30 ", want: 870, wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "placeholder", input: "N/A", wantOK: false},
		{name: "lowercase placeholder", input: "n/a", wantOK: false},
		{name: "garbage", input: "abc", wantOK: false},
		{name: "bad minutes", input: "14:xx", wantOK: false},
		{name: "bad hour", input: "xx:30", wantOK: false},
		{name: "meridiem without hour", input: "pm", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimeOfDay(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
