package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMenuState(t *testing.T) {
	cases := []struct {
		name    string
		input   interface{}
		want    int
		wantErr bool
	}{
		{name: "bool true", input: true, want: MenuStateVisible},
		{name: "bool false", input: false, want: MenuStateHidden},
		{name: "int visible", input: 1, want: MenuStateVisible},
		{name: "int hidden", input: 0, want: MenuStateHidden},
		{name: "json number", input: float64(1), want: MenuStateVisible},
		{name: "int64", input: int64(0), want: MenuStateHidden},
		{name: "string true", input: "true", want: MenuStateVisible},
		{name: "string false", input: "false", want: MenuStateHidden},
		{name: "string digit", input: "1", want: MenuStateVisible},
		{name: "string padded", input: " TRUE ", want: MenuStateVisible},
		{name: "nil", input: nil, wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "out of range", input: 2, wantErr: true},
		{name: "negative", input: -1, wantErr: true},
		{name: "garbage string", input: "visible", wantErr: true},
		{name: "wrong type", input: []int{1}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseMenuState(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
