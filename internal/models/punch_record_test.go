package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPunch(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"09:15:00", true},
		{"23:59:59", true},
		{"00:00:01", true},
		{"00:00:00", false},
		{" 00:00:00 ", false},
		{"", false},
		{"   ", false},
		{"\t", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsValidPunch(c.in), "input %q", c.in)
	}
}

func TestFlagTruthy(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"2", true},
		{"15", true},
		{" 1 ", true},
		{"0", false},
		{"", false},
		{"-1", false},
		{"yes", false},
		{"true", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FlagTruthy(c.in), "input %q", c.in)
	}
}
