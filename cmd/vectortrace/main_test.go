package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no ops", nil, 0},
		{"valid script", []string{"-level", "error", "push:1", "push:2", "at:5"}, 0},
		{"unknown op", []string{"shove:1"}, 2},
		{"bad flag", []string{"-nope"}, 2},
		{"bad level", []string{"-level", "loud", "push:1"}, 2},
		{"allocation failure", []string{"-level", "fatal", "reserve:4611686018427387904"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(tt.args))
		})
	}
}
