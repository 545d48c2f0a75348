package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "123 Main St, Springfield", want: "123%20Main%20St%2C%20Springfield"},
		{in: "Jl. Sudirman No.1", want: "Jl.%20Sudirman%20No.1"},
		{in: "a+b&c=d/e?f#g", want: "a%2Bb%26c%3Dd%2Fe%3Ff%23g"},
		{in: "Joe's (Diner)!*~", want: "Joe's%20(Diner)!*~"},
		{in: "Café", want: "Caf%C3%A9"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeURIComponent(tt.in))
		})
	}
}
