package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownCommand(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want bool
	}{
		{
			name: "send subcommand",
			arg:  "send",
			want: true,
		},
		{
			name: "auth subcommand",
			arg:  "auth",
			want: true,
		},
		{
			name: "version subcommand",
			arg:  "version",
			want: true,
		},
		{
			name: "builtin help",
			arg:  "help",
			want: true,
		},
		{
			name: "flag",
			arg:  "--verbose",
			want: true,
		},
		{
			name: "email address routes to send",
			arg:  "a@example.com",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isKnownCommand(tt.arg))
		})
	}
}
