package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bpolitiadis/leadwave/pkg/logger"
)

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"typical address", "alice@example.com", "ali***@example.com"},
		{"short local part", "ab@example.com", "ab***@example.com"},
		{"single char local part", "a@example.com", "a***@example.com"},
		{"exactly three chars", "bob@example.com", "bob***@example.com"},
		{"subdomain preserved", "support@mail.example.co.uk", "sup***@mail.example.co.uk"},
		{"surrounding whitespace", "  alice@example.com  ", "ali***@example.com"},
		{"missing at sign", "not-an-email", "***"},
		{"missing local part", "@example.com", "***"},
		{"missing domain", "alice@", "***"},
		{"empty string", "", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logger.MaskEmail(tt.email))
		})
	}
}

func TestMaskIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ip   string
		want string
	}{
		{"ipv4", "203.0.113.42", "203.0.*.*"},
		{"ipv4 private", "192.168.1.10", "192.168.*.*"},
		{"ipv6", "2001:db8::8a2e:370:7334", "2001:db8:*"},
		{"invalid", "localhost", "***"},
		{"empty", "", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logger.MaskIP(tt.ip))
		})
	}
}
