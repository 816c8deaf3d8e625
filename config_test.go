package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "defaults",
			cfg:  Config{port: 8080},
		},
		{
			name:    "port too low",
			cfg:     Config{port: 0},
			wantErr: true,
		},
		{
			name:    "port too high",
			cfg:     Config{port: 70000},
			wantErr: true,
		},
		{
			name:    "cert without key",
			cfg:     Config{port: 8080, tlsCert: "cert.pem"},
			wantErr: true,
		},
		{
			name: "cert and key together",
			cfg:  Config{port: 8080, tlsCert: "cert.pem", tlsKey: "key.pem"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigScheme(t *testing.T) {
	assert.Equal(t, "http", (&Config{}).scheme())
	assert.Equal(t, "https", (&Config{tlsCert: "cert.pem", tlsKey: "key.pem"}).scheme())
}
