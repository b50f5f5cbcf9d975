package config_test

import (
	"testing"

	"github.com/pswitchy/fcrypt/internal/config"
)

func valid() config.Config {
	return config.Config{
		Parallel:      4,
		EncryptSuffix: ".enc",
		Files:         []string{"a.txt"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"defaults pass", func(*config.Config) {}, false},
		{"decrypt with distinct suffixes passes", func(c *config.Config) { c.Decrypt = true }, false},
		{"zero parallel", func(c *config.Config) { c.Parallel = 0 }, true},
		{"negative parallel", func(c *config.Config) { c.Parallel = -1 }, true},
		{"missing encrypt suffix", func(c *config.Config) { c.EncryptSuffix = "" }, true},
		{"no files", func(c *config.Config) { c.Files = nil }, true},
		{
			"decrypt with equal suffixes",
			func(c *config.Config) {
				c.Decrypt = true
				c.DecryptSuffix = c.EncryptSuffix
			},
			true,
		},
		{
			"equal suffixes allowed when encrypting",
			func(c *config.Config) { c.DecryptSuffix = c.EncryptSuffix },
			false,
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
