package types

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"valid", Config{DataDir: "/tmp/hunt", InputSheet: DefaultInputSheet}, nil},
		{"empty data dir allowed", Config{InputSheet: "Pool"}, nil},
		{"empty input sheet", Config{DataDir: "/tmp/hunt"}, ErrInputSheetEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.config.Validate(); err != tt.wantErr {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
