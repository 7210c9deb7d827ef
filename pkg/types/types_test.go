package types

import (
	"testing"

	"github.com/invincible-jha/aumai-chaos/pkg/cerrors"
)

func TestParseFaultKind(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    FaultKind
		wantErr bool
	}{
		{"latency", "latency", FaultLatency, false},
		{"error", "error", FaultError, false},
		{"timeout", "timeout", FaultTimeout, false},
		{"partial failure", "partial_failure", FaultPartialFailure, false},
		{"resource exhaustion", "resource_exhaustion", FaultResourceExhaustion, false},
		{"data corruption", "data_corruption", FaultDataCorruption, false},
		{"unknown kind", "disk_on_fire", "", true},
		{"empty", "", "", true},
		{"case sensitive", "Latency", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFaultKind(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFaultKind(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil && cerrors.GetErrorType(err) != cerrors.ErrorTypeConfiguration {
				t.Errorf("ParseFaultKind(%q) error type = %v, want configuration", tt.raw, cerrors.GetErrorType(err))
			}
			if got != tt.want {
				t.Errorf("ParseFaultKind(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestKindsCoversEnumeration(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 6 {
		t.Fatalf("expected 6 fault kinds, got %d", len(kinds))
	}
	for _, kind := range kinds {
		if !kind.Valid() {
			t.Errorf("kind %q reported invalid", kind)
		}
	}
}

func TestNewFaultSpecAlwaysFires(t *testing.T) {
	spec := NewFaultSpec(FaultTimeout)
	if spec.Probability != 1.0 {
		t.Errorf("NewFaultSpec probability = %v, want 1.0", spec.Probability)
	}
	if spec.Kind != FaultTimeout {
		t.Errorf("NewFaultSpec kind = %v, want timeout", spec.Kind)
	}
}
