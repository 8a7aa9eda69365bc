// internal/core/domain/target_test.go
package domain

import (
	"testing"

	"shabnam/internal/platform/errors"
	"shabnam/internal/testutil"
)

func TestNewTarget(t *testing.T) {
	target := NewTarget("Example.COM", ApproachFast)

	testutil.AssertNotNil(t, target, "target should not be nil")
	testutil.AssertEqual(t, target.Domain, "Example.COM", "NewTarget does not normalize")
	testutil.AssertEqual(t, target.Approach, ApproachFast, "approach")
}

func TestTarget_Validate(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		approach Approach
		want     string
		kind     error
	}{
		{"valid fast", "example.com", ApproachFast, "example.com", nil},
		{"valid slow normalizes", "  Example.COM ", ApproachSlow, "example.com", nil},
		{"denylisted label", "www.example.com", ApproachFast, "", errors.ErrSubdomainInput},
		{"malformed", "not a domain", ApproachFast, "", errors.ErrInvalidDomain},
		{"empty", "", ApproachSlow, "", errors.ErrInvalidDomain},
		{"missing approach", "example.com", "", "", errors.ErrApproachRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewTarget(tt.domain, tt.approach)
			err := target.Validate()

			if tt.kind == nil {
				testutil.AssertNoError(t, err, "Validate")
				testutil.AssertEqual(t, target.Domain, tt.want, "normalized domain")
				return
			}
			testutil.AssertTrue(t, errors.Is(err, tt.kind), "error kind")
		})
	}
}

func TestTarget_String(t *testing.T) {
	target := NewTarget("example.com", ApproachSlow)
	testutil.AssertEqual(t, target.String(), "Target{domain=example.com, approach=slow}", "String()")
}
