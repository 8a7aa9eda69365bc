package errors

import (
	"fmt"
	"testing"

	"shabnam/internal/testutil"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		baseErr := New("base error")
		wrapped := Wrap(baseErr, "additional context")

		testutil.AssertNotNil(t, wrapped, "wrapped error should not be nil")
		testutil.AssertTrue(t, Is(wrapped, baseErr), "should be able to unwrap to base error")
		testutil.AssertEqual(t, wrapped.Error(), "additional context: base error", "error message should include context")
	})

	t.Run("returns nil when wrapping nil", func(t *testing.T) {
		wrapped := Wrap(nil, "context")
		testutil.AssertTrue(t, wrapped == nil, "wrapping nil should return nil")
	})

	t.Run("multiple wraps preserve chain", func(t *testing.T) {
		wrapped := Wrap(Wrap(ErrCommandFailed, "subfinder"), "step 2/5")

		testutil.AssertTrue(t, Is(wrapped, ErrCommandFailed), "should unwrap to sentinel")
		testutil.AssertEqual(t, wrapped.Error(), "step 2/5: subfinder: command failed", "should show full chain")
	})
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrMissingInput, "step %d", 3)
	testutil.AssertTrue(t, Is(wrapped, ErrMissingInput), "should unwrap to sentinel")
	testutil.AssertEqual(t, wrapped.Error(), "step 3: missing step input", "formatted context")

	testutil.AssertTrue(t, Wrapf(nil, "context %s", "x") == nil, "wrapping nil should return nil")
}

func TestWithKind(t *testing.T) {
	err := WithKind(ErrMissingCredential, "GitHub API key is required for slow approach.")
	testutil.AssertEqual(t, err.Error(), "GitHub API key is required for slow approach.", "message is kept verbatim")
	testutil.AssertTrue(t, Is(err, ErrMissingCredential), "kind is matchable")
	testutil.AssertEqual(t, ExitCode(err), ExitFailed, "credential errors exit 1")
}

func TestAs(t *testing.T) {
	wrapped := Wrap(&wrappedError{msg: "inner", cause: ErrTimeout}, "outer")

	var target *wrappedError
	testutil.AssertTrue(t, As(wrapped, &target), "should find wrappedError type")
	testutil.AssertEqual(t, target.msg, "outer", "As matches the outermost wrapper first")

	var none *wrappedError
	testutil.AssertFalse(t, As(New("plain"), &none), "plain error is not a wrappedError")
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"invalid domain", ErrInvalidDomain, true},
		{"likely subdomain wrapped", Wrap(ErrSubdomainInput, "www.example.com"), true},
		{"approach", ErrApproachRequired, true},
		{"config", Wrapf(ErrInvalidConfig, "merge mode %q", "x"), true},
		{"usage", WithKind(ErrUsage, "accepts 1 arg(s), received 0"), true},
		{"missing tool", ErrMissingTool, false},
		{"command failure", ErrCommandFailed, false},
		{"workspace", ErrWorkspace, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, IsValidation(tt.err), tt.want, "IsValidation result should match")
		})
	}
}

func TestIsCommandFailure(t *testing.T) {
	testutil.AssertTrue(t, IsCommandFailure(Wrap(ErrCommandFailed, "x")), "failed")
	testutil.AssertTrue(t, IsCommandFailure(Wrap(ErrCommandException, "x")), "exception")
	testutil.AssertFalse(t, IsCommandFailure(ErrMissingInput), "missing input is not a command failure")
	testutil.AssertFalse(t, IsCommandFailure(nil), "nil")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, ExitOK},
		{"invalid domain", Wrap(ErrInvalidDomain, "bad"), ExitUsage},
		{"subdomain", ErrSubdomainInput, ExitUsage},
		{"config", ErrInvalidConfig, ExitUsage},
		{"command failed", Wrap(ErrCommandFailed, "findomain"), ExitFailed},
		{"missing credential", ErrMissingCredential, ExitFailed},
		{"usage", ErrUsage, ExitUsage},
		{"missing tool", Wrap(ErrMissingTool, "ffuf"), ExitFailed},
		{"aborted", ErrAborted, ExitFailed},
		{"unknown", New("boom"), ExitFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, ExitCode(tt.err), tt.want, "exit code")
		})
	}
}

func TestJoin(t *testing.T) {
	joined := Join(ErrAborted, nil, ErrTimeout)
	testutil.AssertTrue(t, Is(joined, ErrAborted), "should find first error")
	testutil.AssertTrue(t, Is(joined, ErrTimeout), "should find second error")
	testutil.AssertTrue(t, Join(nil, nil) == nil, "all nil joins to nil")
}

func ExampleWrap() {
	wrapped := Wrap(ErrCommandFailed, "Running Findomain")
	fmt.Println(wrapped.Error())
	// Output: Running Findomain: command failed
}

func ExampleExitCode() {
	fmt.Println(ExitCode(Wrap(ErrInvalidDomain, "not-a-domain")))
	// Output: 2
}
