// internal/adapters/credentials/prompt_test.go
package credentials

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"shabnam/internal/core/domain"
	"shabnam/internal/platform/errors"
	"shabnam/internal/platform/logx"
	"shabnam/internal/testutil"
)

func newTestPrompter(input string, preset domain.Credentials) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out, preset, logx.Discard()), &out
}

func TestCollect_BothPrompted(t *testing.T) {
	p, out := newTestPrompter("  ghp_token \nshodan-key\n", domain.Credentials{})

	creds, err := p.Collect(context.Background())
	testutil.AssertNoError(t, err, "Collect")
	testutil.AssertEqual(t, creds.GitHubToken, "ghp_token", "github token trimmed")
	testutil.AssertEqual(t, creds.ShodanKey, "shodan-key", "shodan key")
	testutil.AssertEqual(t, out.String(), "Enter GitHub API key: Enter Shodan API key: ", "prompts in order")
}

func TestCollect_EmptyGitHubStopsBeforeShodan(t *testing.T) {
	p, out := newTestPrompter("\nshodan-key\n", domain.Credentials{})

	_, err := p.Collect(context.Background())
	testutil.AssertTrue(t, errors.Is(err, errors.ErrMissingCredential), "missing credential")
	testutil.AssertEqual(t, err.Error(), "GitHub API key is required for slow approach.", "message")
	testutil.AssertNotContains(t, out.String(), "Shodan", "shodan never asked")
}

func TestCollect_EmptyShodan(t *testing.T) {
	p, _ := newTestPrompter("ghp_token\n   \n", domain.Credentials{})

	_, err := p.Collect(context.Background())
	testutil.AssertTrue(t, errors.Is(err, errors.ErrMissingCredential), "missing credential")
	testutil.AssertEqual(t, err.Error(), "Shodan API key is required for slow approach.", "message")
}

func TestCollect_EOFWithoutNewline(t *testing.T) {
	p, _ := newTestPrompter("ghp_token\nshodan-key", domain.Credentials{})

	creds, err := p.Collect(context.Background())
	testutil.AssertNoError(t, err, "Collect")
	testutil.AssertEqual(t, creds.ShodanKey, "shodan-key", "last line without newline")
}

func TestCollect_ClosedStdin(t *testing.T) {
	p, _ := newTestPrompter("", domain.Credentials{})

	_, err := p.Collect(context.Background())
	testutil.AssertTrue(t, errors.Is(err, errors.ErrMissingCredential), "EOF is an empty answer")
}

func TestCollect_Preset(t *testing.T) {
	p, out := newTestPrompter("shodan-key\n", domain.Credentials{GitHubToken: "from-env"})

	creds, err := p.Collect(context.Background())
	testutil.AssertNoError(t, err, "Collect")
	testutil.AssertEqual(t, creds.GitHubToken, "from-env", "preset used")
	testutil.AssertEqual(t, out.String(), "Enter Shodan API key: ", "only shodan prompted")
}

func TestCollect_Cancelled(t *testing.T) {
	p, _ := newTestPrompter("a\nb\n", domain.Credentials{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Collect(ctx)
	testutil.AssertTrue(t, errors.IsAborted(err), "aborted")
}

func TestCollect_CancelledWhileReading(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	var out strings.Builder
	p := NewPrompter(pr, &out, domain.Credentials{}, logx.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := p.Collect(ctx)
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		testutil.AssertTrue(t, errors.IsAborted(err), "interrupted prompt is an abort")
		testutil.AssertFalse(t, errors.Is(err, errors.ErrMissingCredential), "not a missing credential")
	case <-time.After(2 * time.Second):
		t.Fatal("Collect kept waiting for input after the context was cancelled")
	}
}

func TestFromEnv(t *testing.T) {
	env := map[string]string{EnvGitHubToken: " gh ", EnvShodanKey: "sh"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	creds := FromEnv(lookup)
	testutil.AssertEqual(t, creds.GitHubToken, "gh", "github trimmed")
	testutil.AssertEqual(t, creds.ShodanKey, "sh", "shodan")

	empty := FromEnv(func(string) (string, bool) { return "", false })
	testutil.AssertEqual(t, empty, domain.Credentials{}, "nothing set")
}
