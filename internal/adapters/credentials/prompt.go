// internal/adapters/credentials/prompt.go
package credentials

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"shabnam/internal/core/domain"
	"shabnam/internal/core/ports"
	"shabnam/internal/platform/errors"
	"shabnam/internal/platform/logx"
)

// Variables de entorno que pre-llenan los prompts.
const (
	EnvGitHubToken = "SHABNAM_GITHUB_TOKEN"
	EnvShodanKey   = "SHABNAM_SHODAN_KEY"
)

const (
	promptGitHub = "Enter GitHub API key: "
	promptShodan = "Enter Shodan API key: "
)

// Prompter pide las claves por stdin, en texto plano y con eco.
// Los valores presentes en Preset no se preguntan.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	preset domain.Credentials
	logger logx.Logger
}

var _ ports.CredentialSource = (*Prompter)(nil)

// NewPrompter crea un Prompter sobre in/out.
func NewPrompter(in io.Reader, out io.Writer, preset domain.Credentials, logger logx.Logger) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		preset: preset,
		logger: logger.With("component", "credentials"),
	}
}

// FromEnv lee las claves de entorno con lookup (os.LookupEnv en producción).
func FromEnv(lookup func(string) (string, bool)) domain.Credentials {
	var c domain.Credentials
	if v, ok := lookup(EnvGitHubToken); ok {
		c.GitHubToken = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvShodanKey); ok {
		c.ShodanKey = strings.TrimSpace(v)
	}
	return c
}

// Collect pide primero GitHub y luego Shodan. Un valor vacío aborta
// de inmediato, sin volver a preguntar.
func (p *Prompter) Collect(ctx context.Context) (domain.Credentials, error) {
	creds := domain.Credentials{}

	github, err := p.value(ctx, p.preset.GitHubToken, promptGitHub, "github")
	if err != nil {
		return creds, err
	}
	creds.GitHubToken = github
	if github == "" {
		return creds, creds.Validate()
	}

	shodan, err := p.value(ctx, p.preset.ShodanKey, promptShodan, "shodan")
	if err != nil {
		return creds, err
	}
	creds.ShodanKey = shodan
	return creds, creds.Validate()
}

func (p *Prompter) value(ctx context.Context, preset, prompt, name string) (string, error) {
	if preset != "" {
		p.logger.Debug("credential taken from environment", "key", name)
		return preset, nil
	}
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(errors.ErrAborted, "credential prompt")
	}

	fmt.Fprint(p.out, prompt)

	// la lectura no se puede interrumpir; si ctx termina primero la
	// goroutine queda bloqueada hasta que el proceso sale
	read := make(chan lineRead, 1)
	go func() {
		line, err := p.in.ReadString('\n')
		read <- lineRead{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		p.logger.Debug("credential prompt interrupted", "key", name)
		return "", errors.Wrap(errors.ErrAborted, "credential prompt")
	case r := <-read:
		if r.err != nil && r.err != io.EOF {
			return "", errors.Wrapf(errors.ErrMissingCredential, "read %s key: %v", name, r.err)
		}
		return strings.TrimSpace(r.line), nil
	}
}

type lineRead struct {
	line string
	err  error
}
