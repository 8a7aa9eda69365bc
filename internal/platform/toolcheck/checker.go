package toolcheck

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"shabnam/internal/platform/logx"
)

// DefaultVersionTimeout limita cada sonda de versión.
const DefaultVersionTimeout = 5 * time.Second

// Checker comprueba herramientas con LookPath y una sonda de versión opcional.
type Checker struct {
	logger   logx.Logger
	timeout  time.Duration
	lookPath func(string) (string, error)
}

// NewChecker crea un Checker que busca en el PATH del proceso.
func NewChecker(logger logx.Logger, timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = DefaultVersionTimeout
	}
	return &Checker{
		logger:   logger.With("component", "toolcheck"),
		timeout:  timeout,
		lookPath: exec.LookPath,
	}
}

// Check comprueba las herramientas en orden. Se detiene si ctx se cancela;
// las restantes quedan como StatusCheckFailed.
func (c *Checker) Check(ctx context.Context, tools []Tool) []Result {
	results := make([]Result, 0, len(tools))
	for _, tool := range tools {
		if err := ctx.Err(); err != nil {
			results = append(results, Result{Tool: tool, Status: StatusCheckFailed, Err: err})
			continue
		}
		results = append(results, c.CheckOne(ctx, tool))
	}
	return results
}

// CheckOne comprueba una sola herramienta.
func (c *Checker) CheckOne(ctx context.Context, tool Tool) Result {
	start := time.Now()
	res := Result{Tool: tool}

	path, err := c.lookPath(tool.Binary)
	if err != nil {
		c.logger.Debug("tool not found", "tool", tool.Name, "binary", tool.Binary)
		res.Status = StatusMissing
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}
	res.Status = StatusInstalled
	res.Path = path

	if len(tool.VersionArgs) > 0 {
		out, err := c.version(ctx, path, tool.VersionArgs)
		if err != nil {
			// la herramienta existe aunque no responda a la sonda
			c.logger.Debug("version probe failed", "tool", tool.Name, "error", err)
		} else {
			res.Version = ExtractVersion(out)
		}
	}

	c.logger.Debug("tool found", "tool", tool.Name, "path", path, "version", res.Version)
	res.Duration = time.Since(start)
	return res
}

func (c *Checker) version(ctx context.Context, path string, args []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	output, err := exec.CommandContext(ctx, path, args...).CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to get version for %s: %w", path, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// Missing filtra los resultados que no están instalados.
func Missing(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}
