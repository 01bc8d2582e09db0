package tsparse

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/typescript-eslint/tsequiv/internal/estree"
)

const waitDelay = 2 * time.Second

// ExecParser runs the companion script in a node child process, one per file.
type ExecParser struct {
	settings
}

func NewExecParser(opts ...Option) *ExecParser {
	return &ExecParser{settings: newSettings(opts)}
}

func (p *ExecParser) Parse(ctx context.Context, path string) estree.RawNode {
	return p.run(ctx, "exec", path, p.exec)
}

func (p *ExecParser) exec(ctx context.Context, path, _ string) (estree.CompilerNode, error) {
	cmd := exec.CommandContext(ctx, p.node, "-", path)
	cmd.Stdin = strings.NewReader(Script(false))
	cmd.Env = os.Environ()
	if len(p.modulePaths) > 0 {
		cmd.Env = append(cmd.Env, "NODE_PATH="+strings.Join(p.modulePaths, string(os.PathListSeparator)))
	}
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("companion script for %s: %w", path, ctxErr)
		}
		return nil, fmt.Errorf("companion script for %s: %w: %s", path, err, strings.TrimSpace(stderr.String()))
	}
	return Decode(stdout.Bytes())
}
