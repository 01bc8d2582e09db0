//go:build !unix

package tsparse

import "os/exec"

func setProcessGroup(*exec.Cmd) {}
