// pkg/packages/runner.go
package packages

import "os/exec"

// Runner executes external package manager queries. Tests swap in a mock
// to simulate command output without spawning processes.
type Runner interface {
	Output(cmd *exec.Cmd) ([]byte, error)
}

// RealRunner runs commands against the host.
type RealRunner struct{}

func (RealRunner) Output(cmd *exec.Cmd) ([]byte, error) {
	return cmd.Output()
}

// CommandRunner is the process-spawn seam used by all external-process
// counting strategies.
var CommandRunner Runner = RealRunner{}
