// Package cmdsource is the capture backend that drives external programs:
// a screenshot tool that writes an image file, and a display information
// tool whose output lists the monitors.
package cmdsource

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os/exec"

	"github.com/google/shlex"
	"github.com/pion/logging"
)

var errInvalidCommand = errors.New("invalid command")

// Runner runs a program to completion and returns what it wrote to its
// standard output and error. A non-zero exit status is reported as an error.
type Runner func(name string, args ...string) (stdout, stderr []byte, err error)

func execRunner(name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

type command struct {
	args []string
}

// parseCommand splits a command line on whitespace, respecting quotes &
// comments.
func parseCommand(line string) (command, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return command{}, fmt.Errorf("%w %q: %v", errInvalidCommand, line, err)
	}
	if len(args) == 0 || args[0] == "" {
		return command{}, fmt.Errorf("%w %q: no program", errInvalidCommand, line)
	}
	return command{args: args}, nil
}

func (c command) name() string {
	return c.args[0]
}

// with returns the command's own arguments followed by extra.
func (c command) with(extra ...string) []string {
	args := make([]string, 0, len(c.args)-1+len(extra))
	args = append(args, c.args[1:]...)
	return append(args, extra...)
}

func (c command) run(r Runner, log logging.LeveledLogger, extra ...string) ([]byte, []byte, error) {
	args := c.with(extra...)
	log.Debugf("running %s %v", c.name(), args)
	stdout, stderr, err := r(c.name(), args...)

	// send standard error to the log as debug lines prefixed with (<command> stderr)
	prefix := fmt.Sprintf("(%s stderr): ", c.name())
	scanner := bufio.NewScanner(bytes.NewReader(stderr))
	for scanner.Scan() {
		log.Debug(prefix + scanner.Text())
	}
	return stdout, stderr, err
}
