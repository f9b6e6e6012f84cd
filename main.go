package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/serialrun/cmd/cli"
	"github.com/temirov/serialrun/cmd/cli/execcmd"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the serialrun command-line application.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}

	exitStatusError := execcmd.ExitStatusError{}
	if errors.As(executionError, &exitStatusError) {
		os.Exit(exitStatusError.Status)
	}

	fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
	os.Exit(1)
}
