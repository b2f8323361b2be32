// Package script turns an action log into the POSIX shell script that
// applies it. The tool itself never moves or deletes anything; running
// the emitted script is the user's explicit, inspectable commit step.
package script

import (
	"fmt"
	"os"
	"strings"

	"cull/internal/errors"
	"cull/pkg/types"
)

// Render produces the script text for actions in log order. Skip and
// Rename contribute no line: a rename is already reflected in the
// destination of the move that consumed it. Rendering is stable, the
// same log always produces the same bytes, and there is no trailing
// newline.
func Render(actions []types.Action) string {
	lines := []string{"#!/bin/sh"}
	for _, a := range actions {
		switch a.Kind {
		case types.MkDir:
			lines = append(lines, fmt.Sprintf("mkdir -p \"%s\"", a.Dest))
		case types.Move:
			lines = append(lines, fmt.Sprintf("mv \"%s\" \"%s\"", a.Path, a.Dest))
		case types.Delete:
			lines = append(lines, fmt.Sprintf("rm \"%s\"", a.Path))
		}
	}
	return strings.Join(lines, "\n")
}

// Write renders actions and writes the script to path, fully replacing
// any previous content. The file is made executable so the user can run
// it directly.
func Write(path string, actions []types.Action) error {
	if err := os.WriteFile(path, []byte(Render(actions)), 0755); err != nil {
		return errors.NewFileError("failed to write script", path, errors.ScriptWriteFailed, err)
	}
	return nil
}
