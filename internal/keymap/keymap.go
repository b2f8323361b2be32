// Package keymap resolves the key-to-destination bindings a review
// session files images with.
package keymap

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"cull/internal/errors"
	"cull/internal/log"
	"cull/pkg/types"
)

// Resolve validates binding pairs in order and returns the finalized
// key-to-directory map plus the targets that do not exist yet, in
// encounter order. A target that exists as something other than a
// directory is a fatal configuration error. When a key repeats the
// later pair wins and a warning is logged.
//
// Resolve never creates directories. The caller seeds a MkDir action
// for each returned target, so provisioning happens when the script
// runs, not before.
func Resolve(pairs []types.Binding) (map[rune]string, []string, error) {
	bindings := make(map[rune]string, len(pairs))
	var create []string

	for _, p := range pairs {
		info, err := os.Stat(p.Target)
		if err == nil && !info.IsDir() {
			return nil, nil, errors.NewBindingError(
				"binding target exists and is not a directory",
				p.Key, p.Target, errors.TargetNotDirectory, nil)
		}
		if err != nil {
			// Missing or unstattable; either way the script's mkdir -p
			// will create it or report the real problem.
			create = append(create, p.Target)
		}

		if old, dup := bindings[p.Key]; dup {
			log.LogWithFields(
				log.F("key", string(p.Key)),
				log.F("previous", old),
				log.F("target", p.Target),
			).Warn("Key bound twice, later binding wins")
		}
		bindings[p.Key] = p.Target
	}
	return bindings, create, nil
}

// ParseSpec parses one binding flag value of the form "key=directory".
func ParseSpec(spec string) (types.Binding, error) {
	key, target, found := strings.Cut(spec, "=")
	if !found {
		return types.Binding{}, errors.NewBindingError(
			fmt.Sprintf("invalid binding %q, expected key=directory", spec),
			0, "", errors.InvalidBinding, nil)
	}
	if utf8.RuneCountInString(key) != 1 {
		return types.Binding{}, errors.NewBindingError(
			fmt.Sprintf("binding key must be a single character, got %q", key),
			0, "", errors.InvalidBinding, nil)
	}
	if target == "" {
		return types.Binding{}, errors.NewBindingError(
			fmt.Sprintf("binding %q has no destination directory", spec),
			0, "", errors.InvalidBinding, nil)
	}
	r, _ := utf8.DecodeRuneInString(key)
	return types.Binding{Key: r, Target: target}, nil
}

// ParseSpecs parses a list of binding flag values, preserving order.
func ParseSpecs(specs []string) ([]types.Binding, error) {
	pairs := make([]types.Binding, 0, len(specs))
	for _, spec := range specs {
		pair, err := ParseSpec(spec)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}
