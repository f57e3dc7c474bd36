// SPDX-License-Identifier: MIT
// Package: hamcircuit/builder
//
// parse.go — textual topology names for command-line use ("cycle:8").

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns "kind:n" into a Constructor. Known kinds: cycle, path, star,
// complete, wheel. Sizes are validated by the constructor itself when run.
func Parse(text string) (Constructor, error) {
	kind, size, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok {
		return nil, fmt.Errorf("%q: want kind:n: %w", text, ErrUnknownKind)
	}
	n, err := strconv.Atoi(strings.TrimSpace(size))
	if err != nil {
		return nil, fmt.Errorf("%q: size: %w", text, err)
	}

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "cycle":
		return Cycle(n), nil
	case "path":
		return Path(n), nil
	case "star":
		return Star(n), nil
	case "complete":
		return Complete(n), nil
	case "wheel":
		return Wheel(n), nil
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
}
