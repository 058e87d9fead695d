package runner

import (
	"fmt"
	"strings"
)

// Steps numbers each line of source from 1 as "Step N: <trimmed line>".
// A trailing newline yields a final empty step.
func Steps(source string) []string {
	lines := strings.Split(source, "\n")
	steps := make([]string, len(lines))
	for i, line := range lines {
		steps[i] = fmt.Sprintf("Step %d: %s", i+1, strings.TrimSpace(line))
	}
	return steps
}
