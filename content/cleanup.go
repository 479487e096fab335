// Response cleanup applied to every model response before it is cached or
// returned. Normalizes model preambles without altering structured content.

package content

import "strings"

// Clean normalizes a raw model response:
//  1. discards any text preceding the first markdown heading line
//  2. collapses runs of three or more blank lines to exactly one
//  3. trims leading and trailing whitespace
//
// Responses with no heading at all are kept whole.
func Clean(raw string) string {
	lines := strings.Split(raw, "\n")

	start := 0
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			start = i
			break
		}
	}
	lines = lines[start:]

	var out []string
	blanks := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			continue
		}
		if blanks > 0 {
			if blanks >= 3 {
				blanks = 1
			}
			for i := 0; i < blanks; i++ {
				out = append(out, "")
			}
			blanks = 0
		}
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
