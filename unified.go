package diffkit

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatUnified renders hunks as standard unified-diff text with
// "--- a/<oldLabel>" and "+++ b/<newLabel>" headers. A range count of
// exactly 1 is omitted from @@ headers, matching git; counts of 0 and
// greater than 1 are always written. An empty hunk list produces an
// empty string. Runs of modified lines emit all their old versions
// before their new versions.
func FormatUnified(hunks []Hunk, oldLabel, newLabel string) string {
	if len(hunks) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n", oldLabel)
	fmt.Fprintf(&sb, "+++ b/%s\n", newLabel)
	for _, h := range hunks {
		fmt.Fprintf(&sb, "@@ -%s +%s @@\n",
			formatRange(h.OldStart, h.OldCount),
			formatRange(h.NewStart, h.NewCount))
		writeHunkLines(&sb, h.Lines)
	}
	return sb.String()
}

func formatRange(start, count int) string {
	if count == 1 {
		return strconv.Itoa(start)
	}
	return fmt.Sprintf("%d,%d", start, count)
}

func writeHunkLines(sb *strings.Builder, lines []DiffLine) {
	for i := 0; i < len(lines); {
		switch lines[i].Status {
		case Modified:
			j := i
			for j < len(lines) && lines[j].Status == Modified {
				j++
			}
			for k := i; k < j; k++ {
				writeLine(sb, '-', lines[k].OldContent)
			}
			for k := i; k < j; k++ {
				writeLine(sb, '+', lines[k].Content)
			}
			i = j
		case Deleted:
			writeLine(sb, '-', lines[i].Content)
			i++
		case Added:
			writeLine(sb, '+', lines[i].Content)
			i++
		default:
			writeLine(sb, ' ', lines[i].Content)
			i++
		}
	}
}

func writeLine(sb *strings.Builder, prefix byte, content string) {
	sb.WriteByte(prefix)
	sb.WriteString(content)
	sb.WriteByte('\n')
}
