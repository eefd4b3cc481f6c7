package card

import (
	"strings"
	"time"
)

const headerIndent = "        "

// Present pairs every avatar row with the stat line of the same index.
// Stat lines beyond the avatar height are dropped, missing ones leave the row bare.
func Present(rankLabel string, username string, rows [Rows]string, lines []StatLine, now time.Time) string {
	var out strings.Builder
	out.WriteString(headerIndent + "(" + rankLabel + ") " + username + "\n")
	for i, row := range rows {
		out.WriteString(row)
		if i < len(lines) && lines[i] != nil {
			out.WriteString(" ")
			out.WriteString(lines[i].Render(now))
		}

		out.WriteString("\n")
	}

	return out.String()
}
