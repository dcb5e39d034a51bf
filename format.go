package deltalog

import (
	"bytes"
	"fmt"
	"io"
)

// FormatPrettyString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatPrettyString(cl Changelog, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, cl, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report to w, one line per entry. if colorTTY is
// true it will add
// red "-" for deletions
// green "+" for additions
// blue "~" for updates
func FormatPretty(w io.Writer, cl Changelog, colorTTY bool) error {
	var colorMap map[Note]string

	if colorTTY {
		colorMap = map[Note]string{
			Note("close"): "\x1b[0m", // end color tag

			NoteAdded:   "\x1b[32m", // green
			NoteDeleted: "\x1b[31m", // red
			NoteUpdated: "\x1b[34m", // blue
		}
	}

	for _, e := range cl {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", colorMap[e.Note], e.String(), colorMap[Note("close")]); err != nil {
			return err
		}
	}
	return nil
}

// FormatStatsString prints a one-line summary of a change tally
func FormatStatsString(st *Stats, color bool) string {
	var (
		addColor, deleteColor, updateColor, closeColor string
	)

	if st == nil {
		return ""
	}

	if color {
		addColor = "\x1b[32m"
		deleteColor = "\x1b[31m"
		updateColor = "\x1b[34m"
		closeColor = "\x1b[0m"
	}

	buf := &bytes.Buffer{}

	additionsWord := "additions"
	if st.Added == 1 {
		additionsWord = "addition"
	}
	buf.WriteString(fmt.Sprintf("%s%d %s.%s", addColor, st.Added, additionsWord, closeColor))

	deletionsWord := "deletions"
	if st.Deleted == 1 {
		deletionsWord = "deletion"
	}
	buf.WriteString(fmt.Sprintf(" %s%d %s.%s", deleteColor, st.Deleted, deletionsWord, closeColor))

	updatesWord := "updates"
	if st.Updated == 1 {
		updatesWord = "update"
	}
	buf.WriteString(fmt.Sprintf(" %s%d %s.%s", updateColor, st.Updated, updatesWord, closeColor))

	buf.WriteRune('\n')

	return buf.String()
}
