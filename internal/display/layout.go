package display

// SplitRows lays out s as up to maxRows rows of at most width runes each.
// Characters are consumed greedily with a hard cut - no word wrap, no
// ellipsis - and anything left over past the last row is discarded. Same
// input always yields the same rows.
func SplitRows(s string, width, maxRows int) []string {
	if width <= 0 || maxRows <= 0 {
		return nil
	}

	runes := []rune(s)
	rows := make([]string, 0, maxRows)

	for len(runes) > 0 && len(rows) < maxRows {
		n := width
		if n > len(runes) {
			n = len(runes)
		}
		rows = append(rows, string(runes[:n]))
		runes = runes[n:]
	}

	return rows
}

// Row returns row i of SplitRows(s, width, maxRows), or "" if that row does
// not exist. Convenience for composing fixed-row frames.
func Row(rows []string, i int) string {
	if i < 0 || i >= len(rows) {
		return ""
	}
	return rows[i]
}
