package chunk

// FirstIllegal returns the first invalid closing delimiter in chunks,
// searching depth first and left to right. A chunk's children are searched
// before the chunk's own closing delimiter.
func FirstIllegal(chunks []*Chunk) (byte, bool) {
	for _, c := range chunks {
		if ch, ok := FirstIllegal(c.Children); ok {
			return ch, true
		}
		if c.Close.Kind == Invalid {
			return c.Close.Char, true
		}
	}
	return 0, false
}

// IllegalScore is the syntax error score of an illegal closing delimiter.
func IllegalScore(c byte) int {
	switch c {
	case ')':
		return 3
	case ']':
		return 57
	case '}':
		return 1197
	case '>':
		return 25137
	}
	return 0
}

// Autocomplete returns the closing delimiters that finish an incomplete
// line, innermost first. It reports false if nothing is left open.
//
// Only the last chunk, its last child, and so on down can be Missing: any
// earlier sibling was closed, or parsing would not have moved past it. The
// caller should first check that the line has no illegal characters.
func Autocomplete(chunks []*Chunk) (string, bool) {
	var b []byte
	for len(chunks) > 0 {
		last := chunks[len(chunks)-1]
		if last.Close.Kind != Missing {
			break
		}
		b = append(b, last.Open.Close())
		chunks = last.Children
	}
	if len(b) == 0 {
		return "", false
	}
	// b is outermost first.
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b), true
}

// AutocompleteScore scores a completion string: for each character, the
// score so far is multiplied by 5 and the character's value is added.
func AutocompleteScore(s string) int {
	var score int
	for i := 0; i < len(s); i++ {
		score *= 5
		switch s[i] {
		case ')':
			score += 1
		case ']':
			score += 2
		case '}':
			score += 3
		case '>':
			score += 4
		}
	}
	return score
}
