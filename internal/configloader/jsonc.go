package configloader

// StripComments removes JavaScript-style comments from JSONC content so the
// remainder can be handed to a strict JSON parser. Both // line comments and
// /* */ block comments are removed. Comment markers inside quoted strings
// are left untouched, tracked by a small scanning state machine over
// normal/in-string/in-escape states. Newlines inside comments are preserved
// so parser positions still map to the original document.
//
// The operation is idempotent: stripping already-stripped content is a no-op.
func StripComments(content []byte) []byte {
	result := make([]byte, 0, len(content))
	inString := false
	inLineComment := false
	inBlockComment := false

	for idx := 0; idx < len(content); idx++ {
		char := content[idx]

		if inLineComment {
			if char == '\n' {
				inLineComment = false
				result = append(result, char)
			}
			continue
		}

		if inBlockComment {
			if char == '\n' {
				result = append(result, char)
				continue
			}
			if char == '*' && idx+1 < len(content) && content[idx+1] == '/' {
				inBlockComment = false
				idx++
			}
			continue
		}

		if inString {
			result = append(result, char)
			if char == '\\' && idx+1 < len(content) {
				// Escape state: the next byte cannot close the string.
				idx++
				result = append(result, content[idx])
			} else if char == '"' {
				inString = false
			}
			continue
		}

		if char == '"' {
			inString = true
			result = append(result, char)
			continue
		}

		if char == '/' && idx+1 < len(content) {
			next := content[idx+1]
			if next == '/' {
				inLineComment = true
				idx++
				continue
			}
			if next == '*' {
				inBlockComment = true
				idx++
				continue
			}
		}

		result = append(result, char)
	}

	return result
}
