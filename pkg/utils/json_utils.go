package utils

import (
	"regexp"
	"strings"
)

var thinkBlockRegex = regexp.MustCompile(`(?is)<think>.*?</think>`)

// CleanModelResponse removes reasoning blocks and markdown fences that
// models wrap around their JSON.
func CleanModelResponse(response string) string {
	response = thinkBlockRegex.ReplaceAllString(response, "")

	// An unterminated reasoning block swallows everything after it.
	if idx := strings.Index(strings.ToLower(response), "<think>"); idx != -1 {
		response = response[:idx]
	}

	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")

	return strings.TrimSpace(response)
}

// ExtractFirstJSONObject returns the first balanced {...} object in a model
// response.
func ExtractFirstJSONObject(response string) (string, error) {
	response = CleanModelResponse(response)

	for start := strings.Index(response, "{"); start != -1; {
		end := findMatchingBrace(response, start)
		if end != -1 {
			return response[start : end+1], nil
		}
		next := strings.Index(response[start+1:], "{")
		if next == -1 {
			break
		}
		start += next + 1
	}
	return "", ErrNoJSONObject
}

// findMatchingBrace finds the matching closing brace for an opening brace
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}

		if char == '\\' && inString {
			escaped = true
			continue
		}

		if char == '"' {
			inString = !inString
			continue
		}

		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
