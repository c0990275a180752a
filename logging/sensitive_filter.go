package logging

import "regexp"

// RedactedPlaceholder replaces detected sensitive data in log output.
const RedactedPlaceholder = "[REDACTED]"

// sensitivePatterns match credentials that could leak into prompts,
// URLs, or error messages. Compiled once at package init.
var sensitivePatterns = []*regexp.Regexp{
	// Replicate API tokens
	regexp.MustCompile(`(r8_[a-zA-Z0-9]{20,})`),
	// OpenAI API keys (legacy and project-scoped)
	regexp.MustCompile(`(sk-[a-zA-Z0-9_-]{20,})`),
	// Bearer tokens in dumped headers
	regexp.MustCompile(`(?i)(bearer\s+[a-zA-Z0-9._-]{20,})`),
	// Generic token/key assignments
	regexp.MustCompile(`(?i)(api[_-]?key\s*[:=]\s*[^\s,;]{8,})`),
	regexp.MustCompile(`(?i)(token\s*[:=]\s*[^\s,;]{8,})`),
}

// RedactSensitiveData scrubs API tokens from a string value.
// This is a pure function - it takes a string and returns a sanitized
// string.
func RedactSensitiveData(value string) string {
	if value == "" {
		return value
	}
	result := value
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedPlaceholder)
	}
	return result
}
