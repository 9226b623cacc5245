package mcp

import "strings"

// secretKeyPatterns are substrings of env/header keys that indicate
// sensitive values. Matched case-insensitively.
var secretKeyPatterns = []string{
	"TOKEN",
	"KEY",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
}

// tokenPrefixes are well-known API token prefixes that mark a value as
// sensitive regardless of its key name.
var tokenPrefixes = []string{
	"ghp_", "gho_", "ghs_", "ghr_", // GitHub tokens
	"sk-",          // OpenAI/Anthropic keys
	"AKIA",         // AWS access keys
	"xoxb-", "xoxp-", // Slack tokens
}

// MaskSecrets returns a copy of env with sensitive values redacted. Keys
// matching secretKeyPatterns or values with known token prefixes are masked.
func MaskSecrets(env map[string]string) map[string]string {
	if env == nil {
		return nil
	}
	masked := make(map[string]string, len(env))
	for k, v := range env {
		if ShouldMask(k) || hasTokenPrefix(v) {
			masked[k] = MaskValue(v)
		} else {
			masked[k] = v
		}
	}
	return masked
}

// MaskValue masks a sensitive string. Short values are fully masked; longer
// values keep their last 4 characters for recognizability.
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// ShouldMask reports whether the key name suggests a sensitive value.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

func hasTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
