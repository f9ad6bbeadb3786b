package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveKeys are attribute names whose values are always masked.
var SensitiveKeys = []string{"authorization", "api_key", "cookie", "password", "secret", "token"}

// sensitivePrefixes catch key variants such as "secret_key" or "api_key_v2".
var sensitivePrefixes = []string{"secret_", "api_key"}

// secretPatterns mask credentials pasted into free-text values such as task
// titles and descriptions. JWT segments need at least 10 characters each so
// version strings are left alone.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-z0-9\-._~+/]+=*`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	regexp.MustCompile(`[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}\.[A-Za-z0-9\-_]{10,}`),
}

// redactor returns the masq ReplaceAttr function installed by New.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveKeys)+len(sensitivePrefixes)+len(secretPatterns))

	for _, key := range SensitiveKeys {
		opts = append(opts, masq.WithFieldName(key))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range secretPatterns {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
