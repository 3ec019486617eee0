// Package normalize turns raw model output into typed field values.
package normalize

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/auditlens/soc-extract/internal/catalog"
)

// listDelims matches any run of the delimiters a flat-list answer may use:
// newlines, bullets, asterisks and hyphens.
var listDelims = regexp.MustCompile(`[\n\r\x{2022}*-]+`)

// StripFences removes one leading markdown fence opener (with an optional,
// case-insensitive "json" tag) and one trailing closer, then trims
// surrounding whitespace. Text without fences passes through trimmed, so the
// operation is idempotent.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if after, ok := strings.CutPrefix(s, "```"); ok {
		// The tag may be separated from the fence by spaces or tabs, but a
		// newline means the opener had no tag.
		after = strings.TrimLeft(after, " \t")
		if len(after) >= 4 && strings.EqualFold(after[:4], "json") {
			after = after[4:]
		}
		s = strings.TrimSpace(after)
	}
	if before, ok := strings.CutSuffix(s, "```"); ok {
		s = strings.TrimSpace(before)
	}
	return s
}

// Normalize maps one field's raw model output to its typed value per the
// field's declared shape: nil, a string, a []string, or a parsed JSON value.
//
// The literal token "null" (any casing) means absent regardless of shape —
// that token is the model-side contract for "not found", so matching stays
// permissive. A StructuredList answer that is not valid JSON degrades to the
// cleaned string with a warning; data is never dropped.
func Normalize(field, raw string, shape catalog.Shape, logger *slog.Logger) any {
	if logger == nil {
		logger = slog.Default()
	}

	cleaned := StripFences(raw)
	if strings.EqualFold(cleaned, "null") {
		return nil
	}

	switch shape {
	case catalog.StructuredList:
		var v any
		if err := json.Unmarshal([]byte(cleaned), &v); err != nil {
			logger.Warn("normalize.json_parse_failed",
				"field", field,
				"error", err,
				"bytes", len(cleaned),
			)
			return cleaned
		}
		// Any valid JSON is accepted, whatever its shape.
		return v
	case catalog.FlatList:
		// Models answer list prompts either as a JSON array or as
		// bulleted/line-separated text; accept both.
		items, ok := parseJSONList(cleaned)
		if !ok {
			items = splitFlat(cleaned)
		}
		if len(items) == 0 {
			return nil
		}
		return items
	default:
		return cleaned
	}
}

// parseJSONList accepts a strict JSON array, stringifying its elements.
func parseJSONList(s string) ([]string, bool) {
	var arr []any
	if err := json.Unmarshal([]byte(s), &arr); err != nil {
		return nil, false
	}
	var out []string
	for _, v := range arr {
		var item string
		switch t := v.(type) {
		case string:
			item = strings.TrimSpace(t)
		case nil:
			continue
		default:
			item = fmt.Sprint(t)
		}
		if item != "" {
			out = append(out, item)
		}
	}
	return out, true
}

func splitFlat(s string) []string {
	var out []string
	for _, frag := range listDelims.Split(s, -1) {
		frag = strings.Trim(frag, " \t\r\n")
		if frag != "" {
			out = append(out, frag)
		}
	}
	return out
}
