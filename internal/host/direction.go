package host

import (
	"strings"

	"github.com/atomicstack/nestedmenu/internal/geometry"
	"golang.org/x/text/language"
)

var rtlScripts = map[string]struct{}{
	"Arab": {},
	"Hebr": {},
	"Syrc": {},
	"Thaa": {},
	"Nkoo": {},
	"Adlm": {},
	"Rohg": {},
	"Mand": {},
	"Samr": {},
}

// DirectionFromLocale derives the text direction from a POSIX locale string
// such as "ar_EG.UTF-8" or a BCP 47 tag. Unparseable or empty values are LTR.
func DirectionFromLocale(locale string) geometry.Direction {
	tag := strings.TrimSpace(locale)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	if tag == "" || strings.EqualFold(tag, "C") || strings.EqualFold(tag, "POSIX") {
		return geometry.LTR
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return geometry.LTR
	}
	script, confidence := parsed.Script()
	if confidence == language.No {
		return geometry.LTR
	}
	if _, ok := rtlScripts[script.String()]; ok {
		return geometry.RTL
	}
	return geometry.LTR
}

// DirectionFromEnv checks LC_ALL, LC_MESSAGES and LANG in that order.
func DirectionFromEnv(lookup func(string) string) geometry.Direction {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			return DirectionFromLocale(v)
		}
	}
	return geometry.LTR
}
