package naming

import (
	"strings"
	"unicode"
)

var initialisms = map[string]string{
	"api":   "API",
	"gif":   "GIF",
	"html":  "HTML",
	"http":  "HTTP",
	"https": "HTTPS",
	"id":    "ID",
	"ip":    "IP",
	"json":  "JSON",
	"mp4":   "MP4",
	"sms":   "SMS",
	"uri":   "URI",
	"url":   "URL",
	"utf8":  "UTF8",
}

// Exported converts a catalogue name such as "reply_to_message" or
// "ChatMember" into an exported Go identifier.
func Exported(name string) string {
	var b strings.Builder

	for _, w := range splitWords(name) {
		if s, ok := initialisms[strings.ToLower(w)]; ok {
			b.WriteString(s)
			continue
		}

		b.WriteString(firstUpper(w))
	}

	out := b.String()
	if out == "" || !unicode.IsLetter(rune(out[0])) {
		out = "X" + out
	}

	return out
}

// FileName converts a declaration name to a snake case file name
// without extension: "ChatMemberLeft" becomes "chat_member_left".
func FileName(name string) string {
	runes := []rune(name)
	var b strings.Builder

	for i, r := range runes {
		if r == '-' || r == ' ' || r == '.' {
			b.WriteByte('_')
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// knownOS and knownArch list the GOOS and GOARCH values that make a
// file name suffix a build constraint.
var knownOS = map[string]bool{
	"aix": true, "android": true, "darwin": true, "dragonfly": true,
	"freebsd": true, "hurd": true, "illumos": true, "ios": true,
	"js": true, "linux": true, "nacl": true, "netbsd": true,
	"openbsd": true, "plan9": true, "solaris": true, "wasip1": true,
	"windows": true, "zos": true,
}

var knownArch = map[string]bool{
	"386": true, "amd64": true, "amd64p32": true, "arm": true,
	"armbe": true, "arm64": true, "arm64be": true, "loong64": true,
	"mips": true, "mipsle": true, "mips64": true, "mips64le": true,
	"mips64p32": true, "mips64p32le": true, "ppc": true, "ppc64": true,
	"ppc64le": true, "riscv": true, "riscv64": true, "s390": true,
	"s390x": true, "sparc": true, "sparc64": true, "wasm": true,
}

// SourceFile returns the Go file name of a declaration. Names the go
// tool would skip or build only for some targets, such as "foo_test.go"
// or "thing_windows.go", get a "_decl" suffix.
func SourceFile(name string) string {
	stem := FileName(name)

	if stem == "" || stem[0] == '_' || stem[0] == '.' {
		stem = "x" + stem
	}

	if isConstrained(stem) {
		stem += "_decl"
	}

	return stem + ".go"
}

// isConstrained reports whether the go tool treats stem.go as a test
// file or as a file restricted to a GOOS or GOARCH.
func isConstrained(stem string) bool {
	i := strings.Index(stem, "_")
	if i < 0 {
		return false
	}

	parts := strings.Split(stem[i:], "_")
	if n := len(parts); parts[n-1] == "test" {
		return true
	}

	n := len(parts)
	if n >= 2 && knownOS[parts[n-2]] && knownArch[parts[n-1]] {
		return true
	}

	return knownOS[parts[n-1]] || knownArch[parts[n-1]]
}

func splitWords(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
}

func firstUpper(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[0:1]) + s[1:]
}
