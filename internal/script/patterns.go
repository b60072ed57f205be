package script

import "regexp"

// Field start patterns. The braced and bracketed forms are tried first; the
// bare forms catch a field whose value is an identifier or other expression.
var (
	componentsStart = regexp.MustCompile(`(?i)\bcomponents\s*:\s*\{`)
	emitsStart      = regexp.MustCompile(`(?i)\bemits\s*:\s*\[`)
	emitsBare       = regexp.MustCompile(`(?i)\bemits\s*:\s*([^,\n]+),[ \t]*\n?`)
	propsStart      = regexp.MustCompile(`(?i)\bprops\s*:\s*\{`)
	propsBare       = regexp.MustCompile(`(?i)\bprops\s*:\s*([^\n]+),[ \t]*\n?`)
	nameField       = regexp.MustCompile(`(?i)\bname\s*:\s*['"][^'"\n]*['"]`)
)

// Wrapper patterns
var (
	exportStart = regexp.MustCompile(`export\s+default\s*(?:[\w$.]+\s*\(\s*)?\{`)
	setupStart  = regexp.MustCompile(`(?:\basync\s+)?\bsetup\s*\([^)]*\)\s*\{`)
	returnStart = regexp.MustCompile(`\breturn\s*\{`)
	strayComma  = regexp.MustCompile(`^\s*,`)
	danglingEnd = regexp.MustCompile(`;\s*[})]?;\s*$`)
	namedImport = regexp.MustCompile(`(import\s*\{)([^}]*)(\}\s*from\s*['"][^'"\n]+['"];?)([ \t]*\n?)`)
)

// Reference checks deciding whether a reinserted declaration is assigned
var (
	emitCall = regexp.MustCompile(`\bemit\(`)
	propsRef = regexp.MustCompile(`\bprops\b`)
)

// Return-object entries
var (
	keyedEntry  = regexp.MustCompile(`(?s)^([A-Za-z_$][\w$]*)\s*:\s*(.+)$`)
	methodEntry = regexp.MustCompile(`(?s)^(async\s+)?([A-Za-z_$][\w$]*\s*\(.*)$`)
)

type collapseRule struct {
	expr *regexp.Regexp
	repl string
}

var collapseRules = []collapseRule{
	{expr: regexp.MustCompile(`([,;])\s*[,;]`), repl: "${1}"},
	{expr: regexp.MustCompile(`\{\s*,`), repl: "{"},
	{expr: regexp.MustCompile(`\n[ \t]+\n`), repl: "\n\n"},
	{expr: regexp.MustCompile(`\n{3,}`), repl: "\n"},
}

var danglingParen = regexp.MustCompile(`\s\);?$`)
