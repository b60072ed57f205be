package parser

import (
	"bennypowers.dev/vss/internal/parser/css"
	"bennypowers.dev/vss/internal/parser/js"
)

// Problem is a syntax error at 0-indexed coordinates within checked content
type Problem struct {
	Line    uint
	Column  uint
	Message string
}

// checkedLanguages maps a block's lang attribute to the parser that checks it.
// Script blocks without lang are "js", style blocks without lang are "css".
var checkedLanguages = map[string]string{
	"js":         "js",
	"jsx":        "js",
	"javascript": "js",
	"css":        "css",
}

// ScriptLanguage returns the language ID of a script block's lang attribute
func ScriptLanguage(lang string) string {
	if lang == "" {
		return "js"
	}
	return lang
}

// StyleLanguage returns the language ID of a style block's lang attribute
func StyleLanguage(lang string) string {
	if lang == "" {
		return "css"
	}
	return lang
}

// IsCheckedLanguage reports whether content in the language can be checked
func IsCheckedLanguage(languageID string) bool {
	_, ok := checkedLanguages[languageID]
	return ok
}

// Check reports the syntax problems of content, dispatching on language ID.
// Unchecked languages report nothing.
func Check(content, languageID string) []Problem {
	var problems []Problem
	switch checkedLanguages[languageID] {
	case "js":
		p := js.AcquireParser()
		defer js.ReleaseParser(p)
		for _, pr := range p.Check(content) {
			problems = append(problems, Problem{Line: pr.Line, Column: pr.Column, Message: pr.Message})
		}

	case "css":
		p := css.AcquireParser()
		defer css.ReleaseParser(p)
		for _, pr := range p.Check(content) {
			problems = append(problems, Problem{Line: pr.Line, Column: pr.Column, Message: pr.Message})
		}
	}
	return problems
}
