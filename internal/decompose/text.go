package decompose

import (
	"regexp"
	"strings"
	"unicode"
)

// imperativeVerbs are first words that make a capability already read as an
// instruction. Lowercase, matched against the first word only.
var imperativeVerbs = map[string]bool{
	"add": true, "analyze": true, "apply": true, "build": true, "compare": true,
	"configure": true, "create": true, "debug": true, "deploy": true,
	"describe": true, "design": true, "diagnose": true, "draw": true,
	"explain": true, "extend": true, "find": true, "fix": true,
	"identify": true, "implement": true, "measure": true, "modify": true,
	"practice": true, "read": true, "rebuild": true, "refactor": true,
	"repair": true, "reproduce": true, "run": true, "set": true, "ship": true,
	"sketch": true, "solve": true, "test": true, "trace": true, "use": true,
	"verify": true, "write": true,
}

var abilityPattern = regexp.MustCompile(`(?i)^(?:i\s+)?(?:can|(?:is|am|are)?\s*able\s+to)\s+(.+)$`)

// toAction converts a capability description into an imperative action:
// pass through when already verb-first, promote the remainder of a
// "can X" / "able to X" phrasing, otherwise fall back to a practice prompt.
func toAction(capability string) string {
	c := strings.TrimSpace(capability)
	if c == "" {
		return ""
	}

	if m := abilityPattern.FindStringSubmatch(c); m != nil {
		return capitalize(strings.TrimSpace(m[1]))
	}

	first := strings.ToLower(firstWord(c))
	if imperativeVerbs[first] {
		return capitalize(c)
	}

	return "Practice: " + c
}

// toSuccessSignal converts an artifact description into a binary pass
// signal. Leading articles are stripped; a "Completed:" prefix is added
// unless the text already reads as a completion statement.
func toSuccessSignal(artifact string) string {
	a := strings.TrimSpace(artifact)
	if a == "" {
		return ""
	}

	for _, article := range []string{"a ", "an ", "the "} {
		if strings.HasPrefix(strings.ToLower(a), article) {
			a = a[len(article):]
			break
		}
	}

	if isCompletionPhrased(a) {
		return capitalize(a)
	}
	return "Completed: " + a
}

func isCompletionPhrased(s string) bool {
	low := strings.ToLower(s)
	if strings.HasPrefix(low, "completed") || strings.HasPrefix(low, "finished") || strings.HasPrefix(low, "done") {
		return true
	}
	return strings.HasSuffix(strings.TrimRight(low, "."), "is complete")
}

// baselineConstraint is the locked variable every skill carries.
const baselineConstraint = "Keep the same approach for the whole exercise"

var withoutPattern = regexp.MustCompile(`(?i)\bwithout\s+([^,.;]+)`)

// lockedVariables returns the constraint set for a stage: always the
// baseline, plus a derived constraint when the designed failure names a
// "without X" clause.
func lockedVariables(designedFailure string) []string {
	vars := []string{baselineConstraint}
	if m := withoutPattern.FindStringSubmatch(designedFailure); m != nil {
		vars = append(vars, "Work without "+strings.TrimSpace(m[1]))
	}
	return vars
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ",.:;")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// startsWithVerb reports whether an action passes the verb-first contract.
// "Practice:" prompts count; they are the decomposer's own phrasing.
func startsWithVerb(action string) bool {
	if strings.HasPrefix(action, "Practice: ") {
		return true
	}
	return imperativeVerbs[strings.ToLower(firstWord(action))]
}
