// Package matcher compiles an AspectJ-subset method signature into three
// regular-expression fragments (target type, method name, argument list)
// plus an ancillary subtype check, in the same "compile once, match many"
// shape as a single-purpose regex matcher, generalized to three fragments.
package matcher

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/termfx/javarefactor/javaast"
	"github.com/termfx/javarefactor/javatype"
)

// ErrInvalidSignature is returned (wrapped) when Compile is given a string
// that does not parse as a signature.
var ErrInvalidSignature = errors.New("matcher: invalid signature")

// Signature is a compiled method-signature pattern: a target-type regex, a
// method-name regex, and an argument-list regex, each derived from one
// grammar production of the signature string passed to Compile.
type Signature struct {
	raw        string
	targetType *regexp.Regexp
	methodName *regexp.Regexp
	argList    *regexp.Regexp
}

// String returns the original signature text.
func (s *Signature) String() string { return s.raw }

// Compile parses sig against the grammar
//
//	signature   := typePattern WS namePattern '(' argPatterns? ')'
//	typePattern := dotSeg ('.' dotSeg)*
//	dotSeg      := '*' | '..' | identChars
//	namePattern := identChars
//	argPatterns := argPattern (',' WS? argPattern)*
//	argPattern  := typePattern ('[]')* | '..' | typePattern '...'
//
// and compiles each production into an anchored regular expression.
func Compile(sig string) (*Signature, error) {
	raw := sig
	sig = strings.TrimSpace(sig)

	open := strings.IndexByte(sig, '(')
	if open < 0 || !strings.HasSuffix(sig, ")") {
		return nil, fmt.Errorf("%w: %q: missing argument list", ErrInvalidSignature, raw)
	}

	head := strings.TrimSpace(sig[:open])
	fields := strings.Fields(head)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: %q: expected \"type name\" before '('", ErrInvalidSignature, raw)
	}
	typePat, namePat := fields[0], fields[1]
	if typePat == "" || namePat == "" {
		return nil, fmt.Errorf("%w: %q: empty type or name pattern", ErrInvalidSignature, raw)
	}

	argsBody := sig[open+1 : len(sig)-1]

	targetRe, err := regexp.Compile("^" + translateTypePattern(typePat) + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: target type pattern: %v", ErrInvalidSignature, raw, err)
	}
	nameRe, err := regexp.Compile("^" + translateNamePattern(namePat) + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: name pattern: %v", ErrInvalidSignature, raw, err)
	}
	argsRe, err := regexp.Compile("^" + translateArgPatterns(argsBody) + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: argument pattern: %v", ErrInvalidSignature, raw, err)
	}

	return &Signature{raw: raw, targetType: targetRe, methodName: nameRe, argList: argsRe}, nil
}

// MatchesTargetType reports whether candidate, or any class/interface in its
// supertype closure, matches the target-type pattern. This is how a pattern
// like "java.lang.Object equals(..)" accepts an invocation resolved against
// String.
func (s *Signature) MatchesTargetType(candidate *javatype.Class) bool {
	if candidate == nil {
		return false
	}
	for _, ancestor := range candidate.Closure() {
		if s.targetType.MatchString(ancestor.FQN()) {
			return true
		}
	}
	return false
}

// Matches reports whether inv's resolved declaring type, name, and parameter
// types satisfy the compiled signature. Missing resolution on either side
// (a nil Resolved or a nil DeclaringType) returns false, never an error.
func (s *Signature) Matches(inv *javaast.MethodInvocation) bool {
	if inv == nil || inv.Resolved == nil || inv.Resolved.DeclaringType == nil {
		return false
	}
	if !s.MatchesTargetType(inv.Resolved.DeclaringType) {
		return false
	}
	if !s.methodName.MatchString(inv.Name) {
		return false
	}
	return s.argList.MatchString(joinParamTypes(inv.Resolved.ParamTypes))
}

func joinParamTypes(ts []javatype.Type) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.FQN()
	}
	return strings.Join(parts, ", ")
}

// tokenizeDotPattern splits a typePattern into its dotSeg tokens, treating a
// literal ".." as one token rather than two empty segments around a dot.
func tokenizeDotPattern(pattern string) []string {
	return dotSegExpr.FindAllString(pattern, -1)
}

var dotSegExpr = regexp.MustCompile(`\.\.|[^.]+`)

// translateTypePattern compiles a typePattern into a regex fragment, per the
// translation rules: ".." anchors to zero-or-more dotted segments, "*"
// matches exactly one segment, plain identifiers match literally.
func translateTypePattern(pattern string) string {
	return translateTypePatternWithStops(pattern, "")
}

// translateTypePatternWithStops is translateTypePattern generalized with
// extra characters excluded from "one segment" wildcards, used when the
// pattern is embedded in a larger comma-separated argument list (stops=",")
// so a "*" or ".." segment cannot swallow a neighboring argument.
func translateTypePatternWithStops(pattern, stops string) string {
	tokens := tokenizeDotPattern(pattern)

	// A bare, unqualified identifier (no package, not a wildcard) matches
	// itself or the same identifier under java.lang, so "Object" accepts an
	// FQN of either "Object" or "java.lang.Object".
	if len(tokens) == 1 && tokens[0] != "*" && tokens[0] != ".." {
		esc := regexp.QuoteMeta(tokens[0])
		return `(?:java\.lang\.` + esc + `|` + esc + `)`
	}

	neg := "[^." + stops + "]"

	var b strings.Builder
	suppressNext := false
	for i, tok := range tokens {
		isFirst := i == 0
		isLast := i == len(tokens)-1
		switch tok {
		case "..":
			switch {
			case isFirst:
				b.WriteString(`(?:` + neg + `+\.)*`)
				suppressNext = true
			case isLast:
				b.WriteString(`(?:\.` + neg + `+)*`)
			default:
				b.WriteString(`(?:\.?` + neg + `+)*`)
			}
		case "*":
			if !isFirst && !suppressNext {
				b.WriteString(`\.`)
			}
			suppressNext = false
			b.WriteString(neg + `+`)
		default:
			if !isFirst && !suppressNext {
				b.WriteString(`\.`)
			}
			suppressNext = false
			b.WriteString(regexp.QuoteMeta(tok))
		}
	}
	return b.String()
}

// translateNamePattern compiles a namePattern, where '*' is an identifier
// glob rather than a single-segment wildcard.
func translateNamePattern(pattern string) string {
	return strings.ReplaceAll(regexp.QuoteMeta(pattern), `\*`, `.*`)
}

// translateArgPatterns compiles a comma-joined argPatterns body into a
// regex matched against the candidate's comma-joined, fully qualified
// parameter-type list.
func translateArgPatterns(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	elems := strings.Split(body, ",")
	for i := range elems {
		elems[i] = strings.TrimSpace(elems[i])
	}

	var b strings.Builder
	suppressNext := false
	for i, e := range elems {
		isFirst := i == 0
		isLast := i == len(elems)-1
		if e == ".." {
			switch {
			case isFirst:
				b.WriteString(`(?:[^,]+,\s*)*`)
				suppressNext = true
			case isLast:
				b.WriteString(`(?:,\s*[^,]+)*`)
			default:
				b.WriteString(`(?:,?\s*[^,]+)*`)
			}
			continue
		}
		if !isFirst && !suppressNext {
			b.WriteString(`,\s*`)
		}
		suppressNext = false
		b.WriteString(translateArgElement(e))
	}
	return b.String()
}

// translateArgElement compiles one argPattern: a typePattern with zero or
// more literal "[]" array suffixes, or a "T..." varargs element.
func translateArgElement(e string) string {
	if strings.HasSuffix(e, "...") {
		elem := translateArgTypeToken(strings.TrimSuffix(e, "..."))
		// Per the varargs translation rule: matches the call-site array form
		// exactly, or a (possibly empty) trailing run of the element type.
		return `(?:` + elem + `\[\]|(?:` + elem + `(?:,\s*` + elem + `)*)?)`
	}

	dims := 0
	base := e
	for strings.HasSuffix(base, "[]") {
		base = strings.TrimSuffix(base, "[]")
		dims++
	}
	piece := translateArgTypeToken(base)
	for range dims {
		piece += `\[\]`
	}
	return piece
}

// translateArgTypeToken compiles a single argument typePattern. The
// unqualified java.lang fallback applied by translateTypePatternWithStops
// covers the bare-identifier case identically here.
func translateArgTypeToken(pattern string) string {
	return translateTypePatternWithStops(pattern, ",")
}
