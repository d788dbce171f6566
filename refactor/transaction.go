package refactor

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/termfx/javarefactor/javaast"
	"github.com/termfx/javarefactor/visitor"
)

// Transaction is a staged sequence of visitors applied atomically to one
// compilation unit: Visit/Fold queue work, Fix runs it and materializes the
// result and its patch.
type Transaction struct {
	source string
	cu     *javaast.CompilationUnit
	stages []stage
	groups int
}

// stage is one queued visitor pass plus the group it belongs to. Every Visit
// call gets its own group; every anchor from one Fold call shares a group,
// since Fold's contract assumes the anchors' scopes are disjoint — within a
// group, two stages fixing the same node means that assumption broke.
type stage struct {
	hooks visitor.Hooks
	group int
}

// New constructs a transaction over cu, whose Print form must equal source
// — the lossless round-trip invariant, checked here since this is the
// first point that holds both the tree and the text it came from.
func New(cu *javaast.CompilationUnit, source string) (*Transaction, error) {
	if got := javaast.Print(cu); got != source {
		return nil, fmt.Errorf("%w: printed form diverges from source", ErrPrintInvariant)
	}
	return &Transaction{source: source, cu: cu}, nil
}

// Visit stages a transforming visitor to run, in order, when Fix is called.
func (t *Transaction) Visit(v *visitor.Visitor) *Transaction {
	t.stages = append(t.stages, stage{hooks: v.Hooks, group: t.nextGroup()})
	return t
}

// Fold stages one scoped visitor per anchor id, each a full pass over the
// tree whose hooks are expected to guard themselves with
// Cursor.IsScopeInCursorPath(anchor) so they no-op outside their scope. All
// anchors from one Fold call share a group, so if two of their scopes turn
// out not to be disjoint, Fix reports ErrConflictingFixes rather than
// silently letting the later anchor clobber the earlier one's fix.
func (t *Transaction) Fold(anchors []javaast.NodeID, factory func(javaast.NodeID) *visitor.Visitor) *Transaction {
	group := t.nextGroup()
	for _, anchor := range anchors {
		t.stages = append(t.stages, stage{hooks: factory(anchor).Hooks, group: group})
	}
	return t
}

func (t *Transaction) nextGroup() int {
	g := t.groups
	t.groups++
	return g
}

// Result is the outcome of running a transaction's staged visitors.
type Result struct {
	Fixed    javaast.Node
	Patch    string
	Changed  bool
	Fixes    []Fix
	Warnings []Warning
}

// Warning records a non-fatal issue raised while running a stage: the
// affected node was skipped rather than fixed, and counted here instead of
// aborting the transaction.
type Warning struct {
	Target javaast.NodeID
	Err    error
}

// Fix runs every staged visitor in order against a fresh copy of the tree,
// re-materializing between stages so a later one sees an earlier one's
// output, and returns the final tree, its fixes, and a unified-diff patch.
// Staging no visitors yields an identity result: Fixed == the original tree,
// an empty patch, Changed == false.
//
// A single visitor's own Hooks may freely touch both a node and its
// ancestor in the course of one coordinated change (a rename that also
// patches the compilation unit's imports, say): rewriteChildren always
// folds a descendant's replacement into its ancestor's copy before the
// ancestor's own hook runs, so that is one coherent edit, not two competing
// ones. Likewise, chaining independent Visit stages is the normal way to
// compose transformations and is never a conflict, even when a later stage
// touches a node an earlier one already did. A conflict is two stages from
// the *same* Fold call — whose anchors are contracted to have disjoint
// scopes — both producing a fix for the same node.
func (t *Transaction) Fix() (*Result, error) {
	cur := javaast.Node(t.cu)
	var allFixes []Fix
	var allWarnings []Warning
	touched := map[int]map[javaast.NodeID]Fix{}

	for _, st := range t.stages {
		next, fixes, warnings := runStage(cur, st.hooks)
		group := touched[st.group]
		if group == nil {
			group = map[javaast.NodeID]Fix{}
			touched[st.group] = group
		}
		for _, f := range fixes {
			if prev, ok := group[f.Target]; ok && !reflect.DeepEqual(prev.Replacement, f.Replacement) {
				return nil, fmt.Errorf("%w: node %d fixed by more than one anchor in the same fold", ErrConflictingFixes, f.Target)
			}
			group[f.Target] = f
		}
		cur = next
		allFixes = append(allFixes, fixes...)
		allWarnings = append(allWarnings, warnings...)
	}

	after := javaast.Print(cur)
	changed := after != t.source
	patch := ""
	if changed {
		patch = unifiedDiff(t.source, after)
	}
	return &Result{Fixed: cur, Patch: patch, Changed: changed, Fixes: allFixes, Warnings: allWarnings}, nil
}

// runStage runs one visitor pass, instrumenting its hooks to classify each
// one's own effect (by comparing the post-child-rewrite node it received
// against what it returned) as a Fix via classify. A hook is never invoked
// on a node with an unresolved symbol — the node is skipped and an
// ErrUnresolvedSymbol warning is recorded instead, since the hook has no
// reliable binding or type to act on.
func runStage(root javaast.Node, hooks visitor.Hooks) (javaast.Node, []Fix, []Warning) {
	var fixes []Fix
	var warnings []Warning

	wrapped := make(visitor.Hooks, len(hooks))
	for kind, h := range hooks {
		h := h
		wrapped[kind] = func(cur *visitor.Cursor, n javaast.Node) javaast.Node {
			if unresolvedSymbol(n) {
				warnings = append(warnings, Warning{
					Target: n.ID(),
					Err:    fmt.Errorf("%w: %s", ErrUnresolvedSymbol, n.Kind()),
				})
				return n
			}
			out := h(cur, n)
			if kind, changed := classify(n, out); changed {
				fixes = append(fixes, Fix{Kind: kind, Target: n.ID(), Replacement: out})
			}
			return out
		}
	}

	result := visitor.New(wrapped).Run(root)
	sort.Slice(fixes, func(i, j int) bool { return fixes[i].Target < fixes[j].Target })
	return result, fixes, warnings
}

// unresolvedSymbol reports whether n is a method invocation with no resolved
// binding. A hook registered for method invocations (rename, call-site
// rewrites) has no declaring type or parameter list to act on in that case;
// unlike a plain Identifier's absent ResolvedType, which routinely just
// means "not a type reference" and is for each refactor's own hook to
// interpret, a MethodInvocation's Resolved binding is never optional for a
// hook that needs it, so its absence is always treated as unresolved.
func unresolvedSymbol(n javaast.Node) bool {
	inv, ok := n.(*javaast.MethodInvocation)
	return ok && inv.Resolved == nil
}

func classify(before, after javaast.Node) (FixKind, bool) {
	if after == nil {
		return FixDelete, true
	}
	if reflect.DeepEqual(before, after) {
		return 0, false
	}
	return FixReplace, true
}

func unifiedDiff(before, after string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "original",
		ToFile:   "refactored",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}
	return text
}
