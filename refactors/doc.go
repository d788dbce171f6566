// Package refactors provides the built-in, ready-made transformations: one
// file per operation, each a small constructor returning a *visitor.Visitor
// that a Transaction stages directly. None of them parse or resolve; they consume already
// resolved trees and react to the resolved type/method info already present
// on each node.
package refactors
