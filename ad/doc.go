// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ad provides exact automatic differentiation of scalar arithmetic
// expressions up to third order.
//
// # Overview
//
// Expressions are trees built from independent variables, constants, the
// four arithmetic operators and the elementary functions. Every node
// computes its value and its exact first, second and third partial
// derivatives on demand by recursive descent, applying the chain, product
// and quotient rules of calculus directly. There is no finite-difference
// approximation and no symbolic rewriting.
//
// # Basic Usage
//
//	import "github.com/crest-ml/crest/ad"
//
//	func main() {
//	    x := ad.NewVariable(2.0)
//	    y := ad.NewVariable(3.0)
//
//	    // f = sin(x)*y + cos(y)
//	    f := ad.Add(ad.Mul(ad.Sin(x), y), ad.Cos(y))
//
//	    f.Value()              // sin(2)*3 + cos(3)
//	    f.Derivative(x.ID())   // cos(2)*3
//	    f.Derivative2(x.ID(), y.ID()) // cos(2)
//	}
//
// Leaf values may be reassigned between evaluations with SetValue; the tree
// re-evaluates lazily against the current values.
//
// # Dependency introspection
//
// CollectIDs and CountVariables report which independent variables an
// expression depends on, so a consumer (an optimizer, an estimator) knows
// which identifiers to request derivatives for.
//
// # Dynamic mirrors
//
// Dynamic materializes a heap-owned, type-erased mirror of an expression for
// contexts that need to store, render or serialize heterogeneous trees. The
// mirror snapshots leaf values and is fully detached from its source.
//
// # Numeric edge cases
//
// The evaluation path is branch-free IEEE-754 arithmetic: division by zero,
// logarithms of non-positive values and other domain violations produce
// infinities or NaN that propagate through subsequent derivatives instead of
// aborting. Callers needing validation check inputs before building the
// expression, or outputs for finiteness afterward.
package ad
