// Copyright 2025 The Crest Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ad

import "github.com/crest-ml/crest/internal/ad"

// Expression is the contract satisfied by every node of an expression tree.
type Expression = ad.Expression

// DynamicExpression is a heap-owned, type-erased expression mirror.
type DynamicExpression = ad.DynamicExpression

// Variable is an independent-variable leaf.
type Variable = ad.Variable

// IDSet is an insertion-ordered, duplicate-free identifier set.
type IDSet = ad.IDSet

// NewVariable creates an independent variable with a fresh identifier.
func NewVariable(value float64) *Variable { return ad.NewVariable(value) }

// NewDependent creates a leaf for a computed quantity frozen into variable
// storage; it is excluded from independence queries by default.
func NewDependent(value float64) *Variable { return ad.NewDependent(value) }

// Constant returns a constant leaf.
func Constant(v float64) Expression { return ad.Constant(v) }

// CollectIDs returns the identifiers of the independent variables e depends
// on, in depth-first encounter order.
func CollectIDs(e Expression, includeDependent bool) *IDSet {
	return ad.CollectIDs(e, includeDependent)
}

// CountVariables returns the number of distinct variables e depends on.
func CountVariables(e Expression) int { return ad.CountVariables(e) }

// Arithmetic operators.

// Add returns lhs + rhs.
func Add(lhs, rhs Expression) Expression { return ad.Add(lhs, rhs) }

// Sub returns lhs - rhs.
func Sub(lhs, rhs Expression) Expression { return ad.Sub(lhs, rhs) }

// Mul returns lhs * rhs.
func Mul(lhs, rhs Expression) Expression { return ad.Mul(lhs, rhs) }

// Div returns lhs / rhs.
func Div(lhs, rhs Expression) Expression { return ad.Div(lhs, rhs) }

// Neg returns -e.
func Neg(e Expression) Expression { return ad.Neg(e) }

// Elementary functions.

// Sin returns the sine of e.
func Sin(e Expression) Expression { return ad.Sin(e) }

// Cos returns the cosine of e.
func Cos(e Expression) Expression { return ad.Cos(e) }

// Tan returns the tangent of e.
func Tan(e Expression) Expression { return ad.Tan(e) }

// ASin returns the arcsine of e.
func ASin(e Expression) Expression { return ad.ASin(e) }

// ACos returns the arccosine of e.
func ACos(e Expression) Expression { return ad.ACos(e) }

// ATan returns the arctangent of e.
func ATan(e Expression) Expression { return ad.ATan(e) }

// Sinh returns the hyperbolic sine of e.
func Sinh(e Expression) Expression { return ad.Sinh(e) }

// Cosh returns the hyperbolic cosine of e.
func Cosh(e Expression) Expression { return ad.Cosh(e) }

// Tanh returns the hyperbolic tangent of e.
func Tanh(e Expression) Expression { return ad.Tanh(e) }

// Exp returns e raised to the expression.
func Exp(e Expression) Expression { return ad.Exp(e) }

// Log returns the natural logarithm of e.
func Log(e Expression) Expression { return ad.Log(e) }

// Log10 returns the base-10 logarithm of e.
func Log10(e Expression) Expression { return ad.Log10(e) }

// Sqrt returns the square root of e.
func Sqrt(e Expression) Expression { return ad.Sqrt(e) }

// Fabs returns the absolute value of e.
func Fabs(e Expression) Expression { return ad.Fabs(e) }

// Floor returns the floor of e.
func Floor(e Expression) Expression { return ad.Floor(e) }

// Ceil returns the ceiling of e.
func Ceil(e Expression) Expression { return ad.Ceil(e) }

// Pow returns base raised to exponent, differentiating both branches.
func Pow(base, exponent Expression) Expression { return ad.Pow(base, exponent) }

// PowScalar returns e raised to the constant exponent k.
func PowScalar(e Expression, k float64) Expression { return ad.PowScalar(e, k) }

// ScalarPow returns the constant base c raised to e.
func ScalarPow(c float64, e Expression) Expression { return ad.ScalarPow(c, e) }
