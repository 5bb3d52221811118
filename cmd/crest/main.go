// Package main provides the crest command-line calculator for values and
// exact derivatives of arithmetic expressions.
package main

func main() {
	Execute()
}
