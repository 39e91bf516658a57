// Package solvent is the reusable core for building small text-puzzle
// solvers — composable parsing, a uniform solution model, character grids
// and generational simulations.
//
// 🚀 What is solvent?
//
//	A compact, single-threaded, generics-based library that brings together:
//		• Parser combinators: turn raw puzzle text into typed values
//		• Answers & errors: one closed result vocabulary for every solver
//		• Solutions & registry: multi-part solvers dispatched by (year, day)
//		• Grids: rectangular rune↔element grids with adjacency policies
//		• Evolvers: lazy, unbounded sequences of immutable generations
//
// ✨ Why choose solvent?
//
//   - Small API – four abstractions, everything else is glue
//   - Honest failures – every edge case is a sentinel error, never a panic
//   - Pure Go – no cgo, no I/O inside the core, text in, answers out
//   - Composable – grids parse through the combinators, evolvers wrap grids
//
// Under the hood, everything is organized into five subpackages:
//
//	parse/     — prefix parsers, combinators, Gather/FromCSV entry points
//	solve/     — Answer, error taxonomy, Solution descriptors, Registry
//	grid/      — Grid[E], Point adjacency policies, the CharGrid capability
//	evolve/    — the Evolver capability and its generation Sequence
//	solutions/ — fully wired sample solvers (sonar sweep, lanternfish)
//
// Quick ASCII example:
//
//	    "3,4,3,1,2" ──parse──▶ *School ──evolve×80──▶ 5934
//
//	raw text flows through one preprocessor into ordered, independent parts.
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and the full error catalogue.
//
//	go get github.com/solvent-go/solvent
package solvent
