// Package subgraphs is an in-memory toolkit for building, exploring, and
// analyzing graphs in Go, built around a thread-safe core.Graph and a set
// of independent algorithm packages layered on top of it.
//
// 🚀 What is subgraphs?
//
//	A modern, mostly zero-dependency library that brings together:
//
//	  • Core primitives:  create vertices & edges, mutate safely under locks
//	  • Builders:         deterministic constructors for common graph shapes
//	  • Clique & independent-set enumeration (package cliques), grounded on
//	    the Tsukiyama-Ide-Ariyoshi-Shirakawa backtracking algorithm and
//	    igraph's bottom-up level expander
//
// ✨ Why choose subgraphs?
//
//   - Beginner-friendly    — minimal API, clear, intuitive naming
//   - Rock-solid           — built-in R/W locks ensure thread-safety
//   - Extensible           — attach OnWarning hooks for custom logic
//   - Pure Go              — no cgo
//
// Under the hood, everything is organized by concern:
//
//	core/        — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	builder/     — constructors for common graph shapes (complete, cycle, path, ...)
//	cliques/     — clique and independent-vertex-set enumeration
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
//	go get github.com/katalvlaran/subgraphs
package subgraphs
