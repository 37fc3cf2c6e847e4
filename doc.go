/*
Package todotree inspects todo outlines and simulates mirroring them elsewhere.

An outline is a tree of items loaded from YAML or JSON, or assembled with the
dsl package. The Outline type bundles the common inspections: level-order
listing, indented attribute dumps and Mermaid diagrams. Simulate walks an
outline and reports, through dry-run stand-ins, the calls a sync to a remote
service would make, without making them.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/todotree"
	)

	func main() {
		outline, err := todotree.Open("./inbox.yaml")
		if err != nil {
			log.Fatal(err)
		}

		// Level order: root, then each depth left to right
		log.Println(outline.Order())

		// Indented dump of id and name
		outline.Print("name")

		// What would a sync do?
		if _, err := todotree.Simulate(context.Background(), outline.Root()); err != nil {
			log.Fatal(err)
		}
	}

The underlying pieces live in pkg/tree (traversal and printing), pkg/dryrun
(stand-ins), pkg/domain (the item type) and pkg/dsl (builder).
*/
package todotree
