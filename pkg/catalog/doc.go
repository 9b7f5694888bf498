/*
Package catalog loads and indexes the immutable skill definitions.

A Catalog is built once, validated as a whole (unique IDs, known trees and
axes, resolvable prerequisites without cycles, keystones with a single
rank) and then shared read-only by any number of planners.

Catalog files are YAML documents with a top-level "skills" list:

	skills:
	  - id: cond_turtle_crawl
	    name: Turtle Crawl
	    tree: Conditioning
	    kind: scaling
	    max_rank: 5
	    tree_requirement: 0
	    prerequisites: []
	    stats: {Resilience: 4, Stealth: 1}

The built-in catalog is embedded in the binary and returned by Default.
*/
package catalog
