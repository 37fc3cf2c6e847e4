/*
Package ports defines the driven ports (interfaces) of todotree.

These interfaces decouple the inspections from where an outline comes from.

# Key Interfaces

  - OutlineLoader: produces the root item of an outline (e.g., from a YAML/JSON file or memory).
*/
package ports
