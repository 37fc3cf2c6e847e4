/*
Package domain contains the core model of a todo outline.

It defines the Item, the building block of an outline tree, and the errors
raised while assembling one. Items satisfy tree.Node, so every traversal and
printing helper works on them directly. The package does no I/O.

# Key Entities

  - Item: one outline entry (name, note, completion, tags) owning its ordered children.
*/
package domain
