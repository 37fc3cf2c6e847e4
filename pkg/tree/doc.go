/*
Package tree provides read-only inspection of outline trees.

A tree is any value satisfying Node: it exposes its ordered children and can be
asked for its next sibling. The package never mutates nodes.

# Key Operations

  - BreadthFirst / Walk: level-order visitation driven by the first-child and
    next-sibling links rather than by indexing children directly.
  - Prettify / Fprint / Print: an indented, depth-first rendering of a subtree,
    projecting either a chosen list of attributes or every exported attribute.

Trees must be acyclic and every node's sibling chain must agree with its
Children slice. Neither condition is checked; a malformed tree may make
traversal loop forever.
*/
package tree
