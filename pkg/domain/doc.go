/*
Package domain contains the core model for the pavlov specification layer.

It defines the fundamental entities of a specification: Examples (nested
behavioral groups), Specs (individual checks), and the Statement stream the
compiler emits for an execution engine. This package is kept pure and free of
external dependencies like I/O, following Hexagonal Architecture principles.

# Key Entities

  - Example: A node in the specification tree, bundling setup, teardown,
    specs, and child examples.
  - Spec: One named, independently reported check within an example.
  - Statement: A flat, engine-executable instruction (group declaration or
    test registration) produced by compiling a tree.
*/
package domain
