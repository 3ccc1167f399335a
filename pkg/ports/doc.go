/*
Package ports defines the driven ports (interfaces) for the pavlov core.

These interfaces decouple the specification layer from external
implementations, letting the compiled statement stream execute against any
test-execution engine and any clock.

# Key Interfaces

  - Engine: The external execution engine boundary (declare groups, run
    tests, report assertion outcomes, pause/resume for timed waits).
  - Clock: The timer provider backing the wait primitive.
  - Titler: Optional engine capability for binding a display title.
*/
package ports
