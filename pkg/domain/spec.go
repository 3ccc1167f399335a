package domain

// NotImplementedMessage is reported by the stub body substituted for a spec
// declared without one.
const NotImplementedMessage = "Not Implemented"

// Spec is one named, independently reported check within an example.
type Spec struct {
	Description string
	Body        func()
}

// Undefined is the absent-value sentinel. It is distinct from nil: asserting
// with no subject binds Undefined, and the isDefined/isUndefined verbs test
// against it.
var Undefined undefined

type undefined struct{}

func (undefined) String() string { return "undefined" }
