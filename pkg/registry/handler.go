package registry

// Handler binds one subject value to the registry's verbs. It holds no state
// beyond the bound subject and its report destination, so constructing one
// per assertion is cheap.
type Handler struct {
	subject any
	report  ReportFunc
	reg     *Registry
}

// NewHandler binds a subject against the given registry. Reports flow to the
// supplied ReportFunc, typically the active engine's Report.
func NewHandler(reg *Registry, subject any, report ReportFunc) *Handler {
	return &Handler{subject: subject, report: report, reg: reg}
}

// Verb dispatches a registered verb by name, passing the caller arguments
// through untouched with no message split. Custom predicates define their own
// argument conventions. An unregistered name reports a failure.
func (h *Handler) Verb(name string, args ...any) {
	if err := h.reg.Invoke(name, h.report, h.subject, args, ""); err != nil {
		h.report(false, err.Error())
	}
}

func (h *Handler) invoke(name string, message []string, args ...any) {
	msg := ""
	if len(message) > 0 {
		msg = message[0]
	}
	if err := h.reg.Invoke(name, h.report, h.subject, args, msg); err != nil {
		h.report(false, err.Error())
	}
}

// Equals passes when the subject shallow-equals (Go ==) the expected value.
func (h *Handler) Equals(expected any, message ...string) {
	h.invoke("equals", message, expected)
}

// IsEqualTo is an alias for Equals.
func (h *Handler) IsEqualTo(expected any, message ...string) {
	h.invoke("isEqualTo", message, expected)
}

// IsNotEqualTo passes when the subject does not shallow-equal the expected value.
func (h *Handler) IsNotEqualTo(expected any, message ...string) {
	h.invoke("isNotEqualTo", message, expected)
}

// IsSameAs passes when the subject deep-equals the expected value.
func (h *Handler) IsSameAs(expected any, message ...string) {
	h.invoke("isSameAs", message, expected)
}

// IsNotSameAs passes when the subject does not deep-equal the expected value.
func (h *Handler) IsNotSameAs(expected any, message ...string) {
	h.invoke("isNotSameAs", message, expected)
}

// IsTrue passes when the subject is the bool true.
func (h *Handler) IsTrue(message ...string) { h.invoke("isTrue", message) }

// IsFalse passes when the subject is the bool false.
func (h *Handler) IsFalse(message ...string) { h.invoke("isFalse", message) }

// IsNull passes when the subject is nil, including typed nils.
func (h *Handler) IsNull(message ...string) { h.invoke("isNull", message) }

// IsNotNull passes when the subject is not nil.
func (h *Handler) IsNotNull(message ...string) { h.invoke("isNotNull", message) }

// IsDefined passes when the subject is not the Undefined sentinel.
func (h *Handler) IsDefined(message ...string) { h.invoke("isDefined", message) }

// IsUndefined passes when the subject is the Undefined sentinel.
func (h *Handler) IsUndefined(message ...string) { h.invoke("isUndefined", message) }

// Pass reports unconditional success, ignoring the subject.
func (h *Handler) Pass(message ...string) { h.invoke("pass", message) }

// Fail reports unconditional failure, ignoring the subject.
func (h *Handler) Fail(message ...string) { h.invoke("fail", message) }

// ThrowsException invokes the subject, which must be a func(). A panic during
// the call passes; returning cleanly fails.
func (h *Handler) ThrowsException(message ...string) {
	h.invoke("throwsException", message)
}
