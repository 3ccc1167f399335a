package console

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func newTestEngine() (*Engine, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	e := New(WithWriter(buf), WithProfile(termenv.Ascii))
	return e, buf
}

func TestRunTest_PassingAndFailing(t *testing.T) {
	e, buf := newTestEngine()

	e.DeclareGroup("math", nil, nil)
	e.RunTest("adds", func() { e.Report(true, "ok") })
	e.RunTest("subtracts", func() { e.Report(false, "expected 1 to equal 2") })
	e.RunTest("keeps going", func() { e.Report(true, "ok") })

	passed, failed := e.Summary()
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, failed, "an assertion failure is non-fatal to the run")

	out := buf.String()
	assert.Contains(t, out, "math")
	assert.Contains(t, out, "ok adds")
	assert.Contains(t, out, "FAIL subtracts")
	assert.Contains(t, out, "expected 1 to equal 2")
}

func TestRunTest_HooksWrapEachTest(t *testing.T) {
	e, _ := newTestEngine()
	var trace []string

	e.DeclareGroup("g",
		func() { trace = append(trace, "setup") },
		func() { trace = append(trace, "teardown") },
	)
	e.RunTest("a", func() { trace = append(trace, "a") })
	e.RunTest("b", func() { trace = append(trace, "b") })

	assert.Equal(t, []string{
		"setup", "a", "teardown",
		"setup", "b", "teardown",
	}, trace)
}

func TestRunTest_PanicCountsAsFailure(t *testing.T) {
	e, buf := newTestEngine()
	teardownRan := false

	e.DeclareGroup("g", nil, func() { teardownRan = true })
	e.RunTest("explodes", func() { panic("boom") })
	e.RunTest("still runs", func() { e.Report(true, "ok") })

	passed, failed := e.Summary()
	assert.Equal(t, 1, passed)
	assert.Equal(t, 1, failed)
	assert.True(t, teardownRan, "teardown runs even when the body panics")
	assert.Contains(t, buf.String(), "panic: boom")
}

func TestRunTest_TestWithNoReportsPasses(t *testing.T) {
	e, _ := newTestEngine()
	e.DeclareGroup("g", nil, nil)
	e.RunTest("quiet", func() {})

	passed, failed := e.Summary()
	assert.Equal(t, 1, passed)
	assert.Equal(t, 0, failed)
}

func TestPrintSummary(t *testing.T) {
	e, buf := newTestEngine()
	e.DeclareGroup("g", nil, nil)
	e.RunTest("a", func() { e.Report(true, "ok") })
	e.PrintSummary()

	assert.Contains(t, buf.String(), "1 passed, 0 failed")
}

func TestTitle(t *testing.T) {
	e, buf := newTestEngine()
	e.Title("My Suite")
	assert.Contains(t, buf.String(), "My Suite")
}
