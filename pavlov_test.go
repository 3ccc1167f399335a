package pavlov_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ef4/pavlov"
	"github.com/ef4/pavlov/pkg/adapters/clock"
	"github.com/ef4/pavlov/pkg/adapters/memory"
	"github.com/ef4/pavlov/pkg/registry"
)

func TestSpecify_EndToEnd(t *testing.T) {
	engine := memory.New()
	runner := pavlov.New(pavlov.WithEngine(engine))

	err := runner.Specify("Calculator", func(s *pavlov.S) {
		s.Describe("addition", func() {
			var total int
			s.Before(func() { total = 10 })

			s.It("adds", func() {
				s.Assert(total + 5).Equals(15)
			})

			s.Describe("with negatives", func() {
				s.It("subtracts", func() {
					s.Assert(total - 5).Equals(5)
				})
			})
		})
	})
	require.NoError(t, err)

	groups := engine.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "addition", groups[0].Name)
	assert.Equal(t, "addition, with negatives", groups[1].Name)
	assert.Equal(t, "Calculator", engine.RecordedTitle())

	results := engine.Execute()
	require.Len(t, results, 2)
	for _, res := range results {
		require.Len(t, res.Reports, 1)
		assert.True(t, res.Reports[0].Passed, "%s: %s", res.Description, res.Reports[0].Message)
	}
}

func TestSpecify_StatementOrderGroupedByContext(t *testing.T) {
	engine := memory.New()

	err := pavlov.New(pavlov.WithEngine(engine)).Specify("", func(s *pavlov.S) {
		s.Describe("G1", func() {
			s.It("spec1", func() {})
			s.It("spec2", func() {})
			s.Describe("G2", func() {
				s.It("spec1", func() {})
			})
		})
	})
	require.NoError(t, err)

	groups := engine.Groups()
	require.Len(t, groups, 2)
	require.Len(t, groups[0].Tests, 2)
	assert.Equal(t, "spec1", groups[0].Tests[0].Description)
	assert.Equal(t, "spec2", groups[0].Tests[1].Description)
	assert.Equal(t, "G1, G2", groups[1].Name)
	require.Len(t, groups[1].Tests, 1)
}

func TestSpecify_ForestDoesNotSurviveAcrossRuns(t *testing.T) {
	runner := pavlov.New(pavlov.WithEngine(memory.New()))
	builder := func(s *pavlov.S) {
		s.Describe("only group", func() {
			s.It("only spec", func() {})
		})
	}
	require.NoError(t, runner.Specify("first", builder))

	// A second run against a fresh engine sees exactly one group again.
	second := memory.New()
	require.NoError(t, pavlov.New(pavlov.WithEngine(second)).Specify("second", builder))
	assert.Len(t, second.Groups(), 1)
}

func TestSpecify_NotImplementedSpec(t *testing.T) {
	engine := memory.New()

	err := pavlov.New(pavlov.WithEngine(engine)).Specify("", func(s *pavlov.S) {
		s.Describe("pending work", func() {
			s.It("will exist someday")
		})
	})
	require.NoError(t, err)

	results := engine.Execute()
	require.Len(t, results, 1)
	require.Len(t, results[0].Reports, 1, "exactly one report, no other assertion calls")
	assert.False(t, results[0].Reports[0].Passed)
	assert.Equal(t, "Not Implemented", results[0].Reports[0].Message)
}

func TestSpecify_BuilderPanicBecomesError(t *testing.T) {
	engine := memory.New()
	runner := pavlov.New(pavlov.WithEngine(engine))

	err := runner.Specify("broken", func(s *pavlov.S) {
		s.Describe("outer", func() {
			panic("malformed nesting")
		})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed nesting")
	assert.Empty(t, engine.Groups(), "nothing compiles after a builder failure")

	// The runner stays usable for subsequent runs.
	next := memory.New()
	err = pavlov.New(pavlov.WithEngine(next)).Specify("after", func(s *pavlov.S) {
		s.Describe("sibling run", func() {
			s.It("still declares correctly", func() {})
		})
	})
	require.NoError(t, err)
	require.Len(t, next.Groups(), 1)
	assert.Equal(t, "sibling run", next.Groups()[0].Name)
}

func TestSpecify_VerbOutsideDescribeBecomesError(t *testing.T) {
	err := pavlov.New(pavlov.WithEngine(memory.New())).Specify("", func(s *pavlov.S) {
		s.It("orphan spec", func() {})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no open example")
}

func TestSpecify_WaitUsesInjectedClock(t *testing.T) {
	engine := memory.New()
	fake := &clock.Fake{}

	err := pavlov.New(pavlov.WithEngine(engine), pavlov.WithClock(fake)).Specify("", func(s *pavlov.S) {
		s.Describe("async", func() {
			s.It("waits then asserts", func() {
				s.Wait(100*time.Millisecond, func() {
					s.Assert(true).IsTrue()
				})
			})
		})
	})
	require.NoError(t, err)

	results := engine.Execute()
	require.Len(t, results, 1)
	require.Len(t, results[0].Reports, 1)
	assert.True(t, results[0].Reports[0].Passed)
	assert.Equal(t, []time.Duration{100 * time.Millisecond}, fake.Slept)
	assert.Equal(t, 1, engine.Pauses())
	assert.Equal(t, 1, engine.Resumes())
}

func TestSpecify_CustomVerb(t *testing.T) {
	engine := memory.New()
	reg := registry.NewRegistry()
	reg.Register("isPositive", func(report registry.ReportFunc, subject any, _ []any, message string) {
		n, ok := subject.(int)
		report(ok && n > 0, message)
	})

	err := pavlov.New(pavlov.WithEngine(engine), pavlov.WithRegistry(reg)).Specify("", func(s *pavlov.S) {
		s.Describe("numbers", func() {
			s.It("five is positive", func() {
				s.Assert(5).Verb("isPositive")
			})
		})
	})
	require.NoError(t, err)

	results := engine.Execute()
	require.Len(t, results[0].Reports, 1)
	assert.True(t, results[0].Reports[0].Passed)
}

func TestSpecify_GivenExpansion(t *testing.T) {
	engine := memory.New()

	err := pavlov.New(pavlov.WithEngine(engine)).Specify("", func(s *pavlov.S) {
		s.Describe("sums", func() {
			s.Given(1, 2, []any{3, 4}).It("adds", func(args ...any) {
				total := 0
				for _, a := range args {
					total += a.(int)
				}
				s.Assert(total > 0).IsTrue()
			})
		})
	})
	require.NoError(t, err)

	tests := engine.Groups()[0].Tests
	require.Len(t, tests, 3)
	assert.Equal(t, "given 1, adds", tests[0].Description)
	assert.Equal(t, "given 2, adds", tests[1].Description)
	assert.Equal(t, "given 3,4, adds", tests[2].Description)

	for _, res := range engine.Execute() {
		require.Len(t, res.Reports, 1)
		assert.True(t, res.Reports[0].Passed)
	}
}
