// Package validator provides composable predicates: values that map an
// arbitrary Go value to an Outcome and expose many independently enabled
// facets (ranges, membership, patterns, element constraints).
//
// A predicate built by this package is a Composite. It holds an optional
// coarse TypeGuard and an ordered list of Checker entries, each binding a
// CheckFunc to the arguments supplied when the predicate was built. Facets
// whose primary argument was never configured carry the Unset sentinel and
// are dropped by NewComposite, so they never run.
//
// # Architecture
//
// Each source file groups one family of facets (`numeric_rules.go`,
// `string_rules.go`, `collection_rules.go`, `tensor_rules.go`, etc.). Every
// exported constructor gathers functional options, checks cross-field
// invariants and returns a *Composite; there is no hidden global state, so
// built predicates are immutable and goroutine-safe.
//
// Core building blocks:
//   - Outcome           – status, warning flag and diagnostic message
//   - Predicate         – the single capability every validator implements
//   - Checker/CheckFunc – one named facet bound to its configuration
//   - Composite         – type guard plus facets evaluated with AND semantics
//   - Numeric           – generic constraint used by numeric options
//
// # Usage
//
//	age, err := validator.NewNumber(
//	    validator.IntegersOnly(),
//	    validator.MinValue(18),
//	    validator.MaxValue(130),
//	)
//	if err != nil {
//	    // min greater than max and similar mistakes are reported here,
//	    // never while validating
//	}
//
//	out, _ := age.Validate(42)
//	fmt.Println(out.Status) // true
//
// # Evaluation
//
// Composite.Validate checks the type guard first and fails without running
// any facet when it does not hold. Facets then run in registration order and
// evaluation stops at the first failure. A warning outcome does not stop
// evaluation; warning messages are joined and returned if nothing fails later.
//
// # Error Handling
//
// Configuration mistakes are returned as *ConstructionError wrapping
// ErrConstruction. The Must* constructors panic instead, which suits
// package-level declarations.
package validator
