// Package spec describes the values a guarded function accepts and decides
// whether a given value satisfies them.
//
// An accepted alternative is a Spec. The variants are:
//   - TypeSpec      – the value's dynamic type is one of the listed types
//   - LiteralSpec   – the value equals a literal (numbers compare by value)
//   - PredicateSpec – a validator.Predicate decides, its Outcome is forwarded
//   - SchemaSpec    – a string-keyed map is checked against a nested Schema
//   - OneOfSpec     – a nested list of alternatives
//
// Match evaluates a list of alternatives with OR semantics in declaration
// order and returns the outcome of the first one that matches. An empty list
// accepts every value.
//
// # Schemas
//
// A Schema validates maps field by field:
//
//	user := spec.MustSchema(
//	    spec.Key("name", spec.Pred(validator.MustString(validator.MinLength(1)))),
//	    spec.Key("birthyear", spec.Pred(validator.MustNumber(
//	        validator.MinValue(1890),
//	        validator.MaxValue(2020),
//	    ))),
//	    spec.Key("rating", spec.Float),
//	    spec.OptionalKey("bio", spec.String, spec.Nil),
//	)
//
// The map's key set must match the declared keys exactly, except that
// optional keys may be absent. A key set mismatch is returned as an error
// (*SchemaKeyMismatchError, matching ErrSchemaKeyMismatch), while a field
// whose value matches none of its alternatives produces a failed Outcome.
// Callers that need a single verdict treat both as rejection.
//
// Schemas can also be loaded from YAML with ParseSchema, LoadSchema and
// LoadSchemaFile.
package spec
