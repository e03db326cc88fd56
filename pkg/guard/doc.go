// Package guard attaches runtime contracts to functions.
//
// A Function describes a callable by name, declared parameters and an
// implementation using a uniform calling convention: positional arguments
// plus named arguments. Accepts wraps it so every call first binds the
// arguments to the declared parameters and matches each supplied value
// against its accepted alternatives from package spec. Returns wraps it so
// the result is matched after the call.
//
//	transfer := guard.Function{
//	    Name:   "transfer",
//	    Params: []guard.Param{guard.Required("to"), guard.Default("amount", 0)},
//	    Call:   transferImpl,
//	}
//	transfer = guard.MustAccepts(transfer,
//	    guard.Arg(spec.String),
//	    guard.Arg(spec.Pred(validator.MustNumber(validator.MinValue(0)))),
//	)
//	transfer = guard.MustReturns(transfer, spec.Bool)
//
// Binding follows the usual precedence: position, then name, then the
// declared default. Parameters with a default are optional and their default
// value is always accepted. A Kwarg naming an undeclared parameter is a
// keyword-only slot, checked only when supplied.
//
// Failures are returned, never panicked: *ArgumentCountError for a missing
// argument, *ArgumentValidationError for a rejected argument and
// *InvalidReturnTypeError for a rejected result. Schema key mismatches
// surface through errors.As as *spec.SchemaKeyMismatchError. Outcomes that
// pass with a warning are logged at warn level and the call proceeds.
//
// Checks run while the guard's Switch is on. The package-level functions use
// DefaultSwitch; WithValidation overrides the switch for a single call
// through its context.
package guard
