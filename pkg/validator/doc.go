// Package validator provides the structural rules that a record's attribute
// mapping must satisfy, and the violation types used to report failures.
//
// Rules are explicit values rather than closures attached to a type. Every
// rule implements the Rule interface and belongs to one of a fixed set of
// variants:
//
//   - ListLength            – list fields must match a counter field
//   - ConditionalRequired   – fields must be present while a condition holds
//   - ConditionalForbidden  – fields must be absent while a condition holds
//   - ConditionalGuard      – runs another rule only while a condition holds
//   - LocationSpec          – exactly one of four ways to place a record on
//     the 1D/2D network
//
// # Usage
//
//	rules := []validator.Rule{
//	    validator.Location(validator.DefaultLocationConfig()),
//	    validator.LengthOf("numlosscoeff", "relopening", "losscoeff"),
//	    validator.RequiredWhen(validator.Equals("subtype", "invertedSiphon"), "bendlosscoeff"),
//	    validator.ForbiddenWhen(validator.NotEquals("subtype", "invertedSiphon"), "bendlosscoeff"),
//	}
//
//	values := validator.Values{"nodeid": "N1"}
//	if err := validator.Apply(values, rules...); err != nil {
//	    for _, v := range validator.ExtractViolations(err) {
//	        // v.Fields, v.Kind, v.Message
//	    }
//	}
//
// Apply runs the rules in order. A rule stops at its own first failure, but
// the rules after it still run, so one call can surface several independent
// violations. Rules may write into the mapping (the location rule fills in
// the implied location type), and later rules see those writes.
//
// # Error Handling
//
// Violations implements error and carries, per failure, the fields involved,
// the Kind of failure, a human readable message and translation metadata.
// Report wraps the violations of one record together with its type name and
// identifier. Use ExtractViolations, ExtractReport and IsViolation to
// inspect errors returned further up the stack.
//
// Rules hold no state between calls and are safe for concurrent use as long
// as every goroutine validates its own Values.
package validator
