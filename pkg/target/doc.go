// Package target provides the declarative matching criteria attached to flag
// rules and the typed evaluation context they are checked against.
//
// A Targeting value is a conjunction: every declared constraint category
// (locales, platforms, version range, axis constraints, custom predicate)
// must hold for the targeting to match. Within one category a single
// matching value suffices. An empty category is vacuously true, so the zero
// Targeting matches every context.
//
// # Specificity
//
// When several rules match the same context, the engine prefers the rule
// with the narrower targeting. Specificity is the count of constrained
// categories: one point each for non-empty locales, non-empty platforms and
// a version range with at least one explicit bound, one point per distinct
// constrained axis id, plus whatever a custom predicate reports for itself.
// A version range that is explicitly Unbounded has no bounds and therefore
// contributes nothing: it is scored identically to an absent constraint.
//
// # Locales
//
// Locales are BCP 47 tags handled through golang.org/x/text/language. Both
// rule locales and the context locale are canonicalized at construction, so
// "en_US" and "en-US" compare equal at match time.
//
// # Custom predicates
//
// A Predicate is an opaque capability supplied by the embedding application.
// The engine never interprets it; it only calls Matches and adds
// Specificity to the rule's score.
package target
