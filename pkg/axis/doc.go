// Package axis provides extensible, application-defined targeting
// dimensions.
//
// An Axis is a named dimension such as "environment", "tier" or "cohort" whose
// valid values come from an application enum implementing the Value
// interface. Axes live in a Catalog, a scoped registry created explicitly by
// the host; there is no process-global catalog, so two catalogs never see
// each other's axes and namespace isolation is testable without global
// resets.
//
// # Usage
//
//	type Environment string
//
//	func (e Environment) AxisValueID() string { return string(e) }
//
//	const (
//		EnvStaging    Environment = "staging"
//		EnvProduction Environment = "production"
//	)
//
//	catalog := axis.NewCatalog()
//	env := catalog.MustRegister("environment", EnvStaging, EnvProduction)
//
// Registering the same axis id twice, or with values of a different backing
// Go type, is a wiring defect: Register returns a typed *ConflictError and
// MustRegister panics.
package axis
