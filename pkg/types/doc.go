// Package types defines the Store interface, entity types, and standard
// errors for the Strata tiered knowledge engine.
// Implements: prd001-store-core (Config, Store, Artifact, errors);
//
//	docs/ARCHITECTURE § Main Interface, § System Components (Store API).
package types
