// Package engine implements the tiered retrieval engine on top of a
// types.Store: drift detection, lifecycle tracking, the keyword search
// index, brief and manifest rendering with budget enforcement, and the
// Resolve facade.
//
// The engine is read-mostly. Resolve, Lookup, and Render do not mutate
// state and are safe to call concurrently; mutating calls (registration,
// lifecycle transitions, Reindex) are serialized by the store's writer
// lock.
// Implements: prd008-retrieval; docs/ARCHITECTURE § Retrieval Engine.
package engine
