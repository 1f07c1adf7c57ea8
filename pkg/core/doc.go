// Package core provides a small, stable facade over the scrub engine for
// external integrations. It deliberately re-exports a narrow API surface so
// other build tooling can depend on a stable import path without exposing
// internal implementation packages.
//
// Example:
//
//	set := core.BuildTargets([]string{"/opt/build/stage"}, true)
//	ledger := core.Scrub(files, set, core.Config{Threads: 0})
//	_ = core.MarshalEntries(os.Stdout, ledger.Snapshot())
package core
