// Package htmlcheck provides an offline linter that checks the structure of
// an HTML document against a list of declarative rules and produces a
// per-rule text report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, yaml/, slog/).
package htmlcheck
