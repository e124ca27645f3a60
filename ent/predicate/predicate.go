// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)

// RunNodeMetric is the predicate function for runnodemetric builders.
type RunNodeMetric func(*sql.Selector)

// RunSummary is the predicate function for runsummary builders.
type RunSummary func(*sql.Selector)

// RunTelemetry is the predicate function for runtelemetry builders.
type RunTelemetry func(*sql.Selector)
