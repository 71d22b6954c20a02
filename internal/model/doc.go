// Package model defines domain data structures shared across the app: the
// resolved download target, the job record with its status enum, the events a
// running job emits, and the typed errors of the resolve/download pipeline.
package model
