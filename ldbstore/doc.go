// Package ldbstore persists training run checkpoints in a LevelDB
// database on disk.
//
// Checkpoints are keyed by run ID and epoch, so a fit can be resumed
// or inspected at any epoch long after the process that produced it
// has exited.
package ldbstore
