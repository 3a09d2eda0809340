// Package services implements the driving port interfaces.
//
// Services hold the pipeline logic: capture into the inbox, routing into
// per-topic logs, compaction into the archive, state analytics and task
// sync. They talk to storage, analyzers and sinks only through driven ports.
package services
