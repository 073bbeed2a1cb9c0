// Package work models the station side of the pipeline: WorkProcess rows
// record one station visit per order and carry the mutual-exclusion
// invariant, WorkerShift rows represent a worker's open-ended claim on
// capacity. Both are claimed and released exclusively through the station
// pipeline and bypass resolution use cases.
package work
