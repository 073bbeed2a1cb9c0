// Package services provides domain services that implement business rules
// spanning more than one aggregate. ManifestChecker compares a worker's
// submitted item counts against the order's persisted manifest to decide
// whether station work may start or the bypass path is needed.
package services
