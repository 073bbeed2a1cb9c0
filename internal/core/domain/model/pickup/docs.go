// Package pickup models the pickup leg of an order: the single claimable
// record a pickup/delivery driver accepts and completes to move the
// customer's laundry to the outlet.
package pickup
