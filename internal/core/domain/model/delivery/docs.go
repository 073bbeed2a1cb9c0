// Package delivery models the delivery leg of an order: the claimable record
// a driver accepts and completes to return finished laundry to the customer.
package delivery
