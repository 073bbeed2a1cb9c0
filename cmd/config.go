package cmd

import "time"

// Config carries all runtime settings loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AmqpURL string

	PaymentBaseURL string
	PaymentAPIKey  string

	// UnpaidRemindAfter is how long an order sits at WAITING_FOR_PAYMENT
	// before the customer is reminded; UnpaidCancelAfter is how long before
	// it is cancelled.
	UnpaidRemindAfter time.Duration
	UnpaidCancelAfter time.Duration
}
