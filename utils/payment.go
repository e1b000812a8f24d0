package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// ProcessPayment simulates the payment gateway. No real gateway is
// integrated; every charge succeeds and gets a synthetic reference.
func ProcessPayment(amount float64, method string) (string, error) {
	if amount <= 0 {
		return "", nil
	}
	return fmt.Sprintf("PAY-%s", uuid.NewString()), nil
}
