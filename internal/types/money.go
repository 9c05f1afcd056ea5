// README: Common money value object used across modules.
package types

// Money is an amount in whole currency units (USD for catalog prices).
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}
