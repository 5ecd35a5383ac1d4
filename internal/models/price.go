package models

import (
	"encoding/json"
	"fmt"
)

// priceOnRequest is the wire form used by the storefront documents for items
// without a listed price.
const priceOnRequest = "Ask for price"

// Price is a tagged variant: either a fixed amount in naira or "on request".
// The zero value is a priced item at 0.
type Price struct {
	Amount    int64
	OnRequest bool
}

// Priced returns a fixed price.
func Priced(amount int64) Price {
	return Price{Amount: amount}
}

// AskForPrice returns the on-request variant.
func AskForPrice() Price {
	return Price{OnRequest: true}
}

func (p Price) String() string {
	if p.OnRequest {
		return priceOnRequest
	}
	return fmt.Sprintf("N%d", p.Amount)
}

// MarshalJSON keeps the original document encoding: a number, or the
// on-request sentinel string.
func (p Price) MarshalJSON() ([]byte, error) {
	if p.OnRequest {
		return json.Marshal(priceOnRequest)
	}
	return json.Marshal(p.Amount)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var amount int64
	if err := json.Unmarshal(data, &amount); err == nil {
		*p = Priced(amount)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid price: %s", data)
	}
	if s != priceOnRequest {
		return fmt.Errorf("invalid price string: %q", s)
	}
	*p = AskForPrice()
	return nil
}
