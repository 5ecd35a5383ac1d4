// Package cart implements the client-side cart aggregator: a pure in-memory
// reducer over cart lines. Every mutation returns a fresh line slice; callers
// never observe shared state.
package cart

import (
	"github.com/tayaudrey222/yumstation/internal/models"
)

// AddItem appends item with quantity 1, or increments the existing line for
// the same item. Items without a fixed price are rejected with ErrInvalidItem.
func AddItem(lines []models.CartLine, item models.MenuItem) ([]models.CartLine, error) {
	if !item.Purchasable() {
		return lines, models.ErrInvalidItem
	}

	next := make([]models.CartLine, len(lines))
	copy(next, lines)

	for i := range next {
		if next[i].Item.ID == item.ID {
			next[i].Qty++
			return next, nil
		}
	}

	return append(next, models.CartLine{Item: item, Qty: 1}), nil
}

// UpdateQuantity adjusts the line for id by delta, clamped at zero. A line
// that reaches zero is removed. Unknown ids are a no-op.
func UpdateQuantity(lines []models.CartLine, id string, delta int) []models.CartLine {
	next := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Item.ID == id {
			line.Qty += delta
			if line.Qty <= 0 {
				continue
			}
		}
		next = append(next, line)
	}
	return next
}

// RemoveItem drops the line for id.
func RemoveItem(lines []models.CartLine, id string) []models.CartLine {
	next := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.Item.ID != id {
			next = append(next, line)
		}
	}
	return next
}

// Clear empties the cart.
func Clear() []models.CartLine {
	return nil
}

// Total sums price x quantity over all lines. On-request prices count as
// zero in case one leaked past AddItem.
func Total(lines []models.CartLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total
}
