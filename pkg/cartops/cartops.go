// Package cartops holds the cart line mutation rules shared by the server
// and the client mirror. All functions are pure: they return a new slice and
// never touch the input.
package cartops

type Line struct {
	ProductID string `json:"productId"`
	Quantity  uint   `json:"quantity"`
}

// SetItem overwrites the quantity of an existing line or appends a new one.
// Repeated adds replace the quantity, they do not sum.
func SetItem(lines []Line, productID string, quantity uint) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)

	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
			return out
		}
	}
	return append(out, Line{ProductID: productID, Quantity: quantity})
}

// UpdateQuantity sets the quantity of an existing line. The second return
// value reports whether the line was present.
func UpdateQuantity(lines []Line, productID string, quantity uint) ([]Line, bool) {
	out := make([]Line, len(lines))
	copy(out, lines)

	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity = quantity
			return out, true
		}
	}
	return out, false
}

// Remove filters out the line for productID. Removing an absent line is a
// no-op, not an error.
func Remove(lines []Line, productID string) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.ProductID != productID {
			out = append(out, l)
		}
	}
	return out
}

func TotalItems(lines []Line) uint {
	var total uint
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice sums quantity times unit price over all lines. unitPrice is a
// lookup into whatever product snapshot the caller keeps; unknown products
// contribute zero.
func TotalPrice(lines []Line, unitPrice func(productID string) float64) float64 {
	var total float64
	for _, l := range lines {
		total += unitPrice(l.ProductID) * float64(l.Quantity)
	}
	return total
}
