package resource

import (
	"sort"

	"voidminer/internal/domain/numeric"
)

// Inventory maps a resource id to the quantity held. Quantities are kept
// non-negative and rounded to 4 decimals at every mutation.
type Inventory map[string]float64

func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}

func (inv Inventory) Get(id string) float64 {
	if inv == nil {
		return 0
	}
	return inv[id]
}

// Add returns a copy with amount added. Non-positive amounts are ignored.
func (inv Inventory) Add(id string, amount float64) Inventory {
	out := inv.Clone()
	if id == "" || !(amount > 0) {
		return out
	}
	out[id] = numeric.NonNegative4(out[id] + amount)
	return out
}

// Take removes up to amount and reports how much was actually removed.
func (inv Inventory) Take(id string, amount float64) (Inventory, float64) {
	out := inv.Clone()
	if id == "" || !(amount > 0) {
		return out, 0
	}
	held := out[id]
	taken := amount
	if taken > held {
		taken = held
	}
	taken = numeric.Round4(taken)
	out[id] = numeric.NonNegative4(held - taken)
	return out, taken
}

func (inv Inventory) HasAll(required map[string]float64) bool {
	for id, qty := range required {
		if inv.Get(id)+1e-9 < qty {
			return false
		}
	}
	return true
}

func (inv Inventory) Total() float64 {
	total := 0.0
	for _, v := range inv {
		if v > 0 {
			total += v
		}
	}
	return numeric.Round4(total)
}

func (inv Inventory) Keys() []string {
	keys := make([]string, 0, len(inv))
	for k := range inv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (inv Inventory) Equal(other Inventory) bool {
	for _, k := range inv.Keys() {
		if inv[k] != other.Get(k) {
			return false
		}
	}
	for _, k := range other.Keys() {
		if other[k] != inv.Get(k) {
			return false
		}
	}
	return true
}

// Sanitize drops empty ids and clamps every value through the rounding rule.
func Sanitize(inv map[string]float64) Inventory {
	out := Inventory{}
	for k, v := range inv {
		if k == "" {
			continue
		}
		out[k] = numeric.NonNegative4(v)
	}
	return out
}
