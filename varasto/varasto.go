// Package varasto provides Varasto, a bounded quantity holder. A Varasto's balance never drops below zero and never
// rises above its capacity: additions that would overflow are clamped to the capacity, and removals that would
// underflow take only what is there.
package varasto

import (
	"fmt"
	"math"

	"github.com/jt0/varasto/gomerr"
)

type Varasto struct {
	capacity float64
	balance  float64
}

// New returns a Varasto with the given capacity. The initial balance is clamped into [0, capacity].
func New(capacity, initial float64) (*Varasto, gomerr.Gomerr) {
	if !(capacity > 0) || math.IsInf(capacity, 1) {
		return nil, gomerr.InvalidValue("capacity", capacity, "> 0").WithReason("capacity must be a positive, finite number")
	}

	return &Varasto{capacity: capacity, balance: clamp(initial, capacity)}, nil
}

func (v *Varasto) Capacity() float64 {
	return v.capacity
}

func (v *Varasto) Balance() float64 {
	return v.balance
}

// Room is how much more the Varasto can hold.
func (v *Varasto) Room() float64 {
	return v.capacity - v.balance
}

// FillRatio is the balance as a fraction of the capacity.
func (v *Varasto) FillRatio() float64 {
	return v.balance / v.capacity
}

// Add increases the balance by amount, up to the capacity. Whatever does not fit is discarded.
func (v *Varasto) Add(amount float64) gomerr.Gomerr {
	if ge := positive(amount); ge != nil {
		return ge
	}

	v.balance = math.Min(v.capacity, v.balance+amount)

	return nil
}

// Remove decreases the balance by amount, but not below zero. The returned value is what was actually removed,
// which is less than amount when the balance could not cover it.
func (v *Varasto) Remove(amount float64) (float64, gomerr.Gomerr) {
	if ge := positive(amount); ge != nil {
		return 0, ge
	}

	removed := math.Min(amount, v.balance)
	v.balance -= removed

	return removed, nil
}

func (v *Varasto) String() string {
	return fmt.Sprintf("saldo = %v, vielä tilaa %v", v.balance, v.Room())
}

func positive(amount float64) gomerr.Gomerr {
	if !(amount > 0) {
		return gomerr.InvalidValue("amount", amount, "> 0")
	}
	return nil
}

func clamp(initial, capacity float64) float64 {
	switch {
	case math.IsNaN(initial) || initial < 0:
		return 0
	case initial > capacity:
		return capacity
	default:
		return initial
	}
}
