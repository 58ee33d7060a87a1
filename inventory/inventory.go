package inventory

import (
	"github.com/jt0/varasto/id"
	"github.com/jt0/varasto/varasto"
)

const typeName = "Inventory"

// Inventory is a point-in-time view of a named Varasto held by a Store.
type Inventory struct {
	Id        id.Uint
	Name      string
	Capacity  float64
	Balance   float64
	Room      float64
	FillRatio float64 // Balance as a fraction of Capacity
}

type entry struct {
	name    string
	varasto *varasto.Varasto
}

func (e *entry) snapshot(inventoryId id.Uint) Inventory {
	return Inventory{
		Id:        inventoryId,
		Name:      e.name,
		Capacity:  e.varasto.Capacity(),
		Balance:   e.varasto.Balance(),
		Room:      e.varasto.Room(),
		FillRatio: e.varasto.FillRatio(),
	}
}
