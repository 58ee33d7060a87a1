package inventory

import (
	"strconv"
	"sync"
	"testing"

	"github.com/jt0/varasto/_test/assert"
	"github.com/jt0/varasto/gomerr"
	"github.com/jt0/varasto/id"
)

func TestStore_Create(t *testing.T) {
	s := NewStore()

	inv, ge := s.Create("  Test Inventory ", 100, 50)
	assert.Success(t, ge)
	assert.Equals(t, Inventory{Id: 1, Name: "Test Inventory", Capacity: 100, Balance: 50, Room: 50, FillRatio: 0.5}, inv)
	assert.Equals(t, 1, s.Len())

	inv, ge = s.Create("Second", 10, 25)
	assert.Success(t, ge)
	assert.Equals(t, id.Uint(2), inv.Id)
	assert.Equals(t, 10.0, inv.Balance, "initial above capacity is clamped")
}

func TestStore_CreateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		invName   string
		capacity  float64
		errorType error
	}{
		{"empty name", "", 100, new(gomerr.MissingError)},
		{"blank name", "   ", 100, new(gomerr.MissingError)},
		{"negative capacity", "Test", -10, new(gomerr.BadValueError)},
		{"zero capacity", "Test", 0, new(gomerr.BadValueError)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()

			_, ge := s.Create(tt.invName, tt.capacity, 0)
			assert.ErrorType(t, ge, tt.errorType)
			assert.Equals(t, 0, s.Len())

			inv, ge := s.Create("Valid", 1, 0)
			assert.Success(t, ge)
			assert.Equals(t, id.Uint(1), inv.Id, "failed creates must not consume ids")
		})
	}
}

func TestStore_GetUnknown(t *testing.T) {
	s := NewStore()

	_, ge := s.Get(999)
	assert.ErrorType(t, ge, new(gomerr.NotFoundError))

	nfe := gomerr.ErrorAs[*gomerr.NotFoundError](ge)
	assert.Equals(t, "Inventory", nfe.Type)
	assert.Equals(t, "999", nfe.Id)
}

func TestStore_List(t *testing.T) {
	s := NewStore()
	for i := 1; i <= 12; i++ {
		_, ge := s.Create("inv"+strconv.Itoa(i), float64(i), 0)
		assert.Success(t, ge)
	}
	_, ge := s.Delete(5)
	assert.Success(t, ge)

	list := s.List()
	assert.Equals(t, 11, len(list))
	for i := 1; i < len(list); i++ {
		assert.Assert(t, list[i-1].Id < list[i].Id, "list not ordered at %d", i)
	}
	assert.Equals(t, id.Uint(6), list[4].Id)
}

func TestStore_Rename(t *testing.T) {
	s := NewStore()
	_, ge := s.Create("Old Name", 100, 0)
	assert.Success(t, ge)

	inv, ge := s.Rename(1, " New Name ")
	assert.Success(t, ge)
	assert.Equals(t, "New Name", inv.Name)

	_, ge = s.Rename(1, "")
	assert.ErrorType(t, ge, new(gomerr.MissingError))

	inv, ge = s.Get(1)
	assert.Success(t, ge)
	assert.Equals(t, "New Name", inv.Name)

	_, ge = s.Rename(2, "Other")
	assert.ErrorType(t, ge, new(gomerr.NotFoundError))
}

func TestStore_AddAndRemove(t *testing.T) {
	s := NewStore()
	_, ge := s.Create("Test", 100, 90)
	assert.Success(t, ge)

	added, inv, ge := s.Add(1, 50)
	assert.Success(t, ge)
	assert.Equals(t, 10.0, added, "only what fits is added")
	assert.Equals(t, 100.0, inv.Balance)

	removed, inv, ge := s.Remove(1, 30)
	assert.Success(t, ge)
	assert.Equals(t, 30.0, removed)
	assert.Equals(t, 70.0, inv.Balance)

	removed, inv, ge = s.Remove(1, 500)
	assert.Success(t, ge)
	assert.Equals(t, 70.0, removed)
	assert.Equals(t, 0.0, inv.Balance)
	assert.Equals(t, 100.0, inv.Room)
}

func TestStore_AddReportsRequestedAmountWhenItFits(t *testing.T) {
	tests := []struct {
		name     string
		initial  float64
		amount   float64
		expected float64
	}{
		{"tenths", 0.1, 0.2, 0.2},
		{"thirds", 1.0 / 3, 0.7, 0.7},
		{"small onto large", 99.3, 0.1, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			_, ge := s.Create("x", 100, tt.initial)
			assert.Success(t, ge)

			added, inv, ge := s.Add(1, tt.amount)
			assert.Success(t, ge)
			assert.Equals(t, tt.expected, added)
			assert.Assert(t, inv.Balance <= inv.Capacity, "balance %v over capacity", inv.Balance)
		})
	}
}

func TestStore_AddAndRemoveRejectInvalidAmount(t *testing.T) {
	s := NewStore()
	_, ge := s.Create("Test", 100, 50)
	assert.Success(t, ge)

	_, _, ge = s.Add(1, -5)
	assert.ErrorType(t, ge, new(gomerr.BadValueError))

	_, _, ge = s.Remove(1, -5)
	assert.ErrorType(t, ge, new(gomerr.BadValueError))

	inv, ge := s.Get(1)
	assert.Success(t, ge)
	assert.Equals(t, 50.0, inv.Balance)

	_, _, ge = s.Add(2, 5)
	assert.ErrorType(t, ge, new(gomerr.NotFoundError))

	_, _, ge = s.Remove(2, 5)
	assert.ErrorType(t, ge, new(gomerr.NotFoundError))
}

func TestStore_DeleteDoesNotReuseIds(t *testing.T) {
	s := NewStore()
	_, ge := s.Create("First", 10, 0)
	assert.Success(t, ge)

	deleted, ge := s.Delete(1)
	assert.Success(t, ge)
	assert.Equals(t, "First", deleted.Name)
	assert.Equals(t, 0, s.Len())

	_, ge = s.Delete(1)
	assert.ErrorType(t, ge, new(gomerr.NotFoundError))

	inv, ge := s.Create("Second", 10, 0)
	assert.Success(t, ge)
	assert.Equals(t, id.Uint(2), inv.Id)
}

func TestStore_SnapshotsAreDetached(t *testing.T) {
	s := NewStore()
	inv, ge := s.Create("Test", 10, 5)
	assert.Success(t, ge)

	inv.Balance = 1000
	inv.Name = "changed"

	stored, ge := s.Get(1)
	assert.Success(t, ge)
	assert.Equals(t, 5.0, stored.Balance)
	assert.Equals(t, "Test", stored.Name)
	assert.NotEquals(t, inv, stored)
}

func TestStore_ConcurrentUse(t *testing.T) {
	const workers, perWorker = 8, 50

	s := NewStore()
	_, ge := s.Create("Shared", workers*perWorker, 0)
	assert.Success(t, ge)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, _, _ = s.Add(1, 1)
				_, _ = s.Create("worker", 1, 0)
				_ = s.List()
			}
		}()
	}
	wg.Wait()

	inv, ge := s.Get(1)
	assert.Success(t, ge)
	assert.Equals(t, float64(workers*perWorker), inv.Balance)
	assert.Equals(t, workers*perWorker+1, s.Len())
}

func TestStore_SnapshotFillRatio(t *testing.T) {
	s := NewStore()
	_, ge := s.Create("Quarter", 80, 20)
	assert.Success(t, ge)

	inv, ge := s.Get(1)
	assert.Success(t, ge)
	assert.Equals(t, 0.25, inv.FillRatio)

	_, inv, ge = s.Add(1, 60)
	assert.Success(t, ge)
	assert.Equals(t, 1.0, inv.FillRatio)
}
