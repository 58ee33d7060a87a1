package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jt0/varasto/gomerr"
	"github.com/jt0/varasto/id"
	"github.com/jt0/varasto/inventory"
)

type handlers struct {
	store   *inventory.Store
	flashes *flasher
}

// mutation performs a change and names the message and location of the redirect that follows it.
type mutation func(c *gin.Context) (message string, location string, ge gomerr.Gomerr)

func (h *handlers) redirecting(m mutation) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				_ = c.Error(gomerr.Panic(r))
			}
		}()

		message, location, ge := m(c)
		if ge != nil {
			_ = c.Error(ge)
			return
		}

		h.flashes.add(c, Success, message)
		c.Redirect(http.StatusFound, location)
	}
}

func (h *handlers) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":       "Varastot",
		"Flashes":     h.flashes.consume(c),
		"Inventories": h.store.List(),
	})
}

func (h *handlers) view(c *gin.Context) {
	inv, ge := h.existing(c)
	if ge != nil {
		_ = c.Error(ge)
		return
	}

	c.HTML(http.StatusOK, "inventory.html", gin.H{
		"Title":     inv.Name,
		"Flashes":   h.flashes.consume(c),
		"Inventory": inv,
	})
}

func (h *handlers) create(c *gin.Context) (string, string, gomerr.Gomerr) {
	var form createForm
	if ge := bind(c, &form); ge != nil {
		return "", "", ge
	}

	capacity, ge := parseAmount("capacity", form.Capacity)
	if ge != nil {
		return "", "", ge
	}
	initial, ge := parseAmount("initial", form.Initial)
	if ge != nil {
		return "", "", ge
	}

	inv, ge := h.store.Create(form.Name, capacity, initial)
	if ge != nil {
		return "", "", ge
	}

	return fmt.Sprintf("Varasto \"%s\" luotu.", inv.Name), "/", nil
}

func (h *handlers) update(c *gin.Context) (string, string, gomerr.Gomerr) {
	inv, ge := h.existing(c)
	if ge != nil {
		return "", "", ge
	}

	var form updateForm
	if ge = bind(c, &form); ge != nil {
		return "", "", ge
	}

	if inv, ge = h.store.Rename(inv.Id, form.Name); ge != nil {
		return "", "", ge
	}

	return "Varasto päivitetty.", inventoryPath(inv.Id.String()), nil
}

func (h *handlers) add(c *gin.Context) (string, string, gomerr.Gomerr) {
	inv, amount, ge := h.amount(c)
	if ge != nil {
		return "", "", ge
	}

	added, inv, ge := h.store.Add(inv.Id, amount)
	if ge != nil {
		return "", "", ge
	}

	return fmt.Sprintf("Lisättiin %s varastoon.", formatAmount(added)), inventoryPath(inv.Id.String()), nil
}

func (h *handlers) remove(c *gin.Context) (string, string, gomerr.Gomerr) {
	inv, amount, ge := h.amount(c)
	if ge != nil {
		return "", "", ge
	}

	removed, inv, ge := h.store.Remove(inv.Id, amount)
	if ge != nil {
		return "", "", ge
	}

	return fmt.Sprintf("Otettiin %s varastosta.", formatAmount(removed)), inventoryPath(inv.Id.String()), nil
}

func (h *handlers) delete(c *gin.Context) (string, string, gomerr.Gomerr) {
	inventoryId, ge := pathId(c)
	if ge != nil {
		return "", "", ge
	}

	inv, ge := h.store.Delete(inventoryId)
	if ge != nil {
		return "", "", ge
	}

	return fmt.Sprintf("Varasto \"%s\" poistettu.", inv.Name), "/", nil
}

func (h *handlers) healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *handlers) existing(c *gin.Context) (inventory.Inventory, gomerr.Gomerr) {
	inventoryId, ge := pathId(c)
	if ge != nil {
		return inventory.Inventory{}, ge
	}
	return h.store.Get(inventoryId)
}

func (h *handlers) amount(c *gin.Context) (inventory.Inventory, float64, gomerr.Gomerr) {
	inv, ge := h.existing(c)
	if ge != nil {
		return inventory.Inventory{}, 0, ge
	}

	var form amountForm
	if ge = bind(c, &form); ge != nil {
		return inventory.Inventory{}, 0, ge
	}

	amount, ge := parseAmount("amount", form.Amount)
	if ge != nil {
		return inventory.Inventory{}, 0, ge
	}

	return inv, amount, nil
}

// pathId reads the ':id' path parameter. A value that can not be an id can not identify an inventory either.
func pathId(c *gin.Context) (id.Uint, gomerr.Gomerr) {
	raw := c.Param("id")
	inventoryId, ge := id.ParseUint(raw)
	if ge != nil {
		return 0, gomerr.NotFound("Inventory", raw).Wrap(ge)
	}
	return inventoryId, nil
}
