package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jt0/varasto/gomerr"
	"github.com/jt0/varasto/logs"
)

const (
	unexpectedMessage = "Odottamaton virhe."
	notFoundMessage   = "Varastoa ei löydy."
)

// flashErrorHandler turns the last error recorded on the context into an error flash and a redirect.
func flashErrorHandler(flashes *flasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		if c.Writer.Written() {
			logs.Error.Println(c.Errors.String())
			return
		}

		lastErr := c.Errors.Last().Err
		ge, ok := lastErr.(gomerr.Gomerr)
		if !ok {
			ge = gomerr.Internal("Unexpected error type").Wrap(lastErr)
		}

		flashes.add(c, Error, message(ge))
		c.Redirect(http.StatusFound, errorLocation(c, ge))
	}
}

func message(ge gomerr.Gomerr) string {
	if gomerr.ErrorAs[*gomerr.NotFoundError](ge) != nil {
		return notFoundMessage
	}

	if me := gomerr.ErrorAs[*gomerr.MissingError](ge); me != nil && me.What == "name" {
		return "Nimi on pakollinen."
	}

	if bve := gomerr.ErrorAs[*gomerr.BadValueError](ge); bve != nil {
		switch {
		case bve.Name == "amount" && bve.Type == gomerr.MalformedValueType:
			return "Virheellinen määrä."
		case bve.Name == "amount":
			return "Määrän tulee olla positiivinen."
		case bve.Name == "capacity" && bve.Type == gomerr.InvalidValueType:
			return "Tilavuuden tulee olla positiivinen."
		case bve.Type == gomerr.MalformedValueType:
			return "Virheellinen arvo."
		}
	}

	logs.Error.Println(ge.String())
	return unexpectedMessage
}

// errorLocation sends the user back to the inventory's own page when it still exists, otherwise to the index.
func errorLocation(c *gin.Context, ge gomerr.Gomerr) string {
	inventoryId := c.Param("id")
	if inventoryId == "" || c.Request.Method == http.MethodGet || gomerr.ErrorAs[*gomerr.NotFoundError](ge) != nil {
		return "/"
	}
	return inventoryPath(inventoryId)
}

func inventoryPath(inventoryId string) string {
	return "/inventory/" + inventoryId
}
