package id

import (
	"fmt"
	"strconv"

	"github.com/jt0/varasto/gomerr"
)

// Uint is a sequentially allocated identifier. Zero is never allocated.
type Uint uint

func (u Uint) Format(f fmt.State, c rune) {
	if width, ok := f.Width(); ok {
		_, _ = fmt.Fprintf(f, "%0*d", width, uint(u))
	} else {
		_, _ = fmt.Fprint(f, uint(u))
	}
}

func (u Uint) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// ParseUint parses the decimal form of an id, e.g. as it appears in a request path.
func ParseUint(s string) (Uint, gomerr.Gomerr) {
	u, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil || u == 0 {
		return 0, gomerr.MalformedValue("id", s).Wrap(err)
	}

	return Uint(u), nil
}
