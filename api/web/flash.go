package web

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
)

type Category string

const (
	Success Category = "success"
	Error   Category = "error"
)

type Flash struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
}

const (
	flashCookie     = "varasto_flash"
	pendingFlashKey = "varasto-pending-flashes"
)

// flasher carries messages across a redirect in a signed cookie. A cookie whose signature does not verify is
// treated as empty.
type flasher struct {
	key []byte
}

func newFlasher(secretKey string) *flasher {
	return &flasher{key: []byte(secretKey)}
}

// add queues a message to be shown on the next rendered page.
func (f *flasher) add(c *gin.Context, category Category, message string) {
	flashes := append(f.pending(c), Flash{category, message})
	c.Set(pendingFlashKey, flashes)
	c.SetCookie(flashCookie, f.encode(flashes), 0, "/", "", false, true)
}

// consume returns the queued messages and clears the cookie.
func (f *flasher) consume(c *gin.Context) []Flash {
	flashes := f.pending(c)
	if len(flashes) > 0 {
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}
	return flashes
}

func (f *flasher) pending(c *gin.Context) []Flash {
	if pending, ok := c.Get(pendingFlashKey); ok {
		return pending.([]Flash)
	}

	value, err := c.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	return f.decode(value)
}

func (f *flasher) encode(flashes []Flash) string {
	payload, _ := json.Marshal(flashes)
	encoded := base64.RawURLEncoding.EncodeToString(payload)

	return encoded + "." + f.sign(encoded)
}

func (f *flasher) decode(value string) []Flash {
	dot := strings.LastIndexByte(value, '.')
	if dot < 0 {
		return nil
	}

	encoded, signature := value[:dot], value[dot+1:]
	if !hmac.Equal([]byte(signature), []byte(f.sign(encoded))) {
		return nil
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var flashes []Flash
	if err = json.Unmarshal(payload, &flashes); err != nil {
		return nil
	}
	return flashes
}

func (f *flasher) sign(encoded string) string {
	mac := hmac.New(sha256.New, f.key)
	mac.Write([]byte(encoded))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
