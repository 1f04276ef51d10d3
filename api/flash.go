package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	flashCookieName = "fyyur_flash"
	flashStoreKey   = "fyyur_flash_store"
	flashPendingKey = "fyyur_flash_pending"
)

type FlashCategory string

const (
	FlashSuccess FlashCategory = "success"
	FlashError   FlashCategory = "danger"
)

// Flash is a one-time message shown on the next rendered page.
type Flash struct {
	Category FlashCategory `json:"category"`
	Message  string        `json:"message"`
}

// flashStore keeps flashes in a cookie signed with HMAC-SHA256, so that they survive the
// redirect following a form post.
type flashStore struct {
	secret []byte
}

func newFlashStore(secret string) flashStore {
	return flashStore{secret: []byte(secret)}
}

func (s flashStore) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (s flashStore) encode(flashes []Flash) (string, error) {
	raw, err := json.Marshal(flashes)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(raw)
	return payload + "." + s.sign(payload), nil
}

func (s flashStore) decode(value string) ([]Flash, bool) {
	payload, signature, ok := strings.Cut(value, ".")
	if !ok || !hmac.Equal([]byte(signature), []byte(s.sign(payload))) {
		return nil, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, false
	}
	var flashes []Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil, false
	}
	return flashes, true
}

func flashMiddleware(store flashStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(flashStoreKey, store)
		c.Next()
	}
}

func setFlashCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookieName, value, maxAge, "/", "", c.Request.TLS != nil, true)
}

// addFlash queues a message for the next rendered page, in this request or the next one.
func addFlash(c *gin.Context, flash Flash) {
	pending := append(pendingFlashes(c), flash)
	c.Set(flashPendingKey, pending)

	store, ok := c.Get(flashStoreKey)
	if !ok {
		return
	}
	value, err := store.(flashStore).encode(pending)
	if err != nil {
		return
	}
	setFlashCookie(c, value, 0)
}

// popFlashes returns the messages queued by the previous request and by this one, and
// forgets them.
func popFlashes(c *gin.Context) []Flash {
	store, ok := c.Get(flashStoreKey)
	if !ok {
		return nil
	}

	var flashes []Flash
	value, err := c.Cookie(flashCookieName)
	hasCookie := err == nil && value != ""
	if hasCookie {
		if previous, ok := store.(flashStore).decode(value); ok {
			flashes = append(flashes, previous...)
		}
	}

	pending := pendingFlashes(c)
	flashes = append(flashes, pending...)
	if hasCookie || len(pending) > 0 {
		setFlashCookie(c, "", -1)
	}
	c.Set(flashPendingKey, []Flash(nil))
	return flashes
}

func pendingFlashes(c *gin.Context) []Flash {
	pending, _ := c.Get(flashPendingKey)
	flashes, _ := pending.([]Flash)
	return flashes
}
