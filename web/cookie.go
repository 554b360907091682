package web

import (
	"time"

	"github.com/gorilla/securecookie"
)

// cookieCodec authenticates the session id carried in the session cookie so
// clients cannot pick another session's id. Values older than maxAge are
// rejected.
type cookieCodec struct {
	name  string
	codec *securecookie.SecureCookie
}

func newCookieCodec(name string, hashKey []byte, maxAge time.Duration) cookieCodec {
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
	}
	codec := securecookie.New(hashKey, nil)
	codec.MaxAge(int(maxAge / time.Second))
	codec.SetSerializer(securecookie.NopEncoder{})
	return cookieCodec{name: name, codec: codec}
}

func (c cookieCodec) encode(id string) (string, error) {
	return c.codec.Encode(c.name, []byte(id))
}

func (c cookieCodec) decode(value string) (string, bool) {
	var id []byte
	if err := c.codec.Decode(c.name, value, &id); err != nil || len(id) == 0 {
		return "", false
	}
	return string(id), true
}
