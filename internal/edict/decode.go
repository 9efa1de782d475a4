package edict

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// keyDecoder turns EUC-JP sort keys into UTF-8 so that plain string
// comparison orders them by code point. Not safe for concurrent use.
type keyDecoder struct {
	dec *encoding.Decoder
}

func newKeyDecoder() *keyDecoder {
	return &keyDecoder{dec: japanese.EUCJP.NewDecoder()}
}

// decode returns raw decoded as EUC-JP. Undecodable input is returned as is.
func (d *keyDecoder) decode(raw string) string {
	if isASCII(raw) {
		return raw
	}
	s, _, err := transform.String(d.dec, raw)
	if err != nil {
		return raw
	}
	return s
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
