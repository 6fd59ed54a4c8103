// Package qrcode issues and verifies the rotating check-in payload the
// frontend renders as a QR code. The payload is an HMAC of the shared
// secret keyed to a millisecond timestamp, so a scanned code is only
// accepted within a short window and cannot be forged for another time.
package qrcode

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"
)

var (
	ErrInvalidToken = errors.New("qr token does not match the shared secret")
	ErrExpiredToken = errors.New("qr token is outside its validity window")
)

type Payload struct {
	Text string `json:"text"`
	Time int64  `json:"time"` // unix milliseconds
}

type Generator struct {
	secret []byte
	window time.Duration
	now    func() time.Time
}

func NewGenerator(secret string, window time.Duration) *Generator {
	return &Generator{
		secret: []byte(secret),
		window: window,
		now:    time.Now,
	}
}

func (g *Generator) sign(millis int64) string {
	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(strconv.FormatInt(millis, 10)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Issue returns a payload stamped with the current server time.
func (g *Generator) Issue() Payload {
	millis := g.now().UnixMilli()
	return Payload{
		Text: g.sign(millis),
		Time: millis,
	}
}

// Verify checks that text was produced for millis with the shared
// secret and that millis is within the validity window of server-now.
func (g *Generator) Verify(text string, millis int64) error {
	expected := g.sign(millis)
	if !hmac.Equal([]byte(expected), []byte(text)) {
		return ErrInvalidToken
	}

	diff := g.now().UnixMilli() - millis
	if diff < 0 {
		diff = -diff
	}
	if diff > g.window.Milliseconds() {
		return ErrExpiredToken
	}

	return nil
}
