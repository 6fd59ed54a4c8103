package qrcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	g := NewGenerator("secret", 30*time.Second)

	payload := g.Issue()
	require.NotEmpty(t, payload.Text)
	require.NotZero(t, payload.Time)

	assert.NoError(t, g.Verify(payload.Text, payload.Time))
}

func TestVerifyTamperedText(t *testing.T) {
	g := NewGenerator("secret", 30*time.Second)

	payload := g.Issue()
	err := g.Verify(payload.Text+"ff", payload.Time)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTamperedTime(t *testing.T) {
	g := NewGenerator("secret", 30*time.Second)

	payload := g.Issue()
	// A shifted timestamp no longer matches the signature
	err := g.Verify(payload.Text, payload.Time+1)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewGenerator("secret-a", 30*time.Second)
	verifier := NewGenerator("secret-b", 30*time.Second)

	payload := issuer.Issue()
	err := verifier.Verify(payload.Text, payload.Time)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	g := NewGenerator("secret", 30*time.Second)

	issued := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return issued }
	payload := g.Issue()

	// Just inside the window
	g.now = func() time.Time { return issued.Add(30 * time.Second) }
	assert.NoError(t, g.Verify(payload.Text, payload.Time))

	// Just outside
	g.now = func() time.Time { return issued.Add(30*time.Second + time.Millisecond) }
	assert.ErrorIs(t, g.Verify(payload.Text, payload.Time), ErrExpiredToken)
}

func TestVerifyFutureTimestamp(t *testing.T) {
	g := NewGenerator("secret", 30*time.Second)

	issued := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return issued }
	payload := g.Issue()

	// A payload from the "future" (clock skew) is treated symmetrically
	g.now = func() time.Time { return issued.Add(-time.Minute) }
	assert.ErrorIs(t, g.Verify(payload.Text, payload.Time), ErrExpiredToken)
}
