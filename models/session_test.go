package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	sess := NewSession("abc", "Homage")

	assert.Equal(t, "abc", sess.ID)
	assert.Equal(t, NavigationState{Screen: ScreenGrid, Collection: "Homage"}, sess.Nav)
	assert.NotNil(t, sess.Carousel)
	assert.Nil(t, sess.Flash)
}

func TestSession_TakeFlash(t *testing.T) {
	sess := NewSession("abc", "Homage")
	sess.Flash = &Flash{Kind: FlashSuccess, Message: "sent"}

	f := sess.TakeFlash()
	if assert.NotNil(t, f) {
		assert.Equal(t, "sent", f.Message)
	}
	assert.Nil(t, sess.Flash)
	assert.Nil(t, sess.TakeFlash())
}
