package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformValid(t *testing.T) {
	for _, p := range Platforms() {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, Platform("myspace").Valid())
	assert.False(t, Platform("").Valid())
}

func TestPlatformMaxPostLength(t *testing.T) {
	assert.Equal(t, 280, PlatformTwitter.MaxPostLength())
	assert.Equal(t, 2200, PlatformInstagram.MaxPostLength())
	assert.Equal(t, 5000, PlatformFacebook.MaxPostLength())
	assert.Equal(t, 3000, PlatformLinkedIn.MaxPostLength())
	assert.Equal(t, DefaultMaxPostLength, Platform("myspace").MaxPostLength())
}

func TestMinPostLength(t *testing.T) {
	assert.Equal(t, DefaultMaxPostLength, MinPostLength(nil))
	assert.Equal(t, 280, MinPostLength([]Platform{PlatformFacebook, PlatformTwitter}))
	assert.Equal(t, 2200, MinPostLength([]Platform{PlatformInstagram, PlatformLinkedIn}))
}

func TestSortByEnumeration(t *testing.T) {
	ps := []Platform{PlatformLinkedIn, PlatformTwitter, PlatformFacebook, PlatformInstagram}
	SortByEnumeration(ps)
	assert.Equal(t, Platforms(), ps)
}
