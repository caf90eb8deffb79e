package entity

// Platform identifies one of the supported social networks.
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
)

// Platforms lists every supported platform in enumeration order.
// Account listings are returned in this order, not insertion order.
func Platforms() []Platform {
	return []Platform{PlatformTwitter, PlatformInstagram, PlatformFacebook, PlatformLinkedIn}
}

// DefaultMaxPostLength applies when no platform is selected or the
// platform is unknown.
const DefaultMaxPostLength = 5000

var maxPostLength = map[Platform]int{
	PlatformTwitter:   280,
	PlatformFacebook:  5000,
	PlatformInstagram: 2200,
	PlatformLinkedIn:  3000,
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	_, ok := maxPostLength[p]
	return ok
}

// MaxPostLength returns the character limit for a single post on p.
func (p Platform) MaxPostLength() int {
	if n, ok := maxPostLength[p]; ok {
		return n
	}
	return DefaultMaxPostLength
}

// order returns the enumeration rank of p; unknown platforms sort last.
func (p Platform) order() int {
	for i, q := range Platforms() {
		if p == q {
			return i
		}
	}
	return len(Platforms())
}

// MinPostLength returns the tightest character limit across the selected
// platforms. An empty selection falls back to DefaultMaxPostLength.
func MinPostLength(selected []Platform) int {
	if len(selected) == 0 {
		return DefaultMaxPostLength
	}
	min := selected[0].MaxPostLength()
	for _, p := range selected[1:] {
		if n := p.MaxPostLength(); n < min {
			min = n
		}
	}
	return min
}

// SortByEnumeration orders platforms in the fixed enumeration order.
func SortByEnumeration(ps []Platform) {
	for i := 1; i < len(ps); i++ {
		for j := i; j > 0 && ps[j].order() < ps[j-1].order(); j-- {
			ps[j], ps[j-1] = ps[j-1], ps[j]
		}
	}
}
