// Package catalog is the closed registry of browser/library
// fingerprint profiles that the root package dispatches against. It
// has no dependency on the root package to avoid an import cycle; the
// root package looks entries up by the same normalized tag it uses for
// Impersonate.Parse.
package catalog

import "github.com/hdbg/chromimic/internal/profiles"

var registry = map[string]func() profiles.ProfileEntry{
	"chrome99":  chrome99,
	"chrome104": chrome104,
	"chrome110": chrome110,
	"chrome116": chrome116,
	"chrome120": chrome120,
	"chrome124": chrome124,
	"chrome126": chrome126,
	"chrome131": chrome131,

	"safari153":     safari15_3,
	"safari1561":    safari15_6_1,
	"safari16":      safari16,
	"safari165":     safari16_5,
	"safari170":     safari17_0,
	"safari1741":    safari17_4_1,
	"safariios165":  safariIos16_5,
	"safariios1741": safariIos17_4_1,

	"edge99":  edge99,
	"edge101": edge101,
	"edge122": edge122,

	"okhttp39":  okHttp3_9,
	"okhttp311": okHttp3_11,
	"okhttp313": okHttp3_13,
	"okhttp314": okHttp3_14,
	"okhttp49":  okHttp4_9,
	"okhttp410": okHttp4_10,
	"okhttp5":   okHttp5,
}

// Lookup resolves a normalized impersonation tag (lowercase, with "_"
// and "." stripped — the same normal form Impersonate.Parse and
// Impersonate.String use) to its profile entry. A fresh ProfileEntry is
// built on every call; most of its slices (signature algorithms, curves,
// extension order, and the Safari and OkHttp cipher lists) are the
// catalog's shared package-level lists rather than copies.
func Lookup(normalizedTag string) (profiles.ProfileEntry, bool) {
	build, ok := registry[normalizedTag]
	if !ok {
		return profiles.ProfileEntry{}, false
	}
	return build(), true
}

// Tags returns every normalized tag the catalog recognizes, primarily
// for tests that assert catalog coverage matches the Impersonate
// enumeration.
func Tags() []string {
	tags := make([]string, 0, len(registry))
	for k := range registry {
		tags = append(tags, k)
	}
	return tags
}
