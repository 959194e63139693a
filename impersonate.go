package chromimic

import "strings"

// ClientProfile is the coarse browser family tag used to select a
// pseudo-header ordering template (internal/http2fp). It does not supply
// a User-Agent: every catalog entry carries its own User-Agent header,
// and none is derived from the family.
type ClientProfile int

const (
	ProfileChrome ClientProfile = iota
	ProfileSafari
	ProfileFirefox
	ProfileOkHttp
	ProfileEdge
)

func (p ClientProfile) String() string {
	switch p {
	case ProfileChrome:
		return "Chrome"
	case ProfileSafari:
		return "Safari"
	case ProfileFirefox:
		return "Firefox"
	case ProfileOkHttp:
		return "OkHttp"
	case ProfileEdge:
		return "Edge"
	default:
		return "Unknown"
	}
}

// Impersonate names one (vendor, version) pair in the closed catalog
// enumeration. Every value maps to exactly one ProfileEntry (Invariant 1,
// spec.md §3) and to one ClientProfile family.
type Impersonate int

const (
	Chrome99 Impersonate = iota
	Chrome104
	Chrome110
	Chrome116
	Chrome120
	Chrome124
	Chrome126
	Chrome131

	Safari15_3
	Safari15_6_1
	Safari16
	Safari16_5
	Safari17_0
	Safari17_4_1
	SafariIos16_5
	SafariIos17_4_1

	Edge99
	Edge101
	Edge122

	OkHttp3_9
	OkHttp3_11
	OkHttp3_13
	OkHttp3_14
	OkHttp4_9
	OkHttp4_10
	OkHttp5

	impersonateCount
)

type impersonateMeta struct {
	id      Impersonate
	parse   string // canonical form accepted by Parse, e.g. "chrome_126"
	display string // compact Display form, e.g. "chrome126"
	profile ClientProfile
}

// impersonateTable is the total mapping backing Parse, String, and
// Profile. Order here has no fingerprint significance; it is simply
// enumeration order.
var impersonateTable = []impersonateMeta{
	{Chrome99, "chrome_99", "chrome99", ProfileChrome},
	{Chrome104, "chrome_104", "chrome104", ProfileChrome},
	{Chrome110, "chrome_110", "chrome110", ProfileChrome},
	{Chrome116, "chrome_116", "chrome116", ProfileChrome},
	{Chrome120, "chrome_120", "chrome120", ProfileChrome},
	{Chrome124, "chrome_124", "chrome124", ProfileChrome},
	{Chrome126, "chrome_126", "chrome126", ProfileChrome},
	{Chrome131, "chrome_131", "chrome131", ProfileChrome},

	{Safari15_3, "safari_15.3", "safari15_3", ProfileSafari},
	{Safari15_6_1, "safari_15.6.1", "safari15_6_1", ProfileSafari},
	{Safari16, "safari_16", "safari16", ProfileSafari},
	{Safari16_5, "safari_16.5", "safari16_5", ProfileSafari},
	{Safari17_0, "safari_17.0", "safari17_0", ProfileSafari},
	{Safari17_4_1, "safari_17.4.1", "safari17_4_1", ProfileSafari},
	{SafariIos16_5, "safari_ios_16.5", "safariios16_5", ProfileSafari},
	{SafariIos17_4_1, "safari_ios_17.4.1", "safariios17_4_1", ProfileSafari},

	{Edge99, "edge_99", "edge99", ProfileEdge},
	{Edge101, "edge_101", "edge101", ProfileEdge},
	{Edge122, "edge_122", "edge122", ProfileEdge},

	{OkHttp3_9, "okhttp_3.9", "okhttp3_9", ProfileOkHttp},
	{OkHttp3_11, "okhttp_3.11", "okhttp3_11", ProfileOkHttp},
	{OkHttp3_13, "okhttp_3.13", "okhttp3_13", ProfileOkHttp},
	{OkHttp3_14, "okhttp_3.14", "okhttp3_14", ProfileOkHttp},
	{OkHttp4_9, "okhttp_4.9", "okhttp4_9", ProfileOkHttp},
	{OkHttp4_10, "okhttp_4.10", "okhttp4_10", ProfileOkHttp},
	{OkHttp5, "okhttp_5", "okhttp5", ProfileOkHttp},
}

var (
	metaByID   = make(map[Impersonate]impersonateMeta, len(impersonateTable))
	idByNormal = make(map[string]Impersonate, len(impersonateTable)*2)
)

func init() {
	for _, m := range impersonateTable {
		metaByID[m.id] = m
		idByNormal[normalizeTag(m.parse)] = m.id
		idByNormal[normalizeTag(m.display)] = m.id
	}
}

// normalizeTag strips the separators the grammar and the Display form
// disagree on ("_" vs "." vs nothing) so both forms key the same lookup.
func normalizeTag(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, ".", "")
	return s
}

// Parse resolves a string identifier such as "chrome_126" or
// "safari_ios_17.4.1" to an Impersonate value. Parsing is total over the
// closed enumeration: any other input yields an *InvalidImpersonateError
// wrapping ErrInvalidImpersonate.
func Parse(s string) (Impersonate, error) {
	if id, ok := idByNormal[normalizeTag(s)]; ok {
		return id, nil
	}
	return 0, &InvalidImpersonateError{Input: s}
}

// String returns the compact vendor-prefixed Display spelling
// (e.g. "chrome126", "safari17_4_1"). It round-trips through Parse for
// every enumerator.
func (i Impersonate) String() string {
	if m, ok := metaByID[i]; ok {
		return m.display
	}
	return "unknown"
}

// Profile returns the coarse browser family for i.
func (i Impersonate) Profile() ClientProfile {
	if m, ok := metaByID[i]; ok {
		return m.profile
	}
	return ProfileChrome
}

// valid reports whether i is a member of the closed enumeration.
func (i Impersonate) valid() bool {
	_, ok := metaByID[i]
	return ok
}
