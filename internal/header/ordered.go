// Package header implements an insertion-ordered header container used
// to install a catalog profile's default header set onto an outgoing
// request while preserving exact key casing and order — the two things
// net/http.Header (a map) cannot represent and that an HTTP/2
// fingerprint probe inspects via HPACK's literal header field order.
package header

import "net/http"

type entry struct {
	key   string
	value string
}

// Ordered is a drop-in companion to http.Header that preserves both the
// exact capitalisation and the insertion order of HTTP headers.
//
// Ordered is NOT safe for concurrent use: each outgoing request builds
// and installs its own Ordered value before the request is sent.
type Ordered struct {
	entries []entry
}

// New builds an Ordered from the catalog's default (name, value) pairs,
// in the order the catalog lists them.
func New(defaults []Pair) *Ordered {
	o := &Ordered{entries: make([]entry, 0, len(defaults))}
	for _, d := range defaults {
		o.entries = append(o.entries, entry{key: d.Name, value: d.Value})
	}
	return o
}

// Pair is a (name, value) default header, matching profiles.Header's
// shape without importing internal/profiles (keeping this package
// dependency-free of the catalog's data model).
type Pair struct {
	Name  string
	Value string
}

// Add appends key/value, preserving key's exact casing. Repeated keys
// produce repeated entries.
func (o *Ordered) Add(key, value string) {
	o.entries = append(o.entries, entry{key: key, value: value})
}

// Override implements the Header Installer's precedence rule (caller
// headers win): if key already has an entry (case-insensitive match),
// its value is replaced in place — preserving its original position and
// casing — rather than moved to the end. If key has no existing entry,
// it is appended, becoming the last header on the wire.
func (o *Ordered) Override(key, value string) {
	canon := http.CanonicalHeaderKey(key)
	for i, e := range o.entries {
		if http.CanonicalHeaderKey(e.key) == canon {
			o.entries[i].value = value
			return
		}
	}
	o.entries = append(o.entries, entry{key: key, value: value})
}

// Del removes every entry matching key case-insensitively.
func (o *Ordered) Del(key string) {
	canon := http.CanonicalHeaderKey(key)
	out := o.entries[:0]
	for _, e := range o.entries {
		if http.CanonicalHeaderKey(e.key) != canon {
			out = append(out, e)
		}
	}
	o.entries = out
}

// Get returns the value of the first entry matching key
// case-insensitively, or "" if absent.
func (o *Ordered) Get(key string) string {
	canon := http.CanonicalHeaderKey(key)
	for _, e := range o.entries {
		if http.CanonicalHeaderKey(e.key) == canon {
			return e.value
		}
	}
	return ""
}

// Len reports the number of entries, including duplicates.
func (o *Ordered) Len() int { return len(o.entries) }

// Names returns the header names in wire order, exactly as cased.
func (o *Ordered) Names() []string {
	out := make([]string, len(o.entries))
	for i, e := range o.entries {
		out[i] = e.key
	}
	return out
}

// ApplyToRequest writes every entry into req.Header via the raw map key
// (bypassing http.Header's canonicalization) so the exact casing
// survives onto the HTTP/1.1 wire. The HTTP/2 path reads req.Header by
// these exact names when building its HPACK block and lowercases them
// there, as HTTP/2 requires.
func (o *Ordered) ApplyToRequest(req *http.Request) {
	req.Header = make(http.Header, len(o.entries))
	for _, e := range o.entries {
		req.Header[e.key] = append(req.Header[e.key], e.value)
	}
}

// MergeCallerHeaders applies the caller's own header set on top of the
// catalog defaults using Override, then appends any header the caller
// set that had no catalog default, in the order net/http.Header.Values
// happens to enumerate them (Go map iteration order — callers that care
// about the exact position of a brand-new header should call Override
// directly instead of going through a plain http.Header).
func (o *Ordered) MergeCallerHeaders(caller http.Header) {
	for key, values := range caller {
		for _, v := range values {
			o.Override(key, v)
		}
	}
}
