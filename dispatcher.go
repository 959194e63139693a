package chromimic

import (
	"fmt"

	"github.com/hdbg/chromimic/internal/catalog"
	"github.com/hdbg/chromimic/internal/header"
	"github.com/hdbg/chromimic/internal/http2fp"
	"github.com/hdbg/chromimic/internal/profiles"
	"github.com/hdbg/chromimic/internal/tlsfp"
)

// dispatchedProfile is everything configure resolves from an
// Impersonate value: the looked-up catalog entry plus the concrete
// connector and transport built from it. A Client holds one of these
// and replaces it wholesale whenever Impersonate is called again.
type dispatchedProfile struct {
	id      Impersonate
	entry   profiles.ProfileEntry
	connect tlsfp.ConnectorFactory
	h2      *http2fp.Transport
	headers []header.Pair
}

// configure runs the full catalog lookup -> TLS Builder -> HTTP/2
// Configurator -> Header Installer pipeline for id, applying the three
// optional client-level overrides last so they win over whatever the
// catalog entry specifies (spec invariant: overrides are
// caller-requested deviations from the parroted fingerprint, not
// catalog defaults).
func configure(id Impersonate, tlsOpts tlsfp.Options) (*dispatchedProfile, error) {
	if !id.valid() {
		return nil, &InvalidImpersonateError{Input: id.String()}
	}
	entry, ok := catalog.Lookup(normalizeTag(id.String()))
	if !ok {
		// Every valid Impersonate must resolve; a miss here means the
		// catalog and the enumeration drifted out of sync.
		return nil, fmt.Errorf("chromimic: catalog has no entry for %s: %w", id, ErrInvalidImpersonate)
	}

	connect, err := tlsfp.Build(entry.TLS, tlsOpts)
	if err != nil {
		return nil, &TLSConfigError{Field: "profile", Value: id.String(), Err: err}
	}

	if err := http2fp.Validate(entry.HTTP2); err != nil {
		return nil, &HTTP2ConfigError{Field: "profile", Err: err}
	}

	pseudoOrder := http2fp.PseudoHeaderOrderFor(id.Profile().String())
	h2 := &http2fp.Transport{
		Dial:        http2fp.Dialer(connect),
		Profile:     entry.HTTP2,
		PseudoOrder: pseudoOrder,
	}

	headers := make([]header.Pair, len(entry.DefaultHeaders))
	for i, h := range entry.DefaultHeaders {
		headers[i] = header.Pair{Name: h.Name, Value: h.Value}
	}

	return &dispatchedProfile{
		id:      id,
		entry:   entry,
		connect: connect,
		h2:      h2,
		headers: headers,
	}, nil
}

// acceptEncoding renders the profile's advertised content encodings as
// a single Accept-Encoding header value, in catalog order.
func acceptEncoding(encodings []profiles.ContentEncoding) string {
	out := ""
	for i, e := range encodings {
		if i > 0 {
			out += ", "
		}
		out += string(e)
	}
	return out
}
