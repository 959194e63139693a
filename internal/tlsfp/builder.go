package tlsfp

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"net"

	utls "github.com/refraction-networking/utls"

	"github.com/hdbg/chromimic/internal/profiles"
)

// Options carries the three client-level overrides the dispatcher may
// apply on top of a catalog profile's own TLS settings.
type Options struct {
	InsecureSkipVerify bool
	// ForcePermute and ForceECHGrease, when non-nil, override the
	// catalog entry's PermuteExtensions / ECHGrease fields.
	ForcePermute   *bool
	ForceECHGrease *bool
}

// ConnectorFactory dials and TLS-handshakes a single connection using
// the profile it was built from. It matches the
// net/http Transport.DialTLSContext signature so it can be wired in
// directly.
type ConnectorFactory func(ctx context.Context, network, addr string) (net.Conn, error)

// Build returns a ConnectorFactory that performs a uTLS handshake
// parroting profile on every call. Each call gets its own extension
// permutation draw (when PermuteExtensions is set) so that repeated
// connections to the same host vary the way a real browser's would.
func Build(profile profiles.TLSProfile, opts Options) (ConnectorFactory, error) {
	if opts.ForcePermute != nil {
		profile.PermuteExtensions = *opts.ForcePermute
	}
	if opts.ForceECHGrease != nil {
		profile.ECHGrease = *opts.ForceECHGrease
	}

	// Fail fast on unresolvable names rather than deferring the error to
	// the first dial.
	if _, err := BuildClientHelloSpec(profile, rand.New(rand.NewSource(1))); err != nil {
		return nil, fmt.Errorf("tlsfp: build profile: %w", err)
	}

	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, fmt.Errorf("tlsfp: parse addr %q: %w", addr, err)
		}

		var d net.Dialer
		rawConn, err := d.DialContext(ctx, network, addr)
		if err != nil {
			return nil, fmt.Errorf("tlsfp: dial %s: %w", addr, err)
		}

		seed, err := connSeed()
		if err != nil {
			_ = rawConn.Close()
			return nil, fmt.Errorf("tlsfp: draw connection seed: %w", err)
		}
		spec, err := BuildClientHelloSpec(profile, rand.New(rand.NewSource(seed)))
		if err != nil {
			_ = rawConn.Close()
			return nil, fmt.Errorf("tlsfp: build client hello: %w", err)
		}

		uConn := utls.UClient(rawConn, &utls.Config{
			ServerName:         host,
			InsecureSkipVerify: opts.InsecureSkipVerify,
			NextProtos:         profile.ALPN,
		}, utls.HelloCustom)
		if err := uConn.ApplyPreset(spec); err != nil {
			_ = rawConn.Close()
			return nil, fmt.Errorf("tlsfp: apply client hello spec: %w", err)
		}

		if err := uConn.HandshakeContext(ctx); err != nil {
			_ = uConn.Close()
			return nil, fmt.Errorf("tlsfp: handshake with %s: %w", addr, err)
		}
		return uConn, nil
	}, nil
}

// NegotiatedALPN reports the protocol ALPN selected on conn, or "" if
// conn did not perform a uTLS handshake (used by the root package to
// decide HTTP/1.1 vs HTTP/2 after Build's connector returns).
func NegotiatedALPN(conn net.Conn) string {
	uConn, ok := conn.(*utls.UConn)
	if !ok {
		return ""
	}
	return uConn.ConnectionState().NegotiatedProtocol
}

// connSeed draws a fresh seed from crypto/rand for every dial, so that
// extension permutation and GREASE placement never correlate across
// connections the way a predictable counter or clock would.
func connSeed() (int64, error) {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
