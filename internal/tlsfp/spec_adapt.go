package tlsfp

import (
	"fmt"
	"math/rand"

	utls "github.com/refraction-networking/utls"

	"github.com/hdbg/chromimic/internal/profiles"
)

// Extension IDs, duplicated from internal/catalog rather than imported:
// tlsfp's job is turning IDs into concrete uTLS extension objects, and
// catalog's IDs are an implementation detail of how it orders its own
// tables. Keeping the two lists independent means a catalog reshuffle
// can't silently break extension construction here.
const (
	extServerName                 = 0
	extStatusRequest              = 5
	extSupportedGroups            = 10
	extECPointFormats             = 11
	extSignatureAlgorithms        = 13
	extALPN                       = 16
	extSignedCertificateTimestamp = 18
	extPadding                    = 21
	extExtendedMasterSecret       = 23
	extCompressCertificate        = 27
	extRecordSizeLimit            = 28
	extSessionTicket              = 35
	extPreSharedKey                = 41
	extPSKKeyExchangeModes        = 45
	extSupportedVersions          = 43
	extKeyShare                   = 51
	extApplicationSettings        = 17513
	extRenegotiationInfo          = 65281
	extEncryptedClientHelloGrease = 65037
)

const (
	tlsVersion12 = 0x0303
	tlsVersion13 = 0x0304
)

// BuildClientHelloSpec adapts a catalog TLS sub-profile into a concrete
// uTLS ClientHelloSpec: name lookups are resolved to numeric IDs, GREASE
// placeholders are inserted where the profile calls for them, and
// extensions are instantiated in the (possibly permuted) order the
// profile specifies.
func BuildClientHelloSpec(p profiles.TLSProfile, rng *rand.Rand) (*utls.ClientHelloSpec, error) {
	ciphers, err := resolveCipherSuites(p.CipherSuites)
	if err != nil {
		return nil, err
	}
	if !p.GREASE {
		ciphers = ciphers[1:] // drop the GREASE placeholder inserted by resolveCipherSuites
	}
	curves, err := resolveCurves(p.Curves)
	if err != nil {
		return nil, err
	}
	if !p.GREASE {
		curves = curves[1:]
	}
	sigAlgs, err := resolveSigAlgs(p.SigAlgs)
	if err != nil {
		return nil, err
	}

	order := p.ExtensionsOrder
	if p.PermuteExtensions {
		order = permuteExtensionOrder(order, rng)
	}

	exts := make([]utls.TLSExtension, 0, len(order)+3)
	if p.GREASE {
		exts = append(exts, &utls.UtlsGREASEExtension{})
	}
	for _, id := range order {
		ext, err := buildExtension(id, p, curves, sigAlgs)
		if err != nil {
			return nil, err
		}
		if ext != nil {
			exts = append(exts, ext)
		}
		// The ECH-GREASE payload goes immediately after server_name,
		// wherever server_name lands in the (possibly permuted) order.
		if id == extServerName && p.ECHGrease {
			exts = append(exts, &utls.GREASEEncryptedClientHelloExtension{})
		}
	}
	if p.GREASE {
		exts = append(exts, &utls.UtlsGREASEExtension{})
	}

	return &utls.ClientHelloSpec{
		CipherSuites:       ciphers,
		CompressionMethods: []byte{0x00},
		Extensions:         exts,
		TLSVersMin:         p.MinVersion,
		TLSVersMax:         p.MaxVersion,
	}, nil
}

func buildExtension(id uint16, p profiles.TLSProfile, curves []utls.CurveID, sigAlgs []utls.SignatureScheme) (utls.TLSExtension, error) {
	switch id {
	case extServerName:
		return &utls.SNIExtension{}, nil
	case extExtendedMasterSecret:
		return &utls.UtlsExtendedMasterSecretExtension{}, nil
	case extRenegotiationInfo:
		return &utls.RenegotiationInfoExtension{Renegotiation: utls.RenegotiateOnceAsClient}, nil
	case extSupportedGroups:
		return &utls.SupportedCurvesExtension{Curves: curves}, nil
	case extECPointFormats:
		return &utls.SupportedPointsExtension{SupportedPoints: []byte{0x00}}, nil
	case extSessionTicket:
		if !p.SessionTickets {
			return nil, nil
		}
		return &utls.SessionTicketExtension{}, nil
	case extALPN:
		return &utls.ALPNExtension{AlpnProtocols: p.ALPN}, nil
	case extStatusRequest:
		if !p.OCSPStapling {
			return nil, nil
		}
		return &utls.StatusRequestExtension{}, nil
	case extSignatureAlgorithms:
		return &utls.SignatureAlgorithmsExtension{SupportedSignatureAlgorithms: sigAlgs}, nil
	case extSignedCertificateTimestamp:
		return &utls.SCTExtension{}, nil
	case extKeyShare:
		shares := make([]utls.KeyShare, 0, len(curves))
		if p.GREASE {
			shares = append(shares, utls.KeyShare{Group: utls.CurveID(utls.GREASE_PLACEHOLDER), Data: []byte{0}})
		}
		for _, c := range curves {
			if c == utls.CurveID(utls.GREASE_PLACEHOLDER) {
				continue
			}
			shares = append(shares, utls.KeyShare{Group: c})
			break // only the first real group gets an eager key share, matching Chrome
		}
		return &utls.KeyShareExtension{KeyShares: shares}, nil
	case extPSKKeyExchangeModes:
		if !p.PreSharedKey {
			return nil, nil
		}
		return &utls.PSKKeyExchangeModesExtension{Modes: []uint8{utls.PskModeDHE}}, nil
	case extSupportedVersions:
		versions := []uint16{}
		if p.GREASE {
			versions = append(versions, utls.GREASE_PLACEHOLDER)
		}
		if p.MaxVersion >= tlsVersion13 {
			versions = append(versions, utls.VersionTLS13)
		}
		if p.MinVersion <= tlsVersion12 {
			versions = append(versions, utls.VersionTLS12)
		}
		return &utls.SupportedVersionsExtension{Versions: versions}, nil
	case extCompressCertificate:
		if len(p.CertCompression) == 0 {
			return nil, nil
		}
		algos, err := resolveCertCompression(p.CertCompression)
		if err != nil {
			return nil, err
		}
		return &utls.UtlsCompressCertExtension{Algorithms: algos}, nil
	case extApplicationSettings:
		return &utls.ApplicationSettingsExtension{SupportedProtocols: []string{"h2"}}, nil
	case extPadding:
		if !p.Padding {
			return nil, nil
		}
		return &utls.UtlsPaddingExtension{GetPaddingLen: utls.BoringPaddingStyle}, nil
	case extRecordSizeLimit:
		if p.RecordSizeLimit == 0 {
			return nil, nil
		}
		return &utls.FakeRecordSizeLimitExtension{Limit: p.RecordSizeLimit}, nil
	case extPreSharedKey:
		// A real pre_shared_key extension only applies on session
		// resumption; uTLS attaches it automatically via SetSessionState.
		// The catalog still records it in ExtensionsOrder so permutation
		// pins it last even when no session ticket is in play.
		return nil, nil
	case extEncryptedClientHelloGrease:
		if !p.ECHGrease {
			return nil, nil
		}
		return &utls.GREASEEncryptedClientHelloExtension{}, nil
	default:
		return nil, fmt.Errorf("tlsfp: unknown extension id %d", id)
	}
}
