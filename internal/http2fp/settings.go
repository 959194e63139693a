package http2fp

import (
	"fmt"

	"golang.org/x/net/http2"

	"github.com/hdbg/chromimic/internal/profiles"
)

// maxFlowControlWindow is the largest value SETTINGS_INITIAL_WINDOW_SIZE
// and a WINDOW_UPDATE increment may carry (RFC 7540 §6.9.1); the vendored
// http2 fork enforces the same bound via its mustUint31 helper.
const maxFlowControlWindow = 1<<31 - 1

// Validate rejects an HTTP/2 sub-profile whose set fields cannot be sent
// on the wire, so a malformed catalog entry fails at configure() time
// rather than producing a connection a real server would tear down.
func Validate(p profiles.HTTP2Profile) error {
	if p.MaxConcurrentStreams != nil && *p.MaxConcurrentStreams == 0 {
		return fmt.Errorf("max_concurrent_streams: 0 disables every stream")
	}
	if p.MaxHeaderListSize != nil && *p.MaxHeaderListSize == 0 {
		return fmt.Errorf("max_header_list_size: 0 is indistinguishable from unset")
	}
	if p.HeaderTableSize != nil && *p.HeaderTableSize == 0 {
		return fmt.Errorf("header_table_size: 0 is indistinguishable from unset")
	}
	if p.InitialStreamWindowSize != nil && *p.InitialStreamWindowSize > maxFlowControlWindow {
		return fmt.Errorf("initial_stream_window_size: %d exceeds the 2^31-1 flow-control limit", *p.InitialStreamWindowSize)
	}
	if p.InitialConnectionWindowSize != nil && *p.InitialConnectionWindowSize > maxFlowControlWindow {
		return fmt.Errorf("initial_connection_window_size: %d exceeds the 2^31-1 flow-control limit", *p.InitialConnectionWindowSize)
	}
	return nil
}

// orderedSettings converts a catalog HTTP/2 sub-profile into the
// ordered []http2.Setting slice written into the single SETTINGS frame
// a client sends at connection start. golang.org/x/net/http2's Framer
// writes settings in slice order, so the order built here is the order
// that lands on the wire — this is the entire basis of the Akamai-style
// HTTP/2 fingerprint, which hashes SETTINGS id/value pairs in send
// order. A profile field left nil is simply omitted, matching browsers
// (and OkHttp) that never send every possible SETTINGS id.
func orderedSettings(p profiles.HTTP2Profile) []http2.Setting {
	var out []http2.Setting
	if p.HeaderTableSize != nil {
		out = append(out, http2.Setting{ID: http2.SettingHeaderTableSize, Val: *p.HeaderTableSize})
	}
	if p.EnablePush != nil {
		v := uint32(0)
		if *p.EnablePush {
			v = 1
		}
		out = append(out, http2.Setting{ID: http2.SettingEnablePush, Val: v})
	}
	if p.MaxConcurrentStreams != nil {
		out = append(out, http2.Setting{ID: http2.SettingMaxConcurrentStreams, Val: *p.MaxConcurrentStreams})
	}
	if p.InitialStreamWindowSize != nil {
		out = append(out, http2.Setting{ID: http2.SettingInitialWindowSize, Val: *p.InitialStreamWindowSize})
	}
	if p.MaxHeaderListSize != nil {
		out = append(out, http2.Setting{ID: http2.SettingMaxHeaderListSize, Val: *p.MaxHeaderListSize})
	}
	return out
}

// connectionWindowUpdateDelta returns the value of the WINDOW_UPDATE
// frame a client sends against stream 0 immediately after its SETTINGS
// frame, raising the connection-level flow-control window above
// http2's implicit 65535-byte default. Profiles that don't specify a
// connection window, or specify one no larger than 65535, skip the frame
// entirely.
func connectionWindowUpdateDelta(p profiles.HTTP2Profile) (uint32, bool) {
	if p.InitialConnectionWindowSize == nil {
		return 0, false
	}
	const http2DefaultWindow = 65535
	v := *p.InitialConnectionWindowSize
	if v <= http2DefaultWindow {
		return 0, false
	}
	return v - http2DefaultWindow, true
}
