package catalog

import "github.com/hdbg/chromimic/internal/profiles"

// headers builds an ordered profiles.Header slice from (name, value)
// pairs, keeping call sites in client_impersonate.go-style table form
// while giving each constructor its own, independently editable default
// header set.
func headers(pairs ...string) []profiles.Header {
	if len(pairs)%2 != 0 {
		panic("catalog: headers called with an odd number of arguments")
	}
	out := make([]profiles.Header, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, profiles.Header{Name: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func chromeHeaders(uaVersion, secChUAVersion, platform string) []profiles.Header {
	return headers(
		"Host", "",
		"Connection", "keep-alive",
		"sec-ch-ua", `"Not_A Brand";v="8", "Chromium";v="`+secChUAVersion+`", "Google Chrome";v="`+secChUAVersion+`"`,
		"sec-ch-ua-mobile", "?0",
		"sec-ch-ua-platform", `"`+platform+`"`,
		"Upgrade-Insecure-Requests", "1",
		"User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/"+uaVersion+".0.0.0 Safari/537.36",
		"Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7",
		"Sec-Fetch-Site", "none",
		"Sec-Fetch-Mode", "navigate",
		"Sec-Fetch-User", "?1",
		"Sec-Fetch-Dest", "document",
		"Accept-Encoding", "gzip, deflate, br, zstd",
		"Accept-Language", "en-US,en;q=0.9",
	)
}

func edgeHeaders(uaVersion, secChUAVersion, edgeVersion string) []profiles.Header {
	return headers(
		"Host", "",
		"Connection", "keep-alive",
		"sec-ch-ua", `"Not_A Brand";v="8", "Chromium";v="`+secChUAVersion+`", "Microsoft Edge";v="`+secChUAVersion+`"`,
		"sec-ch-ua-mobile", "?0",
		"sec-ch-ua-platform", `"Windows"`,
		"Upgrade-Insecure-Requests", "1",
		"User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/"+uaVersion+".0.0.0 Safari/537.36 Edg/"+edgeVersion+".0.0.0",
		"Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7",
		"Sec-Fetch-Site", "none",
		"Sec-Fetch-Mode", "navigate",
		"Sec-Fetch-User", "?1",
		"Sec-Fetch-Dest", "document",
		"Accept-Encoding", "gzip, deflate, br",
		"Accept-Language", "en-US,en;q=0.9",
	)
}

func safariHeaders(version string) []profiles.Header {
	return headers(
		"Host", "",
		"Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Sec-Fetch-Site", "same-origin",
		"Cookie", "",
		"Sec-Fetch-Dest", "document",
		"Accept-Language", "en-US,en;q=0.9",
		"Sec-Fetch-Mode", "navigate",
		"User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/"+version+" Safari/605.1.15",
		"Referer", "",
		"Accept-Encoding", "gzip, deflate, br",
		"Connection", "keep-alive",
	)
}

func safariIosHeaders(version, iosVersion string) []profiles.Header {
	return headers(
		"Host", "",
		"Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Sec-Fetch-Site", "same-origin",
		"Cookie", "",
		"Sec-Fetch-Dest", "document",
		"Accept-Language", "en-US,en;q=0.9",
		"Sec-Fetch-Mode", "navigate",
		"User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS "+iosVersion+" like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/"+version+" Mobile/15E148 Safari/604.1",
		"Referer", "",
		"Accept-Encoding", "gzip, deflate, br",
		"Connection", "keep-alive",
	)
}

func okHttpHeaders(uaVersion string) []profiles.Header {
	return headers(
		"Accept", "*/*",
		"Accept-Language", "en-US,en;q=0.9",
		"User-Agent", "okhttp/"+uaVersion,
		"Accept-Encoding", "gzip",
	)
}
