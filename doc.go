// Package chromimic is an HTTPS client that impersonates real browser
// builds at the TLS ClientHello and HTTP/2 connection-preface level, so
// that JA3/JA4 and Akamai-style fingerprinting services report the
// identity of the impersonated browser rather than of the Go runtime.
//
// Build a client with an Impersonate identifier:
//
//	c := chromimic.NewClient()
//	if err := c.Impersonate(chromimic.Chrome126); err != nil {
//		// handle err
//	}
//	resp, err := c.Get(context.Background(), "https://tls.peet.ws/api/all")
package chromimic
