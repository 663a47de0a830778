// Package cookie writes and reads HTTP cookies with shared attributes.
//
// Plain cookies carry values as-is. Signed cookies append an HMAC-SHA256
// signature bound to the cookie name, which lets the session layer trust the
// token it reads back without a store round trip for forged values.
//
//	m := cookie.New(
//	    cookie.WithSecret(os.Getenv("COOKIE_SECRET")),
//	    cookie.WithSecure(true),
//	)
//	_ = m.SetSigned(w, "__sid", token, 3600)
//	token, err := m.GetSigned(r, "__sid")
//
// [Present] answers the only question the cookie gate asks: did the browser
// send anything back at all.
package cookie
