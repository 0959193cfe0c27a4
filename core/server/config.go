package server

// Config holds configuration for the HTTP server.
type Config struct {
	// BindAddr is the ip:port where the server will listen.
	BindAddr string
	// AllowedOrigins lists the origins allowed by CORS.
	AllowedOrigins []string
	// Unrestricted allows every origin when AllowedOrigins is empty.
	Unrestricted bool
}

// CORSMode describes the effective cross-origin policy.
type CORSMode int

const (
	// CORSDisabled sends no CORS headers; browsers block cross-origin calls.
	CORSDisabled CORSMode = iota
	// CORSAllowList allows the configured origins only.
	CORSAllowList
	// CORSPermissive allows every origin.
	CORSPermissive
)

// CORSMode resolves the policy from the configured origins.
func (c Config) CORSMode() CORSMode {
	switch {
	case len(c.AllowedOrigins) > 0:
		return CORSAllowList
	case c.Unrestricted:
		return CORSPermissive
	default:
		return CORSDisabled
	}
}

func (m CORSMode) String() string {
	switch m {
	case CORSAllowList:
		return "allow-list"
	case CORSPermissive:
		return "permissive"
	default:
		return "disabled"
	}
}
