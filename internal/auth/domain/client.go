package domain

// ClientType follows the RFC 6749 client profiles.
type ClientType string

const (
	ClientTypeWebApplication       ClientType = "web_application"
	ClientTypeUserAgentApplication ClientType = "user_agent_based_application"
	ClientTypeNativeApplication    ClientType = "native_application"
)

// Valid reports whether t is one of the known client profiles.
func (t ClientType) Valid() bool {
	switch t {
	case ClientTypeWebApplication, ClientTypeUserAgentApplication, ClientTypeNativeApplication:
		return true
	}
	return false
}

type Client struct {
	ID          string
	Name        string
	Description string
	SecretHash  Optional[string] // argon2id PHC string; None for public clients
	RedirectURI string
	Type        ClientType
}

// Confidential reports whether the client must authenticate at the token endpoint.
func (c Client) Confidential() bool { return c.SecretHash.IsSome() }
