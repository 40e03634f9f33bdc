package acl

import "strings"

// Authorizer decides whether a wallet may call admin endpoints. Injected into
// the server context so tests can swap in their own policy.
type Authorizer interface {
	IsAuthorized(address string) bool
}

// Allowlist authorizes a fixed set of wallet addresses, compared
// case-insensitively. No sessions or expiry: the claimed address is
// re-evaluated on every request.
type Allowlist struct {
	addresses map[string]struct{}
}

func NewAllowlist(addresses []string) *Allowlist {
	set := make(map[string]struct{}, len(addresses))
	for _, addr := range addresses {
		if addr == "" {
			continue
		}
		set[strings.ToLower(addr)] = struct{}{}
	}
	return &Allowlist{addresses: set}
}

func (a *Allowlist) IsAuthorized(address string) bool {
	if address == "" {
		return false
	}
	_, ok := a.addresses[strings.ToLower(address)]
	return ok
}
