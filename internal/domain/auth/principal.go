package auth

// Principal describes the already-authenticated caller. It is resolved by the
// transport layer and passed explicitly into every operation that needs it;
// nothing in the core reads caller identity from ambient state.
type Principal struct {
	Provider   string `json:"provider"`
	ProviderID string `json:"provider_id"`
	Nickname   string `json:"nickname,omitempty"`
}
