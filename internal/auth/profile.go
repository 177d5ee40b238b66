package auth

// Profile is the canonical identity extracted from a provider-specific
// profile response. It contains facts only, no decisions: user creation,
// linking and session management happen in the sign-in handler.
type Profile struct {
	Provider  string // e.g. "google", "discord"
	Email     string // identity key for user resolution
	FirstName string // provider's display/first name field
}
