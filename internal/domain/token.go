package domain

// TokenPair is what login and refresh return: a short-lived access JWT and a
// password-hash-keyed refresh JWT. Neither is persisted server-side.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
