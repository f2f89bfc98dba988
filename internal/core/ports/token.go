package ports

// TokenClaims is the identity claim set embedded in both token classes.
// Claims are a cache of the account state at issuance time; the
// authentication middleware re-checks role and active flag against the store.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenPair is issued at registration, login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TokenService issues and verifies the two token classes. Access and refresh
// tokens are signed with distinct secrets so a leak of one cannot forge the
// other. All verification failures surface as domain.ErrInvalidToken.
type TokenService interface {
	IssueAccessToken(claims TokenClaims) (string, error)
	IssueRefreshToken(claims TokenClaims) (string, error)
	IssuePair(claims TokenClaims) (TokenPair, error)
	VerifyAccessToken(token string) (*TokenClaims, error)
	VerifyRefreshToken(token string) (*TokenClaims, error)
}
