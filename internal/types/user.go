package types

type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	AvatarURL     string   `json:"avatar_url,omitempty"`
	Bio           string   `json:"bio,omitempty"`
	Location      string   `json:"location,omitempty"`
	WalletBalance float64  `json:"wallet_balance"`
	FavoriteIDs   []string `json:"favorite_ids"`
	IsPro         bool     `json:"is_pro,omitempty"`
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.FavoriteIDs = make([]string, len(u.FavoriteIDs))
	copy(c.FavoriteIDs, u.FavoriteIDs)
	return &c
}

// AuthState is the single active session. User is nil when logged out.
type AuthState struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"is_authenticated"`
}

func (a *AuthState) Clone() *AuthState {
	if a == nil {
		return nil
	}
	return &AuthState{User: a.User.Clone(), IsAuthenticated: a.IsAuthenticated}
}
