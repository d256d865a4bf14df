package identity

type Identity struct {
	Email        string `redis:"email" json:"email"`
	PasswordHash string `redis:"password_hash" json:"-"`
	CreatedAt    int64  `redis:"created_at" json:"created_at"`
}

type SetIdentityParams struct {
	Uid          string `json:"uid"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	CreatedAt    int64  `json:"created_at"`
}
