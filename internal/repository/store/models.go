package store

type Profile struct {
	Name           string `redis:"name" json:"name"`
	Email          string `redis:"email" json:"email"`
	MembershipTier string `redis:"membership_tier" json:"membership_tier"`
	IdentityUid    string `redis:"identity_uid" json:"identity_uid"`
	CreatedAt      int64  `redis:"created_at" json:"created_at"`
}

type Notification struct {
	Text      string `redis:"text" json:"text"`
	CreatedAt int64  `redis:"created_at" json:"created_at"`
}

type Video struct {
	Title        string `redis:"title" json:"title"`
	Channel      string `redis:"channel" json:"channel"`
	Category     string `redis:"category" json:"category"`
	ThumbnailURL string `redis:"thumbnail_url" json:"thumbnail_url"`
	VideoURL     string `redis:"video_url" json:"video_url"`
	Description  string `redis:"description" json:"description"`
}
