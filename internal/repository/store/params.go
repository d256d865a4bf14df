package store

type SetProfileParams struct {
	ProfileId      string `json:"profile_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	MembershipTier string `json:"membership_tier"`
	IdentityUid    string `json:"identity_uid"`
	CreatedAt      int64  `json:"created_at"`
}

type SetNotificationParams struct {
	NotificationId string `json:"notification_id"`
	Text           string `json:"text"`
	CreatedAt      int64  `json:"created_at"`
}

type SetVideoParams struct {
	VideoId      string `json:"video_id"`
	Title        string `json:"title"`
	Channel      string `json:"channel"`
	Category     string `json:"category"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoURL     string `json:"video_url"`
	Description  string `json:"description"`
}
