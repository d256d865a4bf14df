package member

type MembershipTier string

const (
	TierSubadmin MembershipTier = "subadmin"
	TierBasic    MembershipTier = "basic"
	TierPremium  MembershipTier = "premium"
	TierVIP      MembershipTier = "vip"
)

func (t MembershipTier) Valid() bool {
	switch t {
	case TierSubadmin, TierBasic, TierPremium, TierVIP:
		return true
	}

	return false
}

type Profile struct {
	Id             string         `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	MembershipTier MembershipTier `json:"membership_tier"`
	IdentityUid    string         `json:"identity_uid"`
	CreatedAt      int64          `json:"created_at"`
}
