// Package privacy decides whether a viewer may observe an entity guarded by
// a three-tier setting. The same policy gates profile reads and post reads;
// a post's tier is independent of its author's profile tier.
package privacy

type Tier string

const (
	TierPublic    Tier = "public"
	TierFollowers Tier = "followers"
	TierPrivate   Tier = "private"
)

// ValidTier reports whether t is one of the three known tiers.
func ValidTier(t Tier) bool {
	return t == TierPublic || t == TierFollowers || t == TierPrivate
}

// FollowChecker answers follower-set membership: does followerID follow
// followeeID right now.
type FollowChecker interface {
	IsFollowing(followerID, followeeID string) (bool, error)
}

type Policy struct {
	follows FollowChecker
}

func NewPolicy(f FollowChecker) *Policy { return &Policy{follows: f} }

// CanView reports whether viewerID may see content owned by ownerID under
// the given tier. An empty viewerID is an anonymous request and satisfies
// only the public tier.
func (p *Policy) CanView(viewerID, ownerID string, tier Tier) (bool, error) {
	switch tier {
	case TierPublic:
		return true, nil
	case TierFollowers:
		if viewerID == "" {
			return false, nil
		}
		if viewerID == ownerID {
			return true, nil
		}
		return p.follows.IsFollowing(viewerID, ownerID)
	case TierPrivate:
		return viewerID != "" && viewerID == ownerID, nil
	default:
		return false, nil
	}
}
