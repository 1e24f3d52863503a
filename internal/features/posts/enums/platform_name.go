package posts_enums

// PlatformName is the closed set of social networks a post can target.
type PlatformName string

const (
	PlatformInstagram PlatformName = "instagram"
	PlatformTiktok    PlatformName = "tiktok"
	PlatformYoutube   PlatformName = "youtube"
	PlatformFacebook  PlatformName = "facebook"
	PlatformTwitter   PlatformName = "twitter"
	PlatformLinkedin  PlatformName = "linkedin"
)

func (n PlatformName) IsValid() bool {
	switch n {
	case PlatformInstagram, PlatformTiktok, PlatformYoutube,
		PlatformFacebook, PlatformTwitter, PlatformLinkedin:
		return true
	default:
		return false
	}
}
