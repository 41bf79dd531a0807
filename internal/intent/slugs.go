package intent

// Platform is a canonical platform slug.
type Platform string

const (
	Instagram Platform = "instagram"
	TikTok    Platform = "tiktok"
	Twitter   Platform = "twitter"
	YouTube   Platform = "youtube"
	Snapchat  Platform = "snapchat"
	Facebook  Platform = "facebook"
	Discord   Platform = "discord"
	LinkedIn  Platform = "linkedin"
)

// AllPlatforms returns every known platform in canonical order.
func AllPlatforms() []Platform {
	return []Platform{Instagram, TikTok, Twitter, YouTube, Snapchat, Facebook, Discord, LinkedIn}
}

// Valid reports whether p is one of the known platform slugs.
func (p Platform) Valid() bool {
	for _, known := range AllPlatforms() {
		if p == known {
			return true
		}
	}
	return false
}

// ServiceType is a canonical service-type slug.
type ServiceType string

const (
	Followers        ServiceType = "followers"
	Likes            ServiceType = "likes"
	Comments         ServiceType = "comments"
	Views            ServiceType = "views"
	Subscribers      ServiceType = "subscribers"
	Shares           ServiceType = "shares"
	Retweets         ServiceType = "retweets"
	Connections      ServiceType = "connections"
	Reposts          ServiceType = "reposts"
	CompanyFollowers ServiceType = "company-followers"
)

// AllServiceTypes returns every known service type in canonical order.
func AllServiceTypes() []ServiceType {
	return []ServiceType{
		Followers, Likes, Comments, Views, Subscribers,
		Shares, Retweets, Connections, Reposts, CompanyFollowers,
	}
}

// Valid reports whether s is one of the known service-type slugs.
func (s ServiceType) Valid() bool {
	for _, known := range AllServiceTypes() {
		if s == known {
			return true
		}
	}
	return false
}
