package intent

// DefaultKeywords returns a fresh copy of the built-in multilingual keyword
// mapping. Hindi and Arabic keys are listed verbatim next to an ASCII
// transliteration.
func DefaultKeywords() KeywordMapping {
	platforms := map[string]Platform{
		// English and common short forms
		"instagram": Instagram,
		"insta":     Instagram,
		"ig":        Instagram,
		"tiktok":    TikTok,
		"tik tok":   TikTok,
		"tik-tok":   TikTok,
		"twitter":   Twitter,
		"x.com":     Twitter,
		"youtube":   YouTube,
		"you tube":  YouTube,
		"yt":        YouTube,
		"snapchat":  Snapchat,
		"snap":      Snapchat,
		"facebook":  Facebook,
		"fb":        Facebook,
		"discord":   Discord,
		"linkedin":  LinkedIn,
		"linked in": LinkedIn,

		// Russian
		"инстаграм": Instagram,
		"тикток":    TikTok,
		"твиттер":   Twitter,
		"ютуб":      YouTube,
		"фейсбук":   Facebook,
		"дискорд":   Discord,
		"линкедин":  LinkedIn,

		// Hindi
		"इंस्टाग्राम": Instagram,
		"instagraam":  Instagram,
		"टिकटॉक":      TikTok,
		"tiktauk":     TikTok,
		"ट्विटर":      Twitter,
		"tvitar":      Twitter,
		"यूट्यूब":     YouTube,
		"yootyoob":    YouTube,
		"फेसबुक":      Facebook,
		"fesbuk":      Facebook,
		"स्नैपचैट":    Snapchat,
		"snaipchait":  Snapchat,
		"लिंक्डइन":    LinkedIn,
		"linkdin":     LinkedIn,

		// Arabic
		"انستقرام":  Instagram,
		"انستغرام":  Instagram,
		"instaqram": Instagram,
		"تيك توك":   TikTok,
		"tik tuk":   TikTok,
		"تويتر":     Twitter,
		"tuwitar":   Twitter,
		"يوتيوب":    YouTube,
		"yutyub":    YouTube,
		"فيسبوك":    Facebook,
		"faysbuk":   Facebook,
		"سناب شات":  Snapchat,
		"snab shat": Snapchat,
		"ديسكورد":   Discord,
		"diskurd":   Discord,
		"لينكدإن":   LinkedIn,
		"linkdan":   LinkedIn,
	}

	serviceTypes := map[string]ServiceType{
		// English
		"followers":         Followers,
		"follower":          Followers,
		"follows":           Followers,
		"likes":             Likes,
		"like":              Likes,
		"comments":          Comments,
		"comment":           Comments,
		"views":             Views,
		"view":              Views,
		"video views":       Views,
		"story views":       Views,
		"subscribers":       Subscribers,
		"subscriber":        Subscribers,
		"subs":              Subscribers,
		"shares":            Shares,
		"share":             Shares,
		"retweets":          Retweets,
		"retweet":           Retweets,
		"connections":       Connections,
		"connection":        Connections,
		"reposts":           Reposts,
		"repost":            Reposts,
		"company followers": CompanyFollowers,
		"page followers":    CompanyFollowers,

		// Spanish
		"seguidores":            Followers,
		"seguidor":              Followers,
		"me gusta":              Likes,
		"comentarios":           Comments,
		"visualizaciones":       Views,
		"vistas":                Views,
		"reproducciones":        Views,
		"suscriptores":          Subscribers,
		"compartidos":           Shares,
		"retuits":               Retweets,
		"conexiones":            Connections,
		"republicaciones":       Reposts,
		"seguidores de empresa": CompanyFollowers,

		// Portuguese
		"curtidas":          Likes,
		"curtida":           Likes,
		"comentários":       Comments,
		"visualizações":     Views,
		"inscritos":         Subscribers,
		"compartilhamentos": Shares,
		"conexões":          Connections,

		// French
		"abonnés":            Followers,
		"abonnes":            Followers,
		"j'aime":             Likes,
		"jaime":              Likes,
		"commentaires":       Comments,
		"vues":               Views,
		"partages":           Shares,
		"abonnés entreprise": CompanyFollowers,
		"abonnes entreprise": CompanyFollowers,

		// German
		"gefällt mir": Likes,
		"kommentare":  Comments,
		"aufrufe":     Views,
		"abonnenten":  Subscribers,

		// Italian
		"seguaci":         Followers,
		"mi piace":        Likes,
		"commenti":        Comments,
		"visualizzazioni": Views,
		"iscritti":        Subscribers,
		"condivisioni":    Shares,
		"connessioni":     Connections,

		// Indonesian and Turkish
		"pengikut": Followers,
		"takipçi":  Followers,
		"takipci":  Followers,
		"beğeni":   Likes,
		"begeni":   Likes,
		"komentar": Comments,
		"yorum":    Comments,
		"tayangan": Views,
		"izlenme":  Views,
		"abone":    Subscribers,
		"paylaşım": Shares,

		// Russian
		"подписчики":  Followers,
		"подписчиков": Followers,
		"лайки":       Likes,
		"лайков":      Likes,
		"комментарии": Comments,
		"просмотры":   Views,
		"просмотров":  Views,
		"ретвиты":     Retweets,
		"репосты":     Reposts,

		// Hindi
		"फॉलोअर्स":    Followers,
		"folloars":    Followers,
		"लाइक्स":      Likes,
		"laiks":       Likes,
		"पसंद":        Likes,
		"pasand":      Likes,
		"कमेंट्स":     Comments,
		"kaments":     Comments,
		"व्यूज":       Views,
		"vyooz":       Views,
		"सब्सक्राइबर": Subscribers,
		"sabskraibar": Subscribers,
		"शेयर":        Shares,
		"sheyar":      Shares,

		// Arabic
		"متابعين":     Followers,
		"mutabieen":   Followers,
		"لايكات":      Likes,
		"laykat":      Likes,
		"إعجاب":       Likes,
		"iejab":       Likes,
		"تعليقات":     Comments,
		"taliqat":     Comments,
		"مشاهدات":     Views,
		"mushahadat":  Views,
		"مشتركين":     Subscribers,
		"mushtarikin": Subscribers,
		"مشاركات":     Shares,
		"musharakat":  Shares,
		"ريتويت":      Retweets,
		"retwit":      Retweets,
	}

	return KeywordMapping{Platforms: platforms, ServiceTypes: serviceTypes}
}

// DefaultDisplayNames returns a fresh copy of the built-in display labels.
// Slugs missing here fall back to a derived label.
func DefaultDisplayNames() DisplayNameMapping {
	return DisplayNameMapping{
		Platforms: map[Platform]string{
			Instagram: "Instagram",
			TikTok:    "TikTok",
			Twitter:   "Twitter/X",
			YouTube:   "YouTube",
			Snapchat:  "Snapchat",
			Facebook:  "Facebook",
			Discord:   "Discord",
			LinkedIn:  "LinkedIn",
		},
		ServiceTypes: map[ServiceType]string{
			Followers:        "Followers",
			Likes:            "Likes",
			Comments:         "Comments",
			Views:            "Views",
			Subscribers:      "Subscribers",
			Shares:           "Shares",
			Retweets:         "Retweets",
			Connections:      "Connections",
			Reposts:          "Reposts",
			CompanyFollowers: "Company Followers",
		},
	}
}
