package store

import (
	"math/rand"
	"time"

	"adserver/models"
)

// randomLastActive returns a timestamp between min and max minutes ago.
// Fixture timestamps are randomized once at seed time and then persisted.
func randomLastActive(minMinutes, maxMinutes int) time.Time {
	minutes := rand.Intn(maxMinutes-minMinutes+1) + minMinutes
	return time.Now().UTC().Add(-time.Duration(minutes) * time.Minute)
}

// randomCreatedAt returns a timestamp between min and max days ago.
func randomCreatedAt(minDays, maxDays int) time.Time {
	days := rand.Intn(maxDays-minDays+1) + minDays
	return time.Now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
}

// seedDatingProfiles builds the fixture profile collection. Each call
// re-rolls the randomized timestamps; the result is written once and read
// back thereafter, so the randomness is fixed at seed time.
func seedDatingProfiles() []models.DatingProfile {
	c := func(minD, maxD int) time.Time { return randomCreatedAt(minD, maxD) }
	a := func(minM, maxM int) time.Time { return randomLastActive(minM, maxM) }

	return []models.DatingProfile{
		{ID: "m1", Username: "sachini_c", Name: "Sachini", Age: 26, Gender: "Woman", Seeking: "Man", Country: "Sri Lanka", District: "Colombo", AboutMe: "Love travelling & meeting new people. Looking for genuine connections.", Interests: "Travel, Photography, Music", MaritalStatus: "Single", SexualOrientation: "Straight", CreatedAt: c(30, 180), LastActive: a(1, 10)},
		{ID: "m2", Username: "kasun_k", Name: "Kasun", Age: 29, Gender: "Man", Seeking: "Woman", Country: "Sri Lanka", District: "Kandy", AboutMe: "Looking for fun conversations and maybe something more.", Interests: "Gym, Movies, Cars", MaritalStatus: "Single", SexualOrientation: "Straight", CreatedAt: c(30, 180), LastActive: a(1, 5)},
		{ID: "m3", Username: "nimali_g", Name: "Nimali", Age: 24, Gender: "Woman", Seeking: "Man", Country: "Sri Lanka", District: "Galle", AboutMe: "Beach lover & free spirit. Let's explore together!", Interests: "Beach, Reading, Yoga", MaritalStatus: "Single", SexualOrientation: "Straight", CreatedAt: c(10, 90), LastActive: a(5, 30)},
		{ID: "m4", Username: "dilan_n", Name: "Dilan", Age: 31, Gender: "Man", Seeking: "Woman", Country: "Sri Lanka", District: "Gampaha", AboutMe: "Adventurous and open-minded. Life is too short to be boring.", Interests: "Hiking, Cooking, Tech", MaritalStatus: "Divorced", SexualOrientation: "Straight", CreatedAt: c(60, 200), LastActive: a(10, 60)},
		{ID: "m5", Username: "ishara_co", Name: "Ishara", Age: 27, Gender: "Man", Seeking: "Man", Country: "Sri Lanka", District: "Colombo", AboutMe: "Music, food and good vibes. Proud and open.", Interests: "Music, Food, Dancing", MaritalStatus: "Single", SexualOrientation: "Gay", CreatedAt: c(5, 60), LastActive: a(1, 15)},
		{ID: "m6", Username: "chathu_m", Name: "Chathurika", Age: 25, Gender: "Woman", Seeking: "Woman", Country: "Sri Lanka", District: "Matara", AboutMe: "Let's see where this goes. Open-minded and friendly.", Interests: "Art, Nature, Coffee", MaritalStatus: "Single", SexualOrientation: "Lesbian", CreatedAt: c(15, 120), LastActive: a(2, 20)},
		{ID: "m7", Username: "nuwan_r", Name: "Nuwan", Age: 33, Gender: "Man", Seeking: "Woman", Country: "Sri Lanka", District: "Kurunegala", AboutMe: "Simple guy looking for a real connection. No games.", Interests: "Cricket, Movies, Travel", MaritalStatus: "Single", SexualOrientation: "Straight", CreatedAt: c(30, 150), LastActive: a(15, 120)},
		{ID: "m8", Username: "malini_j", Name: "Malini", Age: 28, Gender: "Woman", Seeking: "Man", Country: "Sri Lanka", District: "Jaffna", AboutMe: "Looking for someone who values honesty and humor.", Interests: "Cooking, Reading, Dancing", MaritalStatus: "Single", SexualOrientation: "Straight", CreatedAt: c(20, 100), LastActive: a(3, 45)},
		{ID: "m9", Username: "saman_b", Name: "Saman", Age: 34, Gender: "Man", Seeking: "Woman", Country: "Sri Lanka", District: "Badulla", AboutMe: "Mature, respectful, and adventurous. Love the hills.", Interests: "Hiking, Tea, Photography", MaritalStatus: "Married", SexualOrientation: "Straight", CreatedAt: c(60, 250), LastActive: a(20, 200)},
		{ID: "m10", Username: "tharushi_p", Name: "Tharushi", Age: 23, Gender: "Woman", Seeking: "Man", Country: "Sri Lanka", District: "Colombo", AboutMe: "Young, fun and ready to mingle. DM me!", Interests: "Fashion, Social Media, Music", MaritalStatus: "Single", SexualOrientation: "Straight", CreatedAt: c(3, 30), LastActive: a(1, 8)},
		{ID: "m11", Username: "pradeep_a", Name: "Pradeep", Age: 30, Gender: "Man", Seeking: "Man", Country: "Sri Lanka", District: "Colombo", AboutMe: "Life's an adventure. Looking for a partner in crime.", Interests: "Fitness, Travel, Cooking", MaritalStatus: "Single", SexualOrientation: "Gay", CreatedAt: c(20, 100), LastActive: a(5, 40)},
		{ID: "m12", Username: "dilani_h", Name: "Dilani", Age: 30, Gender: "Woman", Seeking: "Man", Country: "Sri Lanka", District: "Kalutara", AboutMe: "Teacher by day, dreamer by night. Looking for real love.", Interests: "Books, Nature, Movies", MaritalStatus: "Divorced", SexualOrientation: "Straight", CreatedAt: c(40, 180), LastActive: a(8, 60)},
		{ID: "m13", Username: "ravindu_w", Name: "Ravindu", Age: 26, Gender: "Man", Seeking: "Woman", Country: "Sri Lanka", District: "Ratnapura", AboutMe: "Gem city boy with a golden heart.", Interests: "Gems, Business, Cars", MaritalStatus: "Single", SexualOrientation: "Straight", CreatedAt: c(10, 70), LastActive: a(2, 25)},
		{ID: "m14", Username: "sanduni_t", Name: "Sanduni", Age: 26, Gender: "Woman", Seeking: "Woman", Country: "Sri Lanka", District: "Gampaha", AboutMe: "Quiet soul with a loud laugh. Looking for my person.", Interests: "Poetry, Art, Movies", MaritalStatus: "Single", SexualOrientation: "Lesbian", CreatedAt: c(10, 80), LastActive: a(3, 30)},
		{ID: "m15", Username: "couple_cn", Name: "Chamara & Nilmini", Age: 33, Gender: "Couple", Seeking: "Couple", Country: "Sri Lanka", District: "Colombo", AboutMe: "Fun couple looking to meet like-minded people.", Interests: "Travel, Dining, Socializing", MaritalStatus: "Married", SexualOrientation: "Bisexual", CreatedAt: c(30, 120), LastActive: a(10, 50)},
		{ID: "m16", Username: "amal_col", Name: "Amal", Age: 28, Gender: "Man", Seeking: "Woman", Country: "Sri Lanka", District: "Colombo", AboutMe: "Software engineer who loves good coffee and better company.", Interests: "Tech, Coffee, Gaming", MaritalStatus: "Single", SexualOrientation: "Straight", CreatedAt: c(5, 40), LastActive: a(1, 12)},
		{ID: "m17", Username: "hiruni_m", Name: "Hiruni", Age: 27, Gender: "Woman", Seeking: "Man", Country: "Sri Lanka", District: "Matale", AboutMe: "Christmas baby! Sweet but spicy. Let's talk.", Interests: "Cooking, Movies, Dancing", MaritalStatus: "Single", SexualOrientation: "Straight", CreatedAt: c(15, 90), LastActive: a(4, 35)},
		{ID: "m18", Username: "janith_anp", Name: "Janith", Age: 31, Gender: "Man", Seeking: "Woman", Country: "Sri Lanka", District: "Anuradhapura", AboutMe: "History lover from the ancient city. Old school romantic.", Interests: "History, Photography, Cycling", MaritalStatus: "Single", SexualOrientation: "Straight", CreatedAt: c(40, 200), LastActive: a(30, 180)},
		{ID: "m19", Username: "nethmi_k", Name: "Nethmi", Age: 24, Gender: "Woman", Seeking: "Man", Country: "Sri Lanka", District: "Kandy", AboutMe: "Hill country girl with city dreams. Let's vibe!", Interests: "Music, Fashion, Travel", MaritalStatus: "Single", SexualOrientation: "Straight", CreatedAt: c(7, 50), LastActive: a(1, 20)},
		{ID: "m20", Username: "couple_rk", Name: "Ruwan & Kumari", Age: 35, Gender: "Couple", Seeking: "Woman", Country: "Sri Lanka", District: "Galle", AboutMe: "Open-minded couple from the south. Friendly and discreet.", Interests: "Beach, Wine, Music", MaritalStatus: "Married", SexualOrientation: "Bisexual", CreatedAt: c(60, 300), LastActive: a(5, 45)},
		{ID: "m21", Username: "thilina_p", Name: "Thilina", Age: 29, Gender: "Man", Seeking: "Woman", Country: "Sri Lanka", District: "Polonnaruwa", AboutMe: "Country boy looking for love.", Interests: "Farming, Nature, Music", MaritalStatus: "Single", SexualOrientation: "Straight", CreatedAt: c(20, 130), LastActive: a(10, 80)},
		{ID: "m22", Username: "kavisha_t", Name: "Kavisha", Age: 27, Gender: "Woman", Seeking: "Man", Country: "Sri Lanka", District: "Trincomalee", AboutMe: "Born on Valentine's Day! Romantic by nature.", Interests: "Sunset Walks, Cooking, Poetry", MaritalStatus: "Single", SexualOrientation: "Straight", CreatedAt: c(10, 60), LastActive: a(2, 18)},
		{ID: "m23", Username: "harsha_b", Name: "Harsha", Age: 32, Gender: "Man", Seeking: "Man", Country: "Sri Lanka", District: "Kandy", AboutMe: "Professional, discreet, genuine. Quality over quantity.", Interests: "Travel, Wine, Fitness", MaritalStatus: "Single", SexualOrientation: "Gay", CreatedAt: c(30, 150), LastActive: a(8, 55)},
		{ID: "m24", Username: "nadeeka_h", Name: "Nadeeka", Age: 30, Gender: "Woman", Seeking: "Man", Country: "Sri Lanka", District: "Hambantota", AboutMe: "Southern beauty with a heart of gold.", Interests: "Animals, Nature, Cooking", MaritalStatus: "Widowed", SexualOrientation: "Straight", CreatedAt: c(50, 200), LastActive: a(15, 100)},
	}
}

// StoryCategories is the fixed category list for the story section.
var StoryCategories = []models.StoryCategory{
	{Name: "BDSM", Slug: "bdsm"},
	{Name: "Cuckold", Slug: "cuckold"},
	{Name: "Gay", Slug: "gay"},
	{Name: "Hot Wife", Slug: "hot-wife"},
	{Name: "Lesbian", Slug: "lesbian"},
	{Name: "Massage", Slug: "massage"},
	{Name: "Other", Slug: "other"},
	{Name: "Taboo", Slug: "taboo"},
	{Name: "Teacher", Slug: "teacher"},
	{Name: "Threesome", Slug: "threesome"},
}

// seedStories builds the fixture story collection. CreatedTs offsets are
// relative to seed time so the feed reads as recently active.
func seedStories() []models.Story {
	now := time.Now().UnixMilli()
	hour := int64(time.Hour / time.Millisecond)
	day := 24 * hour

	return []models.Story{
		{
			ID: 1, Title: "රහස් හමුව", Author: "Anonymous", Views: 1245, Likes: 89,
			Time: "2h ago", Excerpt: "එදා රාත්‍රියේ අපි හමුවුණා...", Category: "taboo",
			CreatedTs: now - 2*hour,
			Content:   "එදා රාත්‍රියේ අපි හමුවුණා. සඳ එළිය පතිත වුණු ඒ මාවත දිගේ ඇවිද ගියා. කවුරුත් නැති ඒ මාවතේ අපි දෙන්නා විතරයි. හදවත් දෙකක් එකට ගැහුණා. ඔබේ ඇස් දෙකේ දිලිසුම සඳ එළියට වඩා ලස්සනයි කියලා මට හිතුණා. ඒ මොහොතේ මම ඔබට කිව්වා, 'මේ රාත්‍රිය අමතක කරන්න බැහැ' කියලා. ඔබ සිනාසුණා. ඒ සිනහව මට ජීවත් වෙන්න හේතුවක් දුන්නා.\n\nඅපි මුහුදු තීරයට ගියා. රැළි හඬ අපේ කථාබහට සංගීතයක් වුණා. වැලි කෙත්තේ වාඩිවෙලා, අහස දිහා බැලුවා. තරු ගැන කථා කලා. ජීවිතය ගැන කථා කලා. ආදරය ගැන කථා කලා.",
		},
		{
			ID: 2, Title: "මුහුදු තීරයේ", Author: "KandyGirl", Views: 982, Likes: 67,
			Time: "5h ago", Excerpt: "මුහුදු සුළඟ හමනකොට...", Category: "hot-wife",
			CreatedTs: now - 5*hour,
			Content:   "මුහුදු සුළඟ හමනකොට මගේ හිසකෙස් නටනවා. ඔහු මා දිහා බැලුවා. ඒ බැල්ම මට අමතක වෙන්නේ නැහැ. මුහුදු තීරයේ අපි දෙන්නා තනිවුණා.\n\nදිය රැළි අපේ පාද සේදුවා. සඳ එළිය මුහුද මත දිදුලුවා. ඔහු මගේ අත අල්ලාගත්තා. 'මට ඔයාව හම්බවුණේ මුහුදු තීරයේ, මගේ ජීවිතය වෙනස් වුණේ මේ මොහොතේ' කියලා ඔහු කිව්වා. මම දෙපා නැති වුණා වගේ දැනුණා. ආදරය මුහුදු රැළි වගේ. එනවා, ඉක්මනට පිටවෙනවා. නමුත් ඒ මතකය හැමදාකටම තියෙනවා.",
		},
		{
			ID: 3, Title: "ඔෆිස් එකේ රහස", Author: "NightWriter", Views: 2130, Likes: 156,
			Time: "1d ago", Excerpt: "කාර්යාලයේ සැමදෙනා ගියා...", Category: "teacher",
			CreatedTs: now - day,
			Content:   "කාර්යාලයේ සැමදෙනා ගියා. මම විතරයි ඉතුරු වුණේ. ලේට් නයිට් ව'ක් කරනකොට ඒ ඇවිල්ලා. 'ඇයි තනියෙන්?' කියලා ඇහුවා. මම සිනාසුණා.\n\nඅපි කෝපි බීලා, කාර්යාල කටයුතු ගැන කථා කලා. නමුත් ඇස් දෙකෙන් වෙනම කථාවක් පැවසුණා. 'අපි ලබන සතියේ එකට ලන්ච් යමුද?' කියලා ඇයි ඇහුවේ. මම කිව්වේ ඔව් කියලා. ඒ ඔව් මගේ ජීවිතය වෙනස් කලා.",
		},
		{
			ID: 4, Title: "පළමු අත්දැකීම", Author: "Anonymous", Views: 3420, Likes: 234,
			Time: "2d ago", Excerpt: "මගේ ජීවිතයේ අමතක නොවන...", Category: "massage",
			CreatedTs: now - 2*day,
			Content:   "මගේ ජීවිතයේ අමතක නොවන මොහොතක්. පළමු වතාවට ආදරය දැනුණු දිනය. හදවතේ ගිනිමැළි පිපුණා. සුළඟ පවා නැවතුණා වගේ දැනුණා.\n\nඇය සිනාසුණා. ඒ සිනහව ලෝකයේ ලස්සනම දෙය. 'ඔයාට මම ආදරෙයි' කියලා කිව්වා. ඒ වචන මගේ හිතේ ගැඹුරින් කැටි වුණා. ජීවිතේ පළමු අත්දැකීම් හැමදාකටම විශේෂයි.",
		},
		{
			ID: 5, Title: "හොටෙල් කාමරය", Author: "ColomboLover", Views: 1876, Likes: 145,
			Time: "3d ago", Excerpt: "දොර හැරුණු වෙලාවේ...", Category: "cuckold",
			CreatedTs: now - 3*day,
			Content:   "දොර හැරුණු වෙලාවේ ඇය ලස්සනටම ඇඳලා ඇවිත් හිටියා. හොටෙල් කාමරයේ ලස්සන විව් එකක් තිබුණා. කොළඹ නගරය දිදුලනවා.\n\nඅපි බැල්කනියේ සිටලා, නගරයේ ආලෝකය දිහා බැලුවා. 'මේ රාත්‍රිය අපේ විතරයි' කියලා ඇය කිව්වා. ඒ මොහොතේ ලෝකය නැවතුණා වගේ දැනුණා.",
		},
		{
			ID: 6, Title: "රාත්‍රී ගමන", Author: "Anonymous", Views: 1543, Likes: 98,
			Time: "4d ago", Excerpt: "ඒ රාත්‍රියේ අපි...", Category: "threesome",
			CreatedTs: now - 4*day,
			Content:   "ඒ රාත්‍රියේ අපි කාර් එකේ ගියා. මාවත දිගේ තරු ආලෝකය විතරයි. ගමේ සීතල සුළඟ කාර් එකට ඇතුල් වුණා.\n\n'ඇයි මේ තරම් ලස්සන?' කියලා ඇහුවා. 'ඔයා ඉන්න නිසා' කියලා මම කිව්වා. ඒ රාත්‍රී ගමන අමතක නොවන ගමනක් වුණා. පාර නැතිවුණත් ආදරය තිබුණා.",
		},
	}
}
