package categorize

// ruleGroup is one ordered keyword group of the fixed classification table.
// Groups are evaluated in declaration order; the first group containing any
// keyword of the description wins.
type ruleGroup struct {
	Category string
	Keywords []string
}

// fixedRules is immutable after init. Keywords are lowercase literal
// substrings matched against the lowercased description.
var fixedRules = []ruleGroup{
	{
		Category: "Gas",
		Keywords: []string{
			"gas", "petro", "esso", "shell", "hughes", "petroleum", "7-eleven",
			"circle k", "fuel", "car wash", "airbnb", "westjet", "air canada",
			"uber", "lyft", "taxi", "transportation", "go transit", "via rail",
			"transit", "ttc", "gas bar", "husky", "gas station", "petrocan",
		},
	},
	{
		Category: "Car Service",
		Keywords: []string{
			"car service", "mechanic", "auto repair", "car repair", "repair",
			"maintenance", "tire", "oil change", "jiffy lube",
			"canadian tire auto", "midas", "mr lube", "kal tire",
			"active green ross", "dealership service", "car dealership",
		},
	},
	{
		Category: "Car Cleaning",
		Keywords: []string{
			"auto spa", "car detailing", "wax", "detailing", "clean car",
			"cleaning", "wash",
		},
	},
	{
		Category: "Food",
		Keywords: []string{
			"restaurant", "cafe", "coffee", "tim hortons", "tims", "starbuck",
			"timmy", "dairy queen", "food", "lunch", "dinner", "grocery",
			"supermarket", "bakery", "shawarma", "popeyes", "subway", "a&w",
			"mcdonalds", "pizza", "second cup", "freshco", "loblaws",
			"shoppers", "walmart", "supercenter", "wendy", "harvey",
			"swiss chalet", "kfc", "burger", "taco", "sushi", "pho", "thai",
			"chipotle", "panera", "dominos", "papa john", "little caesars",
			"metro", "sobeys", "longos", "farm boy", "food basic", "no frills",
			"costco", "sam", "wholesale club", "grocery gateway", "instacart",
			"uber eat", "doordash", "skip the dishes", "foodora",
		},
	},
	{
		Category: "Office",
		Keywords: []string{
			"office", "supplies", "canadian tire", "home depot", "staples",
			"fabricland", "paper", "printer", "ink", "toner", "business card",
			"dollar store", "dollarama", "ikea", "wayfair", "best buy",
			"the source", "depot", "staple", "amazon", "indigo", "chapters",
			"book", "journal", "pen", "marker", "stationery",
		},
	},
	{
		Category: "Entertainment",
		Keywords: []string{
			"cinema", "movie", "theatre", "cineplex", "entertainment",
			"museum", "netflix", "spotify", "apple music", "youtube",
			"amazon prime", "disney", "hulu", "crave", "tidal", "deezer",
			"pandora", "hbo", "streaming", "subscription", "game",
			"playstation", "xbox", "nintendo", "ticket", "concert",
			"festival", "event", "show", "theater", "venue", "club", "bar",
			"pub", "alcohol", "lcbo", "beer store", "wine rack",
		},
	},
	{
		Category: "Health",
		Keywords: []string{
			"pharmacy", "drug mart", "clinic", "doctor", "medical", "health",
			"dental", "dentist", "eye", "optical", "glasses", "contact",
			"prescription",
			"rexall", "medicine", "pharma", "physio", "chiropractor",
			"massage", "therapy", "psychologist", "counselling", "wellness",
			"gym", "fitness", "workout", "exercise",
		},
	},
	{
		Category: "Insurance",
		Keywords: []string{
			"insurance", "professional", "financial", "economical",
			"pembridge", "waterloo", "linkedin", "consulting", "lawyer",
			"accountant", "legal", "accounting", "tax", "service", "advisor",
			"broker", "aviva", "intact", "belair", "td insurance",
			"rbc insurance", "allstate", "state farm", "the co-operators",
			"wawanesa", "desjardins", "sonnet", "caa",
		},
	},
	{
		Category: "Telephone",
		Keywords: []string{
			"phone", "mobile", "cell", "wireless", "rogers", "bell", "telus",
			"fido", "koodo", "virgin", "freedom", "shaw", "cogeco",
			"internet", "telecom", "communication", "data plan",
			"long distance", "roaming", "text message", "wifi", "broadband",
		},
	},
	{
		Category: "Parking",
		Keywords: []string{
			"parking", "lot", "garage", "meter", "hangtag", "pass",
			"city of", "municipal", "green p", "impark", "precise",
			"diamond parking", "honk", "paybyphone", "parkopedia", "roam",
			"parkmobile",
		},
	},
	{
		Category: "Professional Development",
		Keywords: []string{
			"development", "course", "training", "seminar", "workshop",
			"conference", "webinar", "certification", "education",
			"learning", "skill", "tutorial", "udemy", "coursera",
			"linkedin learning", "pluralsight", "edx", "skillshare",
			"masterclass", "college", "university", "online course",
			"continuing education", "convention", "association", "membership",
		},
	},
	{
		Category: "Admin",
		Keywords: []string{
			"admin", "administrative", "clerical", "secretary", "assistant",
			"office manager", "reception", "front desk",
		},
	},
}
