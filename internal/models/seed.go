package models

// Default catalog seeded into an empty deployment.

var SeedCategories = []CategoryDefinition{
	{ID: "rice", Title: "Rice", Icon: "bowl", ColorTheme: "orange", SortOrder: 0},
	{ID: "beans", Title: "Beans", Icon: "sprout", ColorTheme: "brown", SortOrder: 1},
	{ID: "pasta", Title: "Pasta", Icon: "utensils", ColorTheme: "yellow", SortOrder: 2},
	{ID: "yam", Title: "Yam & Sauce", Icon: "carrot", ColorTheme: "yellow", SortOrder: 3},
	{ID: "protein", Title: "Proteins", Icon: "drumstick", ColorTheme: "red", SortOrder: 4},
	{ID: "swallow", Title: "Swallows", Icon: "cookie", ColorTheme: "stone", SortOrder: 5},
	{ID: "soups", Title: "Soups", Icon: "leaf", ColorTheme: "green", SortOrder: 6},
	{ID: "burgers", Title: "Burgers", Icon: "sandwich", ColorTheme: "red", SortOrder: 7},
	{ID: "shawarma", Title: "Shawarma", Icon: "flame", ColorTheme: "orange", SortOrder: 8},
	{ID: "specials", Title: "Specials", Icon: "star", ColorTheme: "purple", SortOrder: 9},
	{ID: "drinks", Title: "Drinks", Icon: "glass", ColorTheme: "blue", SortOrder: 10},
}

var SeedMenuItems = []MenuItem{
	{ID: "1", Category: "rice", Name: "Coconut Rice (Jumbo)", Price: Priced(2400), IsAvailable: true},
	{ID: "2", Category: "rice", Name: "Coconut Rice (Mini)", Price: Priced(1200), IsAvailable: true},
	{ID: "3", Category: "rice", Name: "Fried Rice (Jumbo)", Price: Priced(2800), IsAvailable: true},
	{ID: "4", Category: "rice", Name: "Fried Rice (Mini)", Price: Priced(1400), IsAvailable: true},
	{ID: "5", Category: "rice", Name: "Jollof Rice (Jumbo)", Price: Priced(2400), IsAvailable: true},
	{ID: "6", Category: "rice", Name: "Jollof Rice (Mini)", Price: Priced(1200), IsAvailable: true},
	{ID: "7", Category: "rice", Name: "Yummy Special Basmati", Price: AskForPrice(), IsComingSoon: true},
	{ID: "8", Category: "beans", Name: "Trenches Style (Beans + Garri)", Price: AskForPrice(), IsComingSoon: true},
	{ID: "9", Category: "pasta", Name: "Pasta Jumbo Pack", Price: Priced(2500), IsAvailable: true},
	{ID: "10", Category: "pasta", Name: "Pasta Mini Pack", Price: Priced(2000), IsAvailable: true},
	{ID: "11", Category: "yam", Name: "Yamarita + Garden Egg Sauce", Price: AskForPrice(), IsComingSoon: true},
	{ID: "12", Category: "protein", Name: "Turkey", Price: Priced(5000), IsAvailable: true},
	{ID: "13", Category: "protein", Name: "Chicken", Price: Priced(3000), IsAvailable: true},
	{ID: "14", Category: "protein", Name: "Fish", Price: Priced(2500), IsAvailable: true},
	{ID: "15", Category: "protein", Name: "Beef / Goat Meat", Price: Priced(500), IsAvailable: true},
	{ID: "16", Category: "swallow", Name: "Poundo Yam", Price: Priced(300), IsAvailable: true},
	{ID: "17", Category: "swallow", Name: "Semovita", Price: Priced(300), IsAvailable: true},
	{ID: "18", Category: "swallow", Name: "Garri (Eba)", Price: Priced(300), IsAvailable: true},
	{ID: "19", Category: "soups", Name: "Ogbono + Garri", Price: Priced(2100), IsAvailable: true},
	{ID: "20", Category: "soups", Name: "Ogbono + Semo", Price: Priced(2500), IsAvailable: true},
	{ID: "21", Category: "soups", Name: "Egusi + Garri", Price: Priced(1900), IsAvailable: true},
	{ID: "22", Category: "soups", Name: "Afang + Poundo", Price: Priced(2300), IsAvailable: true},
	{ID: "23", Category: "burgers", Name: "Regular Beef Burger", Price: Priced(4500), Description: "Double Beef + 2 Cheese + Hotdog", IsAvailable: true},
	{ID: "24", Category: "burgers", Name: "Station Beef Burger", Price: Priced(5000), Description: "3 Beef + 2 Cheese + Suya + Hotdogs", IsAvailable: true},
	{ID: "25", Category: "burgers", Name: "Regular Chicken Burger", Price: Priced(4500), IsAvailable: true},
	{ID: "26", Category: "burgers", Name: "Yummy Special Burger", Price: Priced(6000), Description: "Chicken + 2 Beef + 3 Cheese + Suya + Hotdogs", IsAvailable: true},
	{ID: "27", Category: "shawarma", Name: "Beef Shawarma", Price: Priced(4500), IsAvailable: true},
	{ID: "28", Category: "shawarma", Name: "Chicken Shawarma", Price: Priced(5500), IsAvailable: true},
	{ID: "29", Category: "shawarma", Name: "Yummy Special Shawarma", Price: Priced(6000), Description: "Chicken + Beef + Suya", IsAvailable: true},
	{ID: "30", Category: "drinks", Name: "Water", Price: Priced(300), IsAvailable: true},
	{ID: "31", Category: "drinks", Name: "Soda (Coke/Fanta)", Price: Priced(500), IsAvailable: true},
	{ID: "32", Category: "drinks", Name: "Hollandia Big", Price: Priced(1900), IsAvailable: true},
	{ID: "33", Category: "drinks", Name: "Parfait", Price: Priced(3000), IsAvailable: true},
}
