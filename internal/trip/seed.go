package trip

// seedActivity builds a seed entry with a stable id.
func seedActivity(id, start, title, description, location string, category Category, lat, lng float64, duration int, notes, price string) Activity {
	return Activity{
		ID:              id,
		StartTime:       start,
		Title:           title,
		Description:     description,
		LocationName:    location,
		Category:        category,
		Coordinates:     &Coordinates{Lat: lat, Lng: lng},
		DurationMinutes: duration,
		Notes:           notes,
		Price:           price,
	}
}

// SeedDays returns the built-in December London itinerary used when the
// store is empty.
func SeedDays() []DaySchedule {
	return []DaySchedule{
		{
			Date:  "2025-12-13",
			Label: "Day 1",
			Theme: "Arrival & Settling In",
			Activities: []Activity{
				seedActivity("1-1", "14:00", "Arrive at Heathrow (LHR)",
					"Take the Heathrow Express to Paddington Station.",
					"Heathrow Airport", CategoryFlight, 51.4700, -0.4543, 90, "", ""),
				seedActivity("1-2", "16:00", "Hotel check-in",
					"Drop the bags and freshen up.",
					"Central London Hotel", CategoryLodging, 51.5074, -0.1278, 60, "Booking ref #12345", ""),
				seedActivity("1-3", "18:30", "Welcome dinner: classic pub",
					"Fish and chips to kick off the trip.",
					"The Churchill Arms", CategoryFood, 51.5069, -0.1944, 120, "", ""),
			},
		},
		{
			Date:  "2025-12-14",
			Label: "Day 2",
			Theme: "Classic London Landmarks",
			Activities: []Activity{
				seedActivity("2-1", "09:00", "Big Ben & Houses of Parliament",
					"Walking tour around Westminster.",
					"Big Ben", CategorySightseeing, 51.5007, -0.1246, 90, "", ""),
				seedActivity("2-2", "11:00", "London Eye",
					"Tickets booked for the 11:15 slot.",
					"London Eye", CategorySightseeing, 51.5033, -0.1195, 60, "", "£35 pp"),
				seedActivity("2-3", "13:00", "Lunch at Southbank Centre",
					"Food market with plenty of options.",
					"Southbank Centre Food Market", CategoryFood, 51.5060, -0.1158, 90, "", ""),
				seedActivity("2-4", "15:00", "Tate Modern",
					"Contemporary art museum.",
					"Tate Modern", CategorySightseeing, 51.5076, -0.0994, 120, "", ""),
			},
		},
		{
			Date:  "2025-12-15",
			Label: "Day 3",
			Theme: "History & Culture",
			Activities: []Activity{
				seedActivity("3-1", "10:00", "The British Museum",
					"See the Rosetta Stone and the Elgin Marbles.",
					"The British Museum", CategorySightseeing, 51.5194, -0.1270, 180, "", ""),
				seedActivity("3-2", "14:00", "Covent Garden",
					"Street performers and shopping.",
					"Covent Garden Market", CategoryShopping, 51.5117, -0.1240, 120, "", ""),
				seedActivity("3-3", "19:30", "West End musical",
					"The Lion King at the Lyceum Theatre.",
					"Lyceum Theatre", CategoryEvent, 51.5113, -0.1194, 180, "", ""),
			},
		},
		{
			Date:  "2025-12-16",
			Label: "Day 4",
			Theme: "Royal & Luxurious",
			Activities: []Activity{
				seedActivity("4-1", "10:00", "Buckingham Palace",
					"Changing of the Guard (check the day's schedule).",
					"Buckingham Palace", CategorySightseeing, 51.5014, -0.1419, 90, "", ""),
				seedActivity("4-2", "13:00", "Harrods",
					"Luxury food halls and gift shopping.",
					"Harrods", CategoryShopping, 51.4994, -0.1632, 120, "", ""),
				seedActivity("4-3", "16:00", "Hyde Park Winter Wonderland",
					"Christmas market, rides, and mulled wine.",
					"Hyde Park", CategoryEvent, 51.5073, -0.1657, 180, "", ""),
			},
		},
		{
			Date:  "2025-12-17",
			Label: "Day 5",
			Theme: "The City & Tower Bridge",
			Activities: []Activity{
				seedActivity("5-1", "09:30", "Tower of London",
					"Crown Jewels and the White Tower.",
					"Tower of London", CategorySightseeing, 51.5081, -0.0759, 120, "", ""),
				seedActivity("5-2", "12:00", "Tower Bridge",
					"Glass walkway high above the Thames.",
					"Tower Bridge", CategorySightseeing, 51.5055, -0.0754, 60, "", ""),
				seedActivity("5-3", "13:30", "Borough Market",
					"Lunch at the famous food market.",
					"Borough Market", CategoryFood, 51.5054, -0.0909, 90, "", ""),
				seedActivity("5-4", "18:00", "The Shard",
					"Drinks with a view at Shard View.",
					"The Shard", CategoryEvent, 51.5045, -0.0865, 90, "", ""),
			},
		},
		{
			Date:  "2025-12-18",
			Label: "Day 6",
			Theme: "Exploring Shoreditch",
			Activities: []Activity{
				seedActivity("6-1", "11:00", "Street art tour",
					"Graffiti art around Brick Lane.",
					"Brick Lane", CategorySightseeing, 51.5222, -0.0718, 90, "", ""),
				seedActivity("6-2", "13:00", "Beigel Bake",
					"The famous salt beef beigel.",
					"Beigel Bake", CategoryFood, 51.5245, -0.0716, 60, "", ""),
				seedActivity("6-3", "15:00", "Old Spitalfields Market",
					"Vintage clothes and handmade crafts.",
					"Old Spitalfields Market", CategoryShopping, 51.5198, -0.0768, 120, "", ""),
			},
		},
		{
			Date:  "2025-12-19",
			Label: "Day 7",
			Theme: "Free Day / Backup Plans",
			Activities: []Activity{
				seedActivity("7-1", "10:00", "Free exploration",
					"Revisit a favourite spot or pick a backup plan.",
					"London", CategorySightseeing, 51.5072, -0.1276, 360, "", ""),
			},
		},
		{
			Date:  "2025-12-20",
			Label: "Day 8",
			Theme: "Heading Home",
			Activities: []Activity{
				seedActivity("8-1", "09:00", "Hotel check-out",
					"Double-check nothing is left behind.",
					"Central London Hotel", CategoryLodging, 51.5074, -0.1278, 60, "", ""),
				seedActivity("8-2", "11:00", "Heathrow Express",
					"Head to the airport for the flight home.",
					"Paddington Station", CategoryTransport, 51.5154, -0.1755, 60, "", ""),
			},
		},
	}
}
