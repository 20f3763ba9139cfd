package teamname

// Alias ties a canonical team name to the spellings seen across sources:
// Serbian Latin and Cyrillic transliterations, abbreviations and long forms.
type Alias struct {
	Canonical string
	Names     []string
}

// DefaultAliases covers the competitions retained by the league filter.
var DefaultAliases = []Alias{
	// England - Premier League
	{"Arsenal", []string{"Arsenal", "Арсенал"}},
	{"Aston Villa", []string{"Aston Vila", "A. Villa", "Aston Villa"}},
	{"Bournemouth", []string{"Bornmut", "Bournemouth", "AFC Bournemouth"}},
	{"Brentford", []string{"Brentford", "Brentfod"}},
	{"Brighton", []string{"Brajton", "Brighton", "Brighton & Hove Albion"}},
	{"Chelsea", []string{"Čelsi", "Chelsea", "Челси"}},
	{"Crystal Palace", []string{"Kristal Palas", "Crystal Palace", "K. Palace"}},
	{"Everton", []string{"Everton", "Евертон"}},
	{"Fulham", []string{"Fulam", "Fulham"}},
	{"Ipswich", []string{"Ipswich", "Ipsvič", "Ipswich Town"}},
	{"Leicester", []string{"Lester", "Leicester", "Leicester City"}},
	{"Liverpool", []string{"Liverpul", "Liverpool", "Ливерпул"}},
	{"Manchester City", []string{"Mančester Siti", "Man City", "Manchester City", "Man. City"}},
	{"Manchester Utd", []string{"Mančester Junajted", "Man Utd", "Manchester United", "Man. United", "Man United"}},
	{"Newcastle", []string{"Njukasl", "Newcastle", "Newcastle United", "Newcastle Utd"}},
	{"Nott'm Forest", []string{"Notingem Forest", "Nottingham Forest", "Nott'm Forest", "Nottingham"}},
	{"Southampton", []string{"Sautempton", "Southampton"}},
	{"Tottenham", []string{"Totenhem", "Tottenham", "Tottenham Hotspur", "Spurs"}},
	{"West Ham", []string{"Vest Hem", "West Ham", "West Ham United"}},
	{"Wolves", []string{"Vulverhempton", "Wolverhampton", "Wolves", "Wolverhampton Wanderers"}},

	// England - Championship
	{"Blackburn", []string{"Blekbern", "Blackburn", "Blackburn Rovers"}},
	{"Bristol City", []string{"Bristol Siti", "Bristol City"}},
	{"Burnley", []string{"Bernli", "Burnley"}},
	{"Cardiff", []string{"Kardif", "Cardiff", "Cardiff City"}},
	{"Coventry", []string{"Koventri", "Coventry", "Coventry City"}},
	{"Derby", []string{"Derbi", "Derby", "Derby County"}},
	{"Hull", []string{"Hal", "Hull", "Hull City"}},
	{"Leeds", []string{"Lids", "Leeds", "Leeds United"}},
	{"Luton", []string{"Luton", "Luton Town"}},
	{"Middlesbrough", []string{"Midlzbro", "Middlesbrough"}},
	{"Millwall", []string{"Milvol", "Millwall"}},
	{"Norwich", []string{"Norvič", "Norwich", "Norwich City"}},
	{"Oxford Utd", []string{"Oksford", "Oxford", "Oxford United"}},
	{"Plymouth", []string{"Plimut", "Plymouth", "Plymouth Argyle"}},
	{"Portsmouth", []string{"Portsmut", "Portsmouth"}},
	{"Preston", []string{"Preston", "Preston North End"}},
	{"QPR", []string{"QPR", "Queens Park Rangers"}},
	{"Sheffield Utd", []string{"Šefild Junajted", "Sheffield United", "Sheffield Utd"}},
	{"Sheffield Wed", []string{"Šefild Venzdej", "Sheffield Wednesday", "Sheffield Wed"}},
	{"Stoke", []string{"Stouk", "Stoke", "Stoke City"}},
	{"Sunderland", []string{"Sanderlend", "Sunderland"}},
	{"Swansea", []string{"Svonsi", "Swansea", "Swansea City"}},
	{"Watford", []string{"Votford", "Watford"}},
	{"West Brom", []string{"Vest Bromvič", "West Brom", "West Bromwich Albion", "WBA"}},

	// Germany - Bundesliga
	{"Bayern Munich", []string{"Bajern", "Bayern", "Bayern Minhen", "Bayern München", "FC Bayern"}},
	{"Dortmund", []string{"Dortmund", "Borussia Dortmund", "BVB"}},
	{"RB Leipzig", []string{"Lajpcig", "Leipzig", "RB Leipzig", "RasenBallsport Leipzig"}},
	{"Leverkusen", []string{"Leverkuzen", "Bayer Leverkusen", "B. Leverkusen"}},
	{"Eintracht Frankfurt", []string{"Ajntraht Frankfurt", "Frankfurt", "Eintracht Frankfurt", "E. Frankfurt"}},
	{"Freiburg", []string{"Frajburg", "Freiburg", "SC Freiburg"}},
	{"Hoffenheim", []string{"Hofenhajm", "Hoffenheim", "TSG Hoffenheim"}},
	{"Mainz", []string{"Majnc", "Mainz", "Mainz 05"}},
	{"Monchengladbach", []string{"Menhengladbah", "Borussia Monchengladbach", "B. Monchengladbach", "Gladbach"}},
	{"Stuttgart", []string{"Štutgart", "Stuttgart", "VfB Stuttgart"}},
	{"Union Berlin", []string{"Union Berlin", "FC Union Berlin"}},
	{"Werder Bremen", []string{"Verder Bremen", "Werder Bremen", "Bremen"}},
	{"Wolfsburg", []string{"Volfsburg", "Wolfsburg", "VfL Wolfsburg"}},
	{"Augsburg", []string{"Augzburg", "Augsburg", "FC Augsburg"}},
	{"Bochum", []string{"Bohum", "Bochum", "VfL Bochum"}},
	{"Heidenheim", []string{"Hajdenhajm", "Heidenheim", "FC Heidenheim"}},
	{"Holstein Kiel", []string{"Holštajn Kil", "Holstein Kiel", "Kiel"}},
	{"St. Pauli", []string{"Sankt Pauli", "St. Pauli", "FC St. Pauli"}},

	// Spain - La Liga
	{"Real Madrid", []string{"Real Madrid", "R. Madrid", "Реал Мадрид"}},
	{"Barcelona", []string{"Barselona", "Barcelona", "FC Barcelona", "Барселона"}},
	{"Atletico Madrid", []string{"Atletiko Madrid", "Atletico", "Atletico Madrid", "Atl. Madrid"}},
	{"Sevilla", []string{"Sevilja", "Sevilla", "Севиља"}},
	{"Real Sociedad", []string{"Real Sosijedad", "Real Sociedad", "R. Sociedad"}},
	{"Real Betis", []string{"Real Betis", "Betis", "R. Betis"}},
	{"Villarreal", []string{"Viljareal", "Villarreal", "Villarreal CF"}},
	{"Athletic Bilbao", []string{"Atletik Bilbao", "Athletic", "Athletic Club", "Bilbao"}},
	{"Valencia", []string{"Valensija", "Valencia", "Valencia CF"}},
	{"Osasuna", []string{"Osasuna", "CA Osasuna"}},
	{"Celta Vigo", []string{"Selta Vigo", "Celta", "Celta Vigo", "RC Celta"}},
	{"Rayo Vallecano", []string{"Rajo Valjekano", "Rayo", "Rayo Vallecano"}},
	{"Mallorca", []string{"Majorka", "Mallorca", "RCD Mallorca"}},
	{"Getafe", []string{"Hetafe", "Getafe", "Getafe CF"}},
	{"Alaves", []string{"Alaves", "Deportivo Alaves"}},
	{"Girona", []string{"Hirona", "Girona", "Girona FC"}},
	{"Las Palmas", []string{"Las Palmas", "UD Las Palmas"}},
	{"Leganes", []string{"Leganes", "CD Leganes"}},
	{"Espanyol", []string{"Espanjol", "Espanyol", "RCD Espanyol"}},
	{"Valladolid", []string{"Valjadolid", "Valladolid", "Real Valladolid"}},

	// Italy - Serie A
	{"Juventus", []string{"Juventus", "Juve", "Јувентус"}},
	{"Inter", []string{"Inter", "Inter Milan", "Internazionale", "Интер"}},
	{"AC Milan", []string{"Milan", "AC Milan", "Милан"}},
	{"Napoli", []string{"Napoli", "SSC Napoli", "Наполи"}},
	{"Roma", []string{"Roma", "AS Roma", "Рома"}},
	{"Lazio", []string{"Lacio", "Lazio", "SS Lazio", "Лацио"}},
	{"Atalanta", []string{"Atalanta", "Аталанта"}},
	{"Fiorentina", []string{"Fiorentina", "ACF Fiorentina", "Фиорентина"}},
	{"Bologna", []string{"Bolonja", "Bologna", "FC Bologna"}},
	{"Torino", []string{"Torino", "Toрино"}},
	{"Udinese", []string{"Udineze", "Udinese"}},
	{"Empoli", []string{"Empoli", "FC Empoli"}},
	{"Sassuolo", []string{"Sasuolo", "Sassuolo"}},
	{"Genoa", []string{"Đenova", "Genoa", "Genoa CFC"}},
	{"Cagliari", []string{"Kaljari", "Cagliari"}},
	{"Verona", []string{"Verona", "Hellas Verona"}},
	{"Lecce", []string{"Leče", "Lecce", "US Lecce"}},
	{"Monza", []string{"Monca", "Monza", "AC Monza"}},
	{"Parma", []string{"Parma", "Parma Calcio"}},
	{"Como", []string{"Komo", "Como", "Como 1907"}},
	{"Venezia", []string{"Venecija", "Venezia", "Venezia FC"}},

	// France - Ligue 1
	{"PSG", []string{"PSG", "Paris Saint-Germain", "Paris SG", "Пари Сен Жермен"}},
	{"Marseille", []string{"Marsej", "Marseille", "Olympique Marseille", "OM"}},
	{"Lyon", []string{"Lion", "Lyon", "Olympique Lyon", "OL"}},
	{"Monaco", []string{"Monako", "Monaco", "AS Monaco"}},
	{"Lille", []string{"Lil", "Lille", "LOSC Lille", "LOSC"}},
	{"Lens", []string{"Lans", "Lens", "RC Lens"}},
	{"Nice", []string{"Nica", "Nice", "OGC Nice"}},
	{"Rennes", []string{"Ren", "Rennes", "Stade Rennais"}},
	{"Strasbourg", []string{"Strazbur", "Strasbourg", "RC Strasbourg"}},
	{"Nantes", []string{"Nant", "Nantes", "FC Nantes"}},
	{"Montpellier", []string{"Monpelje", "Montpellier", "Montpellier HSC"}},
	{"Toulouse", []string{"Tuluz", "Toulouse", "Toulouse FC"}},
	{"Brest", []string{"Brest", "Stade Brestois"}},
	{"Reims", []string{"Rems", "Reims", "Stade de Reims"}},
	{"Le Havre", []string{"Le Avr", "Le Havre", "Le Havre AC"}},
	{"Auxerre", []string{"Oser", "Auxerre", "AJ Auxerre"}},
	{"Angers", []string{"Anže", "Angers", "Angers SCO"}},
	{"St Etienne", []string{"Sent Etjen", "Saint-Etienne", "St Etienne", "AS Saint-Etienne"}},

	// Belgium - Jupiler Pro League
	{"Club Brugge", []string{"Klub Briž", "Club Brugge", "Club Bruges"}},
	{"Anderlecht", []string{"Anderlecht", "RSC Anderlecht"}},
	{"Genk", []string{"Genk", "KRC Genk"}},
	{"Gent", []string{"Gent", "KAA Gent"}},
	{"Antwerp", []string{"Antverp", "Antwerp", "Royal Antwerp"}},
	{"Standard Liege", []string{"Standard Liež", "Standard Liege", "Standard"}},
	{"Union SG", []string{"Union SG", "Union Saint-Gilloise", "Union St. Gilloise"}},
	{"Cercle Brugge", []string{"Serkl Briž", "Cercle Brugge", "Cercle Bruges"}},
	{"Mechelen", []string{"Mehelen", "Mechelen", "KV Mechelen"}},
	{"Charleroi", []string{"Šarlroa", "Charleroi", "Sporting Charleroi"}},
	{"Westerlo", []string{"Vesterlo", "Westerlo", "KVC Westerlo"}},
	{"St. Truiden", []string{"Sint Trajden", "St. Truiden", "STVV"}},
	{"Kortrijk", []string{"Kortrajk", "Kortrijk", "KV Kortrijk"}},
	{"OH Leuven", []string{"OH Leven", "OH Leuven", "Oud-Heverlee Leuven"}},
	{"Beerschot", []string{"Biršot", "Beerschot"}},
	{"Dender", []string{"Dender", "FCV Dender"}},

	// Netherlands - Eredivisie
	{"Ajax", []string{"Ajaks", "Ajax", "AFC Ajax"}},
	{"PSV", []string{"PSV", "PSV Eindhoven"}},
	{"Feyenoord", []string{"Fajenord", "Feyenoord"}},
	{"AZ", []string{"AZ", "AZ Alkmaar"}},
	{"Twente", []string{"Tvente", "Twente", "FC Twente"}},
	{"Utrecht", []string{"Utreht", "Utrecht", "FC Utrecht"}},
	{"Heerenveen", []string{"Herenveen", "Heerenveen", "SC Heerenveen"}},
	{"Groningen", []string{"Groningen", "FC Groningen"}},
	{"Vitesse", []string{"Vitese", "Vitesse"}},
	{"Sparta Rotterdam", []string{"Sparta Roterdam", "Sparta Rotterdam", "Sparta"}},
	{"NEC", []string{"NEC", "NEC Nijmegen"}},
	{"Go Ahead Eagles", []string{"Go Ahed Igls", "Go Ahead Eagles", "Go Ahead"}},
	{"Fortuna Sittard", []string{"Fortuna Sitard", "Fortuna Sittard"}},
	{"RKC Waalwijk", []string{"RKC Valvajk", "RKC Waalwijk", "RKC"}},
	{"Heracles", []string{"Herakles", "Heracles", "Heracles Almelo"}},
	{"Willem II", []string{"Vilem II", "Willem II"}},
	{"Almere City", []string{"Almer Siti", "Almere City", "Almere City FC"}},
	{"NAC Breda", []string{"NAC Breda", "NAC"}},

	// Switzerland - Super League
	{"Young Boys", []string{"Jang Bojs", "Young Boys", "BSC Young Boys"}},
	{"Basel", []string{"Bazel", "Basel", "FC Basel"}},
	{"Zurich", []string{"Cirih", "Zurich", "FC Zurich", "Zürich"}},
	{"Servette", []string{"Servet", "Servette", "Servette FC"}},
	{"Lugano", []string{"Lugano", "FC Lugano"}},
	{"St. Gallen", []string{"Sankt Galen", "St. Gallen", "FC St. Gallen"}},
	{"Lausanne", []string{"Lozana", "Lausanne", "Lausanne Sport"}},
	{"Luzern", []string{"Lucern", "Luzern", "FC Luzern"}},
	{"Sion", []string{"Sion", "FC Sion"}},
	{"Grasshoppers", []string{"Grashopersi", "Grasshoppers", "Grasshopper Club"}},
	{"Winterthur", []string{"Vintertir", "Winterthur", "FC Winterthur"}},
	{"Yverdon", []string{"Iverdon", "Yverdon", "Yverdon Sport"}},
}
