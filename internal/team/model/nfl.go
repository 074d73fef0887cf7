package model

// NFLTeams is the canonical league table used to seed the teams collection.
// Logo paths point at the static assets served by the front end.
func NFLTeams() []Team {
	return []Team{
		// AFC East
		{Code: "BUF", Name: "Bills", City: "Buffalo", Conference: "AFC", Division: "East", PrimaryColor: "#00338D", SecondaryColor: "#C60C30", LogoPath: "/logos/buf.svg"},
		{Code: "MIA", Name: "Dolphins", City: "Miami", Conference: "AFC", Division: "East", PrimaryColor: "#008E97", SecondaryColor: "#FC4C02", LogoPath: "/logos/mia.svg"},
		{Code: "NE", Name: "Patriots", City: "New England", Conference: "AFC", Division: "East", PrimaryColor: "#002244", SecondaryColor: "#C60C30", LogoPath: "/logos/ne.svg"},
		{Code: "NYJ", Name: "Jets", City: "New York", Conference: "AFC", Division: "East", PrimaryColor: "#125740", SecondaryColor: "#FFFFFF", LogoPath: "/logos/nyj.svg"},
		// AFC North
		{Code: "BAL", Name: "Ravens", City: "Baltimore", Conference: "AFC", Division: "North", PrimaryColor: "#241773", SecondaryColor: "#9E7C0C", LogoPath: "/logos/bal.svg"},
		{Code: "CIN", Name: "Bengals", City: "Cincinnati", Conference: "AFC", Division: "North", PrimaryColor: "#FB4F14", SecondaryColor: "#000000", LogoPath: "/logos/cin.svg"},
		{Code: "CLE", Name: "Browns", City: "Cleveland", Conference: "AFC", Division: "North", PrimaryColor: "#311D00", SecondaryColor: "#FF3C00", LogoPath: "/logos/cle.svg"},
		{Code: "PIT", Name: "Steelers", City: "Pittsburgh", Conference: "AFC", Division: "North", PrimaryColor: "#FFB612", SecondaryColor: "#101820", LogoPath: "/logos/pit.svg"},
		// AFC South
		{Code: "HOU", Name: "Texans", City: "Houston", Conference: "AFC", Division: "South", PrimaryColor: "#03202F", SecondaryColor: "#A71930", LogoPath: "/logos/hou.svg"},
		{Code: "IND", Name: "Colts", City: "Indianapolis", Conference: "AFC", Division: "South", PrimaryColor: "#002C5F", SecondaryColor: "#A2AAAD", LogoPath: "/logos/ind.svg"},
		{Code: "JAX", Name: "Jaguars", City: "Jacksonville", Conference: "AFC", Division: "South", PrimaryColor: "#006778", SecondaryColor: "#9F792C", LogoPath: "/logos/jax.svg"},
		{Code: "TEN", Name: "Titans", City: "Tennessee", Conference: "AFC", Division: "South", PrimaryColor: "#0C2340", SecondaryColor: "#4B92DB", LogoPath: "/logos/ten.svg"},
		// AFC West
		{Code: "DEN", Name: "Broncos", City: "Denver", Conference: "AFC", Division: "West", PrimaryColor: "#FB4F14", SecondaryColor: "#002244", LogoPath: "/logos/den.svg"},
		{Code: "KC", Name: "Chiefs", City: "Kansas City", Conference: "AFC", Division: "West", PrimaryColor: "#E31837", SecondaryColor: "#FFB81C", LogoPath: "/logos/kc.svg"},
		{Code: "LV", Name: "Raiders", City: "Las Vegas", Conference: "AFC", Division: "West", PrimaryColor: "#000000", SecondaryColor: "#A5ACAF", LogoPath: "/logos/lv.svg"},
		{Code: "LAC", Name: "Chargers", City: "Los Angeles", Conference: "AFC", Division: "West", PrimaryColor: "#0080C6", SecondaryColor: "#FFC20E", LogoPath: "/logos/lac.svg"},
		// NFC East
		{Code: "DAL", Name: "Cowboys", City: "Dallas", Conference: "NFC", Division: "East", PrimaryColor: "#003594", SecondaryColor: "#869397", LogoPath: "/logos/dal.svg"},
		{Code: "NYG", Name: "Giants", City: "New York", Conference: "NFC", Division: "East", PrimaryColor: "#0B2265", SecondaryColor: "#A71930", LogoPath: "/logos/nyg.svg"},
		{Code: "PHI", Name: "Eagles", City: "Philadelphia", Conference: "NFC", Division: "East", PrimaryColor: "#004C54", SecondaryColor: "#A5ACAF", LogoPath: "/logos/phi.svg"},
		{Code: "WAS", Name: "Commanders", City: "Washington", Conference: "NFC", Division: "East", PrimaryColor: "#5A1414", SecondaryColor: "#FFB612", LogoPath: "/logos/was.svg"},
		// NFC North
		{Code: "CHI", Name: "Bears", City: "Chicago", Conference: "NFC", Division: "North", PrimaryColor: "#0B162A", SecondaryColor: "#C83803", LogoPath: "/logos/chi.svg"},
		{Code: "DET", Name: "Lions", City: "Detroit", Conference: "NFC", Division: "North", PrimaryColor: "#0076B6", SecondaryColor: "#B0B7BC", LogoPath: "/logos/det.svg"},
		{Code: "GB", Name: "Packers", City: "Green Bay", Conference: "NFC", Division: "North", PrimaryColor: "#203731", SecondaryColor: "#FFB612", LogoPath: "/logos/gb.svg"},
		{Code: "MIN", Name: "Vikings", City: "Minnesota", Conference: "NFC", Division: "North", PrimaryColor: "#4F2683", SecondaryColor: "#FFC62F", LogoPath: "/logos/min.svg"},
		// NFC South
		{Code: "ATL", Name: "Falcons", City: "Atlanta", Conference: "NFC", Division: "South", PrimaryColor: "#A71930", SecondaryColor: "#000000", LogoPath: "/logos/atl.svg"},
		{Code: "CAR", Name: "Panthers", City: "Carolina", Conference: "NFC", Division: "South", PrimaryColor: "#0085CA", SecondaryColor: "#101820", LogoPath: "/logos/car.svg"},
		{Code: "NO", Name: "Saints", City: "New Orleans", Conference: "NFC", Division: "South", PrimaryColor: "#D3BC8D", SecondaryColor: "#101820", LogoPath: "/logos/no.svg"},
		{Code: "TB", Name: "Buccaneers", City: "Tampa Bay", Conference: "NFC", Division: "South", PrimaryColor: "#D50A0A", SecondaryColor: "#FF7900", LogoPath: "/logos/tb.svg"},
		// NFC West
		{Code: "ARI", Name: "Cardinals", City: "Arizona", Conference: "NFC", Division: "West", PrimaryColor: "#97233F", SecondaryColor: "#000000", LogoPath: "/logos/ari.svg"},
		{Code: "LAR", Name: "Rams", City: "Los Angeles", Conference: "NFC", Division: "West", PrimaryColor: "#003594", SecondaryColor: "#FFA300", LogoPath: "/logos/lar.svg"},
		{Code: "SF", Name: "49ers", City: "San Francisco", Conference: "NFC", Division: "West", PrimaryColor: "#AA0000", SecondaryColor: "#B3995D", LogoPath: "/logos/sf.svg"},
		{Code: "SEA", Name: "Seahawks", City: "Seattle", Conference: "NFC", Division: "West", PrimaryColor: "#002244", SecondaryColor: "#69BE28", LogoPath: "/logos/sea.svg"},
	}
}
