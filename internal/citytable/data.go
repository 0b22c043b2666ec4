package citytable

// defaultCities are the larger German cities with their leading ZIP digits,
// dialling code and approximate city-centre coordinates.
var defaultCities = []City{
	{Name: "Berlin", State: "Berlin", ZipPrefix: "101", AreaCode: "30", Lat: 52.5200, Lon: 13.4050},
	{Name: "Hamburg", State: "Hamburg", ZipPrefix: "201", AreaCode: "40", Lat: 53.5511, Lon: 9.9937},
	{Name: "München", State: "Bayern", ZipPrefix: "803", AreaCode: "89", Lat: 48.1351, Lon: 11.5820},
	{Name: "Köln", State: "Nordrhein-Westfalen", ZipPrefix: "506", AreaCode: "221", Lat: 50.9375, Lon: 6.9603},
	{Name: "Frankfurt am Main", State: "Hessen", ZipPrefix: "603", AreaCode: "69", Lat: 50.1109, Lon: 8.6821},
	{Name: "Stuttgart", State: "Baden-Württemberg", ZipPrefix: "701", AreaCode: "711", Lat: 48.7758, Lon: 9.1829},
	{Name: "Düsseldorf", State: "Nordrhein-Westfalen", ZipPrefix: "402", AreaCode: "211", Lat: 51.2217, Lon: 6.7762},
	{Name: "Dortmund", State: "Nordrhein-Westfalen", ZipPrefix: "441", AreaCode: "231", Lat: 51.5145, Lon: 7.4660},
	{Name: "Essen", State: "Nordrhein-Westfalen", ZipPrefix: "451", AreaCode: "201", Lat: 51.4556, Lon: 7.0116},
	{Name: "Leipzig", State: "Sachsen", ZipPrefix: "041", AreaCode: "341", Lat: 51.3397, Lon: 12.3731},
	{Name: "Bremen", State: "Bremen", ZipPrefix: "281", AreaCode: "421", Lat: 53.0793, Lon: 8.8017},
	{Name: "Dresden", State: "Sachsen", ZipPrefix: "010", AreaCode: "351", Lat: 51.0504, Lon: 13.7373},
	{Name: "Hannover", State: "Niedersachsen", ZipPrefix: "301", AreaCode: "511", Lat: 52.3759, Lon: 9.7320},
	{Name: "Nürnberg", State: "Bayern", ZipPrefix: "904", AreaCode: "911", Lat: 49.4521, Lon: 11.0767},
	{Name: "Duisburg", State: "Nordrhein-Westfalen", ZipPrefix: "470", AreaCode: "203", Lat: 51.4344, Lon: 6.7623},
	{Name: "Bochum", State: "Nordrhein-Westfalen", ZipPrefix: "447", AreaCode: "234", Lat: 51.4818, Lon: 7.2162},
	{Name: "Wuppertal", State: "Nordrhein-Westfalen", ZipPrefix: "421", AreaCode: "202", Lat: 51.2562, Lon: 7.1508},
	{Name: "Bielefeld", State: "Nordrhein-Westfalen", ZipPrefix: "336", AreaCode: "521", Lat: 52.0302, Lon: 8.5325},
	{Name: "Bonn", State: "Nordrhein-Westfalen", ZipPrefix: "531", AreaCode: "228", Lat: 50.7374, Lon: 7.0982},
	{Name: "Münster", State: "Nordrhein-Westfalen", ZipPrefix: "481", AreaCode: "251", Lat: 51.9607, Lon: 7.6261},
	{Name: "Mannheim", State: "Baden-Württemberg", ZipPrefix: "681", AreaCode: "621", Lat: 49.4875, Lon: 8.4660},
	{Name: "Karlsruhe", State: "Baden-Württemberg", ZipPrefix: "761", AreaCode: "721", Lat: 49.0069, Lon: 8.4037},
	{Name: "Augsburg", State: "Bayern", ZipPrefix: "861", AreaCode: "821", Lat: 48.3705, Lon: 10.8978},
	{Name: "Wiesbaden", State: "Hessen", ZipPrefix: "651", AreaCode: "611", Lat: 50.0782, Lon: 8.2398},
	{Name: "Kiel", State: "Schleswig-Holstein", ZipPrefix: "241", AreaCode: "431", Lat: 54.3233, Lon: 10.1228},
	{Name: "Rostock", State: "Mecklenburg-Vorpommern", ZipPrefix: "180", AreaCode: "381", Lat: 54.0924, Lon: 12.0991},
	{Name: "Magdeburg", State: "Sachsen-Anhalt", ZipPrefix: "391", AreaCode: "391", Lat: 52.1205, Lon: 11.6276},
	{Name: "Erfurt", State: "Thüringen", ZipPrefix: "990", AreaCode: "361", Lat: 50.9848, Lon: 11.0299},
	{Name: "Mainz", State: "Rheinland-Pfalz", ZipPrefix: "551", AreaCode: "6131", Lat: 49.9929, Lon: 8.2473},
	{Name: "Saarbrücken", State: "Saarland", ZipPrefix: "661", AreaCode: "681", Lat: 49.2402, Lon: 6.9969},
	{Name: "Potsdam", State: "Brandenburg", ZipPrefix: "144", AreaCode: "331", Lat: 52.3906, Lon: 13.0645},
	{Name: "Freiburg im Breisgau", State: "Baden-Württemberg", ZipPrefix: "791", AreaCode: "761", Lat: 47.9990, Lon: 7.8421},
}
