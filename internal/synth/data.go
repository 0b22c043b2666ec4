package synth

var maleFirstNames = []string{
	"Lukas", "Max", "Paul", "Jonas", "Leon", "Felix", "Finn", "Ben", "Moritz",
	"Noah", "Johannes", "Tim", "Julian", "David", "Matthias", "Niklas", "Elias",
	"Alexander", "Tobias", "Samuel", "Jakob", "Fabian", "Andreas", "Markus",
	"Christian", "Stefan", "Simon", "Benjamin", "Daniel", "Michael", "Johann",
	"Kai", "Martin", "Tom", "Nico", "Patrick", "Sebastian", "Bastian", "Hannes",
	"Rafael", "Georg", "Arthur", "Lennard", "Oskar", "Jan", "Jürgen", "Günter",
	"Björn", "Jörg", "Uwe",
}

var femaleFirstNames = []string{
	"Anna", "Sophie", "Marie", "Emma", "Lena", "Laura", "Mia", "Hannah", "Lina",
	"Lea", "Sarah", "Charlotte", "Clara", "Amelie", "Lilli", "Emily", "Nina",
	"Ella", "Katharina", "Isabella", "Julia", "Lisa", "Franziska", "Marlene",
	"Greta", "Eva", "Luisa", "Paula", "Johanna", "Carla", "Leonie", "Lara",
	"Alina", "Klara", "Victoria", "Elena", "Merle", "Maja", "Selina", "Antonia",
	"Tessa", "Nadine", "Vanessa", "Daniela", "Verena", "Bettina", "Jana",
	"Maike", "Melanie", "Käthe", "Jördis", "Zoë",
}

var lastNames = []string{
	"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner",
	"Becker", "Hoffmann", "Schulz", "Bauer", "Koch", "Richter", "Klein", "Wolf",
	"Schröder", "Neumann", "Schwarz", "Zimmermann", "Braun", "Schmitt",
	"Hartmann", "Lange", "Werner", "Krause", "Peters", "Jung", "Roth", "Voigt",
	"Berger", "Mayer", "Fuchs", "Schulte", "Böhm", "Weiß", "Bergmann", "Kraus",
	"Vogel", "Lang", "Ziegler", "Sauer", "Weidner", "Meyerhoff", "Weigel",
	"Wirth", "Krämer", "Röder", "Heinrich", "Hahn", "Böttcher", "Schulze",
	"Groß", "Köhler", "Günther",
}

var streetNames = []string{
	"Hauptstraße", "Schulstraße", "Gartenstraße", "Bahnhofstraße", "Dorfstraße",
	"Bergstraße", "Birkenweg", "Lindenstraße", "Kirchstraße", "Waldstraße",
	"Ringstraße", "Schillerstraße", "Goethestraße", "Amselweg", "Jahnstraße",
	"Buchenweg", "Wiesenweg", "Mühlenweg", "Rosenstraße", "Friedhofstraße",
	"Am Sportplatz", "Feldstraße", "Eichendorffstraße", "Blumenstraße",
	"Mozartstraße", "Beethovenstraße", "Lessingstraße", "Kastanienallee",
	"Marktplatz", "Uhlandstraße", "Tannenweg", "Parkstraße", "Mittelweg",
	"Königstraße", "Friedrichstraße",
}

var emailProviders = []string{
	"gmx.de", "web.de", "t-online.de", "yahoo.de", "freenet.de", "aol.de",
	"mail.de", "tutanota.de", "hotmail.de", "outlook.de", "1und1.de",
	"posteo.de", "googlemail.com", "mailbox.org", "arcor.de", "gmx.net",
	"versatel.de", "email.de",
}

var mobilePrefixes = []string{
	"151", "152", "157", "159", "160", "162", "163", "170", "171", "172",
	"173", "174", "175", "176", "177", "178", "179",
}

var products = []string{
	"Hose", "T-Shirt", "Socken", "Jacke", "Schuhe", "Kleid", "Bluse", "Rock",
	"Pullover", "Jeans", "Shorts", "Mantel", "Anzug", "Mütze", "Schal",
	"Handschuhe", "Unterwäsche", "Badeanzug", "Jogginghose", "Hemd",
	"Polo-Shirt", "Pyjama", "Weste", "Leggings", "Strickjacke", "Overall",
	"Trainingsanzug", "Strumpfhose", "Sandalen", "Stiefel", "Sneaker",
	"Cargohose", "Blazer", "Gürtel", "Krawatte", "Dirndl", "Regenjacke",
	"Wanderstiefel", "Kapuzenpullover", "Chinos", "Hausschuhe", "Badehose",
	"Sonnenhut", "Abendkleid", "Halbschuhe", "Laufschuhe", "Funktionsshirt",
}

// taxRates are the German VAT rates: standard and reduced.
var taxRates = struct {
	standard float64
	reduced  float64
}{0.19, 0.07}
