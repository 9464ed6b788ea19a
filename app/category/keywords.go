package category

// categoryKeywords drive the heuristic refinement stage. All entries are
// lowercase and diacritics-free, matching the output of NormalizeText.
// CatchAll deliberately has no keywords; it is only ever a fallback.
var categoryKeywords = map[string][]string{
	"elektronika": {
		"televizio", "hangfal", "hangszoro", "hifi", "projektor", "erosito",
		"radio", "soundbar", "hazimozi", "dron", "fejhallgato",
	},
	"haztartasi_gepek": {
		"porszivo", "mosogep", "mosogatogep", "hutogep", "mikrohullamu",
		"klima", "kavefozo", "vasalo", "botmixer", "turmix", "robotgep",
		"fritoz", "szeletelo",
	},
	"szamitastechnika": {
		"laptop", "notebook", "szamitogep", "monitor", "billentyuzet",
		"eger", "ssd", "merevlemez", "videokartya", "router", "webkamera",
		"pendrive", "alaplap",
	},
	"mobil": {
		"okostelefon", "smartphone", "mobiltelefon", "telefontok",
		"kijelzovedo", "powerbank", "vezetek nelkuli tolto",
	},
	"gaming": {
		"gamer", "gaming", "playstation", "xbox", "nintendo", "konzol",
		"gamer szek", "gamer eger",
	},
	"smart_home": {
		"okos izzo", "okos konnektor", "okos otthon", "smart home",
		"wifi kamera", "ip kamera", "biztonsagi kamera", "okos termosztat",
	},
	"otthon": {
		"dekoracio", "fuggony", "parna", "takaro", "paplan", "agynemu",
		"szonyeg", "fali ora", "lampa", "gyertya",
	},
	"lakberendezes": {
		"kanape", "fotel", "szekreny", "komod", "polc", "butor", "gardrob",
		"agykeret", "etkezoasztal",
	},
	"konyha_fozes": {
		"edeny", "fazek", "labas", "serpenyo", "tepsi", "vagodeszka",
		"keszlet", "konyhai kes", "tanyer", "bogre",
	},
	"kert": {
		"fukaszalo", "funyiro", "lancfuresz", "agvago", "ontozorendszer",
		"kerti szerszam", "kerti butor", "trambulin", "medence", "napernyo",
		"grillsuto", "kerti haz", "magasnyomasu moso",
	},
	"jatekok": {
		"tarsasjatek", "lego", "playmobil", "jatekbaba", "kartyajatek",
		"puzzle", "kirako", "pluss", "jatek figura", "jatekkonyha",
	},
	"divat": {
		"polo", "nadrag", "farmer", "szoknya", "ruha", "pulover", "kapucnis",
		"dzseki", "kabat", "cipo", "csizma", "szandal", "papucs", "taska",
		"hatizsak", "penztarca", "kesztyu", "sapka", "sal",
	},
	"szepseg": {
		"parfum", "dezodor", "smink", "alapozo", "szempillaspiral", "ruzs",
		"borapolas", "sampon", "kondicionalo", "kozmetikum",
	},
	"drogeria": {
		"mosopor", "mososzer", "oblito", "tisztitoszer", "fertotlenito",
		"toalettpapir", "szalveta", "mosogatoszer",
	},
	"baba": {
		"pelenka", "babaapolo", "babakrem", "kismama", "etetoszek",
		"babakocsi", "jaroka", "babaruha", "cumisuveg", "cumi",
	},
	"sport": {
		"futocipo", "edzocipo", "fitnesz", "edzopad", "sulyzo", "kettlebell",
		"futopad", "kerekpar", "bicikli", "roller", "focilabda",
		"kosarlabda", "melegito", "sportmelltarto",
	},
	"egeszseg": {
		"vitamin", "taplalekkiegeszito", "vernyomasmero", "lazmero",
		"inhalator", "gyogyaszati", "massziro",
	},
	"latas": {
		"kontaktlencse", "napi lencse", "havi lencse", "szemuvegkeret",
		"napszemuveg", "lencseapolo", "lencse folyadek",
	},
	"allatok": {
		"kutyatap", "macskatap", "allateledel", "macskaalom", "poraz",
		"nyakorv", "kaparofa", "akvarium", "terrarium",
	},
	"konyv": {
		"regeny", "szakkonyv", "gyerekkonyv", "mesekonyv", "kifesto",
		"album", "novellaskotet",
	},
	"utazas": {
		"borond", "utazotaska", "utazoparna", "utazasi szett", "borond cimke",
		"neszesszer",
	},
	"iroda_iskola": {
		"tolltarto", "fuzet", "ceruza", "radir", "filctoll", "irodai szek",
		"iroasztal", "nyomtatopapir", "irattarto",
	},
	"szerszam_barkacs": {
		"csavarozo", "furogep", "akkus furo", "sarokcsiszolo", "csiszologep",
		"kalapacs", "csavarhuzo", "villaskulcs", "fogo",
	},
	"auto_motor": {
		"motorolaj", "autogumi", "teligumi", "nyarigumi", "szelvedo",
		"ablakmoso", "csomagtarto", "vonohorog",
	},
}
