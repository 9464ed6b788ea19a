package category

// CatchAll is returned when no classification rule matches.
const CatchAll = "multi"

// Slugs is the fixed retail taxonomy. Every normalized item lands in exactly
// one of these.
var Slugs = []string{
	"elektronika",
	"haztartasi_gepek",
	"szamitastechnika",
	"mobil",
	"gaming",
	"smart_home",
	"otthon",
	"lakberendezes",
	"konyha_fozes",
	"kert",
	"jatekok",
	"divat",
	"szepseg",
	"drogeria",
	"baba",
	"sport",
	"egeszseg",
	"latas",
	"allatok",
	"konyv",
	"utazas",
	"iroda_iskola",
	"szerszam_barkacs",
	"auto_motor",
	CatchAll,
}

var slugSet = func() map[string]bool {
	set := make(map[string]bool, len(Slugs))
	for _, s := range Slugs {
		set[s] = true
	}
	return set
}()

// synonyms maps known foreign-language and legacy labels onto canonical
// slugs. Backend labels and rule tables still use some of the old spellings.
var synonyms = map[string]string{
	"mobiltelefon":     "mobil",
	"kat-elektronika":  "elektronika",
	"kat-gepek":        "haztartasi_gepek",
	"kat-otthon":       "otthon",
	"kat-kert":         "kert",
	"kat-jatekok":      "jatekok",
	"kat-divat":        "divat",
	"kat-szepseg":      "szepseg",
	"kat-sport":        "sport",
	"kat-latas":        "latas",
	"kat-konyv":        "konyv",
	"kat-utazas":       "utazas",
	"kat-multi":        CatchAll,
	"smarthome":        "smart_home",
	"haztartasi gepek": "haztartasi_gepek",
}

// groupSlugs maps the coarse per-partner group tag onto a default slug.
var groupSlugs = map[string]string{
	"games":   "jatekok",
	"toys":    "jatekok",
	"vision":  "latas",
	"sport":   "sport",
	"tech":    "elektronika",
	"home":    "otthon",
	"garden":  "kert",
	"beauty":  "szepseg",
	"fashion": "divat",
	"travel":  "utazas",
}

// IsValid reports whether s is a canonical taxonomy slug.
func IsValid(s string) bool {
	return slugSet[s]
}

// Canonical resolves a label to a taxonomy slug, accepting known synonyms.
// Returns "" when the label maps to nothing.
func Canonical(label string) string {
	if IsValid(label) {
		return label
	}
	if mapped, ok := synonyms[label]; ok {
		return mapped
	}
	return ""
}
