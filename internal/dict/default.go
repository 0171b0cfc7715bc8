package dict

// defaultEntries is the built-in word table, defined as letter combination to
// word in definition order. The table intentionally contains colliding
// canonical keys (for example "sol" and "los" both reduce to "LOS"); the
// later entry wins, matching the documented property of the source data.
var defaultEntries = [][2]string{
	// Articles and short function words
	{"EL", "el"},
	{"AL", "la"},
	{"LOS", "sol"},
	{"LOS", "los"},
	{"ALS", "las"},
	{"NU", "un"},
	{"ANU", "una"},
	{"ES", "se"},
	{"ES", "es"},
	{"EN", "en"},
	{"ADE", "de"},
	{"ENO", "no"},
	{"IS", "si"},
	{"CNO", "con"},
	{"OPR", "por"},
	{"APR", "para"},
	{"EQU", "que"},
	{"AMS", "mas"},

	// Pronouns and verbs
	{"TU", "tu"},
	{"AH", "hay"},
	{"ERS", "ser"},
	{"ARTS", "estar"},
	{"AV", "va"},
	{"EINT", "tiene"},
	{"ACEH", "hace"},
	{"EQUIR", "quiere"},
	{"EDPU", "puede"},
	{"ABS", "sabe"},
	{"ADR", "dar"},
	{"EV", "ve"},
	{"IRV", "vivir"},
	{"ADENR", "andar"},
	{"EINV", "viene"},

	// Nouns
	{"EMS", "mes"},
	{"ACS", "casa"},
	{"ADI", "dia"},
	{"AHOR", "hora"},
	{"ANO", "ano"},
	{"AGOT", "gato"},
	{"EOPR", "perro"},
	{"ADIV", "vida"},
	{"EIMOPT", "tiempo"},
	{"AGU", "agua"},
	{"ALMNO", "nombre"},
	{"AMNO", "mano"},
	{"ECHNO", "noche"},
	{"ACELS", "clase"},
	{"ABC", "cabo"},
	{"AEMS", "mesa"},
	{"ILMNO", "molino"},

	// Adjectives and adverbs
	{"BENOU", "bueno"},
	{"ALM", "mal"},
	{"AHMUC", "mucha"},
	{"BEIN", "bien"},
	{"ACD", "cada"},
	{"DNOT", "donde"},
	{"ACNU", "nunca"},
	{"EIMPRS", "siempre"},

	// Numbers as words
	{"DOS", "dos"},
	{"ERST", "tres"},
	{"CINO", "cinco"},
	{"ENUV", "nueve"},
	{"CEIN", "cien"},
	{"ILM", "mil"},
}

// Defaults returns the built-in dictionary.
func Defaults() *Dictionary {
	d := New()
	for _, e := range defaultEntries {
		// Built-in combinations are known good; Define only fails on
		// empty input.
		_, _ = d.Define(e[0], e[1])
	}
	return d
}
