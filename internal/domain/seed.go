package domain

// TinSeed is the built-in natural isotope set for tin (Sn), the ten stable
// isotopes with their NIST masses and atom-percent abundances. It keeps the
// calculator working out of the box when no table has been built yet.
var TinSeed = []Isotope{
	{Element: "Tin", Symbol: "Sn", MassNumber: 112, Mass: 111.90482387, Abundance: 0.97, Stable: true},
	{Element: "Tin", Symbol: "Sn", MassNumber: 114, Mass: 113.9027827, Abundance: 0.66, Stable: true},
	{Element: "Tin", Symbol: "Sn", MassNumber: 115, Mass: 114.903344699, Abundance: 0.34, Stable: true},
	{Element: "Tin", Symbol: "Sn", MassNumber: 116, Mass: 115.90174280, Abundance: 14.54, Stable: true},
	{Element: "Tin", Symbol: "Sn", MassNumber: 117, Mass: 116.90295398, Abundance: 7.68, Stable: true},
	{Element: "Tin", Symbol: "Sn", MassNumber: 118, Mass: 117.90160657, Abundance: 24.22, Stable: true},
	{Element: "Tin", Symbol: "Sn", MassNumber: 119, Mass: 118.90331117, Abundance: 8.59, Stable: true},
	{Element: "Tin", Symbol: "Sn", MassNumber: 120, Mass: 119.90220163, Abundance: 32.58, Stable: true},
	{Element: "Tin", Symbol: "Sn", MassNumber: 122, Mass: 121.9034438, Abundance: 4.63, Stable: true},
	{Element: "Tin", Symbol: "Sn", MassNumber: 124, Mass: 123.9052766, Abundance: 5.79, Stable: true},
}

// fallbackSeeds maps symbols to built-in isotope sets consulted when the
// loaded table has no rows for that symbol. Adding an element here is all it
// takes to extend the fallback behavior.
var fallbackSeeds = map[string][]Isotope{
	"Sn": TinSeed,
}
