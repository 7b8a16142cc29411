package nist

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/couchcryptid/isotope-weight-service/internal/domain"
)

// annotationRe strips the trailing uncertainty "(12)" or estimate marker
// "#" that NIST appends to numeric values, e.g. "1.00782503207(10)".
var annotationRe = regexp.MustCompile(`[(#].*$`)

// ParseComposition parses the NIST ASCII2 linearized table into isotope
// records. The format is line-oriented key/value blocks:
//
//	Atomic Number = 1
//	Atomic Symbol = H
//	Mass Number = 1
//	Relative Atomic Mass = 1.00782503207(10)
//	Isotopic Composition = 0.999885(70)
//
// Only isotopes with a listed isotopic composition are kept; the composition
// is a number fraction and is converted to atom percent. Entries whose mass
// or composition does not parse after stripping annotations are dropped, as
// are entries missing any required field.
func ParseComposition(text string) ([]domain.Isotope, error) {
	var (
		isotopes   []domain.Isotope
		atomicNum  int
		symbol     string
		massNumber int
		mass       string
		comp       string
	)

	flush := func() {
		if atomicNum == 0 || symbol == "" || massNumber == 0 || mass == "" || comp == "" {
			return
		}
		m, err := parseAnnotated(mass)
		if err != nil {
			return
		}
		fraction, err := parseAnnotated(comp)
		if err != nil {
			return
		}
		name, ok := elementNames[atomicNum]
		if !ok {
			name = symbol
		}
		isotopes = append(isotopes, domain.Isotope{
			Element:    name,
			Symbol:     symbol,
			MassNumber: massNumber,
			Mass:       m,
			Abundance:  fraction * 100,
			Stable:     true,
		})
	}

	for _, line := range strings.Split(text, "\n") {
		s := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(s, "Atomic Number ="):
			flush()
			atomicNum = atoiOrZero(valueOf(s))
			symbol, massNumber, mass, comp = "", 0, "", ""
		case strings.HasPrefix(s, "Atomic Symbol ="):
			symbol = valueOf(s)
		case strings.HasPrefix(s, "Mass Number ="):
			flush()
			massNumber = atoiOrZero(valueOf(s))
			mass, comp = "", ""
		case strings.HasPrefix(s, "Relative Atomic Mass ="):
			mass = valueOf(s)
		case strings.HasPrefix(s, "Isotopic Composition ="):
			comp = valueOf(s)
		}
	}
	flush()

	if len(isotopes) == 0 {
		return nil, errors.New("no isotopic composition entries found; upstream table format may have changed")
	}
	return isotopes, nil
}

func valueOf(line string) string {
	_, v, _ := strings.Cut(line, "=")
	return strings.TrimSpace(v)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseAnnotated(s string) (float64, error) {
	s = strings.TrimSpace(annotationRe.ReplaceAllString(s, ""))
	return strconv.ParseFloat(s, 64)
}

// elementNames maps atomic number to element name for the CSV's element
// column. Symbols in the NIST table vary per isotope (H, D, T for hydrogen),
// so the name is keyed on atomic number instead.
var elementNames = map[int]string{
	1: "Hydrogen", 2: "Helium", 3: "Lithium", 4: "Beryllium", 5: "Boron",
	6: "Carbon", 7: "Nitrogen", 8: "Oxygen", 9: "Fluorine", 10: "Neon",
	11: "Sodium", 12: "Magnesium", 13: "Aluminium", 14: "Silicon", 15: "Phosphorus",
	16: "Sulfur", 17: "Chlorine", 18: "Argon", 19: "Potassium", 20: "Calcium",
	21: "Scandium", 22: "Titanium", 23: "Vanadium", 24: "Chromium", 25: "Manganese",
	26: "Iron", 27: "Cobalt", 28: "Nickel", 29: "Copper", 30: "Zinc",
	31: "Gallium", 32: "Germanium", 33: "Arsenic", 34: "Selenium", 35: "Bromine",
	36: "Krypton", 37: "Rubidium", 38: "Strontium", 39: "Yttrium", 40: "Zirconium",
	41: "Niobium", 42: "Molybdenum", 43: "Technetium", 44: "Ruthenium", 45: "Rhodium",
	46: "Palladium", 47: "Silver", 48: "Cadmium", 49: "Indium", 50: "Tin",
	51: "Antimony", 52: "Tellurium", 53: "Iodine", 54: "Xenon", 55: "Cesium",
	56: "Barium", 57: "Lanthanum", 58: "Cerium", 59: "Praseodymium", 60: "Neodymium",
	61: "Promethium", 62: "Samarium", 63: "Europium", 64: "Gadolinium", 65: "Terbium",
	66: "Dysprosium", 67: "Holmium", 68: "Erbium", 69: "Thulium", 70: "Ytterbium",
	71: "Lutetium", 72: "Hafnium", 73: "Tantalum", 74: "Tungsten", 75: "Rhenium",
	76: "Osmium", 77: "Iridium", 78: "Platinum", 79: "Gold", 80: "Mercury",
	81: "Thallium", 82: "Lead", 83: "Bismuth", 84: "Polonium", 85: "Astatine",
	86: "Radon", 87: "Francium", 88: "Radium", 89: "Actinium", 90: "Thorium",
	91: "Protactinium", 92: "Uranium", 93: "Neptunium", 94: "Plutonium", 95: "Americium",
	96: "Curium", 97: "Berkelium", 98: "Californium", 99: "Einsteinium", 100: "Fermium",
	101: "Mendelevium", 102: "Nobelium", 103: "Lawrencium", 104: "Rutherfordium", 105: "Dubnium",
	106: "Seaborgium", 107: "Bohrium", 108: "Hassium", 109: "Meitnerium", 110: "Darmstadtium",
	111: "Roentgenium", 112: "Copernicium", 113: "Nihonium", 114: "Flerovium", 115: "Moscovium",
	116: "Livermorium", 117: "Tennessine", 118: "Oganesson",
}
