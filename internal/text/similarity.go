package text

import "unicode"

// Similarity calcula o coeficiente de Sørensen–Dice sobre bigramas de
// caracteres, ignorando espaços. Retorna um valor em [0, 1].
func Similarity(a, b string) float64 {
	ra := stripSpaces(a)
	rb := stripSpaces(b)

	if string(ra) == string(rb) {
		return 1
	}
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	counts := make(map[[2]rune]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		counts[[2]rune{ra[i], ra[i+1]}]++
	}

	intersection := 0
	for i := 0; i < len(rb)-1; i++ {
		bigram := [2]rune{rb[i], rb[i+1]}
		if counts[bigram] > 0 {
			counts[bigram]--
			intersection++
		}
	}

	return 2 * float64(intersection) / float64(len(ra)-1+len(rb)-1)
}

func stripSpaces(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	return out
}
