package fulltext

// similarity returns the similarity of a and b as a percentage: twice the
// number of matching bytes over the combined length. Matching bytes are found
// by taking the longest common substring and recursing into the pieces left
// and right of it.
func similarity(a, b string) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 0
	}
	return float64(commonChars(a, b)) * 2 * 100 / float64(total)
}

func commonChars(a, b string) int {
	posA, posB, length := longestCommon(a, b)
	if length == 0 {
		return 0
	}
	return length +
		commonChars(a[:posA], b[:posB]) +
		commonChars(a[posA+length:], b[posB+length:])
}

// longestCommon finds the first longest common substring of a and b.
func longestCommon(a, b string) (posA, posB, length int) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			k := 0
			for i+k < len(a) && j+k < len(b) && a[i+k] == b[j+k] {
				k++
			}
			if k > length {
				posA, posB, length = i, j, k
			}
		}
	}
	return posA, posB, length
}
