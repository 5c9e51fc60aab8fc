package similarity

// DefaultThreshold is the acceptance cutoff shared by the audit pass and the
// interactive resolver. A best score of exactly 0.80 is accepted; anything
// below triggers the fallback path.
const DefaultThreshold = 0.80

// Ratio computes a normalized sequence similarity in [0, 1]:
// 2*M / (len(a)+len(b)) where M is the total length of the longest matching
// blocks found recursively. Identical strings score 1, disjoint strings 0.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1.0
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}
	matched := totalMatching(ra, rb)
	return 2.0 * float64(matched) / float64(len(ra)+len(rb))
}

type span struct {
	alo, ahi, blo, bhi int
}

// totalMatching sums the matching blocks: find the longest common block,
// then recurse into the pieces to its left and right.
func totalMatching(a, b []rune) int {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	total := 0
	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, size := longestMatch(a, s, b2j)
		if size == 0 {
			continue
		}
		total += size
		queue = append(queue,
			span{s.alo, i, s.blo, j},
			span{i + size, s.ahi, j + size, s.bhi},
		)
	}
	return total
}

// longestMatch finds the longest block a[i:i+size] == b[j:j+size] within the
// given bounds, preferring the earliest block on ties.
func longestMatch(a []rune, s span, b2j map[rune][]int) (besti, bestj, bestsize int) {
	besti, bestj = s.alo, s.blo

	j2len := make(map[int]int)
	for i := s.alo; i < s.ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < s.blo {
				continue
			}
			if j >= s.bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}

// Match is the outcome of a best-candidate scan.
type Match struct {
	Label string
	Score float64
	Found bool
}

// BestMatch returns the highest-scoring candidate for the target, breaking
// ties by the first candidate in iteration order. Callers keep candidate
// sets in a stable (sorted) order so repeated calls are deterministic.
// An empty target or empty candidate set declines to match.
func BestMatch(target string, candidates []string) Match {
	if target == "" || len(candidates) == 0 {
		return Match{}
	}

	best := Match{}
	for _, candidate := range candidates {
		score := Ratio(target, candidate)
		if !best.Found || score > best.Score {
			best = Match{Label: candidate, Score: score, Found: true}
		}
	}
	return best
}
