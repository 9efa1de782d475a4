package edict

import "unicode/utf8"

// indexKana lists the initials the browser jumps to, in page order.
const indexKana = "あいうえおかきくけこさしすせそたちつてとなにぬねのはひふへほまみむめもやゆよらりるれろわ" +
	"アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワ"

// KanaIndex maps each index initial to the position of the first record
// whose sort key starts with it. Records must already be sorted. Positions
// only move forward; an initial with no match maps to -1.
func KanaIndex(records []Record) map[rune]int {
	index := make(map[rune]int, utf8.RuneCountInString(indexKana))
	cursor := 0
	for _, kana := range indexKana {
		index[kana] = -1
		for i := cursor; i < len(records); i++ {
			first, _ := utf8.DecodeRuneInString(records[i].Key())
			if first == kana {
				index[kana] = i
				cursor = i
				break
			}
		}
	}
	return index
}

// Match returns the positions of the records whose keys share the longest
// prefix with reading. records must be sorted and index built from them by
// KanaIndex; the index only narrows the initial search range. The result
// is empty when not even the first character matches.
func Match(records []Record, index map[rune]int, reading string) []int {
	query := []rune(reading)
	if len(query) == 0 || len(records) == 0 {
		return nil
	}

	low, high := searchRange(index, query[0], len(records))

	start, end := 1, 0
	for i := 0; i < len(query) && low <= high; {
		mid := (low + high) / 2
		want, got := query[i], runeAt(records[mid].Key(), i)
		switch {
		case want < got:
			high = mid - 1
		case want > got:
			low = mid + 1
		default:
			start = mid
			for start > low && runeAt(records[start-1].Key(), i) == want {
				start--
			}
			end = mid
			for end < high && runeAt(records[end+1].Key(), i) == want {
				end++
			}
			low, high = start, end
			i++
		}
	}

	if start > end {
		return nil
	}
	matches := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		matches = append(matches, i)
	}
	return matches
}

// searchRange bounds the records that can start with first: from the last
// indexed initial not after it up to the next indexed initial.
func searchRange(index map[rune]int, first rune, n int) (low, high int) {
	low, high = 0, n-1
	for _, kana := range indexKana {
		pos, ok := index[kana]
		if !ok || pos < 0 {
			continue
		}
		if kana > first {
			return low, pos - 1
		}
		low = pos
	}
	return low, high
}

// runeAt returns the i-th rune of s, or -1 when s is shorter.
func runeAt(s string, i int) rune {
	for _, r := range s {
		if i == 0 {
			return r
		}
		i--
	}
	return -1
}
