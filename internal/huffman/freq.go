package huffman

// FrequencyTable holds the number of occurrences of every byte value.
type FrequencyTable [256]uint64

// CountFrequencies tallies the bytes of data. Empty input gives an all zero
// table.
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft[b]++
	}
	return ft
}

// Distinct returns the number of symbols with a nonzero count.
func (ft *FrequencyTable) Distinct() int {
	n := 0
	for _, f := range ft {
		if f > 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, f := range ft {
		sum += f
	}
	return sum
}
