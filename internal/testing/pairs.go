package testing

// PairUserIDs pairs the first provided userID with each of the rest
// e.g. [a, b, c, d] -> [[a,b], [a,c], [a,d]]
func PairUserIDs(userIDs []string) [][2]string {
	if len(userIDs) < 2 {
		return nil
	}

	pairs := make([][2]string, 0, len(userIDs)-1)
	for i := 1; i < len(userIDs); i++ {
		pairs = append(pairs, [2]string{userIDs[0], userIDs[i]})
	}

	return pairs
}

// ReverseIDs returns reversed copy of provided ids
func ReverseIDs(ids []string) []string {
	reversed := make([]string, len(ids))
	copy(reversed, ids)

	for i := len(reversed)/2 - 1; i >= 0; i-- {
		opp := len(reversed) - 1 - i
		reversed[i], reversed[opp] = reversed[opp], reversed[i]
	}

	return reversed
}
