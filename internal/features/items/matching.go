package items

import (
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxMatches caps how many suggestions are surfaced per item.
const maxMatches = 4

// ScoreMatches ranks candidate items of the opposite type by label overlap
// with the subject's labels. A subject label counts once when any candidate
// label contains it or is contained by it, case-insensitively. Candidates
// with zero overlap are dropped, the rest are sorted by score descending
// (ties keep candidate order), and at most maxMatches are returned.
func ScoreMatches(subjectLabels []string, subjectID primitive.ObjectID, candidates []Item) []MatchCandidate {
	if len(subjectLabels) == 0 {
		return []MatchCandidate{}
	}

	subject := make([]string, 0, len(subjectLabels))
	for _, l := range subjectLabels {
		subject = append(subject, strings.ToLower(l))
	}

	matches := []MatchCandidate{}
	for _, candidate := range candidates {
		if candidate.ID == subjectID {
			continue
		}

		score := 0
		for _, sl := range subject {
			for _, cl := range candidate.Labels {
				cl = strings.ToLower(cl)
				if strings.Contains(cl, sl) || strings.Contains(sl, cl) {
					score++
					break
				}
			}
		}

		if score > 0 {
			matches = append(matches, MatchCandidate{Item: candidate, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}
