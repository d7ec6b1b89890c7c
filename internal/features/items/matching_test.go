package items

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestScoreMatches_EmptySubjectLabels(t *testing.T) {
	candidates := []Item{
		{ID: primitive.NewObjectID(), Labels: []string{"backpack"}},
	}

	matches := ScoreMatches(nil, primitive.NewObjectID(), candidates)
	assert.Empty(t, matches)

	matches = ScoreMatches([]string{}, primitive.NewObjectID(), candidates)
	assert.Empty(t, matches)
}

func TestScoreMatches_SubstringOverlap(t *testing.T) {
	subjectID := primitive.NewObjectID()
	backpack := Item{ID: primitive.NewObjectID(), Title: "Blue backpack", Labels: []string{"blue backpack", "bag"}}
	keys := Item{ID: primitive.NewObjectID(), Title: "Keys", Labels: []string{"keys", "keychain"}}

	matches := ScoreMatches([]string{"Backpack"}, subjectID, []Item{backpack, keys})

	require.Len(t, matches, 1)
	assert.Equal(t, backpack.ID, matches[0].Item.ID)
	assert.Equal(t, 1, matches[0].Score)
}

func TestScoreMatches_BidirectionalContainment(t *testing.T) {
	subjectID := primitive.NewObjectID()
	candidate := Item{ID: primitive.NewObjectID(), Labels: []string{"wallet"}}

	// Subject label contains the candidate label
	matches := ScoreMatches([]string{"leather wallet"}, subjectID, []Item{candidate})
	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Score)
}

func TestScoreMatches_DropsZeroScores(t *testing.T) {
	subjectID := primitive.NewObjectID()
	candidates := []Item{
		{ID: primitive.NewObjectID(), Labels: []string{"umbrella"}},
		{ID: primitive.NewObjectID(), Labels: []string{"phone", "case"}},
	}

	matches := ScoreMatches([]string{"laptop"}, subjectID, candidates)
	assert.Empty(t, matches)
}

func TestScoreMatches_CapsAtFourSortedDescending(t *testing.T) {
	subjectID := primitive.NewObjectID()

	candidates := make([]Item, 0, 100)
	for i := 0; i < 100; i++ {
		labels := []string{"bag"}
		if i%3 == 0 {
			labels = append(labels, "backpack")
		}
		if i%7 == 0 {
			labels = append(labels, "blue")
		}
		candidates = append(candidates, Item{
			ID:     primitive.NewObjectID(),
			Title:  fmt.Sprintf("candidate %d", i),
			Labels: labels,
		})
	}

	matches := ScoreMatches([]string{"bag", "backpack", "blue"}, subjectID, candidates)

	require.Len(t, matches, 4)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
}

func TestScoreMatches_ExcludesSubjectID(t *testing.T) {
	subjectID := primitive.NewObjectID()
	candidates := []Item{
		{ID: subjectID, Labels: []string{"backpack"}},
		{ID: primitive.NewObjectID(), Labels: []string{"backpack"}},
	}

	matches := ScoreMatches([]string{"backpack"}, subjectID, candidates)

	require.Len(t, matches, 1)
	assert.NotEqual(t, subjectID, matches[0].Item.ID)
}

func TestScoreMatches_StableOrderOnTies(t *testing.T) {
	subjectID := primitive.NewObjectID()
	first := Item{ID: primitive.NewObjectID(), Title: "first", Labels: []string{"keys"}}
	second := Item{ID: primitive.NewObjectID(), Title: "second", Labels: []string{"keys"}}

	matches := ScoreMatches([]string{"keys"}, subjectID, []Item{first, second})

	require.Len(t, matches, 2)
	assert.Equal(t, "first", matches[0].Item.Title)
	assert.Equal(t, "second", matches[1].Item.Title)
}
