package quest

import (
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	apperrors "github.com/vovakirdan/pixelquest/internal/errors"
)

// MinIDPrefix is the shortest ID prefix accepted as a reference.
const MinIDPrefix = 4

type titleSource []Quest

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }

// Resolve finds the quest a user means by ref. It tries, in order, a 1-based
// position in quests, an exact ID, a unique ID prefix, an exact title, a
// unique title substring and finally a unique fuzzy title match. A title
// reference matching several quests is rejected rather than guessed.
func Resolve(quests []Quest, ref string) (Quest, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Quest{}, apperrors.ErrQuestNotFound(ref)
	}

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(quests) {
		return quests[n-1], nil
	}

	for _, q := range quests {
		if q.ID == ref {
			return q, nil
		}
	}

	if len(ref) >= MinIDPrefix {
		found := -1
		hits := 0
		for i, q := range quests {
			if strings.HasPrefix(q.ID, ref) {
				found = i
				hits++
			}
		}
		if hits == 1 {
			return quests[found], nil
		}
	}

	lower := strings.ToLower(ref)
	var substr []int
	for i, q := range quests {
		title := strings.ToLower(q.Title)
		if title == lower {
			return q, nil
		}
		if strings.Contains(title, lower) {
			substr = append(substr, i)
		}
	}
	switch len(substr) {
	case 0:
	case 1:
		return quests[substr[0]], nil
	default:
		return Quest{}, ambiguous(ref, quests, substr)
	}

	matches := fuzzy.FindFrom(ref, titleSource(quests))
	switch len(matches) {
	case 0:
		return Quest{}, apperrors.ErrQuestNotFound(ref)
	case 1:
		return quests[matches[0].Index], nil
	default:
		idx := make([]int, len(matches))
		for i, m := range matches {
			idx[i] = m.Index
		}
		return Quest{}, ambiguous(ref, quests, idx)
	}
}

func ambiguous(ref string, quests []Quest, idx []int) error {
	titles := make([]string, len(idx))
	for i, n := range idx {
		titles[i] = strconv.Quote(quests[n].Title)
	}
	return apperrors.ErrValidationFailed("quest", "\""+ref+"\" matches "+strings.Join(titles, ", "))
}
