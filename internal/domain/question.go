package domain

import (
	"sort"
)

// Theme is a named group of questions with its own display position.
type Theme struct {
	ID         int64
	Name       string
	OrderIndex int64
}

// Question belongs to the bucket of its theme, or to the unthemed bucket when ThemeID is nil.
type Question struct {
	ID         int64
	Title      string
	Answer     string
	OrderIndex int64
	ThemeID    *int64
}

// Bucket is an ordered list of question ids that all share ThemeID (nil = unthemed).
type Bucket struct {
	ThemeID     *int64
	QuestionIDs []int64
}

// Reorder is a bulk reorder/reparent request. Every bucket listed is
// authoritative for the questions it names; other questions are untouched.
type Reorder struct {
	Buckets []Bucket
}

// ThemeChoiceKind selects how a new question picks its theme.
type ThemeChoiceKind int

const (
	ThemeChoiceNone ThemeChoiceKind = iota
	ThemeChoiceExisting
	ThemeChoiceNew
)

type ThemeChoice struct {
	Kind    ThemeChoiceKind
	ID      int64
	NewName string
}

// NewQuestion is the input of question creation.
type NewQuestion struct {
	Title  string
	Answer string
	Theme  ThemeChoice
}

// ThemeQuestions is a theme together with its questions in display order.
type ThemeQuestions struct {
	Theme     Theme
	Questions []Question
}

// Overview is the whole bank: themes by order_index, then the unthemed bucket.
type Overview struct {
	Themes   []ThemeQuestions
	Unthemed []Question
}

// TotalQuestions counts every question in the overview.
func (o *Overview) TotalQuestions() int {
	n := len(o.Unthemed)
	for _, t := range o.Themes {
		n += len(t.Questions)
	}
	return n
}

// GroupByTheme arranges themes and questions into an Overview. Themes are
// ordered by order_index, ties broken by id; questions the same way inside
// their bucket. Questions pointing at an unknown theme are dropped.
func GroupByTheme(themes []Theme, questions []Question) *Overview {
	sortedThemes := make([]Theme, len(themes))
	copy(sortedThemes, themes)
	sort.SliceStable(sortedThemes, func(i, j int) bool {
		if sortedThemes[i].OrderIndex != sortedThemes[j].OrderIndex {
			return sortedThemes[i].OrderIndex < sortedThemes[j].OrderIndex
		}
		return sortedThemes[i].ID < sortedThemes[j].ID
	})

	sortedQuestions := make([]Question, len(questions))
	copy(sortedQuestions, questions)
	sort.SliceStable(sortedQuestions, func(i, j int) bool {
		if sortedQuestions[i].OrderIndex != sortedQuestions[j].OrderIndex {
			return sortedQuestions[i].OrderIndex < sortedQuestions[j].OrderIndex
		}
		return sortedQuestions[i].ID < sortedQuestions[j].ID
	})

	byTheme := make(map[int64][]Question, len(themes))
	overview := &Overview{
		Themes:   make([]ThemeQuestions, 0, len(sortedThemes)),
		Unthemed: []Question{},
	}
	for _, q := range sortedQuestions {
		if q.ThemeID == nil {
			overview.Unthemed = append(overview.Unthemed, q)
			continue
		}
		byTheme[*q.ThemeID] = append(byTheme[*q.ThemeID], q)
	}
	for _, t := range sortedThemes {
		qs := byTheme[t.ID]
		if qs == nil {
			qs = []Question{}
		}
		overview.Themes = append(overview.Themes, ThemeQuestions{Theme: t, Questions: qs})
	}
	return overview
}
