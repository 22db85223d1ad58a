package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// UnthemedLabel is the section name of questions without a theme.
const UnthemedLabel = "Без темы"

// Status is the interviewer's mark for one question.
type Status string

const (
	StatusPositive   Status = "positive"
	StatusNeutral    Status = "neutral"
	StatusNegative   Status = "negative"
	StatusUnanswered Status = "unanswered"
)

// ParseStatus maps a submitted value to a Status. Anything unknown counts as unanswered.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusPositive, StatusNeutral, StatusNegative:
		return Status(s)
	default:
		return StatusUnanswered
	}
}

// Glyph is the fixed display symbol of a status.
func (s Status) Glyph() string {
	switch s {
	case StatusPositive:
		return "✅"
	case StatusNeutral:
		return "⚠️"
	case StatusNegative:
		return "❌"
	default:
		return "➖"
	}
}

// Tally accumulates status counts.
type Tally struct {
	Positive   int
	Neutral    int
	Negative   int
	Unanswered int
}

// Add counts one status.
func (t Tally) Add(s Status) Tally {
	switch s {
	case StatusPositive:
		t.Positive++
	case StatusNeutral:
		t.Neutral++
	case StatusNegative:
		t.Negative++
	default:
		t.Unanswered++
	}
	return t
}

// Merge sums two tallies.
func (t Tally) Merge(o Tally) Tally {
	return Tally{
		Positive:   t.Positive + o.Positive,
		Neutral:    t.Neutral + o.Neutral,
		Negative:   t.Negative + o.Negative,
		Unanswered: t.Unanswered + o.Unanswered,
	}
}

func (t Tally) Total() int {
	return t.Answered() + t.Unanswered
}

// Answered counts every question with a non-unanswered status.
func (t Tally) Answered() int {
	return t.Positive + t.Neutral + t.Negative
}

// Rating is the weighted score over answered questions (positive=1,
// neutral=0.5, negative=0) as a percentage; 0 when nothing was answered.
func (t Tally) Rating() float64 {
	answered := t.Answered()
	if answered == 0 {
		return 0
	}
	return (float64(t.Positive) + float64(t.Neutral)*0.5) / float64(answered) * 100
}

// ResultLine is one question in the report.
type ResultLine struct {
	QuestionID int64
	Title      string
	Status     Status
}

func (l ResultLine) Glyph() string {
	return l.Status.Glyph()
}

// ThemeResult is one report section.
type ThemeResult struct {
	Name  string
	Lines []ResultLine
}

// InterviewReport is the outcome of one interview.
type InterviewReport struct {
	IntervieweeName string
	Date            time.Time
	Sections        []ThemeResult
	Tally           Tally
	FilePath        string
}

func (r *InterviewReport) Rating() float64 {
	return r.Tally.Rating()
}

// RatingLabel is the rating rounded to one decimal.
func (r *InterviewReport) RatingLabel() string {
	return strconv.FormatFloat(r.Rating(), 'f', 1, 64)
}

// DateLabel is the report date as YYYY-MM-DD.
func (r *InterviewReport) DateLabel() string {
	return r.Date.Format("2006-01-02")
}

// Summary condenses the report for the recent-report index.
func (r *InterviewReport) Summary() ReportSummary {
	return ReportSummary{
		IntervieweeName: r.IntervieweeName,
		Date:            r.DateLabel(),
		Total:           r.Tally.Total(),
		Answered:        r.Tally.Answered(),
		Positive:        r.Tally.Positive,
		Neutral:         r.Tally.Neutral,
		Negative:        r.Tally.Negative,
		Rating:          r.Rating(),
		File:            r.FilePath,
	}
}

// ReportSummary is the indexed form of a finished interview.
type ReportSummary struct {
	IntervieweeName string    `json:"interviewee_name"`
	Date            string    `json:"date"`
	Total           int       `json:"total"`
	Answered        int       `json:"answered"`
	Positive        int       `json:"positive"`
	Neutral         int       `json:"neutral"`
	Negative        int       `json:"negative"`
	Rating          float64   `json:"rating"`
	File            string    `json:"file"`
	RecordedAt      time.Time `json:"recorded_at"`
}

var tagPattern = regexp.MustCompile(`<.*?>`)

// StripTags removes anything that looks like an HTML tag. It is not an HTML parser.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// BuildReport walks the overview and classifies every question by the status
// found in statuses (keyed by question id as a decimal string). Themes without
// questions are left out; unthemed questions come last under UnthemedLabel.
func BuildReport(name string, date time.Time, overview *Overview, statuses map[string]string) *InterviewReport {
	report := &InterviewReport{
		IntervieweeName: name,
		Date:            date,
		Sections:        []ThemeResult{},
	}

	for _, tq := range overview.Themes {
		if len(tq.Questions) == 0 {
			continue
		}
		lines, tally := classify(tq.Questions, statuses)
		report.Sections = append(report.Sections, ThemeResult{Name: tq.Theme.Name, Lines: lines})
		report.Tally = report.Tally.Merge(tally)
	}

	if len(overview.Unthemed) > 0 {
		lines, tally := classify(overview.Unthemed, statuses)
		report.Sections = append(report.Sections, ThemeResult{Name: UnthemedLabel, Lines: lines})
		report.Tally = report.Tally.Merge(tally)
	}

	return report
}

func classify(questions []Question, statuses map[string]string) ([]ResultLine, Tally) {
	var tally Tally
	lines := make([]ResultLine, 0, len(questions))
	for _, q := range questions {
		status := ParseStatus(statuses[strconv.FormatInt(q.ID, 10)])
		tally = tally.Add(status)
		lines = append(lines, ResultLine{
			QuestionID: q.ID,
			Title:      strings.TrimSpace(StripTags(q.Title)),
			Status:     status,
		})
	}
	return lines, tally
}

// String renders the tally for logs.
func (t Tally) String() string {
	return fmt.Sprintf("positive=%d neutral=%d negative=%d unanswered=%d", t.Positive, t.Neutral, t.Negative, t.Unanswered)
}
