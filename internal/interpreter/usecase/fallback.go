package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"friday-assistant/internal/intent"
	"friday-assistant/pkg/datemath"
)

type keywordRule struct {
	kind    intent.Kind
	pattern *regexp.Regexp
}

func words(alternatives ...string) *regexp.Regexp {
	return regexp.MustCompile(`\b(?:` + strings.Join(alternatives, "|") + `)\b`)
}

// classifierRules are tried in order; the first match wins.
var classifierRules = []keywordRule{
	{intent.KindShowWeekly, words(`this week'?s summary`, `show (?:me )?(?:my )?week(?:ly)?`, `week(?:ly)? (?:summary|review|report|recap)`, `week in review`)},
	{intent.KindShowDaily, words(`show (?:me )?(?:my )?daily`, `daily (?:summary|review|report|recap)`, `show (?:me )?today`, `today'?s summary`, `summary for today`, `how was my day`, `my day`)},
	{intent.KindSetReminder, words(`remind(?:er)?`, `reminders`, `alert me`, `ping me`)},
	{intent.KindLogExpense, words(`spent`, `spend`, `paid`, `pay`, `bought`, `expense`, `cost`, `purchased`)},
	{intent.KindAddEvent, words(`meeting`, `event`, `appointment`, `schedule`, `calendar`, `party`, `dinner with`, `lunch with`)},
	{intent.KindSaveMemory, words(`remember`, `note that`, `save (?:this|that)`, `my goal`, `i prefer`, `i like`)},
	{intent.KindAddTask, words(`add task`, `task`, `todo`, `to-do`, `to do`, `need to`, `have to`, `must`)},
	{intent.KindHelp, words(`help`, `what can you do`, `commands`, `how do i`)},
	{intent.KindGreeting, words(`hello`, `hi`, `hey`, `good morning`, `good afternoon`, `good evening`, `yo`, `hiya`)},
}

// classify returns the first matching kind, or ErrUnsupportedUtterance folded
// into KindGeneral.
func classify(utterance string) (intent.Kind, bool) {
	lower := strings.ToLower(utterance)
	for _, rule := range classifierRules {
		if rule.pattern.MatchString(lower) {
			return rule.kind, true
		}
	}
	return intent.KindGeneral, false
}

var amountPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?`)

// firstAmount returns the first numeric token in text.
func firstAmount(text string) (float64, bool) {
	m := amountPattern.FindString(text)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// addressForm is the leading "Hey Friday," that names the assistant rather than
// a weekday.
const addressForm = `(?:hey|ok|okay)\s+friday\b[,.!:\s]*`

var addressPrefix = regexp.MustCompile(`(?i)^\s*` + addressForm)

// stripAddress removes a leading address form. An utterance that is nothing but
// the address is returned unchanged.
func stripAddress(utterance string) string {
	rest := addressPrefix.ReplaceAllString(utterance, "")
	if strings.TrimSpace(rest) == "" {
		return utterance
	}
	return rest
}

var (
	commandPrefix = regexp.MustCompile(`(?i)^(?:` + addressForm + `)?(?:please\s+)?` +
		`(?:remind me (?:to|about|that)|remind me|set (?:a )?reminder (?:to|for)|` +
		`add (?:a )?(?:new )?task(?: to)?:?|create (?:a )?task:?|new task:?|todo:?|` +
		`add (?:an )?event:?|schedule(?: a| an)?|` +
		`remember that|remember|note that|save (?:this|that):?|` +
		`i need to|i have to|i must|` +
		`(?:i )?spent|(?:i )?paid|(?:i )?bought|log (?:an )?expense:?)\s+`)

	temporalPhrases = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:by |on |for )?(?:the )?day after tomorrow\b`),
		regexp.MustCompile(`(?i)\b(?:by |on |for )?(?:today|tomorrow|tonight|next week)\b`),
		regexp.MustCompile(`(?i)\b(?:by |on |for )?(?:(?:next|this|on)\s+)?(?:sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`),
		regexp.MustCompile(`(?i)\b(?:at |by |around )?\d{1,2}(?::\d{2})?\s*(?:am|pm)\b`),
		regexp.MustCompile(`(?i)\b(?:at |by |around )?\d{1,2}:\d{2}\b`),
		regexp.MustCompile(`(?i)\b(?:at|by|around)\s+\d{1,2}\b`),
		regexp.MustCompile(`(?i)\b(?:in the |this |at )?(?:morning|afternoon|evening|noon|night)\b`),
	}

	expenseAmount = regexp.MustCompile(`(?i)(?:[$€£₹]\s*)?(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?\s*(?:dollars?|bucks|usd|eur|euros?|rs\.?|rupees?|inr)?\s*(?:on|for)?\s*`)
	priorityPhrase = regexp.MustCompile(`(?i)\b(?:(?:high|medium|low) priority|urgent(?:ly)?|asap)\b`)
	spaces         = regexp.MustCompile(`\s+`)
	edgeConnector  = regexp.MustCompile(`(?i)^(?:to|on|for|at|by|about)\s+|\s+(?:to|on|for|at|by|about)$`)
)

// extractTitle strips command words, temporal phrases and, for expenses, the
// amount. It falls back to the whole utterance when nothing is left.
func extractTitle(utterance string, kind intent.Kind) string {
	title := strings.TrimSpace(utterance)
	title = commandPrefix.ReplaceAllString(title, "")
	if kind == intent.KindLogExpense {
		if loc := expenseAmount.FindStringIndex(title); loc != nil {
			title = title[:loc[0]] + " " + title[loc[1]:]
		}
	}
	for _, re := range temporalPhrases {
		title = re.ReplaceAllString(title, " ")
	}
	title = priorityPhrase.ReplaceAllString(title, " ")
	title = spaces.ReplaceAllString(title, " ")
	title = strings.Trim(title, " .,!?;:-")
	for {
		trimmed := strings.TrimSpace(edgeConnector.ReplaceAllString(title, ""))
		if trimmed == title {
			break
		}
		title = trimmed
	}
	if title == "" {
		return strings.TrimSpace(utterance)
	}
	return title
}

// priorityHint reads an explicit priority from the utterance, if any.
func priorityHint(utterance string) *intent.Priority {
	lower := strings.ToLower(utterance)
	var p intent.Priority
	switch {
	case strings.Contains(lower, "high priority"), strings.Contains(lower, "urgent"), strings.Contains(lower, "asap"):
		p = intent.PriorityHigh
	case strings.Contains(lower, "medium priority"):
		p = intent.PriorityMedium
	case strings.Contains(lower, "low priority"):
		p = intent.PriorityLow
	default:
		return nil
	}
	return &p
}

// fallbackFields builds the typed fields for kind from the utterance alone.
// Only fields the kind can carry are produced.
func fallbackFields(kind intent.Kind, utterance string, frag datemath.Fragment) intent.Fields {
	if !kind.RequiresTitle() {
		return intent.Fields{}
	}

	f := intent.Fields{Title: extractTitle(utterance, kind)}
	date, clock := fragmentValues(frag)

	switch kind {
	case intent.KindAddTask:
		f.Date, f.Time = date, clock
		f.Priority = priorityHint(utterance)
	case intent.KindAddEvent, intent.KindSetReminder:
		f.Date, f.Time = date, clock
	case intent.KindLogExpense:
		if amount, ok := firstAmount(utterance); ok {
			f.Amount = &amount
		}
		if frag.DateMatched {
			f.Date = date
		}
	}
	return f
}

func fragmentValues(frag datemath.Fragment) (*intent.Date, *intent.Clock) {
	var (
		date  *intent.Date
		clock *intent.Clock
	)
	if frag.Date != nil {
		d := intent.DateOf(*frag.Date)
		date = &d
	}
	if frag.Time != nil {
		c := intent.Clock{Hour: frag.Time.Hour, Minute: frag.Time.Minute}
		clock = &c
	}
	return date, clock
}

// synthesizeReply writes a generic confirmation for a record built from f.
func synthesizeReply(kind intent.Kind, f intent.Fields) string {
	when := describeWhen(f.Date, f.Time)
	switch kind {
	case intent.KindAddTask:
		return fmt.Sprintf("Got it! Task %q added%s.", f.Title, when)
	case intent.KindAddEvent:
		return fmt.Sprintf("Event %q scheduled%s.", f.Title, when)
	case intent.KindLogExpense:
		if f.Amount != nil {
			return fmt.Sprintf("Logged %s for %q.", strconv.FormatFloat(*f.Amount, 'f', 2, 64), f.Title)
		}
		return fmt.Sprintf("Logged expense %q.", f.Title)
	case intent.KindSetReminder:
		return fmt.Sprintf("I'll remind you to %s%s.", f.Title, when)
	case intent.KindSaveMemory:
		return fmt.Sprintf("Saved to memory: %q.", f.Title)
	case intent.KindShowDaily:
		return replyShowDaily
	case intent.KindShowWeekly:
		return replyShowWeekly
	case intent.KindGreeting:
		return replyGreeting
	case intent.KindHelp:
		return replyHelp
	}
	return replyGeneral
}

func describeWhen(d *intent.Date, c *intent.Clock) string {
	var b strings.Builder
	if d != nil {
		day := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
		b.WriteString(" for ")
		b.WriteString(day.Format(replyDateLayout))
	}
	if c != nil {
		b.WriteString(" at ")
		b.WriteString(c.String())
	}
	return b.String()
}
