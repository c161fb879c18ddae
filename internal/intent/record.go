package intent

// Payload is the kind-specific part of a Record. Only the arms declared in this
// package implement it.
type Payload interface {
	kind() Kind
}

type Task struct {
	Title    string
	Date     *Date
	Time     *Clock
	Priority *Priority
}

type Event struct {
	Title string
	Date  *Date
	Time  *Clock
}

type Expense struct {
	Title    string
	Amount   *float64
	Category *Category
	Date     *Date
}

type Reminder struct {
	Title string
	Date  *Date
	Time  *Clock
}

type Memory struct {
	Title      string
	MemoryType *MemoryType
}

func (Task) kind() Kind     { return KindAddTask }
func (Event) kind() Kind    { return KindAddEvent }
func (Expense) kind() Kind  { return KindLogExpense }
func (Reminder) kind() Kind { return KindSetReminder }
func (Memory) kind() Kind   { return KindSaveMemory }

// Record is the structured result of interpreting one utterance. Payload is nil
// for kinds that carry no fields (summaries, greeting, help, general).
type Record struct {
	Kind    Kind
	Reply   string
	Payload Payload
}

// Fields is the flat, already typed view of every field a record may carry.
type Fields struct {
	Title      string
	Amount     *float64
	Category   *Category
	Date       *Date
	Time       *Clock
	Priority   *Priority
	MemoryType *MemoryType
}

// Fields flattens the payload back into the shared field set.
func (r Record) Fields() Fields {
	switch p := r.Payload.(type) {
	case Task:
		return Fields{Title: p.Title, Date: p.Date, Time: p.Time, Priority: p.Priority}
	case Event:
		return Fields{Title: p.Title, Date: p.Date, Time: p.Time}
	case Expense:
		return Fields{Title: p.Title, Amount: p.Amount, Category: p.Category, Date: p.Date}
	case Reminder:
		return Fields{Title: p.Title, Date: p.Date, Time: p.Time}
	case Memory:
		return Fields{Title: p.Title, MemoryType: p.MemoryType}
	}
	return Fields{}
}

// Build places f into the arm selected by kind. Fields the arm cannot carry and
// negative or non-finite amounts are dropped and reported; a missing title is reported but kept
// empty so callers can fill it in.
func Build(kind Kind, f Fields, reply string) (Record, []Issue) {
	var issues []Issue
	switch {
	case f.Amount == nil:
	case !finite(*f.Amount):
		issues = append(issues, Issue{Field: FieldAmount, Value: formatAmount(*f.Amount), Reason: ReasonUnparsable})
		f.Amount = nil
	case *f.Amount < 0:
		issues = append(issues, Issue{Field: FieldAmount, Value: formatAmount(*f.Amount), Reason: ReasonNegative})
		f.Amount = nil
	}

	allowed := allowedFields[kind]
	present := presentFields(f)
	for _, field := range present {
		if !allowed[field.name] {
			issues = append(issues, Issue{Field: field.name, Value: field.value, Reason: ReasonNotAllowed})
		}
	}
	if kind.RequiresTitle() && f.Title == "" {
		issues = append(issues, Issue{Field: FieldTitle, Reason: ReasonMissing})
	}

	rec := Record{Kind: kind, Reply: reply}
	switch kind {
	case KindAddTask:
		rec.Payload = Task{Title: f.Title, Date: f.Date, Time: f.Time, Priority: f.Priority}
	case KindAddEvent:
		rec.Payload = Event{Title: f.Title, Date: f.Date, Time: f.Time}
	case KindLogExpense:
		rec.Payload = Expense{Title: f.Title, Amount: f.Amount, Category: f.Category, Date: f.Date}
	case KindSetReminder:
		rec.Payload = Reminder{Title: f.Title, Date: f.Date, Time: f.Time}
	case KindSaveMemory:
		rec.Payload = Memory{Title: f.Title, MemoryType: f.MemoryType}
	}
	return rec, issues
}

var allowedFields = map[Kind]map[string]bool{
	KindAddTask:     {FieldTitle: true, FieldDate: true, FieldTime: true, FieldPriority: true},
	KindAddEvent:    {FieldTitle: true, FieldDate: true, FieldTime: true},
	KindLogExpense:  {FieldTitle: true, FieldAmount: true, FieldCategory: true, FieldDate: true},
	KindSetReminder: {FieldTitle: true, FieldDate: true, FieldTime: true},
	KindSaveMemory:  {FieldTitle: true, FieldMemoryType: true},
}

type namedValue struct {
	name  string
	value string
}

func presentFields(f Fields) []namedValue {
	var out []namedValue
	if f.Title != "" {
		out = append(out, namedValue{FieldTitle, f.Title})
	}
	if f.Amount != nil {
		out = append(out, namedValue{FieldAmount, formatAmount(*f.Amount)})
	}
	if f.Category != nil {
		out = append(out, namedValue{FieldCategory, string(*f.Category)})
	}
	if f.Date != nil {
		out = append(out, namedValue{FieldDate, f.Date.String()})
	}
	if f.Time != nil {
		out = append(out, namedValue{FieldTime, f.Time.String()})
	}
	if f.Priority != nil {
		out = append(out, namedValue{FieldPriority, string(*f.Priority)})
	}
	if f.MemoryType != nil {
		out = append(out, namedValue{FieldMemoryType, string(*f.MemoryType)})
	}
	return out
}
