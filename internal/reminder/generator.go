package reminder

import (
	"fmt"
	"time"

	"family-records-api/internal/domain/entity"
)

// Source identifies which collection a reminder was derived from.
type Source string

const (
	SourceDocument Source = "document"
	SourceVehicle  Source = "vehicle"
	SourceHealth   Source = "health"
	SourceFamily   Source = "family"
	SourceManual   Source = "manual"
)

// Item is one entry in the derived reminder feed. Items are never persisted;
// the feed is recomputed from the source collections on every run, and ids
// are namespaced by source so unchanged inputs always produce the same set.
type Item struct {
	ID       string                  `json:"id"`
	Title    string                  `json:"title"`
	Subtitle string                  `json:"subtitle"`
	Priority entity.ReminderPriority `json:"priority"`
	Source   Source                  `json:"source"`
	SourceID string                  `json:"source_id,omitempty"`
}

// SourceError records a source collection that could not be read. The
// affected source contributes zero reminders; generation continues for the
// others.
type SourceError struct {
	Source Source
	Err    error
}

func (e SourceError) Error() string {
	return fmt.Sprintf("reminder source %s: %v", e.Source, e.Err)
}

// Windows holds the per-source lookahead limits in days. Zero fields fall
// back to the defaults.
type Windows struct {
	DocumentDays int
	VehicleDays  int
	BirthdayDays int
}

// DefaultWindows returns the standard lookahead limits.
func DefaultWindows() Windows {
	return Windows{
		DocumentDays: 90,
		VehicleDays:  90,
		BirthdayDays: 30,
	}
}

// Renewal assumptions for health records: vaccinations renew annually and
// surface a month ahead, medication refills are monthly and surface a week
// ahead.
const (
	vaccineWindowDays    = 30
	medicationWindowDays = 7
)

// Loaders supplies the source collections. A nil loader means the source is
// empty; a loader error removes only that source from the run.
type Loaders struct {
	Documents func() ([]entity.Document, error)
	Vehicles  func() ([]entity.Vehicle, error)
	Health    func() ([]entity.HealthRecord, error)
	Members   func() ([]entity.FamilyMember, error)
	Manual    func() ([]entity.Reminder, error)
}

// Engine derives the unified reminder feed from the source collections.
type Engine struct {
	windows Windows
}

func NewEngine(w Windows) *Engine {
	def := DefaultWindows()
	if w.DocumentDays <= 0 {
		w.DocumentDays = def.DocumentDays
	}
	if w.VehicleDays <= 0 {
		w.VehicleDays = def.VehicleDays
	}
	if w.BirthdayDays <= 0 {
		w.BirthdayDays = def.BirthdayDays
	}
	return &Engine{windows: w}
}

// candidate is one record that may become a reminder, pending the window
// check of its rule.
type candidate struct {
	id       string
	label    string
	person   string
	dueText  string
	sourceID string
	due      time.Time
}

// rule binds a source's candidates to its lookahead window, priority tiering
// and title wording. Adding a source is a new rule entry, not new control
// flow.
type rule struct {
	source     Source
	windowDays int
	priority   func(days int) entity.ReminderPriority
	title      func(label string, days int) string
	candidates []candidate
}

// Generate runs every source rule against now, appends manual reminders and
// deduplicates by id keeping the first occurrence. The output order is
// source-then-manual concatenation order; no priority sort is imposed.
// Generate is total: it never fails, it only degrades to fewer reminders.
func (e *Engine) Generate(now time.Time, ld Loaders) ([]Item, []SourceError) {
	var errs []SourceError

	docs := loadSource(ld.Documents, SourceDocument, &errs)
	vehicles := loadSource(ld.Vehicles, SourceVehicle, &errs)
	health := loadSource(ld.Health, SourceHealth, &errs)
	members := loadSource(ld.Members, SourceFamily, &errs)
	manual := loadSource(ld.Manual, SourceManual, &errs)

	rules := []rule{
		{
			source:     SourceDocument,
			windowDays: e.windows.DocumentDays,
			priority:   tieredPriority,
			title:      expiryTitle,
			candidates: documentCandidates(now, docs),
		},
		{
			source:     SourceVehicle,
			windowDays: e.windows.VehicleDays,
			priority:   tieredPriority,
			title:      expiryTitle,
			candidates: vehicleCandidates(now, vehicles),
		},
		{
			source:     SourceHealth,
			windowDays: vaccineWindowDays,
			priority:   fixedPriority(entity.PriorityMedium),
			title:      func(label string, _ int) string { return label + " due for renewal" },
			candidates: vaccineCandidates(now, health),
		},
		{
			source:     SourceHealth,
			windowDays: medicationWindowDays,
			priority:   fixedPriority(entity.PriorityHigh),
			title:      func(label string, _ int) string { return label + " refill needed" },
			candidates: medicationCandidates(now, health),
		},
		{
			source:     SourceFamily,
			windowDays: e.windows.BirthdayDays,
			priority:   birthdayPriority,
			title:      func(string, int) string { return "Birthday coming up" },
			candidates: birthdayCandidates(now, members),
		},
	}

	items := make([]Item, 0)
	for _, r := range rules {
		for _, c := range r.candidates {
			days := daysUntil(now, c.due)
			if days <= 0 || days > r.windowDays {
				continue
			}
			items = append(items, Item{
				ID:       c.id,
				Title:    r.title(c.label, days),
				Subtitle: subtitle(c.person, c.dueText),
				Priority: r.priority(days),
				Source:   r.source,
				SourceID: c.sourceID,
			})
		}
	}

	for _, m := range manual {
		items = append(items, ManualItem(&m))
	}

	return dedupeByID(items), errs
}

// ManualItem converts a stored manual reminder to its feed representation.
func ManualItem(m *entity.Reminder) Item {
	return Item{
		ID:       m.ID.String(),
		Title:    m.Title,
		Subtitle: subtitle(m.Person, m.DueDate),
		Priority: m.Priority,
		Source:   SourceManual,
		SourceID: m.ID.String(),
	}
}

func loadSource[T any](load func() ([]T, error), source Source, errs *[]SourceError) []T {
	if load == nil {
		return nil
	}
	records, err := load()
	if err != nil {
		*errs = append(*errs, SourceError{Source: source, Err: err})
		return nil
	}
	return records
}

func documentCandidates(now time.Time, docs []entity.Document) []candidate {
	var out []candidate
	for _, d := range docs {
		if d.ExpiryDate == "" {
			continue
		}
		due, err := ParseDate(d.ExpiryDate, now.Location())
		if err != nil {
			continue
		}
		out = append(out, candidate{
			id:       "doc-" + d.ID.String(),
			label:    d.Type,
			person:   d.PersonName,
			dueText:  d.ExpiryDate,
			sourceID: d.ID.String(),
			due:      due,
		})
	}
	return out
}

func vehicleCandidates(now time.Time, vehicles []entity.Vehicle) []candidate {
	var out []candidate
	for _, v := range vehicles {
		for _, doc := range v.Documents {
			// RC renewals are decades out; only Insurance and PUC are
			// actively monitored.
			if doc.Name == entity.VehicleDocRC || doc.ExpiryDate == "" {
				continue
			}
			due, err := ParseDate(doc.ExpiryDate, now.Location())
			if err != nil {
				continue
			}
			out = append(out, candidate{
				id:       fmt.Sprintf("vehicle-%s-%s", v.ID, doc.Name),
				label:    doc.Name,
				person:   v.Name,
				dueText:  doc.ExpiryDate,
				sourceID: v.ID.String(),
				due:      due,
			})
		}
	}
	return out
}

func vaccineCandidates(now time.Time, records []entity.HealthRecord) []candidate {
	var out []candidate
	for _, rec := range records {
		if rec.Type != entity.HealthTypeVaccination || rec.Status != entity.HealthStatusResolved {
			continue
		}
		given, err := ParseDate(rec.RecordDate, now.Location())
		if err != nil {
			continue
		}
		due := given.AddDate(1, 0, 0)
		out = append(out, candidate{
			id:       "health-vaccine-" + rec.ID.String(),
			label:    rec.Title,
			person:   rec.PersonName,
			dueText:  due.Format("2006-01-02"),
			sourceID: rec.ID.String(),
			due:      due,
		})
	}
	return out
}

func medicationCandidates(now time.Time, records []entity.HealthRecord) []candidate {
	var out []candidate
	for _, rec := range records {
		if rec.Type != entity.HealthTypeMedication || rec.Status != entity.HealthStatusActive {
			continue
		}
		started, err := ParseDate(rec.RecordDate, now.Location())
		if err != nil {
			continue
		}
		due := started.AddDate(0, 1, 0)
		out = append(out, candidate{
			id:       "health-medication-" + rec.ID.String(),
			label:    rec.Title,
			person:   rec.PersonName,
			dueText:  due.Format("2006-01-02"),
			sourceID: rec.ID.String(),
			due:      due,
		})
	}
	return out
}

// birthdayCandidates derives a birth anniversary from the free-text age
// field. No date of birth is stored, so the anniversary is anchored to
// January 1st of the derived birth year; when this year's anchor has already
// passed (or is today), next year's occurrence is used. Approximate by
// construction, and kept that way.
func birthdayCandidates(now time.Time, members []entity.FamilyMember) []candidate {
	today := startOfDay(now)
	var out []candidate
	for _, m := range members {
		if _, ok := parseAgeYears(m.Age); !ok {
			continue
		}
		next := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		if !next.After(today) {
			next = next.AddDate(1, 0, 0)
		}
		out = append(out, candidate{
			id:       "birthday-" + m.ID.String(),
			person:   m.Name,
			dueText:  next.Format("2006-01-02"),
			sourceID: m.ID.String(),
			due:      next,
		})
	}
	return out
}

func tieredPriority(days int) entity.ReminderPriority {
	switch {
	case days <= 30:
		return entity.PriorityHigh
	case days <= 60:
		return entity.PriorityMedium
	default:
		return entity.PriorityLow
	}
}

func birthdayPriority(days int) entity.ReminderPriority {
	if days <= 7 {
		return entity.PriorityHigh
	}
	return entity.PriorityMedium
}

func fixedPriority(p entity.ReminderPriority) func(int) entity.ReminderPriority {
	return func(int) entity.ReminderPriority { return p }
}

func expiryTitle(label string, days int) string {
	return fmt.Sprintf("%s expires in %d days", label, days)
}

func subtitle(person, date string) string {
	if person == "" {
		return date
	}
	return person + " • " + date
}

func dedupeByID(items []Item) []Item {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out
}
