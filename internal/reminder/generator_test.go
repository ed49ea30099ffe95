package reminder

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"family-records-api/internal/domain/entity"

	"github.com/google/uuid"
)

func docsLoader(docs ...entity.Document) func() ([]entity.Document, error) {
	return func() ([]entity.Document, error) { return docs, nil }
}

func itemByID(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

func TestGenerateDocumentWindow(t *testing.T) {
	e := NewEngine(DefaultWindows())

	tests := []struct {
		name     string
		expiry   string
		wantIn   bool
		priority entity.ReminderPriority
	}{
		{"30 days out is high", "2026-10-01", true, entity.PriorityHigh},
		{"60 days out is medium", "2026-10-31", true, entity.PriorityMedium},
		{"89 days out is low", "2026-11-29", true, entity.PriorityLow},
		{"90 days out is the last included", "2026-11-30", true, entity.PriorityLow},
		{"91 days out is excluded", "2026-12-01", false, ""},
		{"due today is excluded", "2026-09-01", false, ""},
		{"already expired is excluded", "2026-08-25", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := entity.Document{
				ID:         uuid.New(),
				PersonName: "Asha",
				Type:       "Passport",
				ExpiryDate: tt.expiry,
			}

			items, errs := e.Generate(testNow, Loaders{Documents: docsLoader(doc)})
			if len(errs) != 0 {
				t.Fatalf("unexpected source errors: %v", errs)
			}

			item, found := itemByID(items, "doc-"+doc.ID.String())
			if found != tt.wantIn {
				t.Fatalf("expiry %s: found=%v, want %v", tt.expiry, found, tt.wantIn)
			}
			if found && item.Priority != tt.priority {
				t.Fatalf("expiry %s: priority %q, want %q", tt.expiry, item.Priority, tt.priority)
			}
		})
	}
}

func TestGenerateDocumentItemShape(t *testing.T) {
	e := NewEngine(DefaultWindows())
	doc := entity.Document{
		ID:         uuid.New(),
		PersonName: "Asha",
		Type:       "Passport",
		ExpiryDate: "2026-10-01",
	}

	items, _ := e.Generate(testNow, Loaders{Documents: docsLoader(doc)})
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}

	item := items[0]
	if item.Title != "Passport expires in 30 days" {
		t.Fatalf("title = %q", item.Title)
	}
	if item.Subtitle != "Asha • 2026-10-01" {
		t.Fatalf("subtitle = %q", item.Subtitle)
	}
	if item.Source != SourceDocument {
		t.Fatalf("source = %q", item.Source)
	}
	if item.SourceID != doc.ID.String() {
		t.Fatalf("source id = %q", item.SourceID)
	}
}

func TestGenerateSkipsUntrackedAndUnparseableDocuments(t *testing.T) {
	e := NewEngine(DefaultWindows())
	items, errs := e.Generate(testNow, Loaders{Documents: docsLoader(
		entity.Document{ID: uuid.New(), PersonName: "Asha", Type: "Aadhaar"},
		entity.Document{ID: uuid.New(), PersonName: "Asha", Type: "Visa", ExpiryDate: "whenever"},
	)})

	if len(errs) != 0 {
		t.Fatalf("unexpected source errors: %v", errs)
	}
	if len(items) != 0 {
		t.Fatalf("got %d items from untracked documents, want 0", len(items))
	}
}

func TestGenerateVehicleRules(t *testing.T) {
	e := NewEngine(DefaultWindows())
	v := entity.Vehicle{
		ID:   uuid.New(),
		Name: "Honda City",
		Documents: []entity.VehicleDocument{
			{Name: entity.VehicleDocInsurance, ExpiryDate: "2026-09-20"},
			{Name: entity.VehicleDocPUC, ExpiryDate: "2026-10-15"},
			{Name: entity.VehicleDocRC, ExpiryDate: "2026-09-10", ValidUntilDate: "2040-01-01"},
		},
	}

	items, errs := e.Generate(testNow, Loaders{
		Vehicles: func() ([]entity.Vehicle, error) { return []entity.Vehicle{v}, nil },
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected source errors: %v", errs)
	}

	insurance, found := itemByID(items, fmt.Sprintf("vehicle-%s-%s", v.ID, entity.VehicleDocInsurance))
	if !found {
		t.Fatalf("insurance reminder missing")
	}
	if insurance.Priority != entity.PriorityHigh {
		t.Fatalf("insurance priority = %q, want high", insurance.Priority)
	}
	if insurance.Title != "Insurance expires in 19 days" {
		t.Fatalf("insurance title = %q", insurance.Title)
	}
	if insurance.Subtitle != "Honda City • 2026-09-20" {
		t.Fatalf("insurance subtitle = %q", insurance.Subtitle)
	}

	if _, found := itemByID(items, fmt.Sprintf("vehicle-%s-%s", v.ID, entity.VehicleDocPUC)); !found {
		t.Fatalf("PUC reminder missing")
	}

	// The RC never produces a reminder even with a near expiry date set.
	if _, found := itemByID(items, fmt.Sprintf("vehicle-%s-%s", v.ID, entity.VehicleDocRC)); found {
		t.Fatalf("RC produced a reminder")
	}
}

func TestGenerateVaccinationRenewal(t *testing.T) {
	e := NewEngine(DefaultWindows())

	resolved := entity.HealthRecord{
		ID:         uuid.New(),
		PersonName: "Ravi",
		Type:       entity.HealthTypeVaccination,
		Title:      "Typhoid vaccine",
		RecordDate: "2025-10-01",
		Status:     entity.HealthStatusResolved,
	}
	pending := entity.HealthRecord{
		ID:         uuid.New(),
		PersonName: "Ravi",
		Type:       entity.HealthTypeVaccination,
		Title:      "Flu shot",
		RecordDate: "2025-10-01",
		Status:     entity.HealthStatusOngoing,
	}

	items, errs := e.Generate(testNow, Loaders{
		Health: func() ([]entity.HealthRecord, error) { return []entity.HealthRecord{resolved, pending}, nil },
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected source errors: %v", errs)
	}

	item, found := itemByID(items, "health-vaccine-"+resolved.ID.String())
	if !found {
		t.Fatalf("vaccination renewal missing")
	}
	if item.Title != "Typhoid vaccine due for renewal" {
		t.Fatalf("title = %q", item.Title)
	}
	if item.Priority != entity.PriorityMedium {
		t.Fatalf("priority = %q, want medium", item.Priority)
	}
	if item.Subtitle != "Ravi • 2026-10-01" {
		t.Fatalf("subtitle = %q", item.Subtitle)
	}

	// Only completed courses renew; an ongoing one is not due.
	if _, found := itemByID(items, "health-vaccine-"+pending.ID.String()); found {
		t.Fatalf("ongoing vaccination produced a renewal")
	}
}

func TestGenerateMedicationRefill(t *testing.T) {
	e := NewEngine(DefaultWindows())

	due := entity.HealthRecord{
		ID:         uuid.New(),
		PersonName: "Meera",
		Type:       entity.HealthTypeMedication,
		Title:      "Thyroid medication",
		RecordDate: "2026-08-05",
		Status:     entity.HealthStatusActive,
	}
	tooFar := entity.HealthRecord{
		ID:         uuid.New(),
		PersonName: "Meera",
		Type:       entity.HealthTypeMedication,
		Title:      "Vitamin D",
		RecordDate: "2026-08-20",
		Status:     entity.HealthStatusActive,
	}
	stopped := entity.HealthRecord{
		ID:         uuid.New(),
		PersonName: "Meera",
		Type:       entity.HealthTypeMedication,
		Title:      "Antibiotic",
		RecordDate: "2026-08-05",
		Status:     entity.HealthStatusResolved,
	}

	items, _ := e.Generate(testNow, Loaders{
		Health: func() ([]entity.HealthRecord, error) {
			return []entity.HealthRecord{due, tooFar, stopped}, nil
		},
	})

	item, found := itemByID(items, "health-medication-"+due.ID.String())
	if !found {
		t.Fatalf("refill reminder missing")
	}
	if item.Title != "Thyroid medication refill needed" {
		t.Fatalf("title = %q", item.Title)
	}
	if item.Priority != entity.PriorityHigh {
		t.Fatalf("priority = %q, want high", item.Priority)
	}

	if _, found := itemByID(items, "health-medication-"+tooFar.ID.String()); found {
		t.Fatalf("refill more than a week out was included")
	}
	if _, found := itemByID(items, "health-medication-"+stopped.ID.String()); found {
		t.Fatalf("stopped medication produced a refill")
	}
}

func TestGenerateBirthdayAnchor(t *testing.T) {
	e := NewEngine(DefaultWindows())
	member := entity.FamilyMember{ID: uuid.New(), Name: "Asha", Age: "40 years"}
	noAge := entity.FamilyMember{ID: uuid.New(), Name: "Baby", Age: "newborn"}
	loaders := Loaders{
		Members: func() ([]entity.FamilyMember, error) {
			return []entity.FamilyMember{member, noAge}, nil
		},
	}

	// September: the January 1st anchor is months away.
	items, _ := e.Generate(testNow, loaders)
	if _, found := itemByID(items, "birthday-"+member.ID.String()); found {
		t.Fatalf("birthday surfaced outside its window")
	}

	// Mid-December: 17 days to the anchor, medium priority.
	dec := time.Date(2026, time.December, 15, 9, 0, 0, 0, time.UTC)
	items, _ = e.Generate(dec, loaders)
	item, found := itemByID(items, "birthday-"+member.ID.String())
	if !found {
		t.Fatalf("birthday missing in December")
	}
	if item.Title != "Birthday coming up" {
		t.Fatalf("title = %q", item.Title)
	}
	if item.Priority != entity.PriorityMedium {
		t.Fatalf("priority = %q, want medium", item.Priority)
	}
	if item.Subtitle != "Asha • 2027-01-01" {
		t.Fatalf("subtitle = %q", item.Subtitle)
	}

	// Last week of the year it becomes high priority.
	late := time.Date(2026, time.December, 28, 9, 0, 0, 0, time.UTC)
	items, _ = e.Generate(late, loaders)
	item, _ = itemByID(items, "birthday-"+member.ID.String())
	if item.Priority != entity.PriorityHigh {
		t.Fatalf("priority = %q, want high", item.Priority)
	}

	// On January 1st the anchor rolls to next year, out of the window.
	jan1 := time.Date(2027, time.January, 1, 9, 0, 0, 0, time.UTC)
	items, _ = e.Generate(jan1, loaders)
	if _, found := itemByID(items, "birthday-"+member.ID.String()); found {
		t.Fatalf("birthday surfaced on the anchor day itself")
	}

	// Members without a parseable age never produce birthdays.
	items, _ = e.Generate(dec, loaders)
	if _, found := itemByID(items, "birthday-"+noAge.ID.String()); found {
		t.Fatalf("member without parseable age produced a birthday")
	}
}

func TestGenerateManualAppendedAfterDerived(t *testing.T) {
	e := NewEngine(DefaultWindows())
	doc := entity.Document{ID: uuid.New(), PersonName: "Asha", Type: "Passport", ExpiryDate: "2026-10-01"}
	manual := entity.Reminder{
		ID:       uuid.New(),
		Title:    "Renew club membership",
		Person:   "Asha",
		DueDate:  "2026-09-15",
		Priority: entity.PriorityLow,
	}

	items, _ := e.Generate(testNow, Loaders{
		Documents: docsLoader(doc),
		Manual:    func() ([]entity.Reminder, error) { return []entity.Reminder{manual}, nil },
	})

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Source != SourceDocument || items[1].Source != SourceManual {
		t.Fatalf("manual reminder not appended after derived ones: %v, %v", items[0].Source, items[1].Source)
	}

	m := items[1]
	if m.ID != manual.ID.String() || m.Title != "Renew club membership" || m.Priority != entity.PriorityLow {
		t.Fatalf("manual item mangled: %+v", m)
	}
	if m.Subtitle != "Asha • 2026-09-15" {
		t.Fatalf("manual subtitle = %q", m.Subtitle)
	}
}

func TestGenerateDeduplicatesKeepingFirst(t *testing.T) {
	e := NewEngine(DefaultWindows())
	id := uuid.New()
	first := entity.Document{ID: id, PersonName: "Asha", Type: "Passport", ExpiryDate: "2026-10-01"}
	second := entity.Document{ID: id, PersonName: "Asha", Type: "Visa", ExpiryDate: "2026-11-01"}

	items, _ := e.Generate(testNow, Loaders{Documents: docsLoader(first, second)})
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1 after dedup", len(items))
	}
	if items[0].Title != "Passport expires in 30 days" {
		t.Fatalf("dedup kept the wrong occurrence: %q", items[0].Title)
	}
}

func TestGenerateDegradesPerSource(t *testing.T) {
	e := NewEngine(DefaultWindows())
	doc := entity.Document{ID: uuid.New(), PersonName: "Asha", Type: "Passport", ExpiryDate: "2026-10-01"}

	items, errs := e.Generate(testNow, Loaders{
		Documents: docsLoader(doc),
		Health: func() ([]entity.HealthRecord, error) {
			return nil, errors.New("connection refused")
		},
	})

	if len(errs) != 1 {
		t.Fatalf("got %d source errors, want 1", len(errs))
	}
	if errs[0].Source != SourceHealth {
		t.Fatalf("degraded source = %q, want %q", errs[0].Source, SourceHealth)
	}
	if len(items) != 1 {
		t.Fatalf("healthy sources were dropped with the failing one: %d items", len(items))
	}
}

// Unchanged inputs always produce the identical feed.
func TestGenerateIsDeterministic(t *testing.T) {
	e := NewEngine(DefaultWindows())
	doc := entity.Document{ID: uuid.New(), PersonName: "Asha", Type: "Passport", ExpiryDate: "2026-10-01"}
	v := entity.Vehicle{
		ID:   uuid.New(),
		Name: "Honda City",
		Documents: []entity.VehicleDocument{
			{Name: entity.VehicleDocInsurance, ExpiryDate: "2026-09-20"},
		},
	}
	loaders := Loaders{
		Documents: docsLoader(doc),
		Vehicles:  func() ([]entity.Vehicle, error) { return []entity.Vehicle{v}, nil },
	}

	first, _ := e.Generate(testNow, loaders)
	second, _ := e.Generate(testNow, loaders)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two runs over unchanged inputs differ:\n%+v\n%+v", first, second)
	}
}

func TestGenerateCustomWindows(t *testing.T) {
	e := NewEngine(Windows{DocumentDays: 10})
	doc := entity.Document{ID: uuid.New(), PersonName: "Asha", Type: "Passport", ExpiryDate: "2026-09-20"}

	items, _ := e.Generate(testNow, Loaders{Documents: docsLoader(doc)})
	if len(items) != 0 {
		t.Fatalf("19 days out surfaced with a 10-day window")
	}

	doc.ExpiryDate = "2026-09-10"
	items, _ = e.Generate(testNow, Loaders{Documents: docsLoader(doc)})
	if len(items) != 1 {
		t.Fatalf("9 days out missing with a 10-day window")
	}
}
