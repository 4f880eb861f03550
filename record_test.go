package record_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/internal/models"
	"github.com/awslabs/record-go/prelude"
	"github.com/awslabs/record-go/traits"
)

var (
	labelsSchema = record.NewSchema("test#Labels", record.ShapeTypeMap,
		record.WithElement(prelude.String),
	)
	countsSchema = record.NewSchema("test#Counts", record.ShapeTypeList,
		record.WithElement(prelude.Integer),
	)
	childSchema = record.NewSchema("test#Child", record.ShapeTypeStructure,
		record.WithMember("Id", prelude.String, &traits.Required{}),
	)
	childListSchema = record.NewSchema("test#ChildList", record.ShapeTypeList,
		record.WithElement(childSchema),
	)
	widgetSchema = record.NewSchema("test#Widget", record.ShapeTypeStructure,
		record.WithMember("Name", prelude.String, &traits.Required{}),
		record.WithMember("Count", prelude.Integer),
		record.WithMember("Ratio", prelude.Float),
		record.WithMember("Enabled", prelude.Boolean),
		record.WithMember("Created", prelude.Timestamp),
		record.WithMember("Counts", countsSchema),
		record.WithMember("Labels", labelsSchema),
		record.WithMember("Child", childSchema),
		record.WithMember("Children", childListSchema),
	)
)

func TestNewRecordIsEmpty(t *testing.T) {
	r := record.New(widgetSchema)

	for _, m := range widgetSchema.Members() {
		if r.IsSet(m.MemberName()) {
			t.Errorf("expect %s unset", m.MemberName())
		}
	}
	if a := r.SetMembers(); len(a) != 0 {
		t.Errorf("expect no set members, got %v", a)
	}
}

func TestNewPanicsOnNonStructure(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expect panic")
		}
	}()
	record.New(prelude.String)
}

func TestGetUnsetReturnsZeroValue(t *testing.T) {
	r := record.New(widgetSchema)

	if e, a := "", r.GetString("Name"); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
	if e, a := int64(0), r.GetInt64("Count"); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := float64(0), r.GetFloat64("Ratio"); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if r.GetBool("Enabled") {
		t.Errorf("expect false")
	}
	if a := r.GetTime("Created"); !a.IsZero() {
		t.Errorf("expect zero time, got %v", a)
	}
	if a := r.GetList("Counts"); a != nil {
		t.Errorf("expect nil list, got %v", a)
	}
	if a := r.GetMap("Labels"); a != nil {
		t.Errorf("expect nil map, got %v", a)
	}
	if a := r.Get("Nope"); a != nil {
		t.Errorf("expect nil for unknown member, got %v", a)
	}

	child := r.GetRecord("Child")
	if child == nil {
		t.Fatalf("expect empty child record")
	}
	if child.IsSet("Id") {
		t.Errorf("expect child Id unset")
	}
	if r.IsSet("Child") {
		t.Errorf("expect reading an unset child to leave it unset")
	}
}

func TestSetMarksOnlyThatMember(t *testing.T) {
	r := record.New(widgetSchema)

	if err := r.Set("Name", "Lobby"); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	if !r.IsSet("Name") {
		t.Errorf("expect Name set")
	}
	if e, a := []string{"Name"}, r.SetMembers(); !cmp.Equal(e, a) {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := "Lobby", r.GetString("Name"); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestSetZeroValueIsSet(t *testing.T) {
	r := record.New(widgetSchema)
	r.MustSet("Name", "").MustSet("Count", 0).MustSet("Enabled", false)

	for _, name := range []string{"Name", "Count", "Enabled"} {
		if !r.IsSet(name) {
			t.Errorf("expect %s set", name)
		}
	}
}

func TestSetNormalizes(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := map[string]struct {
		Member string
		Value  any
		Expect any
	}{
		"int to integer": {
			Member: "Count", Value: 42, Expect: int64(42),
		},
		"uint8 to integer": {
			Member: "Count", Value: uint8(7), Expect: int64(7),
		},
		"float32 to float": {
			Member: "Ratio", Value: float32(0.5), Expect: float64(0.5),
		},
		"int to float": {
			Member: "Ratio", Value: 3, Expect: float64(3),
		},
		"time pointer": {
			Member: "Created", Value: &now, Expect: now,
		},
		"typed slice": {
			Member: "Counts", Value: []int32{1, 2}, Expect: []any{int64(1), int64(2)},
		},
		"typed map": {
			Member: "Labels", Value: map[string]string{"a": "b"}, Expect: map[string]any{"a": "b"},
		},
		"nil slice is an empty list": {
			Member: "Counts", Value: []int(nil), Expect: []any{},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r := record.New(widgetSchema)
			if err := r.Set(c.Member, c.Value); err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if diff := cmp.Diff(c.Expect, r.Get(c.Member)); diff != "" {
				t.Errorf("value mismatch (-expect +actual):\n%s", diff)
			}
		})
	}
}

func TestSetInvalid(t *testing.T) {
	cases := map[string]struct {
		Member string
		Value  any
	}{
		"unknown member":       {Member: "Nope", Value: "x"},
		"string into integer":  {Member: "Count", Value: "42"},
		"int into string":      {Member: "Name", Value: 42},
		"nil":                  {Member: "Name", Value: nil},
		"wrong element kind":   {Member: "Counts", Value: []string{"a"}},
		"wrong record schema":  {Member: "Child", Value: record.New(widgetSchema)},
		"uint overflow":        {Member: "Count", Value: uint64(1 << 63)},
		"non string keyed map": {Member: "Labels", Value: map[int]string{1: "a"}},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r := record.New(widgetSchema)
			err := r.Set(c.Member, c.Value)
			if err == nil {
				t.Fatalf("expect error")
			}
			var ife *record.InvalidFieldError
			if !errors.As(err, &ife) {
				t.Fatalf("expect InvalidFieldError, got %T", err)
			}
			if e, a := c.Member, ife.Member; e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
			if r.IsSet(c.Member) {
				t.Errorf("expect failed set to leave member unset")
			}
		})
	}
}

func TestSetCopiesContainers(t *testing.T) {
	counts := []int64{1, 2}
	child := record.New(childSchema).MustSet("Id", "a")

	r := record.New(widgetSchema)
	r.MustSet("Counts", counts).MustSet("Child", child)

	counts[0] = 99
	child.MustSet("Id", "b")

	if e, a := int64(1), r.GetList("Counts")[0]; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := "a", r.GetRecord("Child").GetString("Id"); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestAppendAndPut(t *testing.T) {
	r := record.New(widgetSchema)

	if err := r.Append("Counts", 1); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if err := r.Append("Counts", int16(2)); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if err := r.Put("Labels", "env", "prod"); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if err := r.Append("Children", record.New(childSchema).MustSet("Id", "c1")); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	if diff := cmp.Diff([]any{int64(1), int64(2)}, r.GetList("Counts")); diff != "" {
		t.Errorf("list mismatch (-expect +actual):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"env": "prod"}, r.GetMap("Labels")); diff != "" {
		t.Errorf("map mismatch (-expect +actual):\n%s", diff)
	}
	if e, a := 1, len(r.GetList("Children")); e != a {
		t.Errorf("expect %v children, got %v", e, a)
	}
	if e, a := []string{"Counts", "Labels", "Children"}, r.SetMembers(); !cmp.Equal(e, a) {
		t.Errorf("expect %v, got %v", e, a)
	}

	if err := r.Append("Name", "x"); err == nil {
		t.Errorf("expect error appending to a string member")
	}
	if err := r.Put("Counts", "k", 1); err == nil {
		t.Errorf("expect error putting into a list member")
	}
}

func TestCloneAndEqual(t *testing.T) {
	r := record.New(widgetSchema)
	r.MustSet("Name", "a").
		MustSet("Labels", map[string]string{"k": "v"}).
		MustSet("Child", record.New(childSchema).MustSet("Id", "x"))

	c := r.Clone()
	if !r.Equal(c) {
		t.Fatalf("expect clone equal")
	}
	if !cmp.Equal(r, c) {
		t.Errorf("expect cmp.Equal to use Record.Equal")
	}

	if err := c.Put("Labels", "k", "other"); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if r.Equal(c) {
		t.Errorf("expect mutated clone to differ")
	}
	if e, a := "v", r.GetMap("Labels")["k"]; e != a {
		t.Errorf("expect original untouched, got %v", a)
	}

	empty := record.New(widgetSchema)
	zeroed := record.New(widgetSchema).MustSet("Name", "")
	if empty.Equal(zeroed) {
		t.Errorf("expect presence to take part in equality")
	}
}

func TestTypedWrapper(t *testing.T) {
	in := models.NewCreateGatewayGroupInput().WithName("Lobby")

	if !in.HasName() {
		t.Errorf("expect Name set")
	}
	if in.HasDescription() {
		t.Errorf("expect Description unset")
	}
	if e, a := "", in.Description(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}

	in.AddTags(models.NewTag().WithKey("floor").WithValue("1"))
	tags := in.Tags()
	if e, a := 1, len(tags); e != a {
		t.Fatalf("expect %v tags, got %v", e, a)
	}
	if e, a := "floor", tags[0].Key(); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}
