// Package models holds typed record wrappers in the shape code generators
// emit for them. Each wrapper owns a *record.Record and exposes Has, Set,
// With and Add accessors per member.
package models

import (
	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/prelude"
	"github.com/awslabs/record-go/traits"
)

const alexaForBusinessNamespace = "com.amazonaws.alexaforbusiness#"

// Schemas for the AlexaForBusiness shapes.
var (
	TagSchema = record.NewSchema(alexaForBusinessNamespace+"Tag", record.ShapeTypeStructure,
		record.WithMember("Key", prelude.String, &traits.Required{}),
		record.WithMember("Value", prelude.String, &traits.Required{}),
	)

	TagListSchema = record.NewSchema(alexaForBusinessNamespace+"TagList", record.ShapeTypeList,
		record.WithElement(TagSchema),
	)

	CreateGatewayGroupRequestSchema = record.NewSchema(alexaForBusinessNamespace+"CreateGatewayGroupRequest", record.ShapeTypeStructure,
		record.WithMember("Name", prelude.String, &traits.Required{}),
		record.WithMember("Description", prelude.String),
		record.WithMember("ClientRequestToken", prelude.String, &traits.IdempotencyToken{}),
		record.WithMember("Tags", TagListSchema),
		record.WithTraits(&traits.OperationTarget{Service: "AlexaForBusiness", Operation: "CreateGatewayGroup"}),
	)
)

// Tag is a key/value pair attached to a resource.
type Tag struct {
	rec *record.Record
}

// NewTag returns an empty Tag.
func NewTag() *Tag {
	return &Tag{rec: record.New(TagSchema)}
}

// TagFromRecord wraps a record of TagSchema.
func TagFromRecord(r *record.Record) *Tag {
	return &Tag{rec: r}
}

// Record returns the underlying record.
func (t *Tag) Record() *record.Record { return t.rec }

// Key returns Key, the zero value when unset.
func (t *Tag) Key() string { return t.rec.GetString("Key") }

// HasKey reports whether Key is set.
func (t *Tag) HasKey() bool { return t.rec.IsSet("Key") }

// SetKey sets Key.
func (t *Tag) SetKey(v string) { t.rec.MustSet("Key", v) }

// WithKey sets Key and returns the receiver.
func (t *Tag) WithKey(v string) *Tag {
	t.SetKey(v)
	return t
}

// Value returns Value, the zero value when unset.
func (t *Tag) Value() string { return t.rec.GetString("Value") }

// HasValue reports whether Value is set.
func (t *Tag) HasValue() bool { return t.rec.IsSet("Value") }

// SetValue sets Value.
func (t *Tag) SetValue(v string) { t.rec.MustSet("Value", v) }

// WithValue sets Value and returns the receiver.
func (t *Tag) WithValue(v string) *Tag {
	t.SetValue(v)
	return t
}

// CreateGatewayGroupInput is the request of AlexaForBusiness.CreateGatewayGroup.
type CreateGatewayGroupInput struct {
	rec *record.Record
}

// NewCreateGatewayGroupInput returns an empty request. ClientRequestToken is
// left unset, request builders fill it with record.ApplyIdempotencyTokens.
func NewCreateGatewayGroupInput() *CreateGatewayGroupInput {
	return &CreateGatewayGroupInput{rec: record.New(CreateGatewayGroupRequestSchema)}
}

// CreateGatewayGroupInputFromRecord wraps a record of
// CreateGatewayGroupRequestSchema.
func CreateGatewayGroupInputFromRecord(r *record.Record) *CreateGatewayGroupInput {
	return &CreateGatewayGroupInput{rec: r}
}

// Record returns the underlying record.
func (in *CreateGatewayGroupInput) Record() *record.Record { return in.rec }

// Name returns Name, the zero value when unset.
func (in *CreateGatewayGroupInput) Name() string { return in.rec.GetString("Name") }

// HasName reports whether Name is set.
func (in *CreateGatewayGroupInput) HasName() bool { return in.rec.IsSet("Name") }

// SetName sets Name.
func (in *CreateGatewayGroupInput) SetName(v string) { in.rec.MustSet("Name", v) }

// WithName sets Name and returns the receiver.
func (in *CreateGatewayGroupInput) WithName(v string) *CreateGatewayGroupInput {
	in.SetName(v)
	return in
}

// Description returns Description, the zero value when unset.
func (in *CreateGatewayGroupInput) Description() string { return in.rec.GetString("Description") }

// HasDescription reports whether Description is set.
func (in *CreateGatewayGroupInput) HasDescription() bool { return in.rec.IsSet("Description") }

// SetDescription sets Description.
func (in *CreateGatewayGroupInput) SetDescription(v string) { in.rec.MustSet("Description", v) }

// WithDescription sets Description and returns the receiver.
func (in *CreateGatewayGroupInput) WithDescription(v string) *CreateGatewayGroupInput {
	in.SetDescription(v)
	return in
}

// ClientRequestToken returns ClientRequestToken, the zero value when unset.
func (in *CreateGatewayGroupInput) ClientRequestToken() string {
	return in.rec.GetString("ClientRequestToken")
}

// HasClientRequestToken reports whether ClientRequestToken is set.
func (in *CreateGatewayGroupInput) HasClientRequestToken() bool {
	return in.rec.IsSet("ClientRequestToken")
}

// SetClientRequestToken sets ClientRequestToken.
func (in *CreateGatewayGroupInput) SetClientRequestToken(v string) {
	in.rec.MustSet("ClientRequestToken", v)
}

// WithClientRequestToken sets ClientRequestToken and returns the receiver.
func (in *CreateGatewayGroupInput) WithClientRequestToken(v string) *CreateGatewayGroupInput {
	in.SetClientRequestToken(v)
	return in
}

// Tags returns the tags in order, nil when unset.
func (in *CreateGatewayGroupInput) Tags() []*Tag {
	list := in.rec.GetList("Tags")
	if list == nil {
		return nil
	}
	tags := make([]*Tag, len(list))
	for i, e := range list {
		tags[i] = TagFromRecord(e.(*record.Record))
	}
	return tags
}

// HasTags reports whether Tags is set.
func (in *CreateGatewayGroupInput) HasTags() bool { return in.rec.IsSet("Tags") }

// SetTags sets Tags.
func (in *CreateGatewayGroupInput) SetTags(v []*Tag) {
	in.rec.MustSet("Tags", v)
}

// WithTags sets Tags and returns the receiver.
func (in *CreateGatewayGroupInput) WithTags(v []*Tag) *CreateGatewayGroupInput {
	in.SetTags(v)
	return in
}

// AddTags appends v to Tags and returns the receiver.
func (in *CreateGatewayGroupInput) AddTags(v *Tag) *CreateGatewayGroupInput {
	if err := in.rec.Append("Tags", v); err != nil {
		panic(err)
	}
	return in
}
