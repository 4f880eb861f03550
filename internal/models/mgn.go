package models

import (
	"time"

	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/prelude"
	"github.com/awslabs/record-go/traits"
)

const mgnNamespace = "com.amazonaws.mgn#"

// Schemas for the Application Migration Service shapes.
var (
	LifeCycleSchema = record.NewSchema(mgnNamespace+"LifeCycle", record.ShapeTypeStructure,
		record.WithMember("addedToServiceDateTime", prelude.Timestamp,
			&traits.TimestampFormat{Format: traits.TimestampFormatDateTime}),
		record.WithMember("elapsedReplicationDuration", prelude.String),
		record.WithMember("state", prelude.String),
	)

	TagsMapSchema = record.NewSchema(mgnNamespace+"TagsMap", record.ShapeTypeMap,
		record.WithElement(prelude.String),
	)

	ChangeServerLifeCycleStateResultSchema = record.NewSchema(mgnNamespace+"SourceServer", record.ShapeTypeStructure,
		record.WithMember("arn", prelude.String),
		record.WithMember("isArchived", prelude.Boolean),
		record.WithMember("lifeCycle", LifeCycleSchema),
		record.WithMember("sourceServerID", prelude.String),
		record.WithMember("tags", TagsMapSchema, &traits.Sensitive{}),
	)
)

// LifeCycle is the migration life cycle of a source server.
type LifeCycle struct {
	rec *record.Record
}

// NewLifeCycle returns an empty LifeCycle.
func NewLifeCycle() *LifeCycle {
	return &LifeCycle{rec: record.New(LifeCycleSchema)}
}

// Record returns the underlying record.
func (l *LifeCycle) Record() *record.Record { return l.rec }

// AddedToServiceDateTime returns AddedToServiceDateTime, the zero value when unset.
func (l *LifeCycle) AddedToServiceDateTime() time.Time {
	return l.rec.GetTime("addedToServiceDateTime")
}

// HasAddedToServiceDateTime reports whether AddedToServiceDateTime is set.
func (l *LifeCycle) HasAddedToServiceDateTime() bool { return l.rec.IsSet("addedToServiceDateTime") }

// WithAddedToServiceDateTime sets AddedToServiceDateTime and returns the receiver.
func (l *LifeCycle) WithAddedToServiceDateTime(v time.Time) *LifeCycle {
	l.rec.MustSet("addedToServiceDateTime", v)
	return l
}

// ElapsedReplicationDuration returns ElapsedReplicationDuration, the zero value when unset.
func (l *LifeCycle) ElapsedReplicationDuration() string {
	return l.rec.GetString("elapsedReplicationDuration")
}

// HasElapsedReplicationDuration reports whether ElapsedReplicationDuration is set.
func (l *LifeCycle) HasElapsedReplicationDuration() bool {
	return l.rec.IsSet("elapsedReplicationDuration")
}

// WithElapsedReplicationDuration sets ElapsedReplicationDuration and returns the receiver.
func (l *LifeCycle) WithElapsedReplicationDuration(v string) *LifeCycle {
	l.rec.MustSet("elapsedReplicationDuration", v)
	return l
}

// State returns State, the zero value when unset.
func (l *LifeCycle) State() string { return l.rec.GetString("state") }

// HasState reports whether State is set.
func (l *LifeCycle) HasState() bool { return l.rec.IsSet("state") }

// WithState sets State and returns the receiver.
func (l *LifeCycle) WithState(v string) *LifeCycle {
	l.rec.MustSet("state", v)
	return l
}

// ChangeServerLifeCycleStateOutput is the result of mgn
// ChangeServerLifeCycleState.
type ChangeServerLifeCycleStateOutput struct {
	rec *record.Record
}

// NewChangeServerLifeCycleStateOutput returns an empty result.
func NewChangeServerLifeCycleStateOutput() *ChangeServerLifeCycleStateOutput {
	return &ChangeServerLifeCycleStateOutput{rec: record.New(ChangeServerLifeCycleStateResultSchema)}
}

// ChangeServerLifeCycleStateOutputFromRecord wraps a decoded result.
func ChangeServerLifeCycleStateOutputFromRecord(r *record.Record) *ChangeServerLifeCycleStateOutput {
	return &ChangeServerLifeCycleStateOutput{rec: r}
}

// Record returns the underlying record.
func (o *ChangeServerLifeCycleStateOutput) Record() *record.Record { return o.rec }

// Arn returns Arn, the zero value when unset.
func (o *ChangeServerLifeCycleStateOutput) Arn() string { return o.rec.GetString("arn") }

// HasArn reports whether Arn is set.
func (o *ChangeServerLifeCycleStateOutput) HasArn() bool { return o.rec.IsSet("arn") }

// WithArn sets Arn and returns the receiver.
func (o *ChangeServerLifeCycleStateOutput) WithArn(v string) *ChangeServerLifeCycleStateOutput {
	o.rec.MustSet("arn", v)
	return o
}

// IsArchived returns IsArchived, the zero value when unset.
func (o *ChangeServerLifeCycleStateOutput) IsArchived() bool { return o.rec.GetBool("isArchived") }

// HasIsArchived reports whether IsArchived is set.
func (o *ChangeServerLifeCycleStateOutput) HasIsArchived() bool { return o.rec.IsSet("isArchived") }

// WithIsArchived sets IsArchived and returns the receiver.
func (o *ChangeServerLifeCycleStateOutput) WithIsArchived(v bool) *ChangeServerLifeCycleStateOutput {
	o.rec.MustSet("isArchived", v)
	return o
}

// LifeCycle returns the life cycle, empty when unset.
func (o *ChangeServerLifeCycleStateOutput) LifeCycle() *LifeCycle {
	return &LifeCycle{rec: o.rec.GetRecord("lifeCycle")}
}

// HasLifeCycle reports whether LifeCycle is set.
func (o *ChangeServerLifeCycleStateOutput) HasLifeCycle() bool { return o.rec.IsSet("lifeCycle") }

// WithLifeCycle sets LifeCycle and returns the receiver.
func (o *ChangeServerLifeCycleStateOutput) WithLifeCycle(v *LifeCycle) *ChangeServerLifeCycleStateOutput {
	o.rec.MustSet("lifeCycle", v)
	return o
}

// SourceServerID returns SourceServerID, the zero value when unset.
func (o *ChangeServerLifeCycleStateOutput) SourceServerID() string {
	return o.rec.GetString("sourceServerID")
}

// HasSourceServerID reports whether SourceServerID is set.
func (o *ChangeServerLifeCycleStateOutput) HasSourceServerID() bool {
	return o.rec.IsSet("sourceServerID")
}

// WithSourceServerID sets SourceServerID and returns the receiver.
func (o *ChangeServerLifeCycleStateOutput) WithSourceServerID(v string) *ChangeServerLifeCycleStateOutput {
	o.rec.MustSet("sourceServerID", v)
	return o
}

// Tags returns a copy of the tags, nil when unset.
func (o *ChangeServerLifeCycleStateOutput) Tags() map[string]string {
	mp := o.rec.GetMap("tags")
	if mp == nil {
		return nil
	}
	out := make(map[string]string, len(mp))
	for k, v := range mp {
		out[k] = v.(string)
	}
	return out
}

// HasTags reports whether Tags is set.
func (o *ChangeServerLifeCycleStateOutput) HasTags() bool { return o.rec.IsSet("tags") }

// WithTags sets Tags and returns the receiver.
func (o *ChangeServerLifeCycleStateOutput) WithTags(v map[string]string) *ChangeServerLifeCycleStateOutput {
	o.rec.MustSet("tags", v)
	return o
}

// AddTagsEntry appends v to TagsEntry and returns the receiver.
func (o *ChangeServerLifeCycleStateOutput) AddTagsEntry(key, value string) *ChangeServerLifeCycleStateOutput {
	if err := o.rec.Put("tags", key, value); err != nil {
		panic(err)
	}
	return o
}
