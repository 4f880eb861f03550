package models

import (
	"time"

	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/prelude"
	"github.com/awslabs/record-go/traits"
)

const quickSightNamespace = "com.amazonaws.quicksight#"

// Schemas for the QuickSight shapes.
var (
	DashboardSummarySchema = record.NewSchema(quickSightNamespace+"DashboardSummary", record.ShapeTypeStructure,
		record.WithMember("Arn", prelude.String),
		record.WithMember("DashboardId", prelude.String),
		record.WithMember("Name", prelude.String),
		record.WithMember("PublishedVersionNumber", prelude.Integer),
		record.WithMember("LastUpdatedTime", prelude.Timestamp),
	)

	DashboardSummaryListSchema = record.NewSchema(quickSightNamespace+"DashboardSummaryList", record.ShapeTypeList,
		record.WithElement(DashboardSummarySchema),
	)

	ListDashboardsResponseSchema = record.NewSchema(quickSightNamespace+"ListDashboardsResponse", record.ShapeTypeStructure,
		record.WithMember("DashboardSummaryList", DashboardSummaryListSchema),
		record.WithMember("NextToken", prelude.String),
		record.WithMember("RequestId", prelude.String, &traits.HTTPHeader{Name: "X-Amzn-RequestId"}),
		record.WithMember("Status", prelude.Integer, &traits.HTTPResponseCode{}),
	)
)

// DashboardSummary describes one dashboard.
type DashboardSummary struct {
	rec *record.Record
}

// NewDashboardSummary returns an empty summary.
func NewDashboardSummary() *DashboardSummary {
	return &DashboardSummary{rec: record.New(DashboardSummarySchema)}
}

// Record returns the underlying record.
func (d *DashboardSummary) Record() *record.Record { return d.rec }

// Arn returns Arn, the zero value when unset.
func (d *DashboardSummary) Arn() string { return d.rec.GetString("Arn") }

// HasArn reports whether Arn is set.
func (d *DashboardSummary) HasArn() bool { return d.rec.IsSet("Arn") }

// WithArn sets Arn and returns the receiver.
func (d *DashboardSummary) WithArn(v string) *DashboardSummary {
	d.rec.MustSet("Arn", v)
	return d
}

// DashboardId returns DashboardId, the zero value when unset.
func (d *DashboardSummary) DashboardId() string { return d.rec.GetString("DashboardId") }

// HasDashboardId reports whether DashboardId is set.
func (d *DashboardSummary) HasDashboardId() bool { return d.rec.IsSet("DashboardId") }

// WithDashboardId sets DashboardId and returns the receiver.
func (d *DashboardSummary) WithDashboardId(v string) *DashboardSummary {
	d.rec.MustSet("DashboardId", v)
	return d
}

// Name returns Name, the zero value when unset.
func (d *DashboardSummary) Name() string { return d.rec.GetString("Name") }

// HasName reports whether Name is set.
func (d *DashboardSummary) HasName() bool { return d.rec.IsSet("Name") }

// WithName sets Name and returns the receiver.
func (d *DashboardSummary) WithName(v string) *DashboardSummary {
	d.rec.MustSet("Name", v)
	return d
}

// PublishedVersionNumber returns PublishedVersionNumber, the zero value when unset.
func (d *DashboardSummary) PublishedVersionNumber() int64 {
	return d.rec.GetInt64("PublishedVersionNumber")
}

// HasPublishedVersionNumber reports whether PublishedVersionNumber is set.
func (d *DashboardSummary) HasPublishedVersionNumber() bool {
	return d.rec.IsSet("PublishedVersionNumber")
}

// WithPublishedVersionNumber sets PublishedVersionNumber and returns the receiver.
func (d *DashboardSummary) WithPublishedVersionNumber(v int64) *DashboardSummary {
	d.rec.MustSet("PublishedVersionNumber", v)
	return d
}

// LastUpdatedTime returns LastUpdatedTime, the zero value when unset.
func (d *DashboardSummary) LastUpdatedTime() time.Time { return d.rec.GetTime("LastUpdatedTime") }

// HasLastUpdatedTime reports whether LastUpdatedTime is set.
func (d *DashboardSummary) HasLastUpdatedTime() bool { return d.rec.IsSet("LastUpdatedTime") }

// WithLastUpdatedTime sets LastUpdatedTime and returns the receiver.
func (d *DashboardSummary) WithLastUpdatedTime(v time.Time) *DashboardSummary {
	d.rec.MustSet("LastUpdatedTime", v)
	return d
}

// ListDashboardsOutput is the result of QuickSight ListDashboards.
type ListDashboardsOutput struct {
	rec *record.Record
}

// NewListDashboardsOutput returns an empty result.
func NewListDashboardsOutput() *ListDashboardsOutput {
	return &ListDashboardsOutput{rec: record.New(ListDashboardsResponseSchema)}
}

// ListDashboardsOutputFromRecord wraps a decoded result.
func ListDashboardsOutputFromRecord(r *record.Record) *ListDashboardsOutput {
	return &ListDashboardsOutput{rec: r}
}

// Record returns the underlying record.
func (o *ListDashboardsOutput) Record() *record.Record { return o.rec }

// DashboardSummaryList returns the summaries in order, nil when unset.
func (o *ListDashboardsOutput) DashboardSummaryList() []*DashboardSummary {
	list := o.rec.GetList("DashboardSummaryList")
	if list == nil {
		return nil
	}
	out := make([]*DashboardSummary, len(list))
	for i, e := range list {
		out[i] = &DashboardSummary{rec: e.(*record.Record)}
	}
	return out
}

// HasDashboardSummaryList reports whether DashboardSummaryList is set.
func (o *ListDashboardsOutput) HasDashboardSummaryList() bool {
	return o.rec.IsSet("DashboardSummaryList")
}

// AddDashboardSummaryList appends v to DashboardSummaryList and returns the receiver.
func (o *ListDashboardsOutput) AddDashboardSummaryList(v *DashboardSummary) *ListDashboardsOutput {
	if err := o.rec.Append("DashboardSummaryList", v); err != nil {
		panic(err)
	}
	return o
}

// NextToken returns NextToken, the zero value when unset.
func (o *ListDashboardsOutput) NextToken() string { return o.rec.GetString("NextToken") }

// HasNextToken reports whether NextToken is set.
func (o *ListDashboardsOutput) HasNextToken() bool { return o.rec.IsSet("NextToken") }

// WithNextToken sets NextToken and returns the receiver.
func (o *ListDashboardsOutput) WithNextToken(v string) *ListDashboardsOutput {
	o.rec.MustSet("NextToken", v)
	return o
}

// RequestId returns RequestId, the zero value when unset.
func (o *ListDashboardsOutput) RequestId() string { return o.rec.GetString("RequestId") }

// HasRequestId reports whether RequestId is set.
func (o *ListDashboardsOutput) HasRequestId() bool { return o.rec.IsSet("RequestId") }

// WithRequestId sets RequestId and returns the receiver.
func (o *ListDashboardsOutput) WithRequestId(v string) *ListDashboardsOutput {
	o.rec.MustSet("RequestId", v)
	return o
}

// Status is the HTTP status code the result was returned with.
func (o *ListDashboardsOutput) Status() int64 { return o.rec.GetInt64("Status") }

// HasStatus reports whether Status is set.
func (o *ListDashboardsOutput) HasStatus() bool { return o.rec.IsSet("Status") }

// WithStatus sets Status and returns the receiver.
func (o *ListDashboardsOutput) WithStatus(v int64) *ListDashboardsOutput {
	o.rec.MustSet("Status", v)
	return o
}
