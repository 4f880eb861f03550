package models

import (
	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/prelude"
	"github.com/awslabs/record-go/traits"
)

// GetJobRequestSchema is the Amplify GetJob request. Every member is bound to
// the request path.
var GetJobRequestSchema = record.NewSchema("com.amazonaws.amplify#GetJobRequest", record.ShapeTypeStructure,
	record.WithMember("appId", prelude.String, &traits.Required{}, &traits.HTTPLabel{}),
	record.WithMember("branchName", prelude.String, &traits.Required{}, &traits.HTTPLabel{}),
	record.WithMember("jobId", prelude.String, &traits.Required{}, &traits.HTTPLabel{}),
)

// GetJobPath is the URI pattern GetJob requests are sent to.
const GetJobPath = "/apps/{appId}/branches/{branchName}/jobs/{jobId}"

// GetJobInput is the request of Amplify GetJob.
type GetJobInput struct {
	rec *record.Record
}

// NewGetJobInput returns an empty request.
func NewGetJobInput() *GetJobInput {
	return &GetJobInput{rec: record.New(GetJobRequestSchema)}
}

// Record returns the underlying record.
func (in *GetJobInput) Record() *record.Record { return in.rec }

// AppId returns AppId, the zero value when unset.
func (in *GetJobInput) AppId() string { return in.rec.GetString("appId") }

// HasAppId reports whether AppId is set.
func (in *GetJobInput) HasAppId() bool { return in.rec.IsSet("appId") }

// SetAppId sets AppId.
func (in *GetJobInput) SetAppId(v string) { in.rec.MustSet("appId", v) }

// WithAppId sets AppId and returns the receiver.
func (in *GetJobInput) WithAppId(v string) *GetJobInput {
	in.SetAppId(v)
	return in
}

// BranchName returns BranchName, the zero value when unset.
func (in *GetJobInput) BranchName() string { return in.rec.GetString("branchName") }

// HasBranchName reports whether BranchName is set.
func (in *GetJobInput) HasBranchName() bool { return in.rec.IsSet("branchName") }

// SetBranchName sets BranchName.
func (in *GetJobInput) SetBranchName(v string) { in.rec.MustSet("branchName", v) }

// WithBranchName sets BranchName and returns the receiver.
func (in *GetJobInput) WithBranchName(v string) *GetJobInput {
	in.SetBranchName(v)
	return in
}

// JobId returns JobId, the zero value when unset.
func (in *GetJobInput) JobId() string { return in.rec.GetString("jobId") }

// HasJobId reports whether JobId is set.
func (in *GetJobInput) HasJobId() bool { return in.rec.IsSet("jobId") }

// SetJobId sets JobId.
func (in *GetJobInput) SetJobId(v string) { in.rec.MustSet("jobId", v) }

// WithJobId sets JobId and returns the receiver.
func (in *GetJobInput) WithJobId(v string) *GetJobInput {
	in.SetJobId(v)
	return in
}
