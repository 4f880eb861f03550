package models

import (
	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/prelude"
	"github.com/awslabs/record-go/traits"
)

const smsNamespace = "com.amazonaws.sms#"

// Schemas for the Server Migration Service shapes.
var (
	NotificationContextSchema = record.NewSchema(smsNamespace+"NotificationContext", record.ShapeTypeStructure,
		record.WithMember("validationId", prelude.String),
		record.WithMember("status", prelude.String),
		record.WithMember("statusMessage", prelude.String),
	)

	NotifyAppValidationOutputRequestSchema = record.NewSchema(smsNamespace+"NotifyAppValidationOutputRequest", record.ShapeTypeStructure,
		record.WithMember("appId", prelude.String, &traits.Required{}),
		record.WithMember("notificationContext", NotificationContextSchema),
		record.WithTraits(&traits.OperationTarget{
			Service:   "AWSServerMigrationService_V2016_10_24",
			Operation: "NotifyAppValidationOutput",
		}),
	)
)

// NotificationContext carries the outcome of a validation run.
type NotificationContext struct {
	rec *record.Record
}

// NewNotificationContext returns an empty context.
func NewNotificationContext() *NotificationContext {
	return &NotificationContext{rec: record.New(NotificationContextSchema)}
}

// Record returns the underlying record.
func (c *NotificationContext) Record() *record.Record { return c.rec }

// ValidationId returns ValidationId, the zero value when unset.
func (c *NotificationContext) ValidationId() string { return c.rec.GetString("validationId") }

// WithValidationId sets ValidationId and returns the receiver.
func (c *NotificationContext) WithValidationId(v string) *NotificationContext {
	c.rec.MustSet("validationId", v)
	return c
}

// Status returns Status, the zero value when unset.
func (c *NotificationContext) Status() string { return c.rec.GetString("status") }

// WithStatus sets Status and returns the receiver.
func (c *NotificationContext) WithStatus(v string) *NotificationContext {
	c.rec.MustSet("status", v)
	return c
}

// StatusMessage returns StatusMessage, the zero value when unset.
func (c *NotificationContext) StatusMessage() string { return c.rec.GetString("statusMessage") }

// WithStatusMessage sets StatusMessage and returns the receiver.
func (c *NotificationContext) WithStatusMessage(v string) *NotificationContext {
	c.rec.MustSet("statusMessage", v)
	return c
}

// NotifyAppValidationOutputInput is the request of SMS
// NotifyAppValidationOutput.
type NotifyAppValidationOutputInput struct {
	rec *record.Record
}

// NewNotifyAppValidationOutputInput returns an empty request.
func NewNotifyAppValidationOutputInput() *NotifyAppValidationOutputInput {
	return &NotifyAppValidationOutputInput{rec: record.New(NotifyAppValidationOutputRequestSchema)}
}

// Record returns the underlying record.
func (in *NotifyAppValidationOutputInput) Record() *record.Record { return in.rec }

// AppId returns AppId, the zero value when unset.
func (in *NotifyAppValidationOutputInput) AppId() string { return in.rec.GetString("appId") }

// HasAppId reports whether AppId is set.
func (in *NotifyAppValidationOutputInput) HasAppId() bool { return in.rec.IsSet("appId") }

// WithAppId sets AppId and returns the receiver.
func (in *NotifyAppValidationOutputInput) WithAppId(v string) *NotifyAppValidationOutputInput {
	in.rec.MustSet("appId", v)
	return in
}

// NotificationContext returns the notification context, empty when unset.
func (in *NotifyAppValidationOutputInput) NotificationContext() *NotificationContext {
	return &NotificationContext{rec: in.rec.GetRecord("notificationContext")}
}

// HasNotificationContext reports whether NotificationContext is set.
func (in *NotifyAppValidationOutputInput) HasNotificationContext() bool {
	return in.rec.IsSet("notificationContext")
}

// WithNotificationContext sets NotificationContext and returns the receiver.
func (in *NotifyAppValidationOutputInput) WithNotificationContext(v *NotificationContext) *NotifyAppValidationOutputInput {
	in.rec.MustSet("notificationContext", v)
	return in
}
