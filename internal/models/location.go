package models

import (
	"time"

	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/prelude"
	"github.com/awslabs/record-go/traits"
)

// Schemas for the LocationService shapes.
var (
	PositionSchema = record.NewSchema("com.amazonaws.location#Position", record.ShapeTypeList,
		record.WithElement(prelude.Float),
	)

	DevicePositionUpdateSchema = record.NewSchema("com.amazonaws.location#DevicePositionUpdate", record.ShapeTypeStructure,
		record.WithMember("DeviceId", prelude.String, &traits.Required{}),
		record.WithMember("Position", PositionSchema, &traits.Required{}, &traits.Sensitive{}),
		record.WithMember("SampleTime", prelude.Timestamp, &traits.Required{},
			&traits.TimestampFormat{Format: traits.TimestampFormatDateTime}),
	)
)

// DevicePositionUpdate is one position sample reported by a device.
type DevicePositionUpdate struct {
	rec *record.Record
}

// NewDevicePositionUpdate returns an empty update.
func NewDevicePositionUpdate() *DevicePositionUpdate {
	return &DevicePositionUpdate{rec: record.New(DevicePositionUpdateSchema)}
}

// DevicePositionUpdateFromRecord wraps a record of DevicePositionUpdateSchema.
func DevicePositionUpdateFromRecord(r *record.Record) *DevicePositionUpdate {
	return &DevicePositionUpdate{rec: r}
}

// Record returns the underlying record.
func (u *DevicePositionUpdate) Record() *record.Record { return u.rec }

// DeviceId returns DeviceId, the zero value when unset.
func (u *DevicePositionUpdate) DeviceId() string { return u.rec.GetString("DeviceId") }

// HasDeviceId reports whether DeviceId is set.
func (u *DevicePositionUpdate) HasDeviceId() bool { return u.rec.IsSet("DeviceId") }

// SetDeviceId sets DeviceId.
func (u *DevicePositionUpdate) SetDeviceId(v string) { u.rec.MustSet("DeviceId", v) }

// WithDeviceId sets DeviceId and returns the receiver.
func (u *DevicePositionUpdate) WithDeviceId(v string) *DevicePositionUpdate {
	u.SetDeviceId(v)
	return u
}

// Position returns the longitude and latitude of the sample, nil when unset.
func (u *DevicePositionUpdate) Position() []float64 {
	list := u.rec.GetList("Position")
	if list == nil {
		return nil
	}
	out := make([]float64, len(list))
	for i, e := range list {
		out[i] = e.(float64)
	}
	return out
}

// HasPosition reports whether Position is set.
func (u *DevicePositionUpdate) HasPosition() bool { return u.rec.IsSet("Position") }

// SetPosition sets Position.
func (u *DevicePositionUpdate) SetPosition(v []float64) { u.rec.MustSet("Position", v) }

// WithPosition sets Position and returns the receiver.
func (u *DevicePositionUpdate) WithPosition(v []float64) *DevicePositionUpdate {
	u.SetPosition(v)
	return u
}

// AddPosition appends v to Position and returns the receiver.
func (u *DevicePositionUpdate) AddPosition(v float64) *DevicePositionUpdate {
	if err := u.rec.Append("Position", v); err != nil {
		panic(err)
	}
	return u
}

// SampleTime returns SampleTime, the zero value when unset.
func (u *DevicePositionUpdate) SampleTime() time.Time { return u.rec.GetTime("SampleTime") }

// HasSampleTime reports whether SampleTime is set.
func (u *DevicePositionUpdate) HasSampleTime() bool { return u.rec.IsSet("SampleTime") }

// SetSampleTime sets SampleTime.
func (u *DevicePositionUpdate) SetSampleTime(v time.Time) { u.rec.MustSet("SampleTime", v) }

// WithSampleTime sets SampleTime and returns the receiver.
func (u *DevicePositionUpdate) WithSampleTime(v time.Time) *DevicePositionUpdate {
	u.SetSampleTime(v)
	return u
}
