// Package traits defines the annotations record schemas carry. Each trait is
// keyed by its model trait ID so generated schemas and model files agree on
// naming.
package traits

// Required represents smithy.api#required. Required members are checked when
// a record is serialized for transmission, never on set or get.
type Required struct{}

// TraitID identifies the trait.
func (*Required) TraitID() string { return "smithy.api#required" }

// Sensitive represents smithy.api#sensitive. Values of sensitive members are
// redacted from log output.
type Sensitive struct{}

// TraitID identifies the trait.
func (*Sensitive) TraitID() string { return "smithy.api#sensitive" }

// IdempotencyToken represents smithy.api#idempotencyToken.
type IdempotencyToken struct{}

// TraitID identifies the trait.
func (*IdempotencyToken) TraitID() string { return "smithy.api#idempotencyToken" }

// OperationTarget names the service operation a request record is sent to.
// JSON RPC protocols project it into the X-Amz-Target header as
// "Service.Operation".
type OperationTarget struct {
	Service   string
	Operation string
}

// TraitID identifies the trait.
func (*OperationTarget) TraitID() string { return "aws.protocols#operationTarget" }

// String returns the target in header form.
func (t *OperationTarget) String() string {
	return t.Service + "." + t.Operation
}
