// Package record implements presence-tracked records: the runtime form of
// generated API request and response models.
//
// A Schema declares a record type as an ordered list of typed members with
// traits attached. A Record holds values for those members, each with an
// independent "explicitly set" flag, so an unset string and a string set to
// "" stay distinguishable all the way to the wire.
//
// Records convert to and from the document tree with ToDocument and
// FromDocument. Only set members are emitted, in declaration order, and only
// declared keys are read back. Byte level codecs live in document/json,
// document/yaml and encoding/json; header projection lives in httpbinding.
//
//	createGatewayGroup := record.NewSchema("com.amazonaws.alexaforbusiness#CreateGatewayGroupRequest",
//		record.ShapeTypeStructure,
//		record.WithMember("Name", prelude.String, &traits.Required{}),
//		record.WithMember("ClientRequestToken", prelude.String, &traits.IdempotencyToken{}),
//	)
//
//	rec := record.New(createGatewayGroup)
//	rec.MustSet("Name", "Lobby").MustSet("ClientRequestToken", "abc-123")
//	doc := rec.ToDocument()
//	// {"Name":"Lobby","ClientRequestToken":"abc-123"}
//
//	out, err := record.FromDocument(createGatewayGroup, doc)
//	var mp *record.MalformedPayloadError
//	if errors.As(err, &mp) {
//		// mp.Path names the offending value
//	}
package record
