// Package document provides the dynamic, order-preserving tree records are
// converted to and from.
//
// A Value is a closed variant: null, boolean, number, string, array or
// object. Objects keep their keys in insertion order. Numbers keep their
// textual form so integers wider than a float64 mantissa survive a round
// trip. The tree is decoupled from any wire encoder, see the json and yaml
// subpackages for byte level codecs.
package document
