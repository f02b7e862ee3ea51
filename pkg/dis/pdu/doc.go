// Package pdu frames DIS PDUs and dispatches decoding by PDU type.
//
// Marshal computes the body length, stamps the header and serializes header
// then body. Decode peeks the header, finds a registered body for the
// (type, family) pair and checks that the body consumed exactly the declared
// length. Pairs without a registration decode to *Unknown so receive loops
// can skip them by length.
package pdu
