// Package header implements the 12-byte PDU headers shared by every DIS PDU.
//
// Two shapes exist. The standard Header ends with a PDU status byte and one
// byte of padding; the LiveEntityHeader used by the live entity information
// family replaces the status with a subprotocol number. Both are exactly Size
// bytes so transports can frame either one from the common prefix.
package header
