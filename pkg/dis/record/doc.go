// Package record implements the composite records shared by DIS PDU bodies.
//
// Fixed records expose their wire size as a Length constant and return it
// from ByteLength. Variable records compute ByteLength from their contents.
// All records satisfy field.Field, except AntennaPattern and
// ModulationParameters, whose extent is carried by a sibling field and which
// implement field.LengthDeserializer instead.
package record
