package movement

// DecodeRotation implements spec §4.9's exact rule: "a signed byte b
// decodes to degrees as (b * 360) / 256 in f32, computed via i32
// intermediate to match the server exactly" (tested as P5).
func DecodeRotation(b int8) float32 {
	return float32(int32(b)*360) / 256.0
}

// EncodeRotation is DecodeRotation's inverse, used when the client itself
// needs to pack a yaw/pitch into the Angle wire type (e.g. before sending
// a serverbound packet that carries one — none of the packets in this
// build's C2S surface do, but movement systems reuse this for internal
// bookkeeping against entity look components decoded from Angle fields).
func EncodeRotation(degrees float32) int8 {
	return int8(int32(degrees*256.0/360.0) & 0xFF)
}
