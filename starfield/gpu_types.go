package starfield

// StarInstance is the GPU-aligned instance record for one star.
// Uploaded as a read-only storage buffer indexed by instance_index in the
// star vertex shader. Size: 32 bytes (vec3 + f32 + vec3 + f32).
type StarInstance struct {
	Position [3]float32 // offset  0: world-space star position (vec3<f32>)
	Size     float32    // offset 12: billboard size in world units (f32)
	Color    [3]float32 // offset 16: linear RGB color (vec3<f32>)
	_pad     float32    // offset 28: padding to 32 bytes
}
