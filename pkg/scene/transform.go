package scene

// Transform is a rigid affine transform: a 3x3 rotation basis plus a
// translation. Its layout mirrors CFrameValue.Components once unpacked,
// so loader enrichment and the renderer's part collection can share one
// derivation and never disagree about the component order.
type Transform struct {
	Translation                Vector3Value
	R00, R01, R02 float32
	R10, R11, R12 float32
	R20, R21, R22 float32
}

// IdentityTransform is the zero rotation with zero translation.
func IdentityTransform() Transform {
	return Transform{R00: 1, R11: 1, R22: 1}
}

// TransformPoint applies the transform to a local-space point.
func (t Transform) TransformPoint(p Vector3Value) Vector3Value {
	return Vector3Value{
		X: t.R00*p.X + t.R01*p.Y + t.R02*p.Z + t.Translation.X,
		Y: t.R10*p.X + t.R11*p.Y + t.R12*p.Z + t.Translation.Y,
		Z: t.R20*p.X + t.R21*p.Y + t.R22*p.Z + t.Translation.Z,
	}
}

// WorldTransformFromProperties derives a world transform from CFrame if
// present, else Position as pure translation, else identity — the one
// derivation shared by loader enrichment (§4.2) and renderer part
// collection (§4.5), so an off-by-one in the CFrame layout can't silently
// diverge between the two call sites.
func WorldTransformFromProperties(props Properties) Transform {
	if v, ok := props["CFrame"].(CFrameValue); ok {
		c := v.Components
		return Transform{
			Translation: v.Position,
			R00:         c[3], R01: c[4], R02: c[5],
			R10: c[6], R11: c[7], R12: c[8],
			R20: c[9], R21: c[10], R22: c[11],
		}
	}
	if v, ok := props["Position"].(Vector3Value); ok {
		t := IdentityTransform()
		t.Translation = v
		return t
	}
	return IdentityTransform()
}
