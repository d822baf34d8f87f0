package dissect

import "math"

// Vector3i is a quantized world vector from the network stream.
type Vector3i struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
	Z int32 `json:"z"`
}

// decodeVector3i unpacks the game's variable-width vector: a bounded bit
// count selector, then three biased components of that width.
func decodeVector3i(r *bitReader, netVersion int32) (Vector3i, error) {
	max := uint64(20)
	if netVersion >= 7 {
		max = 22
	}
	sizeBits, err := r.readBitsMax(4, max)
	if err != nil {
		return Vector3i{}, err
	}
	bias := int32(1) << (sizeBits + 1)
	limit := uint(sizeBits + 2)
	dx, err := r.readBits(limit)
	if err != nil {
		return Vector3i{}, err
	}
	dy, err := r.readBits(limit)
	if err != nil {
		return Vector3i{}, err
	}
	dz, err := r.readBits(limit)
	if err != nil {
		return Vector3i{}, err
	}
	return Vector3i{
		X: int32(dx) - bias,
		Y: int32(dy) - bias,
		Z: int32(dz) - bias,
	}, nil
}

// Vector3f is a world vector in float units (centimeters / 100).
type Vector3f struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func decodeVector3f(r *bitReader, netVersion int32) (Vector3f, error) {
	v, err := decodeVector3i(r, netVersion)
	if err != nil {
		return Vector3f{}, err
	}
	return Vector3f{
		X: float32(v.X) / 100.0,
		Y: float32(v.Y) / 100.0,
		Z: float32(v.Z) / 100.0,
	}, nil
}

// Rotation is the spawn-time orientation: three optional signed byte steps.
type Rotation struct {
	Yaw   *int8 `json:"yaw,omitempty"`
	Pitch *int8 `json:"pitch,omitempty"`
	Roll  *int8 `json:"roll,omitempty"`
}

func decodeRotation(r *bitReader) (Rotation, error) {
	yaw, err := ifGet(r, (*bitReader).readI8)
	if err != nil {
		return Rotation{}, err
	}
	pitch, err := ifGet(r, (*bitReader).readI8)
	if err != nil {
		return Rotation{}, err
	}
	roll, err := ifGet(r, (*bitReader).readI8)
	if err != nil {
		return Rotation{}, err
	}
	return Rotation{Yaw: yaw, Pitch: pitch, Roll: roll}, nil
}

// Quaternion is a unit rotation from a rigid body update.
type Quaternion struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

// quatUnpack maps an 18 bit fixed-point component back into
// [-1/sqrt(2), 1/sqrt(2)].
func quatUnpack(val uint64) float32 {
	maxQuat := float32(1.0 / math.Sqrt2)
	maxValue := float32((1 << 18) - 1)
	posRange := float32(val) / maxValue
	return (posRange - 0.5) * 2.0 * maxQuat
}

// decodeQuaternion reads the smallest-three encoding: a 2 bit selector for
// the omitted largest component, three 18 bit components, and the omitted
// one reconstructed so the quaternion stays unit norm.
func decodeQuaternion(r *bitReader) (Quaternion, error) {
	largest, err := r.readBits(2)
	if err != nil {
		return Quaternion{}, err
	}
	var comp [3]float32
	for i := range comp {
		v, err := r.readBits(18)
		if err != nil {
			return Quaternion{}, err
		}
		comp[i] = quatUnpack(v)
	}
	a, b, c := comp[0], comp[1], comp[2]
	extra := float32(math.Sqrt(math.Max(0, float64(1.0-a*a-b*b-c*c))))
	switch largest {
	case 0:
		return Quaternion{X: extra, Y: a, Z: b, W: c}, nil
	case 1:
		return Quaternion{X: a, Y: extra, Z: b, W: c}, nil
	case 2:
		return Quaternion{X: a, Y: b, Z: extra, W: c}, nil
	default:
		return Quaternion{X: a, Y: b, Z: c, W: extra}, nil
	}
}

// decodeQuaternionCompressed reads the pre net-version-7 rotation: three
// 16 bit fixed-point components, no reconstructed fourth.
func decodeQuaternionCompressed(r *bitReader) (Quaternion, error) {
	var comp [3]float32
	for i := range comp {
		v, err := r.readU16()
		if err != nil {
			return Quaternion{}, err
		}
		comp[i] = float32(int32(v)+math.MinInt16) / float32(math.MaxInt16)
	}
	return Quaternion{X: comp[0], Y: comp[1], Z: comp[2], W: 0}, nil
}
