package nvml

import (
	"fmt"
	"math"

	"github.com/gomlx/gonvml/enums"
)

// bufferRetries bounds the count/fill loops of Device.Samples and
// Device.RetiredPages: the native library may grow its answer between the
// sizing call and the filling call, and after this many attempts the
// binding reports ErrInsufficientSize instead of chasing it forever.
const bufferRetries = 3

// Sample is one timestamped reading from a device's internal sampling
// buffer.
type Sample struct {
	// Timestamp is the CPU time of the reading, in microseconds.
	Timestamp uint64

	// Value of the reading. All samples of one Device.Samples call share
	// the same value type.
	Value Value
}

// Value is a numeric reading tagged with the representation the native
// library delivered it in. Only the accessor matching Type returns the
// reading; the others fail with ErrInvalidArgument rather than
// reinterpreting the bits.
type Value struct {
	Type enums.ValueType
	bits uint64
}

// Float64 returns the reading of a ValueTypeDouble value.
func (v Value) Float64() (float64, error) {
	if v.Type != enums.ValueTypeDouble {
		return 0, toError(ErrorInvalidArgument)
	}
	return math.Float64frombits(v.bits), nil
}

// Uint32 returns the reading of a ValueTypeUnsignedInt value.
func (v Value) Uint32() (uint32, error) {
	if v.Type != enums.ValueTypeUnsignedInt {
		return 0, toError(ErrorInvalidArgument)
	}
	return uint32(v.bits), nil
}

// Uint64 returns the reading of a ValueTypeUnsignedLong or
// ValueTypeUnsignedLongLong value.
func (v Value) Uint64() (uint64, error) {
	if v.Type != enums.ValueTypeUnsignedLong && v.Type != enums.ValueTypeUnsignedLongLong {
		return 0, toError(ErrorInvalidArgument)
	}
	return v.bits, nil
}

func (v Value) String() string {
	switch v.Type {
	case enums.ValueTypeDouble:
		return fmt.Sprintf("%g", math.Float64frombits(v.bits))
	case enums.ValueTypeUnsignedInt:
		return fmt.Sprintf("%d", uint32(v.bits))
	case enums.ValueTypeUnsignedLong, enums.ValueTypeUnsignedLongLong:
		return fmt.Sprintf("%d", v.bits)
	}
	return fmt.Sprintf("%s(0x%x)", v.Type, v.bits)
}

// decodeValue validates the value type tag the native library reported and
// wraps the raw bits. An unrecognized tag fails the whole Samples call: the
// bits cannot be interpreted without it.
func decodeValue(valueType uint32, bits uint64) (Value, error) {
	switch t := enums.ValueType(valueType); t {
	case enums.ValueTypeDouble, enums.ValueTypeUnsignedInt,
		enums.ValueTypeUnsignedLong, enums.ValueTypeUnsignedLongLong:
		return Value{Type: t, bits: bits}, nil
	}
	return Value{}, toError(ErrorUnknown)
}

// Samples drains the device's internal buffer of the given sampling type,
// returning the readings newer than lastSeen (microseconds CPU time; zero
// for everything buffered). The buffer is sized with a count query first
// and the pair is retried a bounded number of times when new samples land
// in between.
//
// Pass the Timestamp of the newest returned sample as lastSeen of the next
// call to read each sample exactly once. An empty buffer fails with
// ErrNotFound, same as a sampling type the device does not collect.
func (d *Device) Samples(samplingType enums.SamplingType, lastSeen uint64) ([]Sample, error) {
	if err := d.session.check(); err != nil {
		return nil, err
	}
	var buf []rawSample
	for attempt := 0; attempt < bufferRetries; attempt++ {
		valueType, n, ret := d.session.lib.api.DeviceGetSamples(d.handle, uint32(samplingType), lastSeen, buf)
		if ret == ErrorInsufficientSize {
			buf = make([]rawSample, n)
			continue
		}
		if err := toError(ret); err != nil {
			return nil, err
		}
		samples := make([]Sample, n)
		for i, raw := range buf[:n] {
			value, err := decodeValue(valueType, raw.ValueBits)
			if err != nil {
				return nil, err
			}
			samples[i] = Sample{Timestamp: raw.Timestamp, Value: value}
		}
		return samples, nil
	}
	return nil, toError(ErrorInsufficientSize)
}
