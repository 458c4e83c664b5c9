package nvml

import (
	"math"
	"testing"

	"github.com/gomlx/gonvml/enums"
	"github.com/stretchr/testify/require"
)

func TestSamples(t *testing.T) {
	fake := &fakeAPI{devices: []*fakeDevice{{
		sampleValueType: uint32(enums.ValueTypeUnsignedInt),
		samples: []rawSample{
			{Timestamp: 100, ValueBits: 87},
			{Timestamp: 200, ValueBits: 91},
			{Timestamp: 300, ValueBits: 64},
		},
	}}}
	s := testSession(t, fake)
	device, err := s.DeviceByIndex(0)
	require.NoError(t, err)

	samples, err := device.Samples(enums.GpuUtilizationSamples, 0)
	require.NoError(t, err)
	require.Len(t, samples, 3)
	require.Equal(t, uint64(100), samples[0].Timestamp)
	value, err := samples[0].Value.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(87), value)

	// Resuming from the newest seen timestamp only returns newer samples.
	samples, err = device.Samples(enums.GpuUtilizationSamples, 200)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	require.Equal(t, uint64(300), samples[0].Timestamp)

	// Nothing newer than the last sample.
	_, err = device.Samples(enums.GpuUtilizationSamples, 300)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSamplesDoubleValues(t *testing.T) {
	fake := &fakeAPI{devices: []*fakeDevice{{
		sampleValueType: uint32(enums.ValueTypeDouble),
		samples: []rawSample{
			{Timestamp: 10, ValueBits: math.Float64bits(151.25)},
		},
	}}}
	s := testSession(t, fake)
	device, err := s.DeviceByIndex(0)
	require.NoError(t, err)

	samples, err := device.Samples(enums.TotalPowerSamples, 0)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	require.Equal(t, enums.ValueTypeDouble, samples[0].Value.Type)
	value, err := samples[0].Value.Float64()
	require.NoError(t, err)
	require.Equal(t, 151.25, value)
}

func TestValueRefusesWrongArm(t *testing.T) {
	value, err := decodeValue(uint32(enums.ValueTypeUnsignedLongLong), 1<<40)
	require.NoError(t, err)

	v64, err := value.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(1<<40), v64)

	// The other accessors must not reinterpret the bits.
	_, err = value.Float64()
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = value.Uint32()
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDecodeValueRejectsUnknownTag(t *testing.T) {
	_, err := decodeValue(77, 42)
	require.ErrorIs(t, err, ErrUnknown)
}

// growingSamplesAPI reports one more pending sample on every call, so the
// count/fill pair never converges.
type growingSamplesAPI struct {
	*fakeAPI
	calls int
}

func (g *growingSamplesAPI) DeviceGetSamples(h deviceHandle, samplingType uint32, lastSeen uint64, buf []rawSample) (uint32, int, Return) {
	g.calls++
	return uint32(enums.ValueTypeUnsignedInt), len(buf) + 1, ErrorInsufficientSize
}

func TestSamplesRetryIsBounded(t *testing.T) {
	fake := &growingSamplesAPI{fakeAPI: &fakeAPI{devices: []*fakeDevice{{}}}}
	s, err := newLib(fake).Init()
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Shutdown()) }()

	device, err := s.DeviceByIndex(0)
	require.NoError(t, err)
	_, err = device.Samples(enums.GpuUtilizationSamples, 0)
	require.ErrorIs(t, err, ErrInsufficientSize)
	require.Equal(t, bufferRetries, fake.calls)
}

// racingSamplesAPI needs one resize before succeeding, mimicking samples
// landing between the sizing call and the filling call.
type racingSamplesAPI struct {
	*fakeAPI
	calls int
}

func (r *racingSamplesAPI) DeviceGetSamples(h deviceHandle, samplingType uint32, lastSeen uint64, buf []rawSample) (uint32, int, Return) {
	r.calls++
	const want = 5
	if len(buf) < want {
		return uint32(enums.ValueTypeUnsignedInt), want, ErrorInsufficientSize
	}
	for i := 0; i < want; i++ {
		buf[i] = rawSample{Timestamp: uint64(i + 1), ValueBits: uint64(50 + i)}
	}
	return uint32(enums.ValueTypeUnsignedInt), want, Success
}

func TestSamplesRetriesAfterInsufficientSize(t *testing.T) {
	fake := &racingSamplesAPI{fakeAPI: &fakeAPI{devices: []*fakeDevice{{}}}}
	s, err := newLib(fake).Init()
	require.NoError(t, err)
	defer func() { require.NoError(t, s.Shutdown()) }()

	device, err := s.DeviceByIndex(0)
	require.NoError(t, err)
	samples, err := device.Samples(enums.GpuUtilizationSamples, 0)
	require.NoError(t, err)
	require.Len(t, samples, 5)
	require.Equal(t, 2, fake.calls)
	value, err := samples[4].Value.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(54), value)
}

func TestSamplesErrorPassthrough(t *testing.T) {
	fake := &fakeAPI{devices: []*fakeDevice{{}}}
	fake.failWith("DeviceGetSamples", ErrorNotSupported)
	s := testSession(t, fake)
	device, err := s.DeviceByIndex(0)
	require.NoError(t, err)

	_, err = device.Samples(enums.MemoryClkSamples, 0)
	require.ErrorIs(t, err, ErrNotSupported)
}
