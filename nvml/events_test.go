package nvml

import (
	"testing"
	"time"

	"github.com/gomlx/gonvml/enums"
	"github.com/stretchr/testify/require"
)

func TestEventSetWait(t *testing.T) {
	fake := &fakeAPI{devices: []*fakeDevice{{
		name:            "Tesla K80",
		supportedEvents: uint64(enums.EventTypeAll),
	}}}
	s := testSession(t, fake)
	device, err := s.DeviceByIndex(0)
	require.NoError(t, err)

	set, err := s.NewEventSet()
	require.NoError(t, err)
	defer func() { require.NoError(t, set.Free()) }()

	require.NoError(t, device.RegisterEvents(enums.EventTypeXidCriticalError, set))

	fake.events = append(fake.events, rawEventData{
		Device:    1,
		EventType: uint64(enums.EventTypeXidCriticalError),
		EventData: 79,
	})

	event, err := set.Wait(time.Second)
	require.NoError(t, err)
	require.Equal(t, enums.EventTypeXidCriticalError, event.Type)
	require.Equal(t, uint64(79), event.Data)
	name, err := event.Device.Name()
	require.NoError(t, err)
	require.Equal(t, "Tesla K80", name)
}

func TestEventSetWaitTimeout(t *testing.T) {
	s := testSession(t, &fakeAPI{})
	set, err := s.NewEventSet()
	require.NoError(t, err)
	defer func() { require.NoError(t, set.Free()) }()

	_, err = set.Wait(10 * time.Millisecond)
	require.ErrorIs(t, err, ErrTimeout)
}

func TestEventSetFreeIdempotent(t *testing.T) {
	fake := &fakeAPI{}
	s := testSession(t, fake)
	set, err := s.NewEventSet()
	require.NoError(t, err)

	require.NoError(t, set.Free())
	require.NoError(t, set.Free())
	require.Len(t, fake.freedSets, 1)

	// A freed set refuses further use.
	_, err = set.Wait(0)
	require.ErrorIs(t, err, ErrUninitialized)
}

func TestEventSetAfterShutdown(t *testing.T) {
	fake := &fakeAPI{}
	lib := newLib(fake)
	s, err := lib.Init()
	require.NoError(t, err)

	set, err := s.NewEventSet()
	require.NoError(t, err)
	require.NoError(t, s.Shutdown())

	// The native shutdown already destroyed the set; Free must not forward.
	require.NoError(t, set.Free())
	require.Empty(t, fake.freedSets)

	_, err = set.Wait(0)
	require.ErrorIs(t, err, ErrUninitialized)
}

func TestRegisterUnsupportedEvents(t *testing.T) {
	fake := &fakeAPI{devices: []*fakeDevice{{
		supportedEvents: uint64(enums.EventTypePState),
	}}}
	s := testSession(t, fake)
	device, err := s.DeviceByIndex(0)
	require.NoError(t, err)

	types, err := device.SupportedEventTypes()
	require.NoError(t, err)
	require.Equal(t, enums.EventTypePState, types)

	set, err := s.NewEventSet()
	require.NoError(t, err)
	defer func() { require.NoError(t, set.Free()) }()

	err = device.RegisterEvents(enums.EventTypeDoubleBitECCError, set)
	require.ErrorIs(t, err, ErrNotSupported)
	require.NoError(t, device.RegisterEvents(enums.EventTypePState, set))
}
