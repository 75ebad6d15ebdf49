package interval

import (
	"reflect"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/intervals/logger"
)

func TestStepRegistry(t *testing.T) {
	registry := NewStepRegistry(WithLogger(logger.NewNopLogger()))

	require.False(t, registry.IsDiscrete(Int64Value(1)))

	registry.Register(Int64Value(0), NewIntegerStep[Int64Value](2))
	require.True(t, registry.IsDiscrete(Int64Value(1)))
	require.False(t, registry.IsDiscrete(Uint64Value(1)))

	step, exists := registry.Step(Int64Value(7))
	require.True(t, exists)
	next, ok := step.Next(Int64Value(7))
	require.True(t, ok)
	require.Equal(t, Int64Value(9), next)

	// re-registering replaces the step
	registry.Register(Int64Value(0), NewIntegerStep[Int64Value](3))
	step, _ = registry.Step(Int64Value(7))
	next, _ = step.Next(Int64Value(7))
	require.Equal(t, Int64Value(10), next)

	require.True(t, registry.Unregister(Int64Value(0)))
	require.False(t, registry.Unregister(Int64Value(0)))
	require.False(t, registry.IsDiscrete(Int64Value(1)))

	require.Panics(t, func() { registry.Register(nil, NewDateStep(1)) })
	require.Panics(t, func() { registry.Register(DateValue{}, nil) })
}

func TestDefaultStepRegistry(t *testing.T) {
	require.True(t, DefaultStepRegistry.IsDiscrete(Int64Value(0)))
	require.True(t, DefaultStepRegistry.IsDiscrete(Uint64Value(0)))
	require.True(t, DefaultStepRegistry.IsDiscrete(NewDateValue(2000, 1, 1)))
	require.False(t, DefaultStepRegistry.IsDiscrete(Float64Value(0)))
	require.False(t, DefaultStepRegistry.IsDiscrete(MustParseDecimal("0")))
	require.False(t, DefaultStepRegistry.IsDiscrete(TimeValue{}))

	RegisterStep(DecimalValue{}, NewDecimalStep(decimal.RequireFromString("0.5")))
	defer UnregisterStep(DecimalValue{})

	require.True(t, DefaultStepRegistry.IsDiscrete(MustParseDecimal("1")))
	require.Equal(t, "[1, 2.5)", Canonicalize(Closed(MustParseDecimal("1"), MustParseDecimal("2"))).String())
}

func TestStepRegistry_Concurrency(t *testing.T) {
	registry := NewStepRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				registry.Register(Int64Value(0), NewIntegerStep[Int64Value](1))
				registry.Unregister(Uint64Value(0))
			}
		}()

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				CanonicalizeTo(Open(Int64Value(1), Int64Value(7)), true, true, WithStepRegistry(registry))
				registry.IsDiscrete(Uint64Value(1))
			}
		}()
	}
	wg.Wait()

	require.True(t, registry.IsDiscrete(Int64Value(0)))
}

func TestStepRegistry_Events(t *testing.T) {
	registry := NewStepRegistry()

	var registered, unregistered []reflect.Type
	registry.Events.StepRegistered.Hook(func(valueType reflect.Type) {
		registered = append(registered, valueType)
	})
	hook := registry.Events.StepUnregistered.Hook(func(valueType reflect.Type) {
		unregistered = append(unregistered, valueType)
	})

	registry.Register(DateValue{}, NewDateStep(7))
	registry.Register(DateValue{}, NewDateStep(1))
	require.True(t, registry.Unregister(DateValue{}))
	require.False(t, registry.Unregister(DateValue{}))

	hook.Unhook()
	registry.Register(Int64Value(0), NewIntegerStep[Int64Value](1))
	require.True(t, registry.Unregister(Int64Value(0)))

	require.Equal(t, []reflect.Type{reflect.TypeOf(DateValue{}), reflect.TypeOf(DateValue{}), reflect.TypeOf(Int64Value(0))}, registered)
	require.Equal(t, []reflect.Type{reflect.TypeOf(DateValue{})}, unregistered)
}
