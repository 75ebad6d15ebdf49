package interval

import (
	"reflect"

	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/runtime/event"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/runtime/syncutils"
	"github.com/iotaledger/intervals/logger"
)

// StepRegistry maps the concrete types of Values to their Step. Values without a registered Step are continuous.
//
// It is safe for concurrent use, registrations are expected to happen during setup while lookups happen on every
// canonicalization.
type StepRegistry struct {
	// Events contains the events that are triggered when the registered Steps change.
	Events *StepRegistryEvents

	steps      map[reflect.Type]Step
	stepsMutex syncutils.RWMutex

	*logger.WrappedLogger
}

// NewStepRegistry creates an empty StepRegistry.
func NewStepRegistry(opts ...options.Option[StepRegistry]) *StepRegistry {
	return options.Apply(&StepRegistry{
		Events: NewStepRegistryEvents(),
		steps:  make(map[reflect.Type]Step),
	}, opts, func(r *StepRegistry) {
		if r.WrappedLogger == nil {
			r.WrappedLogger = logger.NewWrappedLogger(nil)
		}
	})
}

// WithLogger sets the logger that reports changes of the registry.
func WithLogger(log *logger.Logger) options.Option[StepRegistry] {
	return func(r *StepRegistry) {
		if log != nil {
			log = log.Named("StepRegistry")
		}

		r.WrappedLogger = logger.NewWrappedLogger(log)
	}
}

// Register sets the Step for the concrete type of the given sample Value and replaces any previous registration.
func (r *StepRegistry) Register(sample Value, step Step) {
	if sample == nil || step == nil {
		panic("sample value and step must not be nil")
	}

	valueType := reflect.TypeOf(sample)

	r.stepsMutex.Lock()
	_, replaced := r.steps[valueType]
	r.steps[valueType] = step
	r.stepsMutex.Unlock()

	r.LogDebugf("%s step for %s", lo.Cond(replaced, "replaced", "registered"), valueType)

	r.Events.StepRegistered.Trigger(valueType)
}

// Unregister removes the Step of the concrete type of the given sample Value, so its Values become continuous.
func (r *StepRegistry) Unregister(sample Value) (removed bool) {
	valueType := reflect.TypeOf(sample)

	r.stepsMutex.Lock()
	if _, removed = r.steps[valueType]; removed {
		delete(r.steps, valueType)
	}
	r.stepsMutex.Unlock()

	if removed {
		r.LogDebugf("unregistered step for %s", valueType)

		r.Events.StepUnregistered.Trigger(valueType)
	}

	return removed
}

// Step returns the Step of the concrete type of the given Value. The second return value is false for continuous types.
func (r *StepRegistry) Step(value Value) (step Step, exists bool) {
	r.stepsMutex.RLock()
	defer r.stepsMutex.RUnlock()

	step, exists = r.steps[reflect.TypeOf(value)]

	return step, exists
}

// IsDiscrete returns true if a Step is registered for the concrete type of the given Value.
func (r *StepRegistry) IsDiscrete(value Value) bool {
	_, exists := r.Step(value)

	return exists
}

// DefaultStepRegistry is used by the canonicalization if no other StepRegistry is provided.
var DefaultStepRegistry = NewDefaultStepRegistry()

// NewDefaultStepRegistry creates a StepRegistry that knows the integer Values (step 1) and DateValues (step one day).
func NewDefaultStepRegistry(opts ...options.Option[StepRegistry]) *StepRegistry {
	registry := NewStepRegistry(opts...)
	registry.Register(Int64Value(0), NewIntegerStep[Int64Value](1))
	registry.Register(Uint64Value(0), NewIntegerStep[Uint64Value](1))
	registry.Register(DateValue{}, NewDateStep(1))

	return registry
}

// RegisterStep registers a Step in the DefaultStepRegistry.
func RegisterStep(sample Value, step Step) {
	DefaultStepRegistry.Register(sample, step)
}

// UnregisterStep removes a Step from the DefaultStepRegistry.
func UnregisterStep(sample Value) bool {
	return DefaultStepRegistry.Unregister(sample)
}

// StepRegistryEvents is a collection of events that are triggered by the StepRegistry.
type StepRegistryEvents struct {
	// StepRegistered is triggered with the concrete Value type whenever a Step is registered or replaced.
	StepRegistered *event.Event1[reflect.Type]

	// StepUnregistered is triggered with the concrete Value type whenever a Step is removed.
	StepUnregistered *event.Event1[reflect.Type]
}

// NewStepRegistryEvents creates a new StepRegistryEvents instance.
func NewStepRegistryEvents() *StepRegistryEvents {
	return &StepRegistryEvents{
		StepRegistered:   event.New1[reflect.Type](),
		StepUnregistered: event.New1[reflect.Type](),
	}
}
