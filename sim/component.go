package sim

import (
	"sync"
)

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// A Component is a element that is being simulated. Components accept hooks
// so that loggers and recorders can observe them.
type Component interface {
	Named
	Hookable
}

// ComponentBase provides some functions that other component can use.
type ComponentBase struct {
	HookableBase
	sync.Mutex
	name string
}

// NewComponentBase creates a new ComponentBase
func NewComponentBase(name string) *ComponentBase {
	c := new(ComponentBase)
	c.name = name

	return c
}

// Name returns the name of the BasicComponent
func (c *ComponentBase) Name() string {
	return c.name
}
