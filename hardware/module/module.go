// This file is part of Gossim.
//
// Gossim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gossim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gossim.  If not, see <https://www.gnu.org/licenses/>.

// Package module is the hierarchy scaffold of a design. A Module owns the
// nets created through it and publishes the subset that crosses its
// boundary as named input and output ports. Wiring that crosses a module
// boundary without a registered port is a defect, caught by the signal
// package's port rules.
//
// The scaffold holds no simulation behaviour of its own: it is bookkeeping
// for the builder and for external consumers such as a netlist emitter,
// which walks Submodules() and the port maps.
package module

import (
	"fmt"
	"sort"

	"github.com/gossim/gossim/curated"
	"github.com/gossim/gossim/hardware/signal"
)

// error patterns for the module package.
const (
	ErrPortRules = "module: port rules violation: %v"
)

// Module is one level of design hierarchy.
type Module struct {
	name   string
	parent *Module

	inputs  map[string]*signal.Logic
	outputs map[string]*signal.Logic
	subs    []*Module
}

// NewModule is the preferred method of initialisation for the Module type.
func NewModule(name string) *Module {
	return &Module{
		name:    name,
		inputs:  make(map[string]*signal.Logic),
		outputs: make(map[string]*signal.Logic),
	}
}

// ScopeName implements signal.Scope.
func (m *Module) ScopeName() string {
	if m.parent != nil {
		return fmt.Sprintf("%s.%s", m.parent.ScopeName(), m.name)
	}
	return m.name
}

// NewLogic creates a net owned by this module.
func (m *Module) NewLogic(name string, width int) *signal.Logic {
	l := signal.NewLogic(name, width)
	l.SetScope(m)
	return l
}

// AddInput registers an input port of the given width, driven by the
// external source net, and returns the internal port net. Registering the
// same name twice is a defect.
func (m *Module) AddInput(name string, source *signal.Logic, width int) *signal.Logic {
	if _, ok := m.inputs[name]; ok {
		panic(curated.Errorf(ErrPortRules,
			curated.Errorf("module %s already has an input %s", m.ScopeName(), name)))
	}

	port := m.NewLogic(name, width)
	port.MarkPort(signal.InputPort)
	port.Drive(source)
	m.inputs[name] = port
	return port
}

// AddOutput registers an output port of the given width and returns the
// port net. The module's internals drive it; the outside reads it.
func (m *Module) AddOutput(name string, width int) *signal.Logic {
	if _, ok := m.outputs[name]; ok {
		panic(curated.Errorf(ErrPortRules,
			curated.Errorf("module %s already has an output %s", m.ScopeName(), name)))
	}

	port := m.NewLogic(name, width)
	port.MarkPort(signal.OutputPort)
	m.outputs[name] = port
	return port
}

// Input returns the registered input port of the given name. Asking for a
// port that was never registered is a defect.
func (m *Module) Input(name string) *signal.Logic {
	p, ok := m.inputs[name]
	if !ok {
		panic(curated.Errorf(ErrPortRules,
			curated.Errorf("module %s has no input %s", m.ScopeName(), name)))
	}
	return p
}

// Output returns the registered output port of the given name.
func (m *Module) Output(name string) *signal.Logic {
	p, ok := m.outputs[name]
	if !ok {
		panic(curated.Errorf(ErrPortRules,
			curated.Errorf("module %s has no output %s", m.ScopeName(), name)))
	}
	return p
}

// InputNames returns the registered input names in sorted order.
func (m *Module) InputNames() []string {
	n := make([]string, 0, len(m.inputs))
	for k := range m.inputs {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// OutputNames returns the registered output names in sorted order.
func (m *Module) OutputNames() []string {
	n := make([]string, 0, len(m.outputs))
	for k := range m.outputs {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// AddSubmodule places another module under this one in the hierarchy.
func (m *Module) AddSubmodule(sub *Module) {
	sub.parent = m
	m.subs = append(m.subs, sub)
}

// Submodules returns the modules directly under this one.
func (m *Module) Submodules() []*Module {
	return m.subs
}

// Name returns the module's own (unqualified) name.
func (m *Module) Name() string {
	return m.name
}
