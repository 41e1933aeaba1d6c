package input

import "github.com/lixenwraith/arena/terminal"

// Dispatcher invokes the handler registered for each intent
type Dispatcher struct {
	table    *KeyTable
	handlers map[Intent]func()
}

func NewDispatcher(table *KeyTable) *Dispatcher {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Dispatcher{table: table, handlers: make(map[Intent]func())}
}

// Table returns the bindings used by Dispatch
func (d *Dispatcher) Table() *KeyTable {
	return d.table
}

// Handle registers fn for intent, replacing any earlier handler
func (d *Dispatcher) Handle(intent Intent, fn func()) {
	d.handlers[intent] = fn
}

// Invoke runs the handler for intent and reports whether one was registered
func (d *Dispatcher) Invoke(intent Intent) bool {
	fn, ok := d.handlers[intent]
	if !ok {
		return false
	}
	fn()
	return true
}

// Dispatch resolves ev and runs its handler
func (d *Dispatcher) Dispatch(ev terminal.KeyEvent) Intent {
	intent := d.table.Lookup(ev)
	if intent != IntentNone {
		d.Invoke(intent)
	}
	return intent
}
