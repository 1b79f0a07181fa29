package routes

import "fmt"

// Controller resolves navigation requests against an installed Table.
// A Controller accepts exactly one table; later calls to Register
// return ErrFinalized.
type Controller interface {
	Register(table *Table) error
}

// Install registers the table with the host controller. It is intended to be
// called once during startup, before any request is served.
func Install(table *Table, host Controller) error {
	if host == nil {
		return ErrNoController
	}
	if table == nil {
		return ErrNoTable
	}
	if err := host.Register(table); err != nil {
		return fmt.Errorf("install routes: %w", err)
	}
	return nil
}
