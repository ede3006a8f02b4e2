package order

// EnsureMutable is the lifecycle guard every mutation goes through.
// It returns ErrOrderLocked once the draft is Completed.
func (d *Draft) EnsureMutable() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.status.IsLocking() {
		return ErrOrderLocked
	}
	return nil
}

// IsLocked reports whether the draft is read-only.
func (d *Draft) IsLocked() bool {
	return d.status.IsLocking()
}

// CanEditLineItems reports whether items may be added, changed or removed.
func (d *Draft) CanEditLineItems() bool {
	return !d.IsLocked()
}

// CanEditOrderNumber reports whether the order number input is enabled: only for
// unsaved orders that are not Completed.
func (d *Draft) CanEditOrderNumber() bool {
	return !d.IsLocked() && !d.IsPersisted()
}

// CanSelectStatus reports whether the status selector is enabled. Once Completed
// it stays disabled, which is what keeps Completed from being reverted.
func (d *Draft) CanSelectStatus() bool {
	return !d.IsLocked()
}
