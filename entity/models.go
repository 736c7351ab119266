package entity

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&Staff{},
		&User{},
		&Food{},
		&Drink{},
		&CafeOrder{},
		&Manage{},
		&AuditEntry{},
	}
}
